package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, StatusUpcoming.Valid())
	assert.True(t, StatusOngoing.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, BookingStatus("").Valid())
	assert.False(t, BookingStatus("paused").Valid())
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, StatusUpcoming.Terminal())
	assert.False(t, StatusOngoing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestUserBookingFinders(t *testing.T) {
	u := User{
		Bookings:        []DestinationBooking{{ID: "d1"}},
		HotelBookings:   []HotelBooking{{ID: "h1"}},
		PackageBookings: []PackageBooking{{ID: "p1"}},
		Favorites:       []string{"REF1"},
	}

	assert.NotNil(t, u.DestinationBooking("d1"))
	assert.Nil(t, u.DestinationBooking("h1"))
	assert.NotNil(t, u.HotelBooking("h1"))
	assert.NotNil(t, u.PackageBooking("p1"))
	assert.Nil(t, u.PackageBooking("nope"))

	// finders return live pointers into the slices
	u.HotelBooking("h1").Status = StatusOngoing
	assert.Equal(t, StatusOngoing, u.HotelBookings[0].Status)

	assert.True(t, u.HasFavorite("REF1"))
	assert.False(t, u.HasFavorite("REF2"))
}
