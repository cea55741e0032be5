package models

import "time"

// User is the aggregate root that owns all booking state. Bookings never
// exist outside their owning user document; cancellation is the only
// terminal "removal" and nothing is ever hard-deleted.
type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Email         string    `json:"email" bson:"email"`
	Name          string    `json:"name" bson:"name"`
	UserType      string    `json:"userType" bson:"userType"`
	Password      string    `json:"-" bson:"password"`
	RefreshToken  string    `json:"-" bson:"refreshtoken,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refreshexp,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`

	Favorites       []string             `json:"favorites" bson:"favorites"`
	Bookings        []DestinationBooking `json:"bookings" bson:"bookings"`
	HotelBookings   []HotelBooking       `json:"hotelBookings" bson:"hotelBookings"`
	PackageBookings []PackageBooking     `json:"packageBookings" bson:"packageBookings"`
}

// DestinationBooking returns the embedded destination booking with the
// given id, or nil.
func (u *User) DestinationBooking(id string) *DestinationBooking {
	for i := range u.Bookings {
		if u.Bookings[i].ID == id {
			return &u.Bookings[i]
		}
	}
	return nil
}

// HotelBooking returns the embedded hotel booking with the given id, or nil.
func (u *User) HotelBooking(id string) *HotelBooking {
	for i := range u.HotelBookings {
		if u.HotelBookings[i].ID == id {
			return &u.HotelBookings[i]
		}
	}
	return nil
}

// PackageBooking returns the embedded package booking with the given id, or nil.
func (u *User) PackageBooking(id string) *PackageBooking {
	for i := range u.PackageBookings {
		if u.PackageBookings[i].ID == id {
			return &u.PackageBookings[i]
		}
	}
	return nil
}

// HasFavorite reports whether reference is already in the favorites set.
func (u *User) HasFavorite(reference string) bool {
	for _, f := range u.Favorites {
		if f == reference {
			return true
		}
	}
	return false
}
