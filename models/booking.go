package models

import "time"

// BookingStatus is the lifecycle state shared by all booking variants.
// upcoming -> ongoing -> completed, with cancelled reachable from any
// non-terminal state. completed and cancelled are terminal.
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusOngoing   BookingStatus = "ongoing"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is expected from s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Tour types for destination bookings.
const (
	TourDayTour       = "dayTour"
	TourOvernightStay = "overnightStay"
)

// Transportation options for destination bookings.
const (
	TransportVanRental    = "vanRental"
	TransportBoatTransfer = "boatTransfer"
)

// DestinationBooking is a day-tour or overnight-stay booking embedded in
// the owning user's document. The id is assigned on insertion.
type DestinationBooking struct {
	ID                   string        `json:"id" bson:"id"`
	DestinationReference string        `json:"destinationReference" bson:"destinationReference"`
	TourType             string        `json:"tourType" bson:"tourType"`
	Transportation       []string      `json:"transportation" bson:"transportation"`
	Image                string        `json:"image" bson:"image"`
	DateBooked           time.Time     `json:"dateBooked" bson:"dateBooked"`
	DateStart            time.Time     `json:"dateStart" bson:"dateStart"`
	TotalPrice           float64       `json:"totalPrice" bson:"totalPrice"`
	Status               BookingStatus `json:"status" bson:"status"`
}

// RoomDetails is a snapshot of the booked room, captured at booking time
// and never refreshed.
type RoomDetails struct {
	Name        string   `json:"name,omitempty" bson:"name,omitempty"`
	Price       float64  `json:"price,omitempty" bson:"price,omitempty"`
	Features    []string `json:"features,omitempty" bson:"features,omitempty"`
	Facilities  []string `json:"facilities,omitempty" bson:"facilities,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Guests      []string `json:"guests,omitempty" bson:"guests,omitempty"`
	Area        string   `json:"area,omitempty" bson:"area,omitempty"`
}

// HotelDetails is a snapshot of the booked hotel, captured at booking time.
type HotelDetails struct {
	Name     string  `json:"name,omitempty" bson:"name,omitempty"`
	Location string  `json:"location,omitempty" bson:"location,omitempty"`
	Rating   float64 `json:"rating,omitempty" bson:"rating,omitempty"`
}

// HotelBooking is a hotel-room booking. Its completion trigger is the
// check-out date, not the start of the stay.
type HotelBooking struct {
	ID             string        `json:"id" bson:"id"`
	Name           string        `json:"name" bson:"name"`
	PhoneNumber    string        `json:"phoneNumber" bson:"phoneNumber"`
	Address        string        `json:"address" bson:"address"`
	CheckInDate    time.Time     `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate   time.Time     `json:"checkOutDate" bson:"checkOutDate"`
	NightCount     int           `json:"nightCount" bson:"nightCount"`
	TotalPrice     float64       `json:"totalPrice" bson:"totalPrice"`
	RoomReference  string        `json:"roomReference" bson:"roomReference"`
	HotelReference string        `json:"hotelReference" bson:"hotelReference"`
	Image          string        `json:"image" bson:"image"`
	RoomDetails    *RoomDetails  `json:"roomDetails,omitempty" bson:"roomDetails,omitempty"`
	HotelDetails   *HotelDetails `json:"hotelDetails,omitempty" bson:"hotelDetails,omitempty"`
	DateBooked     time.Time     `json:"dateBooked" bson:"dateBooked"`
	Status         BookingStatus `json:"status" bson:"status"`
}

// PackSize is the allowed group size of a travel package.
type PackSize struct {
	Min int `json:"min,omitempty" bson:"min,omitempty"`
	Max int `json:"max,omitempty" bson:"max,omitempty"`
}

// PackageDetails is a snapshot of the booked package, captured at booking time.
type PackageDetails struct {
	Name         string    `json:"name,omitempty" bson:"name,omitempty"`
	Location     string    `json:"location,omitempty" bson:"location,omitempty"`
	Duration     string    `json:"duration,omitempty" bson:"duration,omitempty"`
	PackSize     *PackSize `json:"packsize,omitempty" bson:"packsize,omitempty"`
	Price        float64   `json:"price,omitempty" bson:"price,omitempty"`
	PricePerHead float64   `json:"pricePerHead,omitempty" bson:"pricePerHead,omitempty"`
	Inclusions   []string  `json:"inclusions,omitempty" bson:"inclusions,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
}

// PackageBooking is a travel-package booking.
type PackageBooking struct {
	ID               string          `json:"id" bson:"id"`
	PackageReference string          `json:"packageReference" bson:"packageReference"`
	Image            string          `json:"image" bson:"image"`
	DateBooked       time.Time       `json:"dateBooked" bson:"dateBooked"`
	DateStart        time.Time       `json:"dateStart" bson:"dateStart"`
	TotalPrice       float64         `json:"totalPrice" bson:"totalPrice"`
	PackageDetails   *PackageDetails `json:"packageDetails,omitempty" bson:"packageDetails,omitempty"`
	Status           BookingStatus   `json:"status" bson:"status"`
}
