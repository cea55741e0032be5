package models

import "time"

// Destination is a catalog entry referenced by destination bookings and
// by the favorites set.
type Destination struct {
	Reference       string    `json:"reference" bson:"reference"`
	Name            string    `json:"name" bson:"name"`
	ActivityType    string    `json:"activityType" bson:"activityType"`
	Rating          float64   `json:"rating" bson:"rating"`
	Images          []string  `json:"images" bson:"images"`
	Description     string    `json:"description" bson:"description"`
	Budget          float64   `json:"budget" bson:"budget"`
	Location        string    `json:"location" bson:"location"`
	BestTimeToVisit string    `json:"bestTimeToVisit,omitempty" bson:"bestTimeToVisit,omitempty"`
	Tips            []string  `json:"tips,omitempty" bson:"tips,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Room is a bookable room type inside a hotel.
type Room struct {
	RoomReference string   `json:"roomReference" bson:"roomReference"`
	Name          string   `json:"name" bson:"name"`
	Image         string   `json:"image" bson:"image"`
	Features      []string `json:"features,omitempty" bson:"features,omitempty"`
	Facilities    []string `json:"facilities,omitempty" bson:"facilities,omitempty"`
	Description   string   `json:"description" bson:"description"`
	Price         float64  `json:"price" bson:"price"`
	Guests        []string `json:"guests,omitempty" bson:"guests,omitempty"`
	Area          string   `json:"area" bson:"area"`
}

// Hotel is a catalog entry referenced by hotel bookings.
type Hotel struct {
	Reference string    `json:"reference" bson:"reference"`
	Name      string    `json:"name" bson:"name"`
	Location  string    `json:"location" bson:"location"`
	Images    []string  `json:"images" bson:"images"`
	Duration  string    `json:"duration,omitempty" bson:"duration,omitempty"`
	Rooms     []Room    `json:"rooms" bson:"rooms"`
	Rating    float64   `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// TravelPackage is a catalog entry referenced by package bookings.
type TravelPackage struct {
	Reference    string    `json:"reference" bson:"reference"`
	Name         string    `json:"name" bson:"name"`
	Location     string    `json:"location" bson:"location"`
	Inclusions   []string  `json:"inclusions" bson:"inclusions"`
	PricePerHead float64   `json:"pricePerHead" bson:"pricePerHead"`
	Duration     string    `json:"duration" bson:"duration"`
	Description  string    `json:"description" bson:"description"`
	Price        float64   `json:"price" bson:"price"`
	Images       []string  `json:"images" bson:"images"`
	PackSize     PackSize  `json:"packsize" bson:"packsize"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
