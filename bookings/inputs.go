package bookings

import (
	"fmt"
	"time"

	"voyago/models"
	"voyago/utils"
)

// DestinationBookingInput is the payload for booking a day tour or
// overnight stay.
type DestinationBookingInput struct {
	DestinationReference string    `json:"destinationReference"`
	TourType             string    `json:"tourType"`
	Transportation       []string  `json:"transportation"`
	Image                string    `json:"image"`
	DateStart            time.Time `json:"dateStart"`
	TotalPrice           float64   `json:"totalPrice"`
}

func (in *DestinationBookingInput) Validate() error {
	if in.DestinationReference == "" {
		return fmt.Errorf("%w: missing required field destinationReference", ErrValidation)
	}
	if in.TourType != models.TourDayTour && in.TourType != models.TourOvernightStay {
		return fmt.Errorf("%w: invalid tourType %q", ErrValidation, in.TourType)
	}
	for _, t := range in.Transportation {
		if t != models.TransportVanRental && t != models.TransportBoatTransfer {
			return fmt.Errorf("%w: invalid transportation %q", ErrValidation, t)
		}
	}
	if in.Image == "" {
		return fmt.Errorf("%w: missing required field image", ErrValidation)
	}
	if in.DateStart.IsZero() {
		return fmt.Errorf("%w: missing required field dateStart", ErrValidation)
	}
	if in.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice cannot be negative", ErrValidation)
	}
	return nil
}

// DateRange mirrors the { startDate, endDate } object hotel-booking
// clients send for the stay.
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// HotelBookingInput is the payload for booking a hotel room.
type HotelBookingInput struct {
	Name           string               `json:"name"`
	PhoneNumber    string               `json:"phoneNumber"`
	Address        string               `json:"address"`
	DateRange      DateRange            `json:"dateRange"`
	NightCount     int                  `json:"nightCount"`
	TotalPrice     float64              `json:"totalPrice"`
	RoomReference  string               `json:"roomReference"`
	HotelReference string               `json:"hotelReference"`
	Image          string               `json:"image"`
	RoomDetails    *models.RoomDetails  `json:"roomDetails,omitempty"`
	HotelDetails   *models.HotelDetails `json:"hotelDetails,omitempty"`
}

func (in *HotelBookingInput) Validate() error {
	required := map[string]string{
		"name":           in.Name,
		"phoneNumber":    in.PhoneNumber,
		"address":        in.Address,
		"roomReference":  in.RoomReference,
		"hotelReference": in.HotelReference,
		"image":          in.Image,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: missing required field %s", ErrValidation, field)
		}
	}
	if in.DateRange.StartDate.IsZero() || in.DateRange.EndDate.IsZero() {
		return fmt.Errorf("%w: both startDate and endDate are required in dateRange", ErrValidation)
	}
	if !in.DateRange.EndDate.After(in.DateRange.StartDate) {
		return fmt.Errorf("%w: endDate must be after startDate", ErrValidation)
	}
	if in.NightCount < 1 {
		return fmt.Errorf("%w: nightCount must be at least 1", ErrValidation)
	}
	if in.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice cannot be negative", ErrValidation)
	}
	return nil
}

// PackageBookingInput is the payload for booking a travel package.
type PackageBookingInput struct {
	PackageReference string                 `json:"packageReference"`
	Image            string                 `json:"image"`
	DateStart        time.Time              `json:"dateStart"`
	TotalPrice       float64                `json:"totalPrice"`
	PackageDetails   *models.PackageDetails `json:"packageDetails,omitempty"`
}

func (in *PackageBookingInput) Validate() error {
	if in.PackageReference == "" {
		return fmt.Errorf("%w: missing required field packageReference", ErrValidation)
	}
	if in.Image == "" {
		return fmt.Errorf("%w: missing required field image", ErrValidation)
	}
	if in.DateStart.IsZero() {
		return fmt.Errorf("%w: missing required field dateStart", ErrValidation)
	}
	if in.TotalPrice <= 0 {
		return fmt.Errorf("%w: totalPrice must be greater than zero", ErrValidation)
	}
	if in.PackageDetails != nil && in.PackageDetails.PackSize != nil {
		ps := in.PackageDetails.PackSize
		if ps.Max != 0 && ps.Max < ps.Min {
			return fmt.Errorf("%w: packsize max cannot be less than min", ErrValidation)
		}
	}
	return nil
}

// sanitizeTransportation normalizes a nil slice to an empty one so the
// stored document always carries an array.
func sanitizeTransportation(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, 0, len(in))
	for _, t := range in {
		if !utils.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
