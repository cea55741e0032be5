package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyago/models"
	"voyago/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter selects which booking lifecycle bucket a listing returns.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterOngoing Filter = "ongoing" // upcoming + ongoing
	FilterPast    Filter = "past"    // completed + cancelled
)

func (f Filter) matches(s models.BookingStatus) bool {
	switch f {
	case FilterOngoing:
		return s == models.StatusUpcoming || s == models.StatusOngoing
	case FilterPast:
		return s == models.StatusCompleted || s == models.StatusCancelled
	default:
		return true
	}
}

// Variant names one of the three booking families.
type Variant string

const (
	VariantDestination Variant = "destination"
	VariantHotel       Variant = "hotel"
	VariantPackage     Variant = "package"
)

// BookingRef points at one booking inside a loaded user document.
// Exactly one of the three pointers is set, matching Variant.
type BookingRef struct {
	Variant     Variant
	Destination *models.DestinationBooking
	Hotel       *models.HotelBooking
	Package     *models.PackageBooking
}

// ID returns the id of the referenced booking.
func (r BookingRef) ID() string {
	switch r.Variant {
	case VariantHotel:
		return r.Hotel.ID
	case VariantPackage:
		return r.Package.ID
	default:
		return r.Destination.ID
	}
}

// Status returns the current status of the referenced booking.
func (r BookingRef) Status() models.BookingStatus {
	switch r.Variant {
	case VariantHotel:
		return r.Hotel.Status
	case VariantPackage:
		return r.Package.Status
	default:
		return r.Destination.Status
	}
}

// SetStatus overwrites the status of the referenced booking in place.
func (r BookingRef) SetStatus(s models.BookingStatus) {
	switch r.Variant {
	case VariantHotel:
		r.Hotel.Status = s
	case VariantPackage:
		r.Package.Status = s
	default:
		r.Destination.Status = s
	}
}

// Value returns the underlying booking struct for JSON responses.
func (r BookingRef) Value() any {
	switch r.Variant {
	case VariantHotel:
		return r.Hotel
	case VariantPackage:
		return r.Package
	default:
		return r.Destination
	}
}

// Service implements the booking mutation operations and the favorites
// set over a user's embedded document. Every persistence is a
// whole-document read-modify-write; there is no cross-operation locking,
// so a concurrent sweep write to the same user is last-write-wins.
type Service struct {
	users   store.UserStore
	catalog store.CatalogStore
	now     func() time.Time
}

func NewService(users store.UserStore, catalog store.CatalogStore) *Service {
	return &Service{users: users, catalog: catalog, now: time.Now}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) loadUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// CreateBooking appends a destination booking to the user's document.
// Status is always upcoming and dateBooked is the creation time,
// regardless of input.
func (s *Service) CreateBooking(ctx context.Context, userID string, in DestinationBookingInput) (*models.DestinationBooking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	booking := models.DestinationBooking{
		ID:                   primitive.NewObjectID().Hex(),
		DestinationReference: in.DestinationReference,
		TourType:             in.TourType,
		Transportation:       sanitizeTransportation(in.Transportation),
		Image:                in.Image,
		DateBooked:           s.now(),
		DateStart:            in.DateStart,
		TotalPrice:           in.TotalPrice,
		Status:               models.StatusUpcoming,
	}
	user.Bookings = append(user.Bookings, booking)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &user.Bookings[len(user.Bookings)-1], nil
}

// CreateHotelBooking appends a hotel booking to the user's document.
func (s *Service) CreateHotelBooking(ctx context.Context, userID string, in HotelBookingInput) (*models.HotelBooking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	booking := models.HotelBooking{
		ID:             primitive.NewObjectID().Hex(),
		Name:           in.Name,
		PhoneNumber:    in.PhoneNumber,
		Address:        in.Address,
		CheckInDate:    in.DateRange.StartDate,
		CheckOutDate:   in.DateRange.EndDate,
		NightCount:     in.NightCount,
		TotalPrice:     in.TotalPrice,
		RoomReference:  in.RoomReference,
		HotelReference: in.HotelReference,
		Image:          in.Image,
		RoomDetails:    in.RoomDetails,
		HotelDetails:   in.HotelDetails,
		DateBooked:     s.now(),
		Status:         models.StatusUpcoming,
	}
	user.HotelBookings = append(user.HotelBookings, booking)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create hotel booking: %w", err)
	}
	return &user.HotelBookings[len(user.HotelBookings)-1], nil
}

// CreatePackageBooking appends a package booking to the user's document.
func (s *Service) CreatePackageBooking(ctx context.Context, userID string, in PackageBookingInput) (*models.PackageBooking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	booking := models.PackageBooking{
		ID:               primitive.NewObjectID().Hex(),
		PackageReference: in.PackageReference,
		Image:            in.Image,
		DateBooked:       s.now(),
		DateStart:        in.DateStart,
		TotalPrice:       in.TotalPrice,
		PackageDetails:   in.PackageDetails,
		Status:           models.StatusUpcoming,
	}
	user.PackageBookings = append(user.PackageBookings, booking)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create package booking: %w", err)
	}
	return &user.PackageBookings[len(user.PackageBookings)-1], nil
}

// DestinationBookings lists the user's destination bookings matching f.
func (s *Service) DestinationBookings(ctx context.Context, userID string, f Filter) ([]models.DestinationBooking, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []models.DestinationBooking{}
	for _, b := range user.Bookings {
		if f.matches(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

// HotelBookings lists the user's hotel bookings matching f.
func (s *Service) HotelBookings(ctx context.Context, userID string, f Filter) ([]models.HotelBooking, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []models.HotelBooking{}
	for _, b := range user.HotelBookings {
		if f.matches(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

// PackageBookings lists the user's package bookings matching f.
func (s *Service) PackageBookings(ctx context.Context, userID string, f Filter) ([]models.PackageBooking, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []models.PackageBooking{}
	for _, b := range user.PackageBookings {
		if f.matches(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func findBooking(user *models.User, bookingID string) (BookingRef, bool) {
	if b := user.DestinationBooking(bookingID); b != nil {
		return BookingRef{Variant: VariantDestination, Destination: b}, true
	}
	if b := user.HotelBooking(bookingID); b != nil {
		return BookingRef{Variant: VariantHotel, Hotel: b}, true
	}
	if b := user.PackageBooking(bookingID); b != nil {
		return BookingRef{Variant: VariantPackage, Package: b}, true
	}
	return BookingRef{}, false
}

// GetBookingByID resolves a booking of any variant within the user's
// document.
func (s *Service) GetBookingByID(ctx context.Context, userID, bookingID string) (BookingRef, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return BookingRef{}, err
	}

	ref, ok := findBooking(user, bookingID)
	if !ok {
		return BookingRef{}, ErrBookingNotFound
	}
	return ref, nil
}

// UpdateBookingStatus sets the status of one booking and persists the
// whole user document. The status must be a known value, but no
// transition-legality check is made beyond that: callers are trusted,
// matching the open contract of the existing API.
func (s *Service) UpdateBookingStatus(ctx context.Context, userID, bookingID string, status models.BookingStatus) (BookingRef, error) {
	if !status.Valid() {
		return BookingRef{}, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return BookingRef{}, err
	}

	ref, ok := findBooking(user, bookingID)
	if !ok {
		return BookingRef{}, ErrBookingNotFound
	}

	ref.SetStatus(status)
	if err := s.users.Save(ctx, user); err != nil {
		return BookingRef{}, fmt.Errorf("failed to update booking: %w", err)
	}
	return ref, nil
}

// CancelBooking marks a booking cancelled. Cancellation is the only
// user-initiated terminal transition; the booking is never deleted.
func (s *Service) CancelBooking(ctx context.Context, userID, bookingID string) (BookingRef, error) {
	return s.UpdateBookingStatus(ctx, userID, bookingID, models.StatusCancelled)
}

// AddToFavorites adds a destination reference to the user's favorites.
// A duplicate add is rejected, not silently ignored.
func (s *Service) AddToFavorites(ctx context.Context, userID, reference string) ([]string, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: missing destination reference", ErrValidation)
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasFavorite(reference) {
		return nil, ErrAlreadyFavorite
	}

	user.Favorites = append(user.Favorites, reference)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to add to favorites: %w", err)
	}
	return user.Favorites, nil
}

// RemoveFromFavorites removes a reference by exact match. Removing an
// absent reference succeeds and leaves the set unchanged.
func (s *Service) RemoveFromFavorites(ctx context.Context, userID, reference string) ([]string, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(user.Favorites))
	for _, f := range user.Favorites {
		if f != reference {
			kept = append(kept, f)
		}
	}
	user.Favorites = kept

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to remove from favorites: %w", err)
	}
	return user.Favorites, nil
}

// GetFavorites resolves the favorites set against the destination
// catalog. References that no longer resolve are dropped silently.
func (s *Service) GetFavorites(ctx context.Context, userID string) ([]models.Destination, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.Favorites) == 0 {
		return []models.Destination{}, nil
	}

	destinations, err := s.catalog.DestinationsByReferences(ctx, user.Favorites)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	if destinations == nil {
		destinations = []models.Destination{}
	}
	return destinations, nil
}
