package bookings

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyFavorite = errors.New("destination already in favorites")
	ErrValidation      = errors.New("validation error")
)
