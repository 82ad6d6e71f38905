package services

import "errors"

// Error domain yang dikembalikan ke controller.
// Semua penolakan business-rule, bukan transient fault.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTableNotFound      = errors.New("restaurant table not found")
	ErrInvalidTable       = errors.New("table is booked or inactive")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidBookingDate = errors.New("booking date must be within one month from now")
	ErrNoBookings         = errors.New("user has no bookings")
	ErrAlreadyCanceled    = errors.New("booking already canceled")
)
