package bookings

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
	ErrSeatRouteMismatch = errors.New("seat does not belong to the requested route")
	ErrInvalidPassenger  = errors.New("passenger full name and document number are required")
	ErrInvalidIdentifier = errors.New("invalid route or seat identifier")
	ErrNotBookingOwner   = errors.New("booking does not belong to user")
)
