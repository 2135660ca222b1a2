package booking

import "errors"

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrServiceNotFound         = errors.New("service not found")
	ErrInvalidInput            = errors.New("invalid event details")
	ErrSlotUnavailable         = errors.New("service is already booked for this slot")
	ErrBookingCompleted        = errors.New("completed bookings cannot be edited")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrForbidden               = errors.New("not allowed")
)
