package service

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrAlreadyCancelled      = errors.New("booking already cancelled")
	ErrBookingCancelled      = errors.New("booking is cancelled")
	ErrPaymentNotFound       = errors.New("no payment found for booking")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
