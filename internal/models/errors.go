package models

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrTicketNotFound       = errors.New("invalid ticket")
	ErrForbidden            = errors.New("you can only manage your own bookings")
	ErrInvalidTicketCount   = errors.New("ticket count must be greater than zero")
	ErrInvalidRole          = errors.New("invalid role")
	ErrTicketsAlreadyIssued = errors.New("qr codes already generated for this booking")
	ErrEventHasBookings     = errors.New("event has bookings and cannot be deleted")
	ErrConflict             = errors.New("concurrent update conflict, please retry")
)
