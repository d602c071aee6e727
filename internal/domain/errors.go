package domain

import "errors"

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrSpaceNotFound   = errors.New("space not found")
	ErrSlotNotFound    = errors.New("time slot not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrSlotOverlap       = errors.New("time slot overlaps an existing slot")
	ErrSlotTaken         = errors.New("slot is already booked")
	ErrSlotOccupied      = errors.New("slot has an active booking")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrNoOperatingHours  = errors.New("venue has no operating hours configured")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient privileges")
)
