package domain

import "errors"

// Sentinel errors for the equipment domain. Use errors.Is() to check these.
var (
	// ErrEquipmentNotFound indicates the requested equipment does not exist.
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrEquipmentCodeTaken indicates another equipment item in the org
	// already uses the requested code.
	ErrEquipmentCodeTaken = errors.New("equipment code already in use")

	// ErrInvalidEquipment indicates the equipment violates domain constraints.
	ErrInvalidEquipment = errors.New("invalid equipment")

	// ErrBookingNotFound indicates the requested booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidBooking indicates the booking violates domain constraints.
	ErrInvalidBooking = errors.New("invalid booking")

	// ErrInvalidDateRange indicates a requested window has an unparseable date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidFilter indicates a malformed filter parameter (e.g. a bad UUID).
	ErrInvalidFilter = errors.New("invalid filter")
)
