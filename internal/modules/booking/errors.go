package booking

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrDayClosed   = errors.New("day is closed")
	ErrFieldClosed = errors.New("field closed at requested time")
	ErrNoCredits   = errors.New("no credits left")
	ErrMaxPerDay   = errors.New("daily booking limit reached")
	ErrMaxPerWeek  = errors.New("weekly booking limit reached")
	ErrActiveLimit = errors.New("active booking limit reached")
	ErrSlotTaken   = errors.New("slot already taken")
	ErrNotAllowed  = errors.New("not allowed")
)
