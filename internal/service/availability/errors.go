package availability

import "errors"

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrRuleNotFound      = errors.New("availability rule not found")
	ErrInvalidDay        = errors.New("day of week must be 0 through 6")
	ErrInvalidTimeRange  = errors.New("rule end must be after start")
	ErrRuleOverlaps      = errors.New("rule overlaps an existing one on the same day")
	ErrInvalidRange      = errors.New("date range end must be after start")
)
