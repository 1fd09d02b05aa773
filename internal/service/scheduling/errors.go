package scheduling

import "errors"

var (
	ErrEnrollmentNotFound    = errors.New("enrollment not found")
	ErrEnrollmentNotActive   = errors.New("enrollment is not active")
	ErrTherapistNotFound     = errors.New("therapist not found")
	ErrTherapistNotAccepting = errors.New("therapist is not accepting sessions")
	ErrNoAvailability        = errors.New("therapist has no availability rules")
	ErrGenerationFailed      = errors.New("schedule generation failed")
	ErrEmptyConflictScope    = errors.New("conflict check needs an enrollment id or session ids")
)
