package enrollment

import "errors"

var (
	ErrNotFound             = errors.New("enrollment not found")
	ErrTherapistNotFound    = errors.New("therapist not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrNotActive            = errors.New("enrollment is not active")
	ErrInvalidDateRange     = errors.New("end date precedes start date")
	ErrInvalidFlexibility   = errors.New("flexibility must be between 0 and 1")
	ErrInvalidWindow        = errors.New("time window end must be after start")
	ErrInvalidPhone         = errors.New("guardian phone is not a valid number")
	ErrFreezeNotFound       = errors.New("freeze window not found")
	ErrFreezeNotPending     = errors.New("freeze window is not pending")
	ErrFreezeOutsideTerm    = errors.New("freeze window falls outside the enrollment term")
	ErrFreezeOverlapsActive = errors.New("freeze window overlaps a pending or applied one")
)
