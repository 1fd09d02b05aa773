package session

import "errors"

var (
	ErrNotFound       = errors.New("session not found")
	ErrNotScheduled   = errors.New("session is not in scheduled state")
	ErrAlreadyDone    = errors.New("session is already completed")
	ErrInvalidRange   = errors.New("range end must be after start")
	ErrReasonRequired = errors.New("cancellation reason is required")
)
