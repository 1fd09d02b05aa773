package rescheduling

import "errors"

var (
	ErrFreezeNotFound       = errors.New("freeze window not found")
	ErrFreezeAlreadyApplied = errors.New("freeze window already applied")
	ErrInvalidFreezeRange   = errors.New("freeze window end precedes start")
	ErrNoSessionsInWindow   = errors.New("no scheduled sessions fall inside the freeze window")
	ErrRequestInFlight      = errors.New("an identical request is already being processed")
	ErrBatchNotFound        = errors.New("reschedule batch not found")
	ErrBatchNotApplied      = errors.New("batch is not in applied state")
	ErrAlreadyRolledBack    = errors.New("batch was already rolled back")
)
