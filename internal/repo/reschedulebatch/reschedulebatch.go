// Code generated by ent, DO NOT EDIT.

package reschedulebatch

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the reschedulebatch type in the database.
	Label = "reschedule_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldCenterID holds the string denoting the center_id field in the database.
	FieldCenterID = "center_id"
	// FieldEnrollmentID holds the string denoting the enrollment_id field in the database.
	FieldEnrollmentID = "enrollment_id"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPreviousSessions holds the string denoting the previous_sessions field in the database.
	FieldPreviousSessions = "previous_sessions"
	// FieldConflicts holds the string denoting the conflicts field in the database.
	FieldConflicts = "conflicts"
	// FieldBlockers holds the string denoting the blockers field in the database.
	FieldBlockers = "blockers"
	// FieldSessionsRescheduled holds the string denoting the sessions_rescheduled field in the database.
	FieldSessionsRescheduled = "sessions_rescheduled"
	// FieldOptimizationScore holds the string denoting the optimization_score field in the database.
	FieldOptimizationScore = "optimization_score"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldNewEndDate holds the string denoting the new_end_date field in the database.
	FieldNewEndDate = "new_end_date"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// FieldRolledBackAt holds the string denoting the rolled_back_at field in the database.
	FieldRolledBackAt = "rolled_back_at"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// Table holds the table name of the reschedulebatch in the database.
	Table = "reschedule_batches"
)

// Columns holds all SQL columns for reschedulebatch fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRequestID,
	FieldCenterID,
	FieldEnrollmentID,
	FieldTrigger,
	FieldStatus,
	FieldPreviousSessions,
	FieldConflicts,
	FieldBlockers,
	FieldSessionsRescheduled,
	FieldOptimizationScore,
	FieldExecutionTimeMs,
	FieldNewEndDate,
	FieldAppliedAt,
	FieldRolledBackAt,
	FieldFailureReason,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultSessionsRescheduled holds the default value on creation for the "sessions_rescheduled" field.
	DefaultSessionsRescheduled int
	// DefaultOptimizationScore holds the default value on creation for the "optimization_score" field.
	DefaultOptimizationScore float64
	// DefaultExecutionTimeMs holds the default value on creation for the "execution_time_ms" field.
	DefaultExecutionTimeMs int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Trigger defines the type for the "trigger" enum field.
type Trigger string

// Trigger values.
const (
	TriggerFreeze     Trigger = "freeze"
	TriggerRegenerate Trigger = "regenerate"
	TriggerManual     Trigger = "manual"
)

func (t Trigger) String() string {
	return string(t)
}

// TriggerValidator is a validator for the "trigger" field enum values. It is called by the builders before save.
func TriggerValidator(t Trigger) error {
	switch t {
	case TriggerFreeze, TriggerRegenerate, TriggerManual:
		return nil
	default:
		return fmt.Errorf("reschedulebatch: invalid enum value for trigger field: %q", t)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusApplied    Status = "applied"
	StatusRolledBack Status = "rolled_back"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApplied, StatusRolledBack, StatusFailed:
		return nil
	default:
		return fmt.Errorf("reschedulebatch: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RescheduleBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByCenterID orders the results by the center_id field.
func ByCenterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCenterID, opts...).ToFunc()
}

// ByEnrollmentID orders the results by the enrollment_id field.
func ByEnrollmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrollmentID, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySessionsRescheduled orders the results by the sessions_rescheduled field.
func BySessionsRescheduled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsRescheduled, opts...).ToFunc()
}

// ByOptimizationScore orders the results by the optimization_score field.
func ByOptimizationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimizationScore, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByNewEndDate orders the results by the new_end_date field.
func ByNewEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewEndDate, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}

// ByRolledBackAt orders the results by the rolled_back_at field.
func ByRolledBackAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRolledBackAt, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}
