// Code generated by ent, DO NOT EDIT.

package enrollment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the enrollment type in the database.
	Label = "enrollment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCenterID holds the string denoting the center_id field in the database.
	FieldCenterID = "center_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldTherapistID holds the string denoting the therapist_id field in the database.
	FieldTherapistID = "therapist_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldGuardianPhoneEnc holds the string denoting the guardian_phone_enc field in the database.
	FieldGuardianPhoneEnc = "guardian_phone_enc"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldSessionsPerWeek holds the string denoting the sessions_per_week field in the database.
	FieldSessionsPerWeek = "sessions_per_week"
	// FieldSessionDurationMin holds the string denoting the session_duration_min field in the database.
	FieldSessionDurationMin = "session_duration_min"
	// FieldPreferredDays holds the string denoting the preferred_days field in the database.
	FieldPreferredDays = "preferred_days"
	// FieldAvoidDays holds the string denoting the avoid_days field in the database.
	FieldAvoidDays = "avoid_days"
	// FieldPreferredWindows holds the string denoting the preferred_windows field in the database.
	FieldPreferredWindows = "preferred_windows"
	// FieldAvoidWindows holds the string denoting the avoid_windows field in the database.
	FieldAvoidWindows = "avoid_windows"
	// FieldFlexibility holds the string denoting the flexibility field in the database.
	FieldFlexibility = "flexibility"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the enrollment in the database.
	Table = "enrollments"
)

// Columns holds all SQL columns for enrollment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCenterID,
	FieldStudentID,
	FieldTherapistID,
	FieldRoomID,
	FieldGuardianPhoneEnc,
	FieldStartDate,
	FieldEndDate,
	FieldSessionCount,
	FieldSessionsPerWeek,
	FieldSessionDurationMin,
	FieldPreferredDays,
	FieldAvoidDays,
	FieldPreferredWindows,
	FieldAvoidWindows,
	FieldFlexibility,
	FieldStatus,
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
	// SessionCountValidator is a validator for the "session_count" field. It is called by the builders before save.
	SessionCountValidator func(int) error
	// SessionsPerWeekValidator is a validator for the "sessions_per_week" field. It is called by the builders before save.
	SessionsPerWeekValidator func(int) error
	// DefaultSessionDurationMin holds the default value on creation for the "session_duration_min" field.
	DefaultSessionDurationMin int
	// DefaultFlexibility holds the default value on creation for the "flexibility" field.
	DefaultFlexibility float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusFrozen    Status = "frozen"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusFrozen, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("enrollment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Enrollment queries.
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

// ByCenterID orders the results by the center_id field.
func ByCenterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCenterID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByTherapistID orders the results by the therapist_id field.
func ByTherapistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTherapistID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByGuardianPhoneEnc orders the results by the guardian_phone_enc field.
func ByGuardianPhoneEnc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuardianPhoneEnc, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// BySessionsPerWeek orders the results by the sessions_per_week field.
func BySessionsPerWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsPerWeek, opts...).ToFunc()
}

// BySessionDurationMin orders the results by the session_duration_min field.
func BySessionDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDurationMin, opts...).ToFunc()
}

// ByFlexibility orders the results by the flexibility field.
func ByFlexibility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlexibility, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
