// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/google/uuid"
)

// RescheduleBatch is the model entity for the RescheduleBatch schema.
type RescheduleBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Client-supplied idempotency key; replays return the recorded outcome
	RequestID uuid.UUID `json:"request_id,omitempty"`
	// FK → centers.id
	CenterID uuid.UUID `json:"center_id,omitempty"`
	// FK → enrollments.id
	EnrollmentID uuid.UUID `json:"enrollment_id,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger reschedulebatch.Trigger `json:"trigger,omitempty"`
	// Status holds the value of the "status" field.
	Status reschedulebatch.Status `json:"status,omitempty"`
	// State of every touched session before the batch was applied
	PreviousSessions []schema.SessionSnapshot `json:"previous_sessions,omitempty"`
	// Conflicts holds the value of the "conflicts" field.
	Conflicts []schema.ConflictRecord `json:"conflicts,omitempty"`
	// Placement shortfalls reported by the generator
	Blockers []schema.BlockerRecord `json:"blockers,omitempty"`
	// SessionsRescheduled holds the value of the "sessions_rescheduled" field.
	SessionsRescheduled int `json:"sessions_rescheduled,omitempty"`
	// OptimizationScore holds the value of the "optimization_score" field.
	OptimizationScore float64 `json:"optimization_score,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs int64 `json:"execution_time_ms,omitempty"`
	// Set when the batch extended the enrollment end date
	NewEndDate *time.Time `json:"new_end_date,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	// RolledBackAt holds the value of the "rolled_back_at" field.
	RolledBackAt *time.Time `json:"rolled_back_at,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RescheduleBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reschedulebatch.FieldPreviousSessions, reschedulebatch.FieldConflicts, reschedulebatch.FieldBlockers:
			values[i] = new([]byte)
		case reschedulebatch.FieldOptimizationScore:
			values[i] = new(sql.NullFloat64)
		case reschedulebatch.FieldSessionsRescheduled, reschedulebatch.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case reschedulebatch.FieldTrigger, reschedulebatch.FieldStatus, reschedulebatch.FieldFailureReason:
			values[i] = new(sql.NullString)
		case reschedulebatch.FieldCreatedAt, reschedulebatch.FieldUpdatedAt, reschedulebatch.FieldNewEndDate, reschedulebatch.FieldAppliedAt, reschedulebatch.FieldRolledBackAt:
			values[i] = new(sql.NullTime)
		case reschedulebatch.FieldID, reschedulebatch.FieldRequestID, reschedulebatch.FieldCenterID, reschedulebatch.FieldEnrollmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RescheduleBatch fields.
func (_m *RescheduleBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reschedulebatch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reschedulebatch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reschedulebatch.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reschedulebatch.FieldRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value != nil {
				_m.RequestID = *value
			}
		case reschedulebatch.FieldCenterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field center_id", values[i])
			} else if value != nil {
				_m.CenterID = *value
			}
		case reschedulebatch.FieldEnrollmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value != nil {
				_m.EnrollmentID = *value
			}
		case reschedulebatch.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = reschedulebatch.Trigger(value.String)
			}
		case reschedulebatch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = reschedulebatch.Status(value.String)
			}
		case reschedulebatch.FieldPreviousSessions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field previous_sessions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreviousSessions); err != nil {
					return fmt.Errorf("unmarshal field previous_sessions: %w", err)
				}
			}
		case reschedulebatch.FieldConflicts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conflicts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conflicts); err != nil {
					return fmt.Errorf("unmarshal field conflicts: %w", err)
				}
			}
		case reschedulebatch.FieldBlockers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blockers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Blockers); err != nil {
					return fmt.Errorf("unmarshal field blockers: %w", err)
				}
			}
		case reschedulebatch.FieldSessionsRescheduled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_rescheduled", values[i])
			} else if value.Valid {
				_m.SessionsRescheduled = int(value.Int64)
			}
		case reschedulebatch.FieldOptimizationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field optimization_score", values[i])
			} else if value.Valid {
				_m.OptimizationScore = value.Float64
			}
		case reschedulebatch.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = value.Int64
			}
		case reschedulebatch.FieldNewEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field new_end_date", values[i])
			} else if value.Valid {
				_m.NewEndDate = new(time.Time)
				*_m.NewEndDate = value.Time
			}
		case reschedulebatch.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = new(time.Time)
				*_m.AppliedAt = value.Time
			}
		case reschedulebatch.FieldRolledBackAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rolled_back_at", values[i])
			} else if value.Valid {
				_m.RolledBackAt = new(time.Time)
				*_m.RolledBackAt = value.Time
			}
		case reschedulebatch.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RescheduleBatch.
// This includes values selected through modifiers, order, etc.
func (_m *RescheduleBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RescheduleBatch.
// Note that you need to call RescheduleBatch.Unwrap() before calling this method if this RescheduleBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RescheduleBatch) Update() *RescheduleBatchUpdateOne {
	return NewRescheduleBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RescheduleBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RescheduleBatch) Unwrap() *RescheduleBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RescheduleBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RescheduleBatch) String() string {
	var builder strings.Builder
	builder.WriteString("RescheduleBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("center_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CenterID))
	builder.WriteString(", ")
	builder.WriteString("enrollment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrollmentID))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("previous_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousSessions))
	builder.WriteString(", ")
	builder.WriteString("conflicts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conflicts))
	builder.WriteString(", ")
	builder.WriteString("blockers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Blockers))
	builder.WriteString(", ")
	builder.WriteString("sessions_rescheduled=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsRescheduled))
	builder.WriteString(", ")
	builder.WriteString("optimization_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptimizationScore))
	builder.WriteString(", ")
	builder.WriteString("execution_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTimeMs))
	builder.WriteString(", ")
	if v := _m.NewEndDate; v != nil {
		builder.WriteString("new_end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AppliedAt; v != nil {
		builder.WriteString("applied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RolledBackAt; v != nil {
		builder.WriteString("rolled_back_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// RescheduleBatches is a parsable slice of RescheduleBatch.
type RescheduleBatches []*RescheduleBatch
