// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/google/uuid"
)

// Enrollment is the model entity for the Enrollment schema.
type Enrollment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → centers.id
	CenterID uuid.UUID `json:"center_id,omitempty"`
	// External student reference; the student record lives in the admin platform
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// FK → therapists.id
	TherapistID uuid.UUID `json:"therapist_id,omitempty"`
	// Preferred room; nil = any
	RoomID *uuid.UUID `json:"room_id,omitempty"`
	// AES-256-GCM encrypted guardian phone for SMS notifications
	GuardianPhoneEnc *string `json:"guardian_phone_enc,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate time.Time `json:"end_date,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// SessionsPerWeek holds the value of the "sessions_per_week" field.
	SessionsPerWeek int `json:"sessions_per_week,omitempty"`
	// SessionDurationMin holds the value of the "session_duration_min" field.
	SessionDurationMin int `json:"session_duration_min,omitempty"`
	// Weekdays 0-6 the student prefers
	PreferredDays []int `json:"preferred_days,omitempty"`
	// AvoidDays holds the value of the "avoid_days" field.
	AvoidDays []int `json:"avoid_days,omitempty"`
	// Minute-of-day windows the student prefers
	PreferredWindows []schema.TimeWindow `json:"preferred_windows,omitempty"`
	// AvoidWindows holds the value of the "avoid_windows" field.
	AvoidWindows []schema.TimeWindow `json:"avoid_windows,omitempty"`
	// 0 = rigid, 1 = fully flexible; drives how far the generator may deviate from preferences
	Flexibility float64 `json:"flexibility,omitempty"`
	// Status holds the value of the "status" field.
	Status       enrollment.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Enrollment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case enrollment.FieldRoomID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case enrollment.FieldPreferredDays, enrollment.FieldAvoidDays, enrollment.FieldPreferredWindows, enrollment.FieldAvoidWindows:
			values[i] = new([]byte)
		case enrollment.FieldFlexibility:
			values[i] = new(sql.NullFloat64)
		case enrollment.FieldSessionCount, enrollment.FieldSessionsPerWeek, enrollment.FieldSessionDurationMin:
			values[i] = new(sql.NullInt64)
		case enrollment.FieldGuardianPhoneEnc, enrollment.FieldStatus:
			values[i] = new(sql.NullString)
		case enrollment.FieldCreatedAt, enrollment.FieldUpdatedAt, enrollment.FieldStartDate, enrollment.FieldEndDate:
			values[i] = new(sql.NullTime)
		case enrollment.FieldID, enrollment.FieldCenterID, enrollment.FieldStudentID, enrollment.FieldTherapistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Enrollment fields.
func (_m *Enrollment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case enrollment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case enrollment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case enrollment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case enrollment.FieldCenterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field center_id", values[i])
			} else if value != nil {
				_m.CenterID = *value
			}
		case enrollment.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				_m.StudentID = *value
			}
		case enrollment.FieldTherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_id", values[i])
			} else if value != nil {
				_m.TherapistID = *value
			}
		case enrollment.FieldRoomID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = new(uuid.UUID)
				*_m.RoomID = *value.S.(*uuid.UUID)
			}
		case enrollment.FieldGuardianPhoneEnc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guardian_phone_enc", values[i])
			} else if value.Valid {
				_m.GuardianPhoneEnc = new(string)
				*_m.GuardianPhoneEnc = value.String
			}
		case enrollment.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case enrollment.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.Time
			}
		case enrollment.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case enrollment.FieldSessionsPerWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_per_week", values[i])
			} else if value.Valid {
				_m.SessionsPerWeek = int(value.Int64)
			}
		case enrollment.FieldSessionDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_duration_min", values[i])
			} else if value.Valid {
				_m.SessionDurationMin = int(value.Int64)
			}
		case enrollment.FieldPreferredDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredDays); err != nil {
					return fmt.Errorf("unmarshal field preferred_days: %w", err)
				}
			}
		case enrollment.FieldAvoidDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field avoid_days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AvoidDays); err != nil {
					return fmt.Errorf("unmarshal field avoid_days: %w", err)
				}
			}
		case enrollment.FieldPreferredWindows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_windows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredWindows); err != nil {
					return fmt.Errorf("unmarshal field preferred_windows: %w", err)
				}
			}
		case enrollment.FieldAvoidWindows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field avoid_windows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AvoidWindows); err != nil {
					return fmt.Errorf("unmarshal field avoid_windows: %w", err)
				}
			}
		case enrollment.FieldFlexibility:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field flexibility", values[i])
			} else if value.Valid {
				_m.Flexibility = value.Float64
			}
		case enrollment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = enrollment.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Enrollment.
// This includes values selected through modifiers, order, etc.
func (_m *Enrollment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Enrollment.
// Note that you need to call Enrollment.Unwrap() before calling this method if this Enrollment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Enrollment) Update() *EnrollmentUpdateOne {
	return NewEnrollmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Enrollment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Enrollment) Unwrap() *Enrollment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Enrollment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Enrollment) String() string {
	var builder strings.Builder
	builder.WriteString("Enrollment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("center_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CenterID))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("therapist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TherapistID))
	builder.WriteString(", ")
	if v := _m.RoomID; v != nil {
		builder.WriteString("room_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GuardianPhoneEnc; v != nil {
		builder.WriteString("guardian_phone_enc=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("sessions_per_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsPerWeek))
	builder.WriteString(", ")
	builder.WriteString("session_duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionDurationMin))
	builder.WriteString(", ")
	builder.WriteString("preferred_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredDays))
	builder.WriteString(", ")
	builder.WriteString("avoid_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvoidDays))
	builder.WriteString(", ")
	builder.WriteString("preferred_windows=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredWindows))
	builder.WriteString(", ")
	builder.WriteString("avoid_windows=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvoidWindows))
	builder.WriteString(", ")
	builder.WriteString("flexibility=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flexibility))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Enrollments is a parsable slice of Enrollment.
type Enrollments []*Enrollment
