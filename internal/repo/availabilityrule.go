// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/availabilityrule"
	"github.com/google/uuid"
)

// AvailabilityRule is the model entity for the AvailabilityRule schema.
type AvailabilityRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → therapists.id
	TherapistID uuid.UUID `json:"therapist_id,omitempty"`
	// FK → centers.id
	CenterID uuid.UUID `json:"center_id,omitempty"`
	// 0=Sunday, 1=Monday … 6=Saturday
	DayOfWeek int8 `json:"day_of_week,omitempty"`
	// StartHour holds the value of the "start_hour" field.
	StartHour int8 `json:"start_hour,omitempty"`
	// StartMinute holds the value of the "start_minute" field.
	StartMinute int8 `json:"start_minute,omitempty"`
	// EndHour holds the value of the "end_hour" field.
	EndHour int8 `json:"end_hour,omitempty"`
	// EndMinute holds the value of the "end_minute" field.
	EndMinute int8 `json:"end_minute,omitempty"`
	// Rule takes effect from this date
	ValidFrom time.Time `json:"valid_from,omitempty"`
	// Rule expires after this date; nil = no expiry
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AvailabilityRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case availabilityrule.FieldIsActive:
			values[i] = new(sql.NullBool)
		case availabilityrule.FieldDayOfWeek, availabilityrule.FieldStartHour, availabilityrule.FieldStartMinute, availabilityrule.FieldEndHour, availabilityrule.FieldEndMinute:
			values[i] = new(sql.NullInt64)
		case availabilityrule.FieldCreatedAt, availabilityrule.FieldUpdatedAt, availabilityrule.FieldValidFrom, availabilityrule.FieldValidUntil:
			values[i] = new(sql.NullTime)
		case availabilityrule.FieldID, availabilityrule.FieldTherapistID, availabilityrule.FieldCenterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AvailabilityRule fields.
func (_m *AvailabilityRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case availabilityrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case availabilityrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case availabilityrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case availabilityrule.FieldTherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_id", values[i])
			} else if value != nil {
				_m.TherapistID = *value
			}
		case availabilityrule.FieldCenterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field center_id", values[i])
			} else if value != nil {
				_m.CenterID = *value
			}
		case availabilityrule.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int8(value.Int64)
			}
		case availabilityrule.FieldStartHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_hour", values[i])
			} else if value.Valid {
				_m.StartHour = int8(value.Int64)
			}
		case availabilityrule.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int8(value.Int64)
			}
		case availabilityrule.FieldEndHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_hour", values[i])
			} else if value.Valid {
				_m.EndHour = int8(value.Int64)
			}
		case availabilityrule.FieldEndMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_minute", values[i])
			} else if value.Valid {
				_m.EndMinute = int8(value.Int64)
			}
		case availabilityrule.FieldValidFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_from", values[i])
			} else if value.Valid {
				_m.ValidFrom = value.Time
			}
		case availabilityrule.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = new(time.Time)
				*_m.ValidUntil = value.Time
			}
		case availabilityrule.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AvailabilityRule.
// This includes values selected through modifiers, order, etc.
func (_m *AvailabilityRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AvailabilityRule.
// Note that you need to call AvailabilityRule.Unwrap() before calling this method if this AvailabilityRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AvailabilityRule) Update() *AvailabilityRuleUpdateOne {
	return NewAvailabilityRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AvailabilityRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AvailabilityRule) Unwrap() *AvailabilityRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AvailabilityRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AvailabilityRule) String() string {
	var builder strings.Builder
	builder.WriteString("AvailabilityRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("therapist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TherapistID))
	builder.WriteString(", ")
	builder.WriteString("center_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CenterID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("start_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartHour))
	builder.WriteString(", ")
	builder.WriteString("start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMinute))
	builder.WriteString(", ")
	builder.WriteString("end_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndHour))
	builder.WriteString(", ")
	builder.WriteString("end_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndMinute))
	builder.WriteString(", ")
	builder.WriteString("valid_from=")
	builder.WriteString(_m.ValidFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ValidUntil; v != nil {
		builder.WriteString("valid_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// AvailabilityRules is a parsable slice of AvailabilityRule.
type AvailabilityRules []*AvailabilityRule
