// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	"github.com/google/uuid"
)

// FreezeWindow is the model entity for the FreezeWindow schema.
type FreezeWindow struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → centers.id
	CenterID uuid.UUID `json:"center_id,omitempty"`
	// FK → enrollments.id
	EnrollmentID uuid.UUID `json:"enrollment_id,omitempty"`
	// StartsOn holds the value of the "starts_on" field.
	StartsOn time.Time `json:"starts_on,omitempty"`
	// EndsOn holds the value of the "ends_on" field.
	EndsOn time.Time `json:"ends_on,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// Status holds the value of the "status" field.
	Status freezewindow.Status `json:"status,omitempty"`
	// Non-FK ref to the reschedule_batch that applied this freeze
	BatchID      *uuid.UUID `json:"batch_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FreezeWindow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case freezewindow.FieldBatchID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case freezewindow.FieldReason, freezewindow.FieldStatus:
			values[i] = new(sql.NullString)
		case freezewindow.FieldCreatedAt, freezewindow.FieldUpdatedAt, freezewindow.FieldStartsOn, freezewindow.FieldEndsOn:
			values[i] = new(sql.NullTime)
		case freezewindow.FieldID, freezewindow.FieldCenterID, freezewindow.FieldEnrollmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FreezeWindow fields.
func (_m *FreezeWindow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case freezewindow.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case freezewindow.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case freezewindow.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case freezewindow.FieldCenterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field center_id", values[i])
			} else if value != nil {
				_m.CenterID = *value
			}
		case freezewindow.FieldEnrollmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value != nil {
				_m.EnrollmentID = *value
			}
		case freezewindow.FieldStartsOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_on", values[i])
			} else if value.Valid {
				_m.StartsOn = value.Time
			}
		case freezewindow.FieldEndsOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_on", values[i])
			} else if value.Valid {
				_m.EndsOn = value.Time
			}
		case freezewindow.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case freezewindow.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = freezewindow.Status(value.String)
			}
		case freezewindow.FieldBatchID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = new(uuid.UUID)
				*_m.BatchID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FreezeWindow.
// This includes values selected through modifiers, order, etc.
func (_m *FreezeWindow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FreezeWindow.
// Note that you need to call FreezeWindow.Unwrap() before calling this method if this FreezeWindow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FreezeWindow) Update() *FreezeWindowUpdateOne {
	return NewFreezeWindowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FreezeWindow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FreezeWindow) Unwrap() *FreezeWindow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: FreezeWindow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FreezeWindow) String() string {
	var builder strings.Builder
	builder.WriteString("FreezeWindow(")
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
	builder.WriteString("enrollment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrollmentID))
	builder.WriteString(", ")
	builder.WriteString("starts_on=")
	builder.WriteString(_m.StartsOn.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ends_on=")
	builder.WriteString(_m.EndsOn.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.BatchID; v != nil {
		builder.WriteString("batch_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// FreezeWindows is a parsable slice of FreezeWindow.
type FreezeWindows []*FreezeWindow
