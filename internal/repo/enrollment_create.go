// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/google/uuid"
)

// EnrollmentCreate is the builder for creating a Enrollment entity.
type EnrollmentCreate struct {
	config
	mutation *EnrollmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrollmentCreate) SetCreatedAt(v time.Time) *EnrollmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableCreatedAt(v *time.Time) *EnrollmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EnrollmentCreate) SetUpdatedAt(v time.Time) *EnrollmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableUpdatedAt(v *time.Time) *EnrollmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCenterID sets the "center_id" field.
func (_c *EnrollmentCreate) SetCenterID(v uuid.UUID) *EnrollmentCreate {
	_c.mutation.SetCenterID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *EnrollmentCreate) SetStudentID(v uuid.UUID) *EnrollmentCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *EnrollmentCreate) SetTherapistID(v uuid.UUID) *EnrollmentCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *EnrollmentCreate) SetRoomID(v uuid.UUID) *EnrollmentCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableRoomID(v *uuid.UUID) *EnrollmentCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetGuardianPhoneEnc sets the "guardian_phone_enc" field.
func (_c *EnrollmentCreate) SetGuardianPhoneEnc(v string) *EnrollmentCreate {
	_c.mutation.SetGuardianPhoneEnc(v)
	return _c
}

// SetNillableGuardianPhoneEnc sets the "guardian_phone_enc" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableGuardianPhoneEnc(v *string) *EnrollmentCreate {
	if v != nil {
		_c.SetGuardianPhoneEnc(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *EnrollmentCreate) SetStartDate(v time.Time) *EnrollmentCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *EnrollmentCreate) SetEndDate(v time.Time) *EnrollmentCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *EnrollmentCreate) SetSessionCount(v int) *EnrollmentCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetSessionsPerWeek sets the "sessions_per_week" field.
func (_c *EnrollmentCreate) SetSessionsPerWeek(v int) *EnrollmentCreate {
	_c.mutation.SetSessionsPerWeek(v)
	return _c
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (_c *EnrollmentCreate) SetSessionDurationMin(v int) *EnrollmentCreate {
	_c.mutation.SetSessionDurationMin(v)
	return _c
}

// SetNillableSessionDurationMin sets the "session_duration_min" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableSessionDurationMin(v *int) *EnrollmentCreate {
	if v != nil {
		_c.SetSessionDurationMin(*v)
	}
	return _c
}

// SetPreferredDays sets the "preferred_days" field.
func (_c *EnrollmentCreate) SetPreferredDays(v []int) *EnrollmentCreate {
	_c.mutation.SetPreferredDays(v)
	return _c
}

// SetAvoidDays sets the "avoid_days" field.
func (_c *EnrollmentCreate) SetAvoidDays(v []int) *EnrollmentCreate {
	_c.mutation.SetAvoidDays(v)
	return _c
}

// SetPreferredWindows sets the "preferred_windows" field.
func (_c *EnrollmentCreate) SetPreferredWindows(v []schema.TimeWindow) *EnrollmentCreate {
	_c.mutation.SetPreferredWindows(v)
	return _c
}

// SetAvoidWindows sets the "avoid_windows" field.
func (_c *EnrollmentCreate) SetAvoidWindows(v []schema.TimeWindow) *EnrollmentCreate {
	_c.mutation.SetAvoidWindows(v)
	return _c
}

// SetFlexibility sets the "flexibility" field.
func (_c *EnrollmentCreate) SetFlexibility(v float64) *EnrollmentCreate {
	_c.mutation.SetFlexibility(v)
	return _c
}

// SetNillableFlexibility sets the "flexibility" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableFlexibility(v *float64) *EnrollmentCreate {
	if v != nil {
		_c.SetFlexibility(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EnrollmentCreate) SetStatus(v enrollment.Status) *EnrollmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableStatus(v *enrollment.Status) *EnrollmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnrollmentCreate) SetID(v uuid.UUID) *EnrollmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableID(v *uuid.UUID) *EnrollmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_c *EnrollmentCreate) Mutation() *EnrollmentMutation {
	return _c.mutation
}

// Save creates the Enrollment in the database.
func (_c *EnrollmentCreate) Save(ctx context.Context) (*Enrollment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrollmentCreate) SaveX(ctx context.Context) *Enrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrollmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrollment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := enrollment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SessionDurationMin(); !ok {
		v := enrollment.DefaultSessionDurationMin
		_c.mutation.SetSessionDurationMin(v)
	}
	if _, ok := _c.mutation.Flexibility(); !ok {
		v := enrollment.DefaultFlexibility
		_c.mutation.SetFlexibility(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := enrollment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := enrollment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrollmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Enrollment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Enrollment.updated_at"`)}
	}
	if _, ok := _c.mutation.CenterID(); !ok {
		return &ValidationError{Name: "center_id", err: errors.New(`repo: missing required field "Enrollment.center_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`repo: missing required field "Enrollment.student_id"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "Enrollment.therapist_id"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`repo: missing required field "Enrollment.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`repo: missing required field "Enrollment.end_date"`)}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`repo: missing required field "Enrollment.session_count"`)}
	}
	if v, ok := _c.mutation.SessionCount(); ok {
		if err := enrollment.SessionCountValidator(v); err != nil {
			return &ValidationError{Name: "session_count", err: fmt.Errorf(`repo: validator failed for field "Enrollment.session_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionsPerWeek(); !ok {
		return &ValidationError{Name: "sessions_per_week", err: errors.New(`repo: missing required field "Enrollment.sessions_per_week"`)}
	}
	if v, ok := _c.mutation.SessionsPerWeek(); ok {
		if err := enrollment.SessionsPerWeekValidator(v); err != nil {
			return &ValidationError{Name: "sessions_per_week", err: fmt.Errorf(`repo: validator failed for field "Enrollment.sessions_per_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionDurationMin(); !ok {
		return &ValidationError{Name: "session_duration_min", err: errors.New(`repo: missing required field "Enrollment.session_duration_min"`)}
	}
	if _, ok := _c.mutation.Flexibility(); !ok {
		return &ValidationError{Name: "flexibility", err: errors.New(`repo: missing required field "Enrollment.flexibility"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Enrollment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := enrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Enrollment.status": %w`, err)}
		}
	}
	return nil
}

func (_c *EnrollmentCreate) sqlSave(ctx context.Context) (*Enrollment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnrollmentCreate) createSpec() (*Enrollment, *sqlgraph.CreateSpec) {
	var (
		_node = &Enrollment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrollment.Table, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrollment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CenterID(); ok {
		_spec.SetField(enrollment.FieldCenterID, field.TypeUUID, value)
		_node.CenterID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(enrollment.FieldStudentID, field.TypeUUID, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(enrollment.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(enrollment.FieldRoomID, field.TypeUUID, value)
		_node.RoomID = &value
	}
	if value, ok := _c.mutation.GuardianPhoneEnc(); ok {
		_spec.SetField(enrollment.FieldGuardianPhoneEnc, field.TypeString, value)
		_node.GuardianPhoneEnc = &value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(enrollment.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(enrollment.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(enrollment.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.SessionsPerWeek(); ok {
		_spec.SetField(enrollment.FieldSessionsPerWeek, field.TypeInt, value)
		_node.SessionsPerWeek = value
	}
	if value, ok := _c.mutation.SessionDurationMin(); ok {
		_spec.SetField(enrollment.FieldSessionDurationMin, field.TypeInt, value)
		_node.SessionDurationMin = value
	}
	if value, ok := _c.mutation.PreferredDays(); ok {
		_spec.SetField(enrollment.FieldPreferredDays, field.TypeJSON, value)
		_node.PreferredDays = value
	}
	if value, ok := _c.mutation.AvoidDays(); ok {
		_spec.SetField(enrollment.FieldAvoidDays, field.TypeJSON, value)
		_node.AvoidDays = value
	}
	if value, ok := _c.mutation.PreferredWindows(); ok {
		_spec.SetField(enrollment.FieldPreferredWindows, field.TypeJSON, value)
		_node.PreferredWindows = value
	}
	if value, ok := _c.mutation.AvoidWindows(); ok {
		_spec.SetField(enrollment.FieldAvoidWindows, field.TypeJSON, value)
		_node.AvoidWindows = value
	}
	if value, ok := _c.mutation.Flexibility(); ok {
		_spec.SetField(enrollment.FieldFlexibility, field.TypeFloat64, value)
		_node.Flexibility = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// EnrollmentCreateBulk is the builder for creating many Enrollment entities in bulk.
type EnrollmentCreateBulk struct {
	config
	err      error
	builders []*EnrollmentCreate
}

// Save creates the Enrollment entities in the database.
func (_c *EnrollmentCreateBulk) Save(ctx context.Context) ([]*Enrollment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Enrollment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrollmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EnrollmentCreateBulk) SaveX(ctx context.Context) []*Enrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
