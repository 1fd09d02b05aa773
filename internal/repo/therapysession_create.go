// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	"github.com/google/uuid"
)

// TherapySessionCreate is the builder for creating a TherapySession entity.
type TherapySessionCreate struct {
	config
	mutation *TherapySessionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TherapySessionCreate) SetCreatedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableCreatedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TherapySessionCreate) SetUpdatedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableUpdatedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCenterID sets the "center_id" field.
func (_c *TherapySessionCreate) SetCenterID(v uuid.UUID) *TherapySessionCreate {
	_c.mutation.SetCenterID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *TherapySessionCreate) SetEnrollmentID(v uuid.UUID) *TherapySessionCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *TherapySessionCreate) SetTherapistID(v uuid.UUID) *TherapySessionCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *TherapySessionCreate) SetStudentID(v uuid.UUID) *TherapySessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *TherapySessionCreate) SetRoomID(v uuid.UUID) *TherapySessionCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableRoomID(v *uuid.UUID) *TherapySessionCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TherapySessionCreate) SetStartTime(v time.Time) *TherapySessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TherapySessionCreate) SetEndTime(v time.Time) *TherapySessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TherapySessionCreate) SetStatus(v therapysession.Status) *TherapySessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableStatus(v *therapysession.Status) *TherapySessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGeneratedByBatchID sets the "generated_by_batch_id" field.
func (_c *TherapySessionCreate) SetGeneratedByBatchID(v uuid.UUID) *TherapySessionCreate {
	_c.mutation.SetGeneratedByBatchID(v)
	return _c
}

// SetNillableGeneratedByBatchID sets the "generated_by_batch_id" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableGeneratedByBatchID(v *uuid.UUID) *TherapySessionCreate {
	if v != nil {
		_c.SetGeneratedByBatchID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *TherapySessionCreate) SetNotes(v string) *TherapySessionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableNotes(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TherapySessionCreate) SetCompletedAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableCompletedAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *TherapySessionCreate) SetCancelledAt(v time.Time) *TherapySessionCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableCancelledAt(v *time.Time) *TherapySessionCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *TherapySessionCreate) SetCancellationReason(v string) *TherapySessionCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableCancellationReason(v *string) *TherapySessionCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TherapySessionCreate) SetID(v uuid.UUID) *TherapySessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TherapySessionCreate) SetNillableID(v *uuid.UUID) *TherapySessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TherapySessionMutation object of the builder.
func (_c *TherapySessionCreate) Mutation() *TherapySessionMutation {
	return _c.mutation
}

// Save creates the TherapySession in the database.
func (_c *TherapySessionCreate) Save(ctx context.Context) (*TherapySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TherapySessionCreate) SaveX(ctx context.Context) *TherapySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TherapySessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := therapysession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := therapysession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := therapysession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := therapysession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TherapySessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TherapySession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TherapySession.updated_at"`)}
	}
	if _, ok := _c.mutation.CenterID(); !ok {
		return &ValidationError{Name: "center_id", err: errors.New(`repo: missing required field "TherapySession.center_id"`)}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`repo: missing required field "TherapySession.enrollment_id"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "TherapySession.therapist_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`repo: missing required field "TherapySession.student_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "TherapySession.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "TherapySession.end_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TherapySession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := therapysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapySession.status": %w`, err)}
		}
	}
	return nil
}

func (_c *TherapySessionCreate) sqlSave(ctx context.Context) (*TherapySession, error) {
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

func (_c *TherapySessionCreate) createSpec() (*TherapySession, *sqlgraph.CreateSpec) {
	var (
		_node = &TherapySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(therapysession.Table, sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(therapysession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(therapysession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CenterID(); ok {
		_spec.SetField(therapysession.FieldCenterID, field.TypeUUID, value)
		_node.CenterID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(therapysession.FieldEnrollmentID, field.TypeUUID, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(therapysession.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(therapysession.FieldStudentID, field.TypeUUID, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(therapysession.FieldRoomID, field.TypeUUID, value)
		_node.RoomID = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(therapysession.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(therapysession.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(therapysession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GeneratedByBatchID(); ok {
		_spec.SetField(therapysession.FieldGeneratedByBatchID, field.TypeUUID, value)
		_node.GeneratedByBatchID = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(therapysession.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(therapysession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(therapysession.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(therapysession.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	return _node, _spec
}

// TherapySessionCreateBulk is the builder for creating many TherapySession entities in bulk.
type TherapySessionCreateBulk struct {
	config
	err      error
	builders []*TherapySessionCreate
}

// Save creates the TherapySession entities in the database.
func (_c *TherapySessionCreateBulk) Save(ctx context.Context) ([]*TherapySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TherapySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TherapySessionMutation)
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
func (_c *TherapySessionCreateBulk) SaveX(ctx context.Context) []*TherapySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
