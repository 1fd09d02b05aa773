// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/google/uuid"
)

// RescheduleBatchCreate is the builder for creating a RescheduleBatch entity.
type RescheduleBatchCreate struct {
	config
	mutation *RescheduleBatchMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RescheduleBatchCreate) SetCreatedAt(v time.Time) *RescheduleBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableCreatedAt(v *time.Time) *RescheduleBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RescheduleBatchCreate) SetUpdatedAt(v time.Time) *RescheduleBatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableUpdatedAt(v *time.Time) *RescheduleBatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *RescheduleBatchCreate) SetRequestID(v uuid.UUID) *RescheduleBatchCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetCenterID sets the "center_id" field.
func (_c *RescheduleBatchCreate) SetCenterID(v uuid.UUID) *RescheduleBatchCreate {
	_c.mutation.SetCenterID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *RescheduleBatchCreate) SetEnrollmentID(v uuid.UUID) *RescheduleBatchCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *RescheduleBatchCreate) SetTrigger(v reschedulebatch.Trigger) *RescheduleBatchCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RescheduleBatchCreate) SetStatus(v reschedulebatch.Status) *RescheduleBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableStatus(v *reschedulebatch.Status) *RescheduleBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPreviousSessions sets the "previous_sessions" field.
func (_c *RescheduleBatchCreate) SetPreviousSessions(v []schema.SessionSnapshot) *RescheduleBatchCreate {
	_c.mutation.SetPreviousSessions(v)
	return _c
}

// SetConflicts sets the "conflicts" field.
func (_c *RescheduleBatchCreate) SetConflicts(v []schema.ConflictRecord) *RescheduleBatchCreate {
	_c.mutation.SetConflicts(v)
	return _c
}

// SetBlockers sets the "blockers" field.
func (_c *RescheduleBatchCreate) SetBlockers(v []schema.BlockerRecord) *RescheduleBatchCreate {
	_c.mutation.SetBlockers(v)
	return _c
}

// SetSessionsRescheduled sets the "sessions_rescheduled" field.
func (_c *RescheduleBatchCreate) SetSessionsRescheduled(v int) *RescheduleBatchCreate {
	_c.mutation.SetSessionsRescheduled(v)
	return _c
}

// SetNillableSessionsRescheduled sets the "sessions_rescheduled" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableSessionsRescheduled(v *int) *RescheduleBatchCreate {
	if v != nil {
		_c.SetSessionsRescheduled(*v)
	}
	return _c
}

// SetOptimizationScore sets the "optimization_score" field.
func (_c *RescheduleBatchCreate) SetOptimizationScore(v float64) *RescheduleBatchCreate {
	_c.mutation.SetOptimizationScore(v)
	return _c
}

// SetNillableOptimizationScore sets the "optimization_score" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableOptimizationScore(v *float64) *RescheduleBatchCreate {
	if v != nil {
		_c.SetOptimizationScore(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *RescheduleBatchCreate) SetExecutionTimeMs(v int64) *RescheduleBatchCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableExecutionTimeMs(v *int64) *RescheduleBatchCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetNewEndDate sets the "new_end_date" field.
func (_c *RescheduleBatchCreate) SetNewEndDate(v time.Time) *RescheduleBatchCreate {
	_c.mutation.SetNewEndDate(v)
	return _c
}

// SetNillableNewEndDate sets the "new_end_date" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableNewEndDate(v *time.Time) *RescheduleBatchCreate {
	if v != nil {
		_c.SetNewEndDate(*v)
	}
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *RescheduleBatchCreate) SetAppliedAt(v time.Time) *RescheduleBatchCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableAppliedAt(v *time.Time) *RescheduleBatchCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (_c *RescheduleBatchCreate) SetRolledBackAt(v time.Time) *RescheduleBatchCreate {
	_c.mutation.SetRolledBackAt(v)
	return _c
}

// SetNillableRolledBackAt sets the "rolled_back_at" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableRolledBackAt(v *time.Time) *RescheduleBatchCreate {
	if v != nil {
		_c.SetRolledBackAt(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *RescheduleBatchCreate) SetFailureReason(v string) *RescheduleBatchCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableFailureReason(v *string) *RescheduleBatchCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RescheduleBatchCreate) SetID(v uuid.UUID) *RescheduleBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RescheduleBatchCreate) SetNillableID(v *uuid.UUID) *RescheduleBatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RescheduleBatchMutation object of the builder.
func (_c *RescheduleBatchCreate) Mutation() *RescheduleBatchMutation {
	return _c.mutation
}

// Save creates the RescheduleBatch in the database.
func (_c *RescheduleBatchCreate) Save(ctx context.Context) (*RescheduleBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RescheduleBatchCreate) SaveX(ctx context.Context) *RescheduleBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RescheduleBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RescheduleBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RescheduleBatchCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reschedulebatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reschedulebatch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reschedulebatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SessionsRescheduled(); !ok {
		v := reschedulebatch.DefaultSessionsRescheduled
		_c.mutation.SetSessionsRescheduled(v)
	}
	if _, ok := _c.mutation.OptimizationScore(); !ok {
		v := reschedulebatch.DefaultOptimizationScore
		_c.mutation.SetOptimizationScore(v)
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		v := reschedulebatch.DefaultExecutionTimeMs
		_c.mutation.SetExecutionTimeMs(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reschedulebatch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RescheduleBatchCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RescheduleBatch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RescheduleBatch.updated_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`repo: missing required field "RescheduleBatch.request_id"`)}
	}
	if _, ok := _c.mutation.CenterID(); !ok {
		return &ValidationError{Name: "center_id", err: errors.New(`repo: missing required field "RescheduleBatch.center_id"`)}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`repo: missing required field "RescheduleBatch.enrollment_id"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`repo: missing required field "RescheduleBatch.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := reschedulebatch.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`repo: validator failed for field "RescheduleBatch.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "RescheduleBatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reschedulebatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "RescheduleBatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionsRescheduled(); !ok {
		return &ValidationError{Name: "sessions_rescheduled", err: errors.New(`repo: missing required field "RescheduleBatch.sessions_rescheduled"`)}
	}
	if _, ok := _c.mutation.OptimizationScore(); !ok {
		return &ValidationError{Name: "optimization_score", err: errors.New(`repo: missing required field "RescheduleBatch.optimization_score"`)}
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		return &ValidationError{Name: "execution_time_ms", err: errors.New(`repo: missing required field "RescheduleBatch.execution_time_ms"`)}
	}
	return nil
}

func (_c *RescheduleBatchCreate) sqlSave(ctx context.Context) (*RescheduleBatch, error) {
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

func (_c *RescheduleBatchCreate) createSpec() (*RescheduleBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &RescheduleBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reschedulebatch.Table, sqlgraph.NewFieldSpec(reschedulebatch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reschedulebatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reschedulebatch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(reschedulebatch.FieldRequestID, field.TypeUUID, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.CenterID(); ok {
		_spec.SetField(reschedulebatch.FieldCenterID, field.TypeUUID, value)
		_node.CenterID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(reschedulebatch.FieldEnrollmentID, field.TypeUUID, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(reschedulebatch.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reschedulebatch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PreviousSessions(); ok {
		_spec.SetField(reschedulebatch.FieldPreviousSessions, field.TypeJSON, value)
		_node.PreviousSessions = value
	}
	if value, ok := _c.mutation.Conflicts(); ok {
		_spec.SetField(reschedulebatch.FieldConflicts, field.TypeJSON, value)
		_node.Conflicts = value
	}
	if value, ok := _c.mutation.Blockers(); ok {
		_spec.SetField(reschedulebatch.FieldBlockers, field.TypeJSON, value)
		_node.Blockers = value
	}
	if value, ok := _c.mutation.SessionsRescheduled(); ok {
		_spec.SetField(reschedulebatch.FieldSessionsRescheduled, field.TypeInt, value)
		_node.SessionsRescheduled = value
	}
	if value, ok := _c.mutation.OptimizationScore(); ok {
		_spec.SetField(reschedulebatch.FieldOptimizationScore, field.TypeFloat64, value)
		_node.OptimizationScore = value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(reschedulebatch.FieldExecutionTimeMs, field.TypeInt64, value)
		_node.ExecutionTimeMs = value
	}
	if value, ok := _c.mutation.NewEndDate(); ok {
		_spec.SetField(reschedulebatch.FieldNewEndDate, field.TypeTime, value)
		_node.NewEndDate = &value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(reschedulebatch.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = &value
	}
	if value, ok := _c.mutation.RolledBackAt(); ok {
		_spec.SetField(reschedulebatch.FieldRolledBackAt, field.TypeTime, value)
		_node.RolledBackAt = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(reschedulebatch.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	return _node, _spec
}

// RescheduleBatchCreateBulk is the builder for creating many RescheduleBatch entities in bulk.
type RescheduleBatchCreateBulk struct {
	config
	err      error
	builders []*RescheduleBatchCreate
}

// Save creates the RescheduleBatch entities in the database.
func (_c *RescheduleBatchCreateBulk) Save(ctx context.Context) ([]*RescheduleBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RescheduleBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RescheduleBatchMutation)
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
func (_c *RescheduleBatchCreateBulk) SaveX(ctx context.Context) []*RescheduleBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RescheduleBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RescheduleBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
