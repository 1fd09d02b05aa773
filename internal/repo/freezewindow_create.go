// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	"github.com/google/uuid"
)

// FreezeWindowCreate is the builder for creating a FreezeWindow entity.
type FreezeWindowCreate struct {
	config
	mutation *FreezeWindowMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FreezeWindowCreate) SetCreatedAt(v time.Time) *FreezeWindowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FreezeWindowCreate) SetNillableCreatedAt(v *time.Time) *FreezeWindowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FreezeWindowCreate) SetUpdatedAt(v time.Time) *FreezeWindowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FreezeWindowCreate) SetNillableUpdatedAt(v *time.Time) *FreezeWindowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCenterID sets the "center_id" field.
func (_c *FreezeWindowCreate) SetCenterID(v uuid.UUID) *FreezeWindowCreate {
	_c.mutation.SetCenterID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *FreezeWindowCreate) SetEnrollmentID(v uuid.UUID) *FreezeWindowCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetStartsOn sets the "starts_on" field.
func (_c *FreezeWindowCreate) SetStartsOn(v time.Time) *FreezeWindowCreate {
	_c.mutation.SetStartsOn(v)
	return _c
}

// SetEndsOn sets the "ends_on" field.
func (_c *FreezeWindowCreate) SetEndsOn(v time.Time) *FreezeWindowCreate {
	_c.mutation.SetEndsOn(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *FreezeWindowCreate) SetReason(v string) *FreezeWindowCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *FreezeWindowCreate) SetNillableReason(v *string) *FreezeWindowCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FreezeWindowCreate) SetStatus(v freezewindow.Status) *FreezeWindowCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FreezeWindowCreate) SetNillableStatus(v *freezewindow.Status) *FreezeWindowCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *FreezeWindowCreate) SetBatchID(v uuid.UUID) *FreezeWindowCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *FreezeWindowCreate) SetNillableBatchID(v *uuid.UUID) *FreezeWindowCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FreezeWindowCreate) SetID(v uuid.UUID) *FreezeWindowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FreezeWindowCreate) SetNillableID(v *uuid.UUID) *FreezeWindowCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FreezeWindowMutation object of the builder.
func (_c *FreezeWindowCreate) Mutation() *FreezeWindowMutation {
	return _c.mutation
}

// Save creates the FreezeWindow in the database.
func (_c *FreezeWindowCreate) Save(ctx context.Context) (*FreezeWindow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FreezeWindowCreate) SaveX(ctx context.Context) *FreezeWindow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FreezeWindowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FreezeWindowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FreezeWindowCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := freezewindow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := freezewindow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := freezewindow.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := freezewindow.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FreezeWindowCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "FreezeWindow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "FreezeWindow.updated_at"`)}
	}
	if _, ok := _c.mutation.CenterID(); !ok {
		return &ValidationError{Name: "center_id", err: errors.New(`repo: missing required field "FreezeWindow.center_id"`)}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`repo: missing required field "FreezeWindow.enrollment_id"`)}
	}
	if _, ok := _c.mutation.StartsOn(); !ok {
		return &ValidationError{Name: "starts_on", err: errors.New(`repo: missing required field "FreezeWindow.starts_on"`)}
	}
	if _, ok := _c.mutation.EndsOn(); !ok {
		return &ValidationError{Name: "ends_on", err: errors.New(`repo: missing required field "FreezeWindow.ends_on"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "FreezeWindow.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := freezewindow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "FreezeWindow.status": %w`, err)}
		}
	}
	return nil
}

func (_c *FreezeWindowCreate) sqlSave(ctx context.Context) (*FreezeWindow, error) {
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

func (_c *FreezeWindowCreate) createSpec() (*FreezeWindow, *sqlgraph.CreateSpec) {
	var (
		_node = &FreezeWindow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(freezewindow.Table, sqlgraph.NewFieldSpec(freezewindow.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(freezewindow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(freezewindow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CenterID(); ok {
		_spec.SetField(freezewindow.FieldCenterID, field.TypeUUID, value)
		_node.CenterID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(freezewindow.FieldEnrollmentID, field.TypeUUID, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.StartsOn(); ok {
		_spec.SetField(freezewindow.FieldStartsOn, field.TypeTime, value)
		_node.StartsOn = value
	}
	if value, ok := _c.mutation.EndsOn(); ok {
		_spec.SetField(freezewindow.FieldEndsOn, field.TypeTime, value)
		_node.EndsOn = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(freezewindow.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(freezewindow.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(freezewindow.FieldBatchID, field.TypeUUID, value)
		_node.BatchID = &value
	}
	return _node, _spec
}

// FreezeWindowCreateBulk is the builder for creating many FreezeWindow entities in bulk.
type FreezeWindowCreateBulk struct {
	config
	err      error
	builders []*FreezeWindowCreate
}

// Save creates the FreezeWindow entities in the database.
func (_c *FreezeWindowCreateBulk) Save(ctx context.Context) ([]*FreezeWindow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FreezeWindow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FreezeWindowMutation)
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
func (_c *FreezeWindowCreateBulk) SaveX(ctx context.Context) []*FreezeWindow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FreezeWindowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FreezeWindowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
