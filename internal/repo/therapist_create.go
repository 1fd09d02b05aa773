// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
	"github.com/google/uuid"
)

// TherapistCreate is the builder for creating a Therapist entity.
type TherapistCreate struct {
	config
	mutation *TherapistMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TherapistCreate) SetCreatedAt(v time.Time) *TherapistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TherapistCreate) SetNillableCreatedAt(v *time.Time) *TherapistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TherapistCreate) SetUpdatedAt(v time.Time) *TherapistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TherapistCreate) SetNillableUpdatedAt(v *time.Time) *TherapistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCenterID sets the "center_id" field.
func (_c *TherapistCreate) SetCenterID(v uuid.UUID) *TherapistCreate {
	_c.mutation.SetCenterID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *TherapistCreate) SetDisplayName(v string) *TherapistCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *TherapistCreate) SetSpecialty(v string) *TherapistCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *TherapistCreate) SetNillableSpecialty(v *string) *TherapistCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *TherapistCreate) SetPhone(v string) *TherapistCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *TherapistCreate) SetNillablePhone(v *string) *TherapistCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetMaxWeeklySessions sets the "max_weekly_sessions" field.
func (_c *TherapistCreate) SetMaxWeeklySessions(v int) *TherapistCreate {
	_c.mutation.SetMaxWeeklySessions(v)
	return _c
}

// SetNillableMaxWeeklySessions sets the "max_weekly_sessions" field if the given value is not nil.
func (_c *TherapistCreate) SetNillableMaxWeeklySessions(v *int) *TherapistCreate {
	if v != nil {
		_c.SetMaxWeeklySessions(*v)
	}
	return _c
}

// SetIsAccepting sets the "is_accepting" field.
func (_c *TherapistCreate) SetIsAccepting(v bool) *TherapistCreate {
	_c.mutation.SetIsAccepting(v)
	return _c
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_c *TherapistCreate) SetNillableIsAccepting(v *bool) *TherapistCreate {
	if v != nil {
		_c.SetIsAccepting(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TherapistCreate) SetIsActive(v bool) *TherapistCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TherapistCreate) SetNillableIsActive(v *bool) *TherapistCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TherapistCreate) SetID(v uuid.UUID) *TherapistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TherapistCreate) SetNillableID(v *uuid.UUID) *TherapistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TherapistMutation object of the builder.
func (_c *TherapistCreate) Mutation() *TherapistMutation {
	return _c.mutation
}

// Save creates the Therapist in the database.
func (_c *TherapistCreate) Save(ctx context.Context) (*Therapist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TherapistCreate) SaveX(ctx context.Context) *Therapist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TherapistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := therapist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := therapist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MaxWeeklySessions(); !ok {
		v := therapist.DefaultMaxWeeklySessions
		_c.mutation.SetMaxWeeklySessions(v)
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		v := therapist.DefaultIsAccepting
		_c.mutation.SetIsAccepting(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := therapist.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := therapist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TherapistCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Therapist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Therapist.updated_at"`)}
	}
	if _, ok := _c.mutation.CenterID(); !ok {
		return &ValidationError{Name: "center_id", err: errors.New(`repo: missing required field "Therapist.center_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`repo: missing required field "Therapist.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := therapist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxWeeklySessions(); !ok {
		return &ValidationError{Name: "max_weekly_sessions", err: errors.New(`repo: missing required field "Therapist.max_weekly_sessions"`)}
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		return &ValidationError{Name: "is_accepting", err: errors.New(`repo: missing required field "Therapist.is_accepting"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Therapist.is_active"`)}
	}
	return nil
}

func (_c *TherapistCreate) sqlSave(ctx context.Context) (*Therapist, error) {
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

func (_c *TherapistCreate) createSpec() (*Therapist, *sqlgraph.CreateSpec) {
	var (
		_node = &Therapist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(therapist.Table, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(therapist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CenterID(); ok {
		_spec.SetField(therapist.FieldCenterID, field.TypeUUID, value)
		_node.CenterID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(therapist.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(therapist.FieldSpecialty, field.TypeString, value)
		_node.Specialty = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(therapist.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.MaxWeeklySessions(); ok {
		_spec.SetField(therapist.FieldMaxWeeklySessions, field.TypeInt, value)
		_node.MaxWeeklySessions = value
	}
	if value, ok := _c.mutation.IsAccepting(); ok {
		_spec.SetField(therapist.FieldIsAccepting, field.TypeBool, value)
		_node.IsAccepting = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(therapist.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// TherapistCreateBulk is the builder for creating many Therapist entities in bulk.
type TherapistCreateBulk struct {
	config
	err      error
	builders []*TherapistCreate
}

// Save creates the Therapist entities in the database.
func (_c *TherapistCreateBulk) Save(ctx context.Context) ([]*Therapist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Therapist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TherapistMutation)
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
func (_c *TherapistCreateBulk) SaveX(ctx context.Context) []*Therapist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
