// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
	"github.com/google/uuid"
)

// TherapistUpdate is the builder for updating Therapist entities.
type TherapistUpdate struct {
	config
	hooks    []Hook
	mutation *TherapistMutation
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdate) Where(ps ...predicate.Therapist) *TherapistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdate) SetUpdatedAt(v time.Time) *TherapistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *TherapistUpdate) SetCenterID(v uuid.UUID) *TherapistUpdate {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableCenterID(v *uuid.UUID) *TherapistUpdate {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TherapistUpdate) SetDisplayName(v string) *TherapistUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableDisplayName(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *TherapistUpdate) SetSpecialty(v string) *TherapistUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableSpecialty(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *TherapistUpdate) ClearSpecialty() *TherapistUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *TherapistUpdate) SetPhone(v string) *TherapistUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillablePhone(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *TherapistUpdate) ClearPhone() *TherapistUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetMaxWeeklySessions sets the "max_weekly_sessions" field.
func (_u *TherapistUpdate) SetMaxWeeklySessions(v int) *TherapistUpdate {
	_u.mutation.ResetMaxWeeklySessions()
	_u.mutation.SetMaxWeeklySessions(v)
	return _u
}

// SetNillableMaxWeeklySessions sets the "max_weekly_sessions" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableMaxWeeklySessions(v *int) *TherapistUpdate {
	if v != nil {
		_u.SetMaxWeeklySessions(*v)
	}
	return _u
}

// AddMaxWeeklySessions adds value to the "max_weekly_sessions" field.
func (_u *TherapistUpdate) AddMaxWeeklySessions(v int) *TherapistUpdate {
	_u.mutation.AddMaxWeeklySessions(v)
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *TherapistUpdate) SetIsAccepting(v bool) *TherapistUpdate {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableIsAccepting(v *bool) *TherapistUpdate {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TherapistUpdate) SetIsActive(v bool) *TherapistUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableIsActive(v *bool) *TherapistUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdate) Mutation() *TherapistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := therapist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(therapist.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(therapist.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(therapist.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(therapist.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(therapist.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(therapist.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.MaxWeeklySessions(); ok {
		_spec.SetField(therapist.FieldMaxWeeklySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxWeeklySessions(); ok {
		_spec.AddField(therapist.FieldMaxWeeklySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(therapist.FieldIsAccepting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(therapist.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapistUpdateOne is the builder for updating a single Therapist entity.
type TherapistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdateOne) SetUpdatedAt(v time.Time) *TherapistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *TherapistUpdateOne) SetCenterID(v uuid.UUID) *TherapistUpdateOne {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableCenterID(v *uuid.UUID) *TherapistUpdateOne {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TherapistUpdateOne) SetDisplayName(v string) *TherapistUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableDisplayName(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *TherapistUpdateOne) SetSpecialty(v string) *TherapistUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableSpecialty(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *TherapistUpdateOne) ClearSpecialty() *TherapistUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *TherapistUpdateOne) SetPhone(v string) *TherapistUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillablePhone(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *TherapistUpdateOne) ClearPhone() *TherapistUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetMaxWeeklySessions sets the "max_weekly_sessions" field.
func (_u *TherapistUpdateOne) SetMaxWeeklySessions(v int) *TherapistUpdateOne {
	_u.mutation.ResetMaxWeeklySessions()
	_u.mutation.SetMaxWeeklySessions(v)
	return _u
}

// SetNillableMaxWeeklySessions sets the "max_weekly_sessions" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableMaxWeeklySessions(v *int) *TherapistUpdateOne {
	if v != nil {
		_u.SetMaxWeeklySessions(*v)
	}
	return _u
}

// AddMaxWeeklySessions adds value to the "max_weekly_sessions" field.
func (_u *TherapistUpdateOne) AddMaxWeeklySessions(v int) *TherapistUpdateOne {
	_u.mutation.AddMaxWeeklySessions(v)
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *TherapistUpdateOne) SetIsAccepting(v bool) *TherapistUpdateOne {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableIsAccepting(v *bool) *TherapistUpdateOne {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TherapistUpdateOne) SetIsActive(v bool) *TherapistUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableIsActive(v *bool) *TherapistUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdateOne) Mutation() *TherapistMutation {
	return _u.mutation
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdateOne) Where(ps ...predicate.Therapist) *TherapistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapistUpdateOne) Select(field string, fields ...string) *TherapistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Therapist entity.
func (_u *TherapistUpdateOne) Save(ctx context.Context) (*Therapist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdateOne) SaveX(ctx context.Context) *Therapist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := therapist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdateOne) sqlSave(ctx context.Context) (_node *Therapist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Therapist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapist.FieldID)
		for _, f := range fields {
			if !therapist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapist.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(therapist.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(therapist.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(therapist.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(therapist.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(therapist.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(therapist.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.MaxWeeklySessions(); ok {
		_spec.SetField(therapist.FieldMaxWeeklySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxWeeklySessions(); ok {
		_spec.AddField(therapist.FieldMaxWeeklySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(therapist.FieldIsAccepting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(therapist.FieldIsActive, field.TypeBool, value)
	}
	_node = &Therapist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
