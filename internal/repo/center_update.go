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
	"github.com/arkanhealth/jadwal_backend/internal/repo/center"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
)

// CenterUpdate is the builder for updating Center entities.
type CenterUpdate struct {
	config
	hooks    []Hook
	mutation *CenterMutation
}

// Where appends a list predicates to the CenterUpdate builder.
func (_u *CenterUpdate) Where(ps ...predicate.Center) *CenterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CenterUpdate) SetUpdatedAt(v time.Time) *CenterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CenterUpdate) SetDeletedAt(v time.Time) *CenterUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CenterUpdate) SetNillableDeletedAt(v *time.Time) *CenterUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CenterUpdate) ClearDeletedAt() *CenterUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *CenterUpdate) SetName(v string) *CenterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CenterUpdate) SetNillableName(v *string) *CenterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CenterUpdate) SetSlug(v string) *CenterUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CenterUpdate) SetNillableSlug(v *string) *CenterUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CenterUpdate) SetTimezone(v string) *CenterUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CenterUpdate) SetNillableTimezone(v *string) *CenterUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *CenterUpdate) SetContactEmail(v string) *CenterUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *CenterUpdate) SetNillableContactEmail(v *string) *CenterUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *CenterUpdate) ClearContactEmail() *CenterUpdate {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CenterUpdate) SetIsActive(v bool) *CenterUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CenterUpdate) SetNillableIsActive(v *bool) *CenterUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the CenterMutation object of the builder.
func (_u *CenterUpdate) Mutation() *CenterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CenterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CenterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CenterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CenterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CenterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := center.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CenterUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := center.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Center.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := center.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Center.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *CenterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(center.Table, center.Columns, sqlgraph.NewFieldSpec(center.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(center.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(center.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(center.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(center.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(center.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(center.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(center.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(center.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(center.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{center.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CenterUpdateOne is the builder for updating a single Center entity.
type CenterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CenterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CenterUpdateOne) SetUpdatedAt(v time.Time) *CenterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CenterUpdateOne) SetDeletedAt(v time.Time) *CenterUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CenterUpdateOne) SetNillableDeletedAt(v *time.Time) *CenterUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CenterUpdateOne) ClearDeletedAt() *CenterUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *CenterUpdateOne) SetName(v string) *CenterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CenterUpdateOne) SetNillableName(v *string) *CenterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CenterUpdateOne) SetSlug(v string) *CenterUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CenterUpdateOne) SetNillableSlug(v *string) *CenterUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CenterUpdateOne) SetTimezone(v string) *CenterUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CenterUpdateOne) SetNillableTimezone(v *string) *CenterUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *CenterUpdateOne) SetContactEmail(v string) *CenterUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *CenterUpdateOne) SetNillableContactEmail(v *string) *CenterUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *CenterUpdateOne) ClearContactEmail() *CenterUpdateOne {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CenterUpdateOne) SetIsActive(v bool) *CenterUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CenterUpdateOne) SetNillableIsActive(v *bool) *CenterUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the CenterMutation object of the builder.
func (_u *CenterUpdateOne) Mutation() *CenterMutation {
	return _u.mutation
}

// Where appends a list predicates to the CenterUpdate builder.
func (_u *CenterUpdateOne) Where(ps ...predicate.Center) *CenterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CenterUpdateOne) Select(field string, fields ...string) *CenterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Center entity.
func (_u *CenterUpdateOne) Save(ctx context.Context) (*Center, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CenterUpdateOne) SaveX(ctx context.Context) *Center {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CenterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CenterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CenterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := center.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CenterUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := center.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Center.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := center.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Center.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *CenterUpdateOne) sqlSave(ctx context.Context) (_node *Center, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(center.Table, center.Columns, sqlgraph.NewFieldSpec(center.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Center.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, center.FieldID)
		for _, f := range fields {
			if !center.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != center.FieldID {
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
		_spec.SetField(center.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(center.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(center.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(center.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(center.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(center.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(center.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(center.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(center.FieldIsActive, field.TypeBool, value)
	}
	_node = &Center{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{center.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
