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
	"github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// FreezeWindowUpdate is the builder for updating FreezeWindow entities.
type FreezeWindowUpdate struct {
	config
	hooks    []Hook
	mutation *FreezeWindowMutation
}

// Where appends a list predicates to the FreezeWindowUpdate builder.
func (_u *FreezeWindowUpdate) Where(ps ...predicate.FreezeWindow) *FreezeWindowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FreezeWindowUpdate) SetUpdatedAt(v time.Time) *FreezeWindowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *FreezeWindowUpdate) SetCenterID(v uuid.UUID) *FreezeWindowUpdate {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *FreezeWindowUpdate) SetNillableCenterID(v *uuid.UUID) *FreezeWindowUpdate {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *FreezeWindowUpdate) SetEnrollmentID(v uuid.UUID) *FreezeWindowUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *FreezeWindowUpdate) SetNillableEnrollmentID(v *uuid.UUID) *FreezeWindowUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetStartsOn sets the "starts_on" field.
func (_u *FreezeWindowUpdate) SetStartsOn(v time.Time) *FreezeWindowUpdate {
	_u.mutation.SetStartsOn(v)
	return _u
}

// SetNillableStartsOn sets the "starts_on" field if the given value is not nil.
func (_u *FreezeWindowUpdate) SetNillableStartsOn(v *time.Time) *FreezeWindowUpdate {
	if v != nil {
		_u.SetStartsOn(*v)
	}
	return _u
}

// SetEndsOn sets the "ends_on" field.
func (_u *FreezeWindowUpdate) SetEndsOn(v time.Time) *FreezeWindowUpdate {
	_u.mutation.SetEndsOn(v)
	return _u
}

// SetNillableEndsOn sets the "ends_on" field if the given value is not nil.
func (_u *FreezeWindowUpdate) SetNillableEndsOn(v *time.Time) *FreezeWindowUpdate {
	if v != nil {
		_u.SetEndsOn(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *FreezeWindowUpdate) SetReason(v string) *FreezeWindowUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FreezeWindowUpdate) SetNillableReason(v *string) *FreezeWindowUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *FreezeWindowUpdate) ClearReason() *FreezeWindowUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FreezeWindowUpdate) SetStatus(v freezewindow.Status) *FreezeWindowUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FreezeWindowUpdate) SetNillableStatus(v *freezewindow.Status) *FreezeWindowUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *FreezeWindowUpdate) SetBatchID(v uuid.UUID) *FreezeWindowUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *FreezeWindowUpdate) SetNillableBatchID(v *uuid.UUID) *FreezeWindowUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *FreezeWindowUpdate) ClearBatchID() *FreezeWindowUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// Mutation returns the FreezeWindowMutation object of the builder.
func (_u *FreezeWindowUpdate) Mutation() *FreezeWindowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FreezeWindowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FreezeWindowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FreezeWindowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FreezeWindowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FreezeWindowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := freezewindow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FreezeWindowUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := freezewindow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "FreezeWindow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FreezeWindowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(freezewindow.Table, freezewindow.Columns, sqlgraph.NewFieldSpec(freezewindow.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(freezewindow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(freezewindow.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(freezewindow.FieldEnrollmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartsOn(); ok {
		_spec.SetField(freezewindow.FieldStartsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsOn(); ok {
		_spec.SetField(freezewindow.FieldEndsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(freezewindow.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(freezewindow.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(freezewindow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(freezewindow.FieldBatchID, field.TypeUUID, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(freezewindow.FieldBatchID, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{freezewindow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FreezeWindowUpdateOne is the builder for updating a single FreezeWindow entity.
type FreezeWindowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FreezeWindowMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FreezeWindowUpdateOne) SetUpdatedAt(v time.Time) *FreezeWindowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *FreezeWindowUpdateOne) SetCenterID(v uuid.UUID) *FreezeWindowUpdateOne {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *FreezeWindowUpdateOne) SetNillableCenterID(v *uuid.UUID) *FreezeWindowUpdateOne {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *FreezeWindowUpdateOne) SetEnrollmentID(v uuid.UUID) *FreezeWindowUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *FreezeWindowUpdateOne) SetNillableEnrollmentID(v *uuid.UUID) *FreezeWindowUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetStartsOn sets the "starts_on" field.
func (_u *FreezeWindowUpdateOne) SetStartsOn(v time.Time) *FreezeWindowUpdateOne {
	_u.mutation.SetStartsOn(v)
	return _u
}

// SetNillableStartsOn sets the "starts_on" field if the given value is not nil.
func (_u *FreezeWindowUpdateOne) SetNillableStartsOn(v *time.Time) *FreezeWindowUpdateOne {
	if v != nil {
		_u.SetStartsOn(*v)
	}
	return _u
}

// SetEndsOn sets the "ends_on" field.
func (_u *FreezeWindowUpdateOne) SetEndsOn(v time.Time) *FreezeWindowUpdateOne {
	_u.mutation.SetEndsOn(v)
	return _u
}

// SetNillableEndsOn sets the "ends_on" field if the given value is not nil.
func (_u *FreezeWindowUpdateOne) SetNillableEndsOn(v *time.Time) *FreezeWindowUpdateOne {
	if v != nil {
		_u.SetEndsOn(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *FreezeWindowUpdateOne) SetReason(v string) *FreezeWindowUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FreezeWindowUpdateOne) SetNillableReason(v *string) *FreezeWindowUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *FreezeWindowUpdateOne) ClearReason() *FreezeWindowUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FreezeWindowUpdateOne) SetStatus(v freezewindow.Status) *FreezeWindowUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FreezeWindowUpdateOne) SetNillableStatus(v *freezewindow.Status) *FreezeWindowUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *FreezeWindowUpdateOne) SetBatchID(v uuid.UUID) *FreezeWindowUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *FreezeWindowUpdateOne) SetNillableBatchID(v *uuid.UUID) *FreezeWindowUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *FreezeWindowUpdateOne) ClearBatchID() *FreezeWindowUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// Mutation returns the FreezeWindowMutation object of the builder.
func (_u *FreezeWindowUpdateOne) Mutation() *FreezeWindowMutation {
	return _u.mutation
}

// Where appends a list predicates to the FreezeWindowUpdate builder.
func (_u *FreezeWindowUpdateOne) Where(ps ...predicate.FreezeWindow) *FreezeWindowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FreezeWindowUpdateOne) Select(field string, fields ...string) *FreezeWindowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FreezeWindow entity.
func (_u *FreezeWindowUpdateOne) Save(ctx context.Context) (*FreezeWindow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FreezeWindowUpdateOne) SaveX(ctx context.Context) *FreezeWindow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FreezeWindowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FreezeWindowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FreezeWindowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := freezewindow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FreezeWindowUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := freezewindow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "FreezeWindow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FreezeWindowUpdateOne) sqlSave(ctx context.Context) (_node *FreezeWindow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(freezewindow.Table, freezewindow.Columns, sqlgraph.NewFieldSpec(freezewindow.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "FreezeWindow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, freezewindow.FieldID)
		for _, f := range fields {
			if !freezewindow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != freezewindow.FieldID {
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
		_spec.SetField(freezewindow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(freezewindow.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(freezewindow.FieldEnrollmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartsOn(); ok {
		_spec.SetField(freezewindow.FieldStartsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsOn(); ok {
		_spec.SetField(freezewindow.FieldEndsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(freezewindow.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(freezewindow.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(freezewindow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(freezewindow.FieldBatchID, field.TypeUUID, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(freezewindow.FieldBatchID, field.TypeUUID)
	}
	_node = &FreezeWindow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{freezewindow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
