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
	"github.com/arkanhealth/jadwal_backend/internal/repo/availabilityrule"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AvailabilityRuleUpdate is the builder for updating AvailabilityRule entities.
type AvailabilityRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityRuleMutation
}

// Where appends a list predicates to the AvailabilityRuleUpdate builder.
func (_u *AvailabilityRuleUpdate) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityRuleUpdate) SetUpdatedAt(v time.Time) *AvailabilityRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AvailabilityRuleUpdate) SetTherapistID(v uuid.UUID) *AvailabilityRuleUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableTherapistID(v *uuid.UUID) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *AvailabilityRuleUpdate) SetCenterID(v uuid.UUID) *AvailabilityRuleUpdate {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableCenterID(v *uuid.UUID) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityRuleUpdate) SetDayOfWeek(v int8) *AvailabilityRuleUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableDayOfWeek(v *int8) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityRuleUpdate) AddDayOfWeek(v int8) *AvailabilityRuleUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *AvailabilityRuleUpdate) SetStartHour(v int8) *AvailabilityRuleUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableStartHour(v *int8) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *AvailabilityRuleUpdate) AddStartHour(v int8) *AvailabilityRuleUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AvailabilityRuleUpdate) SetStartMinute(v int8) *AvailabilityRuleUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableStartMinute(v *int8) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AvailabilityRuleUpdate) AddStartMinute(v int8) *AvailabilityRuleUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *AvailabilityRuleUpdate) SetEndHour(v int8) *AvailabilityRuleUpdate {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableEndHour(v *int8) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *AvailabilityRuleUpdate) AddEndHour(v int8) *AvailabilityRuleUpdate {
	_u.mutation.AddEndHour(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *AvailabilityRuleUpdate) SetEndMinute(v int8) *AvailabilityRuleUpdate {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableEndMinute(v *int8) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *AvailabilityRuleUpdate) AddEndMinute(v int8) *AvailabilityRuleUpdate {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *AvailabilityRuleUpdate) SetValidFrom(v time.Time) *AvailabilityRuleUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableValidFrom(v *time.Time) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *AvailabilityRuleUpdate) SetValidUntil(v time.Time) *AvailabilityRuleUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableValidUntil(v *time.Time) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *AvailabilityRuleUpdate) ClearValidUntil() *AvailabilityRuleUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityRuleUpdate) SetIsActive(v bool) *AvailabilityRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableIsActive(v *bool) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_u *AvailabilityRuleUpdate) Mutation() *AvailabilityRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AvailabilityRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(availabilityrule.Table, availabilityrule.Columns, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(availabilityrule.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(availabilityrule.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(availabilityrule.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(availabilityrule.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(availabilityrule.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(availabilityrule.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(availabilityrule.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(availabilityrule.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(availabilityrule.FieldEndMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(availabilityrule.FieldEndMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(availabilityrule.FieldValidFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(availabilityrule.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(availabilityrule.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availabilityrule.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityRuleUpdateOne is the builder for updating a single AvailabilityRule entity.
type AvailabilityRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityRuleUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AvailabilityRuleUpdateOne) SetTherapistID(v uuid.UUID) *AvailabilityRuleUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableTherapistID(v *uuid.UUID) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *AvailabilityRuleUpdateOne) SetCenterID(v uuid.UUID) *AvailabilityRuleUpdateOne {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableCenterID(v *uuid.UUID) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityRuleUpdateOne) SetDayOfWeek(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableDayOfWeek(v *int8) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityRuleUpdateOne) AddDayOfWeek(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *AvailabilityRuleUpdateOne) SetStartHour(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableStartHour(v *int8) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *AvailabilityRuleUpdateOne) AddStartHour(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AvailabilityRuleUpdateOne) SetStartMinute(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableStartMinute(v *int8) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AvailabilityRuleUpdateOne) AddStartMinute(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *AvailabilityRuleUpdateOne) SetEndHour(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableEndHour(v *int8) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *AvailabilityRuleUpdateOne) AddEndHour(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.AddEndHour(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *AvailabilityRuleUpdateOne) SetEndMinute(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableEndMinute(v *int8) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *AvailabilityRuleUpdateOne) AddEndMinute(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *AvailabilityRuleUpdateOne) SetValidFrom(v time.Time) *AvailabilityRuleUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableValidFrom(v *time.Time) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *AvailabilityRuleUpdateOne) SetValidUntil(v time.Time) *AvailabilityRuleUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableValidUntil(v *time.Time) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *AvailabilityRuleUpdateOne) ClearValidUntil() *AvailabilityRuleUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityRuleUpdateOne) SetIsActive(v bool) *AvailabilityRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableIsActive(v *bool) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_u *AvailabilityRuleUpdateOne) Mutation() *AvailabilityRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityRuleUpdate builder.
func (_u *AvailabilityRuleUpdateOne) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityRuleUpdateOne) Select(field string, fields ...string) *AvailabilityRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilityRule entity.
func (_u *AvailabilityRuleUpdateOne) Save(ctx context.Context) (*AvailabilityRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityRuleUpdateOne) SaveX(ctx context.Context) *AvailabilityRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AvailabilityRuleUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilityRule, err error) {
	_spec := sqlgraph.NewUpdateSpec(availabilityrule.Table, availabilityrule.Columns, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilityRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityrule.FieldID)
		for _, f := range fields {
			if !availabilityrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilityrule.FieldID {
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
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(availabilityrule.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(availabilityrule.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(availabilityrule.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(availabilityrule.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(availabilityrule.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(availabilityrule.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(availabilityrule.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(availabilityrule.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(availabilityrule.FieldEndMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(availabilityrule.FieldEndMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(availabilityrule.FieldValidFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(availabilityrule.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(availabilityrule.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availabilityrule.FieldIsActive, field.TypeBool, value)
	}
	_node = &AvailabilityRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
