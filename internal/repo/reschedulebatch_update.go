// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/google/uuid"
)

// RescheduleBatchUpdate is the builder for updating RescheduleBatch entities.
type RescheduleBatchUpdate struct {
	config
	hooks    []Hook
	mutation *RescheduleBatchMutation
}

// Where appends a list predicates to the RescheduleBatchUpdate builder.
func (_u *RescheduleBatchUpdate) Where(ps ...predicate.RescheduleBatch) *RescheduleBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RescheduleBatchUpdate) SetUpdatedAt(v time.Time) *RescheduleBatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RescheduleBatchUpdate) SetRequestID(v uuid.UUID) *RescheduleBatchUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableRequestID(v *uuid.UUID) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *RescheduleBatchUpdate) SetCenterID(v uuid.UUID) *RescheduleBatchUpdate {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableCenterID(v *uuid.UUID) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *RescheduleBatchUpdate) SetEnrollmentID(v uuid.UUID) *RescheduleBatchUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableEnrollmentID(v *uuid.UUID) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *RescheduleBatchUpdate) SetTrigger(v reschedulebatch.Trigger) *RescheduleBatchUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableTrigger(v *reschedulebatch.Trigger) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RescheduleBatchUpdate) SetStatus(v reschedulebatch.Status) *RescheduleBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableStatus(v *reschedulebatch.Status) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPreviousSessions sets the "previous_sessions" field.
func (_u *RescheduleBatchUpdate) SetPreviousSessions(v []schema.SessionSnapshot) *RescheduleBatchUpdate {
	_u.mutation.SetPreviousSessions(v)
	return _u
}

// AppendPreviousSessions appends value to the "previous_sessions" field.
func (_u *RescheduleBatchUpdate) AppendPreviousSessions(v []schema.SessionSnapshot) *RescheduleBatchUpdate {
	_u.mutation.AppendPreviousSessions(v)
	return _u
}

// ClearPreviousSessions clears the value of the "previous_sessions" field.
func (_u *RescheduleBatchUpdate) ClearPreviousSessions() *RescheduleBatchUpdate {
	_u.mutation.ClearPreviousSessions()
	return _u
}

// SetConflicts sets the "conflicts" field.
func (_u *RescheduleBatchUpdate) SetConflicts(v []schema.ConflictRecord) *RescheduleBatchUpdate {
	_u.mutation.SetConflicts(v)
	return _u
}

// AppendConflicts appends value to the "conflicts" field.
func (_u *RescheduleBatchUpdate) AppendConflicts(v []schema.ConflictRecord) *RescheduleBatchUpdate {
	_u.mutation.AppendConflicts(v)
	return _u
}

// ClearConflicts clears the value of the "conflicts" field.
func (_u *RescheduleBatchUpdate) ClearConflicts() *RescheduleBatchUpdate {
	_u.mutation.ClearConflicts()
	return _u
}

// SetBlockers sets the "blockers" field.
func (_u *RescheduleBatchUpdate) SetBlockers(v []schema.BlockerRecord) *RescheduleBatchUpdate {
	_u.mutation.SetBlockers(v)
	return _u
}

// AppendBlockers appends value to the "blockers" field.
func (_u *RescheduleBatchUpdate) AppendBlockers(v []schema.BlockerRecord) *RescheduleBatchUpdate {
	_u.mutation.AppendBlockers(v)
	return _u
}

// ClearBlockers clears the value of the "blockers" field.
func (_u *RescheduleBatchUpdate) ClearBlockers() *RescheduleBatchUpdate {
	_u.mutation.ClearBlockers()
	return _u
}

// SetSessionsRescheduled sets the "sessions_rescheduled" field.
func (_u *RescheduleBatchUpdate) SetSessionsRescheduled(v int) *RescheduleBatchUpdate {
	_u.mutation.ResetSessionsRescheduled()
	_u.mutation.SetSessionsRescheduled(v)
	return _u
}

// SetNillableSessionsRescheduled sets the "sessions_rescheduled" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableSessionsRescheduled(v *int) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetSessionsRescheduled(*v)
	}
	return _u
}

// AddSessionsRescheduled adds value to the "sessions_rescheduled" field.
func (_u *RescheduleBatchUpdate) AddSessionsRescheduled(v int) *RescheduleBatchUpdate {
	_u.mutation.AddSessionsRescheduled(v)
	return _u
}

// SetOptimizationScore sets the "optimization_score" field.
func (_u *RescheduleBatchUpdate) SetOptimizationScore(v float64) *RescheduleBatchUpdate {
	_u.mutation.ResetOptimizationScore()
	_u.mutation.SetOptimizationScore(v)
	return _u
}

// SetNillableOptimizationScore sets the "optimization_score" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableOptimizationScore(v *float64) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetOptimizationScore(*v)
	}
	return _u
}

// AddOptimizationScore adds value to the "optimization_score" field.
func (_u *RescheduleBatchUpdate) AddOptimizationScore(v float64) *RescheduleBatchUpdate {
	_u.mutation.AddOptimizationScore(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *RescheduleBatchUpdate) SetExecutionTimeMs(v int64) *RescheduleBatchUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableExecutionTimeMs(v *int64) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *RescheduleBatchUpdate) AddExecutionTimeMs(v int64) *RescheduleBatchUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetNewEndDate sets the "new_end_date" field.
func (_u *RescheduleBatchUpdate) SetNewEndDate(v time.Time) *RescheduleBatchUpdate {
	_u.mutation.SetNewEndDate(v)
	return _u
}

// SetNillableNewEndDate sets the "new_end_date" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableNewEndDate(v *time.Time) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetNewEndDate(*v)
	}
	return _u
}

// ClearNewEndDate clears the value of the "new_end_date" field.
func (_u *RescheduleBatchUpdate) ClearNewEndDate() *RescheduleBatchUpdate {
	_u.mutation.ClearNewEndDate()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *RescheduleBatchUpdate) SetAppliedAt(v time.Time) *RescheduleBatchUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableAppliedAt(v *time.Time) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *RescheduleBatchUpdate) ClearAppliedAt() *RescheduleBatchUpdate {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (_u *RescheduleBatchUpdate) SetRolledBackAt(v time.Time) *RescheduleBatchUpdate {
	_u.mutation.SetRolledBackAt(v)
	return _u
}

// SetNillableRolledBackAt sets the "rolled_back_at" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableRolledBackAt(v *time.Time) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetRolledBackAt(*v)
	}
	return _u
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (_u *RescheduleBatchUpdate) ClearRolledBackAt() *RescheduleBatchUpdate {
	_u.mutation.ClearRolledBackAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *RescheduleBatchUpdate) SetFailureReason(v string) *RescheduleBatchUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *RescheduleBatchUpdate) SetNillableFailureReason(v *string) *RescheduleBatchUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *RescheduleBatchUpdate) ClearFailureReason() *RescheduleBatchUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// Mutation returns the RescheduleBatchMutation object of the builder.
func (_u *RescheduleBatchUpdate) Mutation() *RescheduleBatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RescheduleBatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RescheduleBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RescheduleBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RescheduleBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RescheduleBatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reschedulebatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RescheduleBatchUpdate) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := reschedulebatch.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`repo: validator failed for field "RescheduleBatch.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reschedulebatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "RescheduleBatch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RescheduleBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reschedulebatch.Table, reschedulebatch.Columns, sqlgraph.NewFieldSpec(reschedulebatch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reschedulebatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(reschedulebatch.FieldRequestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(reschedulebatch.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(reschedulebatch.FieldEnrollmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(reschedulebatch.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reschedulebatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreviousSessions(); ok {
		_spec.SetField(reschedulebatch.FieldPreviousSessions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreviousSessions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reschedulebatch.FieldPreviousSessions, value)
		})
	}
	if _u.mutation.PreviousSessionsCleared() {
		_spec.ClearField(reschedulebatch.FieldPreviousSessions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conflicts(); ok {
		_spec.SetField(reschedulebatch.FieldConflicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reschedulebatch.FieldConflicts, value)
		})
	}
	if _u.mutation.ConflictsCleared() {
		_spec.ClearField(reschedulebatch.FieldConflicts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Blockers(); ok {
		_spec.SetField(reschedulebatch.FieldBlockers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reschedulebatch.FieldBlockers, value)
		})
	}
	if _u.mutation.BlockersCleared() {
		_spec.ClearField(reschedulebatch.FieldBlockers, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionsRescheduled(); ok {
		_spec.SetField(reschedulebatch.FieldSessionsRescheduled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsRescheduled(); ok {
		_spec.AddField(reschedulebatch.FieldSessionsRescheduled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OptimizationScore(); ok {
		_spec.SetField(reschedulebatch.FieldOptimizationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOptimizationScore(); ok {
		_spec.AddField(reschedulebatch.FieldOptimizationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(reschedulebatch.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(reschedulebatch.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NewEndDate(); ok {
		_spec.SetField(reschedulebatch.FieldNewEndDate, field.TypeTime, value)
	}
	if _u.mutation.NewEndDateCleared() {
		_spec.ClearField(reschedulebatch.FieldNewEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(reschedulebatch.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(reschedulebatch.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RolledBackAt(); ok {
		_spec.SetField(reschedulebatch.FieldRolledBackAt, field.TypeTime, value)
	}
	if _u.mutation.RolledBackAtCleared() {
		_spec.ClearField(reschedulebatch.FieldRolledBackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(reschedulebatch.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(reschedulebatch.FieldFailureReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reschedulebatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RescheduleBatchUpdateOne is the builder for updating a single RescheduleBatch entity.
type RescheduleBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RescheduleBatchMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RescheduleBatchUpdateOne) SetUpdatedAt(v time.Time) *RescheduleBatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RescheduleBatchUpdateOne) SetRequestID(v uuid.UUID) *RescheduleBatchUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableRequestID(v *uuid.UUID) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *RescheduleBatchUpdateOne) SetCenterID(v uuid.UUID) *RescheduleBatchUpdateOne {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableCenterID(v *uuid.UUID) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *RescheduleBatchUpdateOne) SetEnrollmentID(v uuid.UUID) *RescheduleBatchUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableEnrollmentID(v *uuid.UUID) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *RescheduleBatchUpdateOne) SetTrigger(v reschedulebatch.Trigger) *RescheduleBatchUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableTrigger(v *reschedulebatch.Trigger) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RescheduleBatchUpdateOne) SetStatus(v reschedulebatch.Status) *RescheduleBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableStatus(v *reschedulebatch.Status) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPreviousSessions sets the "previous_sessions" field.
func (_u *RescheduleBatchUpdateOne) SetPreviousSessions(v []schema.SessionSnapshot) *RescheduleBatchUpdateOne {
	_u.mutation.SetPreviousSessions(v)
	return _u
}

// AppendPreviousSessions appends value to the "previous_sessions" field.
func (_u *RescheduleBatchUpdateOne) AppendPreviousSessions(v []schema.SessionSnapshot) *RescheduleBatchUpdateOne {
	_u.mutation.AppendPreviousSessions(v)
	return _u
}

// ClearPreviousSessions clears the value of the "previous_sessions" field.
func (_u *RescheduleBatchUpdateOne) ClearPreviousSessions() *RescheduleBatchUpdateOne {
	_u.mutation.ClearPreviousSessions()
	return _u
}

// SetConflicts sets the "conflicts" field.
func (_u *RescheduleBatchUpdateOne) SetConflicts(v []schema.ConflictRecord) *RescheduleBatchUpdateOne {
	_u.mutation.SetConflicts(v)
	return _u
}

// AppendConflicts appends value to the "conflicts" field.
func (_u *RescheduleBatchUpdateOne) AppendConflicts(v []schema.ConflictRecord) *RescheduleBatchUpdateOne {
	_u.mutation.AppendConflicts(v)
	return _u
}

// ClearConflicts clears the value of the "conflicts" field.
func (_u *RescheduleBatchUpdateOne) ClearConflicts() *RescheduleBatchUpdateOne {
	_u.mutation.ClearConflicts()
	return _u
}

// SetBlockers sets the "blockers" field.
func (_u *RescheduleBatchUpdateOne) SetBlockers(v []schema.BlockerRecord) *RescheduleBatchUpdateOne {
	_u.mutation.SetBlockers(v)
	return _u
}

// AppendBlockers appends value to the "blockers" field.
func (_u *RescheduleBatchUpdateOne) AppendBlockers(v []schema.BlockerRecord) *RescheduleBatchUpdateOne {
	_u.mutation.AppendBlockers(v)
	return _u
}

// ClearBlockers clears the value of the "blockers" field.
func (_u *RescheduleBatchUpdateOne) ClearBlockers() *RescheduleBatchUpdateOne {
	_u.mutation.ClearBlockers()
	return _u
}

// SetSessionsRescheduled sets the "sessions_rescheduled" field.
func (_u *RescheduleBatchUpdateOne) SetSessionsRescheduled(v int) *RescheduleBatchUpdateOne {
	_u.mutation.ResetSessionsRescheduled()
	_u.mutation.SetSessionsRescheduled(v)
	return _u
}

// SetNillableSessionsRescheduled sets the "sessions_rescheduled" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableSessionsRescheduled(v *int) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetSessionsRescheduled(*v)
	}
	return _u
}

// AddSessionsRescheduled adds value to the "sessions_rescheduled" field.
func (_u *RescheduleBatchUpdateOne) AddSessionsRescheduled(v int) *RescheduleBatchUpdateOne {
	_u.mutation.AddSessionsRescheduled(v)
	return _u
}

// SetOptimizationScore sets the "optimization_score" field.
func (_u *RescheduleBatchUpdateOne) SetOptimizationScore(v float64) *RescheduleBatchUpdateOne {
	_u.mutation.ResetOptimizationScore()
	_u.mutation.SetOptimizationScore(v)
	return _u
}

// SetNillableOptimizationScore sets the "optimization_score" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableOptimizationScore(v *float64) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetOptimizationScore(*v)
	}
	return _u
}

// AddOptimizationScore adds value to the "optimization_score" field.
func (_u *RescheduleBatchUpdateOne) AddOptimizationScore(v float64) *RescheduleBatchUpdateOne {
	_u.mutation.AddOptimizationScore(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *RescheduleBatchUpdateOne) SetExecutionTimeMs(v int64) *RescheduleBatchUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableExecutionTimeMs(v *int64) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *RescheduleBatchUpdateOne) AddExecutionTimeMs(v int64) *RescheduleBatchUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetNewEndDate sets the "new_end_date" field.
func (_u *RescheduleBatchUpdateOne) SetNewEndDate(v time.Time) *RescheduleBatchUpdateOne {
	_u.mutation.SetNewEndDate(v)
	return _u
}

// SetNillableNewEndDate sets the "new_end_date" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableNewEndDate(v *time.Time) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetNewEndDate(*v)
	}
	return _u
}

// ClearNewEndDate clears the value of the "new_end_date" field.
func (_u *RescheduleBatchUpdateOne) ClearNewEndDate() *RescheduleBatchUpdateOne {
	_u.mutation.ClearNewEndDate()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *RescheduleBatchUpdateOne) SetAppliedAt(v time.Time) *RescheduleBatchUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableAppliedAt(v *time.Time) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *RescheduleBatchUpdateOne) ClearAppliedAt() *RescheduleBatchUpdateOne {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (_u *RescheduleBatchUpdateOne) SetRolledBackAt(v time.Time) *RescheduleBatchUpdateOne {
	_u.mutation.SetRolledBackAt(v)
	return _u
}

// SetNillableRolledBackAt sets the "rolled_back_at" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableRolledBackAt(v *time.Time) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetRolledBackAt(*v)
	}
	return _u
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (_u *RescheduleBatchUpdateOne) ClearRolledBackAt() *RescheduleBatchUpdateOne {
	_u.mutation.ClearRolledBackAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *RescheduleBatchUpdateOne) SetFailureReason(v string) *RescheduleBatchUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *RescheduleBatchUpdateOne) SetNillableFailureReason(v *string) *RescheduleBatchUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *RescheduleBatchUpdateOne) ClearFailureReason() *RescheduleBatchUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// Mutation returns the RescheduleBatchMutation object of the builder.
func (_u *RescheduleBatchUpdateOne) Mutation() *RescheduleBatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the RescheduleBatchUpdate builder.
func (_u *RescheduleBatchUpdateOne) Where(ps ...predicate.RescheduleBatch) *RescheduleBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RescheduleBatchUpdateOne) Select(field string, fields ...string) *RescheduleBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RescheduleBatch entity.
func (_u *RescheduleBatchUpdateOne) Save(ctx context.Context) (*RescheduleBatch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RescheduleBatchUpdateOne) SaveX(ctx context.Context) *RescheduleBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RescheduleBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RescheduleBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RescheduleBatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reschedulebatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RescheduleBatchUpdateOne) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := reschedulebatch.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`repo: validator failed for field "RescheduleBatch.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reschedulebatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "RescheduleBatch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RescheduleBatchUpdateOne) sqlSave(ctx context.Context) (_node *RescheduleBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reschedulebatch.Table, reschedulebatch.Columns, sqlgraph.NewFieldSpec(reschedulebatch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RescheduleBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reschedulebatch.FieldID)
		for _, f := range fields {
			if !reschedulebatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reschedulebatch.FieldID {
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
		_spec.SetField(reschedulebatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(reschedulebatch.FieldRequestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(reschedulebatch.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(reschedulebatch.FieldEnrollmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(reschedulebatch.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reschedulebatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreviousSessions(); ok {
		_spec.SetField(reschedulebatch.FieldPreviousSessions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreviousSessions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reschedulebatch.FieldPreviousSessions, value)
		})
	}
	if _u.mutation.PreviousSessionsCleared() {
		_spec.ClearField(reschedulebatch.FieldPreviousSessions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conflicts(); ok {
		_spec.SetField(reschedulebatch.FieldConflicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reschedulebatch.FieldConflicts, value)
		})
	}
	if _u.mutation.ConflictsCleared() {
		_spec.ClearField(reschedulebatch.FieldConflicts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Blockers(); ok {
		_spec.SetField(reschedulebatch.FieldBlockers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reschedulebatch.FieldBlockers, value)
		})
	}
	if _u.mutation.BlockersCleared() {
		_spec.ClearField(reschedulebatch.FieldBlockers, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionsRescheduled(); ok {
		_spec.SetField(reschedulebatch.FieldSessionsRescheduled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsRescheduled(); ok {
		_spec.AddField(reschedulebatch.FieldSessionsRescheduled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OptimizationScore(); ok {
		_spec.SetField(reschedulebatch.FieldOptimizationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOptimizationScore(); ok {
		_spec.AddField(reschedulebatch.FieldOptimizationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(reschedulebatch.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(reschedulebatch.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NewEndDate(); ok {
		_spec.SetField(reschedulebatch.FieldNewEndDate, field.TypeTime, value)
	}
	if _u.mutation.NewEndDateCleared() {
		_spec.ClearField(reschedulebatch.FieldNewEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(reschedulebatch.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(reschedulebatch.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RolledBackAt(); ok {
		_spec.SetField(reschedulebatch.FieldRolledBackAt, field.TypeTime, value)
	}
	if _u.mutation.RolledBackAtCleared() {
		_spec.ClearField(reschedulebatch.FieldRolledBackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(reschedulebatch.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(reschedulebatch.FieldFailureReason, field.TypeString)
	}
	_node = &RescheduleBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reschedulebatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
