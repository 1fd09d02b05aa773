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
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	"github.com/google/uuid"
)

// TherapySessionUpdate is the builder for updating TherapySession entities.
type TherapySessionUpdate struct {
	config
	hooks    []Hook
	mutation *TherapySessionMutation
}

// Where appends a list predicates to the TherapySessionUpdate builder.
func (_u *TherapySessionUpdate) Where(ps ...predicate.TherapySession) *TherapySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapySessionUpdate) SetUpdatedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *TherapySessionUpdate) SetCenterID(v uuid.UUID) *TherapySessionUpdate {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableCenterID(v *uuid.UUID) *TherapySessionUpdate {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *TherapySessionUpdate) SetEnrollmentID(v uuid.UUID) *TherapySessionUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableEnrollmentID(v *uuid.UUID) *TherapySessionUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *TherapySessionUpdate) SetTherapistID(v uuid.UUID) *TherapySessionUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableTherapistID(v *uuid.UUID) *TherapySessionUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TherapySessionUpdate) SetStudentID(v uuid.UUID) *TherapySessionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableStudentID(v *uuid.UUID) *TherapySessionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *TherapySessionUpdate) SetRoomID(v uuid.UUID) *TherapySessionUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableRoomID(v *uuid.UUID) *TherapySessionUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *TherapySessionUpdate) ClearRoomID() *TherapySessionUpdate {
	_u.mutation.ClearRoomID()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TherapySessionUpdate) SetStartTime(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableStartTime(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TherapySessionUpdate) SetEndTime(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableEndTime(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TherapySessionUpdate) SetStatus(v therapysession.Status) *TherapySessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableStatus(v *therapysession.Status) *TherapySessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedByBatchID sets the "generated_by_batch_id" field.
func (_u *TherapySessionUpdate) SetGeneratedByBatchID(v uuid.UUID) *TherapySessionUpdate {
	_u.mutation.SetGeneratedByBatchID(v)
	return _u
}

// SetNillableGeneratedByBatchID sets the "generated_by_batch_id" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableGeneratedByBatchID(v *uuid.UUID) *TherapySessionUpdate {
	if v != nil {
		_u.SetGeneratedByBatchID(*v)
	}
	return _u
}

// ClearGeneratedByBatchID clears the value of the "generated_by_batch_id" field.
func (_u *TherapySessionUpdate) ClearGeneratedByBatchID() *TherapySessionUpdate {
	_u.mutation.ClearGeneratedByBatchID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TherapySessionUpdate) SetNotes(v string) *TherapySessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableNotes(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TherapySessionUpdate) ClearNotes() *TherapySessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TherapySessionUpdate) SetCompletedAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableCompletedAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TherapySessionUpdate) ClearCompletedAt() *TherapySessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *TherapySessionUpdate) SetCancelledAt(v time.Time) *TherapySessionUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableCancelledAt(v *time.Time) *TherapySessionUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *TherapySessionUpdate) ClearCancelledAt() *TherapySessionUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *TherapySessionUpdate) SetCancellationReason(v string) *TherapySessionUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *TherapySessionUpdate) SetNillableCancellationReason(v *string) *TherapySessionUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *TherapySessionUpdate) ClearCancellationReason() *TherapySessionUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// Mutation returns the TherapySessionMutation object of the builder.
func (_u *TherapySessionUpdate) Mutation() *TherapySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapySessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapySessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapysession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapySessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := therapysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapySession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapysession.Table, therapysession.Columns, sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapysession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(therapysession.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(therapysession.FieldEnrollmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(therapysession.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(therapysession.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(therapysession.FieldRoomID, field.TypeUUID, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(therapysession.FieldRoomID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(therapysession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(therapysession.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(therapysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedByBatchID(); ok {
		_spec.SetField(therapysession.FieldGeneratedByBatchID, field.TypeUUID, value)
	}
	if _u.mutation.GeneratedByBatchIDCleared() {
		_spec.ClearField(therapysession.FieldGeneratedByBatchID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(therapysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(therapysession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(therapysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(therapysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(therapysession.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(therapysession.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(therapysession.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(therapysession.FieldCancellationReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapySessionUpdateOne is the builder for updating a single TherapySession entity.
type TherapySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapySessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapySessionUpdateOne) SetUpdatedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *TherapySessionUpdateOne) SetCenterID(v uuid.UUID) *TherapySessionUpdateOne {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableCenterID(v *uuid.UUID) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *TherapySessionUpdateOne) SetEnrollmentID(v uuid.UUID) *TherapySessionUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableEnrollmentID(v *uuid.UUID) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *TherapySessionUpdateOne) SetTherapistID(v uuid.UUID) *TherapySessionUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableTherapistID(v *uuid.UUID) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TherapySessionUpdateOne) SetStudentID(v uuid.UUID) *TherapySessionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableStudentID(v *uuid.UUID) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *TherapySessionUpdateOne) SetRoomID(v uuid.UUID) *TherapySessionUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableRoomID(v *uuid.UUID) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *TherapySessionUpdateOne) ClearRoomID() *TherapySessionUpdateOne {
	_u.mutation.ClearRoomID()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TherapySessionUpdateOne) SetStartTime(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableStartTime(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TherapySessionUpdateOne) SetEndTime(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableEndTime(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TherapySessionUpdateOne) SetStatus(v therapysession.Status) *TherapySessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableStatus(v *therapysession.Status) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedByBatchID sets the "generated_by_batch_id" field.
func (_u *TherapySessionUpdateOne) SetGeneratedByBatchID(v uuid.UUID) *TherapySessionUpdateOne {
	_u.mutation.SetGeneratedByBatchID(v)
	return _u
}

// SetNillableGeneratedByBatchID sets the "generated_by_batch_id" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableGeneratedByBatchID(v *uuid.UUID) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetGeneratedByBatchID(*v)
	}
	return _u
}

// ClearGeneratedByBatchID clears the value of the "generated_by_batch_id" field.
func (_u *TherapySessionUpdateOne) ClearGeneratedByBatchID() *TherapySessionUpdateOne {
	_u.mutation.ClearGeneratedByBatchID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TherapySessionUpdateOne) SetNotes(v string) *TherapySessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableNotes(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TherapySessionUpdateOne) ClearNotes() *TherapySessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TherapySessionUpdateOne) SetCompletedAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableCompletedAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TherapySessionUpdateOne) ClearCompletedAt() *TherapySessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *TherapySessionUpdateOne) SetCancelledAt(v time.Time) *TherapySessionUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableCancelledAt(v *time.Time) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *TherapySessionUpdateOne) ClearCancelledAt() *TherapySessionUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *TherapySessionUpdateOne) SetCancellationReason(v string) *TherapySessionUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *TherapySessionUpdateOne) SetNillableCancellationReason(v *string) *TherapySessionUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *TherapySessionUpdateOne) ClearCancellationReason() *TherapySessionUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// Mutation returns the TherapySessionMutation object of the builder.
func (_u *TherapySessionUpdateOne) Mutation() *TherapySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TherapySessionUpdate builder.
func (_u *TherapySessionUpdateOne) Where(ps ...predicate.TherapySession) *TherapySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapySessionUpdateOne) Select(field string, fields ...string) *TherapySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TherapySession entity.
func (_u *TherapySessionUpdateOne) Save(ctx context.Context) (*TherapySession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapySessionUpdateOne) SaveX(ctx context.Context) *TherapySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapySessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapysession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapySessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := therapysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapySession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapySessionUpdateOne) sqlSave(ctx context.Context) (_node *TherapySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapysession.Table, therapysession.Columns, sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TherapySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapysession.FieldID)
		for _, f := range fields {
			if !therapysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapysession.FieldID {
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
		_spec.SetField(therapysession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(therapysession.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(therapysession.FieldEnrollmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(therapysession.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(therapysession.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(therapysession.FieldRoomID, field.TypeUUID, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(therapysession.FieldRoomID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(therapysession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(therapysession.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(therapysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedByBatchID(); ok {
		_spec.SetField(therapysession.FieldGeneratedByBatchID, field.TypeUUID, value)
	}
	if _u.mutation.GeneratedByBatchIDCleared() {
		_spec.ClearField(therapysession.FieldGeneratedByBatchID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(therapysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(therapysession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(therapysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(therapysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(therapysession.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(therapysession.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(therapysession.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(therapysession.FieldCancellationReason, field.TypeString)
	}
	_node = &TherapySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
