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
	"github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/google/uuid"
)

// EnrollmentUpdate is the builder for updating Enrollment entities.
type EnrollmentUpdate struct {
	config
	hooks    []Hook
	mutation *EnrollmentMutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdate) Where(ps ...predicate.Enrollment) *EnrollmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentUpdate) SetUpdatedAt(v time.Time) *EnrollmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *EnrollmentUpdate) SetCenterID(v uuid.UUID) *EnrollmentUpdate {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableCenterID(v *uuid.UUID) *EnrollmentUpdate {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *EnrollmentUpdate) SetStudentID(v uuid.UUID) *EnrollmentUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableStudentID(v *uuid.UUID) *EnrollmentUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *EnrollmentUpdate) SetTherapistID(v uuid.UUID) *EnrollmentUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableTherapistID(v *uuid.UUID) *EnrollmentUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *EnrollmentUpdate) SetRoomID(v uuid.UUID) *EnrollmentUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableRoomID(v *uuid.UUID) *EnrollmentUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *EnrollmentUpdate) ClearRoomID() *EnrollmentUpdate {
	_u.mutation.ClearRoomID()
	return _u
}

// SetGuardianPhoneEnc sets the "guardian_phone_enc" field.
func (_u *EnrollmentUpdate) SetGuardianPhoneEnc(v string) *EnrollmentUpdate {
	_u.mutation.SetGuardianPhoneEnc(v)
	return _u
}

// SetNillableGuardianPhoneEnc sets the "guardian_phone_enc" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableGuardianPhoneEnc(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetGuardianPhoneEnc(*v)
	}
	return _u
}

// ClearGuardianPhoneEnc clears the value of the "guardian_phone_enc" field.
func (_u *EnrollmentUpdate) ClearGuardianPhoneEnc() *EnrollmentUpdate {
	_u.mutation.ClearGuardianPhoneEnc()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EnrollmentUpdate) SetStartDate(v time.Time) *EnrollmentUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableStartDate(v *time.Time) *EnrollmentUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *EnrollmentUpdate) SetEndDate(v time.Time) *EnrollmentUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableEndDate(v *time.Time) *EnrollmentUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *EnrollmentUpdate) SetSessionCount(v int) *EnrollmentUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableSessionCount(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *EnrollmentUpdate) AddSessionCount(v int) *EnrollmentUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetSessionsPerWeek sets the "sessions_per_week" field.
func (_u *EnrollmentUpdate) SetSessionsPerWeek(v int) *EnrollmentUpdate {
	_u.mutation.ResetSessionsPerWeek()
	_u.mutation.SetSessionsPerWeek(v)
	return _u
}

// SetNillableSessionsPerWeek sets the "sessions_per_week" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableSessionsPerWeek(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetSessionsPerWeek(*v)
	}
	return _u
}

// AddSessionsPerWeek adds value to the "sessions_per_week" field.
func (_u *EnrollmentUpdate) AddSessionsPerWeek(v int) *EnrollmentUpdate {
	_u.mutation.AddSessionsPerWeek(v)
	return _u
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (_u *EnrollmentUpdate) SetSessionDurationMin(v int) *EnrollmentUpdate {
	_u.mutation.ResetSessionDurationMin()
	_u.mutation.SetSessionDurationMin(v)
	return _u
}

// SetNillableSessionDurationMin sets the "session_duration_min" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableSessionDurationMin(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetSessionDurationMin(*v)
	}
	return _u
}

// AddSessionDurationMin adds value to the "session_duration_min" field.
func (_u *EnrollmentUpdate) AddSessionDurationMin(v int) *EnrollmentUpdate {
	_u.mutation.AddSessionDurationMin(v)
	return _u
}

// SetPreferredDays sets the "preferred_days" field.
func (_u *EnrollmentUpdate) SetPreferredDays(v []int) *EnrollmentUpdate {
	_u.mutation.SetPreferredDays(v)
	return _u
}

// AppendPreferredDays appends value to the "preferred_days" field.
func (_u *EnrollmentUpdate) AppendPreferredDays(v []int) *EnrollmentUpdate {
	_u.mutation.AppendPreferredDays(v)
	return _u
}

// ClearPreferredDays clears the value of the "preferred_days" field.
func (_u *EnrollmentUpdate) ClearPreferredDays() *EnrollmentUpdate {
	_u.mutation.ClearPreferredDays()
	return _u
}

// SetAvoidDays sets the "avoid_days" field.
func (_u *EnrollmentUpdate) SetAvoidDays(v []int) *EnrollmentUpdate {
	_u.mutation.SetAvoidDays(v)
	return _u
}

// AppendAvoidDays appends value to the "avoid_days" field.
func (_u *EnrollmentUpdate) AppendAvoidDays(v []int) *EnrollmentUpdate {
	_u.mutation.AppendAvoidDays(v)
	return _u
}

// ClearAvoidDays clears the value of the "avoid_days" field.
func (_u *EnrollmentUpdate) ClearAvoidDays() *EnrollmentUpdate {
	_u.mutation.ClearAvoidDays()
	return _u
}

// SetPreferredWindows sets the "preferred_windows" field.
func (_u *EnrollmentUpdate) SetPreferredWindows(v []schema.TimeWindow) *EnrollmentUpdate {
	_u.mutation.SetPreferredWindows(v)
	return _u
}

// AppendPreferredWindows appends value to the "preferred_windows" field.
func (_u *EnrollmentUpdate) AppendPreferredWindows(v []schema.TimeWindow) *EnrollmentUpdate {
	_u.mutation.AppendPreferredWindows(v)
	return _u
}

// ClearPreferredWindows clears the value of the "preferred_windows" field.
func (_u *EnrollmentUpdate) ClearPreferredWindows() *EnrollmentUpdate {
	_u.mutation.ClearPreferredWindows()
	return _u
}

// SetAvoidWindows sets the "avoid_windows" field.
func (_u *EnrollmentUpdate) SetAvoidWindows(v []schema.TimeWindow) *EnrollmentUpdate {
	_u.mutation.SetAvoidWindows(v)
	return _u
}

// AppendAvoidWindows appends value to the "avoid_windows" field.
func (_u *EnrollmentUpdate) AppendAvoidWindows(v []schema.TimeWindow) *EnrollmentUpdate {
	_u.mutation.AppendAvoidWindows(v)
	return _u
}

// ClearAvoidWindows clears the value of the "avoid_windows" field.
func (_u *EnrollmentUpdate) ClearAvoidWindows() *EnrollmentUpdate {
	_u.mutation.ClearAvoidWindows()
	return _u
}

// SetFlexibility sets the "flexibility" field.
func (_u *EnrollmentUpdate) SetFlexibility(v float64) *EnrollmentUpdate {
	_u.mutation.ResetFlexibility()
	_u.mutation.SetFlexibility(v)
	return _u
}

// SetNillableFlexibility sets the "flexibility" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableFlexibility(v *float64) *EnrollmentUpdate {
	if v != nil {
		_u.SetFlexibility(*v)
	}
	return _u
}

// AddFlexibility adds value to the "flexibility" field.
func (_u *EnrollmentUpdate) AddFlexibility(v float64) *EnrollmentUpdate {
	_u.mutation.AddFlexibility(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrollmentUpdate) SetStatus(v enrollment.Status) *EnrollmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableStatus(v *enrollment.Status) *EnrollmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdate) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrollmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrollmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdate) check() error {
	if v, ok := _u.mutation.SessionCount(); ok {
		if err := enrollment.SessionCountValidator(v); err != nil {
			return &ValidationError{Name: "session_count", err: fmt.Errorf(`repo: validator failed for field "Enrollment.session_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionsPerWeek(); ok {
		if err := enrollment.SessionsPerWeekValidator(v); err != nil {
			return &ValidationError{Name: "sessions_per_week", err: fmt.Errorf(`repo: validator failed for field "Enrollment.sessions_per_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := enrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Enrollment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrollmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(enrollment.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(enrollment.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(enrollment.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(enrollment.FieldRoomID, field.TypeUUID, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(enrollment.FieldRoomID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GuardianPhoneEnc(); ok {
		_spec.SetField(enrollment.FieldGuardianPhoneEnc, field.TypeString, value)
	}
	if _u.mutation.GuardianPhoneEncCleared() {
		_spec.ClearField(enrollment.FieldGuardianPhoneEnc, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(enrollment.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(enrollment.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(enrollment.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(enrollment.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsPerWeek(); ok {
		_spec.SetField(enrollment.FieldSessionsPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsPerWeek(); ok {
		_spec.AddField(enrollment.FieldSessionsPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionDurationMin(); ok {
		_spec.SetField(enrollment.FieldSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMin(); ok {
		_spec.AddField(enrollment.FieldSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredDays(); ok {
		_spec.SetField(enrollment.FieldPreferredDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldPreferredDays, value)
		})
	}
	if _u.mutation.PreferredDaysCleared() {
		_spec.ClearField(enrollment.FieldPreferredDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvoidDays(); ok {
		_spec.SetField(enrollment.FieldAvoidDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvoidDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldAvoidDays, value)
		})
	}
	if _u.mutation.AvoidDaysCleared() {
		_spec.ClearField(enrollment.FieldAvoidDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreferredWindows(); ok {
		_spec.SetField(enrollment.FieldPreferredWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldPreferredWindows, value)
		})
	}
	if _u.mutation.PreferredWindowsCleared() {
		_spec.ClearField(enrollment.FieldPreferredWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvoidWindows(); ok {
		_spec.SetField(enrollment.FieldAvoidWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvoidWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldAvoidWindows, value)
		})
	}
	if _u.mutation.AvoidWindowsCleared() {
		_spec.ClearField(enrollment.FieldAvoidWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flexibility(); ok {
		_spec.SetField(enrollment.FieldFlexibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFlexibility(); ok {
		_spec.AddField(enrollment.FieldFlexibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrollmentUpdateOne is the builder for updating a single Enrollment entity.
type EnrollmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrollmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentUpdateOne) SetUpdatedAt(v time.Time) *EnrollmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCenterID sets the "center_id" field.
func (_u *EnrollmentUpdateOne) SetCenterID(v uuid.UUID) *EnrollmentUpdateOne {
	_u.mutation.SetCenterID(v)
	return _u
}

// SetNillableCenterID sets the "center_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableCenterID(v *uuid.UUID) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetCenterID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *EnrollmentUpdateOne) SetStudentID(v uuid.UUID) *EnrollmentUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableStudentID(v *uuid.UUID) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *EnrollmentUpdateOne) SetTherapistID(v uuid.UUID) *EnrollmentUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableTherapistID(v *uuid.UUID) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *EnrollmentUpdateOne) SetRoomID(v uuid.UUID) *EnrollmentUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableRoomID(v *uuid.UUID) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *EnrollmentUpdateOne) ClearRoomID() *EnrollmentUpdateOne {
	_u.mutation.ClearRoomID()
	return _u
}

// SetGuardianPhoneEnc sets the "guardian_phone_enc" field.
func (_u *EnrollmentUpdateOne) SetGuardianPhoneEnc(v string) *EnrollmentUpdateOne {
	_u.mutation.SetGuardianPhoneEnc(v)
	return _u
}

// SetNillableGuardianPhoneEnc sets the "guardian_phone_enc" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableGuardianPhoneEnc(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetGuardianPhoneEnc(*v)
	}
	return _u
}

// ClearGuardianPhoneEnc clears the value of the "guardian_phone_enc" field.
func (_u *EnrollmentUpdateOne) ClearGuardianPhoneEnc() *EnrollmentUpdateOne {
	_u.mutation.ClearGuardianPhoneEnc()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EnrollmentUpdateOne) SetStartDate(v time.Time) *EnrollmentUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableStartDate(v *time.Time) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *EnrollmentUpdateOne) SetEndDate(v time.Time) *EnrollmentUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableEndDate(v *time.Time) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *EnrollmentUpdateOne) SetSessionCount(v int) *EnrollmentUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableSessionCount(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *EnrollmentUpdateOne) AddSessionCount(v int) *EnrollmentUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetSessionsPerWeek sets the "sessions_per_week" field.
func (_u *EnrollmentUpdateOne) SetSessionsPerWeek(v int) *EnrollmentUpdateOne {
	_u.mutation.ResetSessionsPerWeek()
	_u.mutation.SetSessionsPerWeek(v)
	return _u
}

// SetNillableSessionsPerWeek sets the "sessions_per_week" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableSessionsPerWeek(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetSessionsPerWeek(*v)
	}
	return _u
}

// AddSessionsPerWeek adds value to the "sessions_per_week" field.
func (_u *EnrollmentUpdateOne) AddSessionsPerWeek(v int) *EnrollmentUpdateOne {
	_u.mutation.AddSessionsPerWeek(v)
	return _u
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (_u *EnrollmentUpdateOne) SetSessionDurationMin(v int) *EnrollmentUpdateOne {
	_u.mutation.ResetSessionDurationMin()
	_u.mutation.SetSessionDurationMin(v)
	return _u
}

// SetNillableSessionDurationMin sets the "session_duration_min" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableSessionDurationMin(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetSessionDurationMin(*v)
	}
	return _u
}

// AddSessionDurationMin adds value to the "session_duration_min" field.
func (_u *EnrollmentUpdateOne) AddSessionDurationMin(v int) *EnrollmentUpdateOne {
	_u.mutation.AddSessionDurationMin(v)
	return _u
}

// SetPreferredDays sets the "preferred_days" field.
func (_u *EnrollmentUpdateOne) SetPreferredDays(v []int) *EnrollmentUpdateOne {
	_u.mutation.SetPreferredDays(v)
	return _u
}

// AppendPreferredDays appends value to the "preferred_days" field.
func (_u *EnrollmentUpdateOne) AppendPreferredDays(v []int) *EnrollmentUpdateOne {
	_u.mutation.AppendPreferredDays(v)
	return _u
}

// ClearPreferredDays clears the value of the "preferred_days" field.
func (_u *EnrollmentUpdateOne) ClearPreferredDays() *EnrollmentUpdateOne {
	_u.mutation.ClearPreferredDays()
	return _u
}

// SetAvoidDays sets the "avoid_days" field.
func (_u *EnrollmentUpdateOne) SetAvoidDays(v []int) *EnrollmentUpdateOne {
	_u.mutation.SetAvoidDays(v)
	return _u
}

// AppendAvoidDays appends value to the "avoid_days" field.
func (_u *EnrollmentUpdateOne) AppendAvoidDays(v []int) *EnrollmentUpdateOne {
	_u.mutation.AppendAvoidDays(v)
	return _u
}

// ClearAvoidDays clears the value of the "avoid_days" field.
func (_u *EnrollmentUpdateOne) ClearAvoidDays() *EnrollmentUpdateOne {
	_u.mutation.ClearAvoidDays()
	return _u
}

// SetPreferredWindows sets the "preferred_windows" field.
func (_u *EnrollmentUpdateOne) SetPreferredWindows(v []schema.TimeWindow) *EnrollmentUpdateOne {
	_u.mutation.SetPreferredWindows(v)
	return _u
}

// AppendPreferredWindows appends value to the "preferred_windows" field.
func (_u *EnrollmentUpdateOne) AppendPreferredWindows(v []schema.TimeWindow) *EnrollmentUpdateOne {
	_u.mutation.AppendPreferredWindows(v)
	return _u
}

// ClearPreferredWindows clears the value of the "preferred_windows" field.
func (_u *EnrollmentUpdateOne) ClearPreferredWindows() *EnrollmentUpdateOne {
	_u.mutation.ClearPreferredWindows()
	return _u
}

// SetAvoidWindows sets the "avoid_windows" field.
func (_u *EnrollmentUpdateOne) SetAvoidWindows(v []schema.TimeWindow) *EnrollmentUpdateOne {
	_u.mutation.SetAvoidWindows(v)
	return _u
}

// AppendAvoidWindows appends value to the "avoid_windows" field.
func (_u *EnrollmentUpdateOne) AppendAvoidWindows(v []schema.TimeWindow) *EnrollmentUpdateOne {
	_u.mutation.AppendAvoidWindows(v)
	return _u
}

// ClearAvoidWindows clears the value of the "avoid_windows" field.
func (_u *EnrollmentUpdateOne) ClearAvoidWindows() *EnrollmentUpdateOne {
	_u.mutation.ClearAvoidWindows()
	return _u
}

// SetFlexibility sets the "flexibility" field.
func (_u *EnrollmentUpdateOne) SetFlexibility(v float64) *EnrollmentUpdateOne {
	_u.mutation.ResetFlexibility()
	_u.mutation.SetFlexibility(v)
	return _u
}

// SetNillableFlexibility sets the "flexibility" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableFlexibility(v *float64) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetFlexibility(*v)
	}
	return _u
}

// AddFlexibility adds value to the "flexibility" field.
func (_u *EnrollmentUpdateOne) AddFlexibility(v float64) *EnrollmentUpdateOne {
	_u.mutation.AddFlexibility(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrollmentUpdateOne) SetStatus(v enrollment.Status) *EnrollmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableStatus(v *enrollment.Status) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdateOne) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdateOne) Where(ps ...predicate.Enrollment) *EnrollmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrollmentUpdateOne) Select(field string, fields ...string) *EnrollmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Enrollment entity.
func (_u *EnrollmentUpdateOne) Save(ctx context.Context) (*Enrollment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) SaveX(ctx context.Context) *Enrollment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrollmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdateOne) check() error {
	if v, ok := _u.mutation.SessionCount(); ok {
		if err := enrollment.SessionCountValidator(v); err != nil {
			return &ValidationError{Name: "session_count", err: fmt.Errorf(`repo: validator failed for field "Enrollment.session_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionsPerWeek(); ok {
		if err := enrollment.SessionsPerWeekValidator(v); err != nil {
			return &ValidationError{Name: "sessions_per_week", err: fmt.Errorf(`repo: validator failed for field "Enrollment.sessions_per_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := enrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Enrollment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrollmentUpdateOne) sqlSave(ctx context.Context) (_node *Enrollment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Enrollment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrollment.FieldID)
		for _, f := range fields {
			if !enrollment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != enrollment.FieldID {
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
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CenterID(); ok {
		_spec.SetField(enrollment.FieldCenterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(enrollment.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(enrollment.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(enrollment.FieldRoomID, field.TypeUUID, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(enrollment.FieldRoomID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GuardianPhoneEnc(); ok {
		_spec.SetField(enrollment.FieldGuardianPhoneEnc, field.TypeString, value)
	}
	if _u.mutation.GuardianPhoneEncCleared() {
		_spec.ClearField(enrollment.FieldGuardianPhoneEnc, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(enrollment.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(enrollment.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(enrollment.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(enrollment.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsPerWeek(); ok {
		_spec.SetField(enrollment.FieldSessionsPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsPerWeek(); ok {
		_spec.AddField(enrollment.FieldSessionsPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionDurationMin(); ok {
		_spec.SetField(enrollment.FieldSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMin(); ok {
		_spec.AddField(enrollment.FieldSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredDays(); ok {
		_spec.SetField(enrollment.FieldPreferredDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldPreferredDays, value)
		})
	}
	if _u.mutation.PreferredDaysCleared() {
		_spec.ClearField(enrollment.FieldPreferredDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvoidDays(); ok {
		_spec.SetField(enrollment.FieldAvoidDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvoidDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldAvoidDays, value)
		})
	}
	if _u.mutation.AvoidDaysCleared() {
		_spec.ClearField(enrollment.FieldAvoidDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreferredWindows(); ok {
		_spec.SetField(enrollment.FieldPreferredWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldPreferredWindows, value)
		})
	}
	if _u.mutation.PreferredWindowsCleared() {
		_spec.ClearField(enrollment.FieldPreferredWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvoidWindows(); ok {
		_spec.SetField(enrollment.FieldAvoidWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvoidWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldAvoidWindows, value)
		})
	}
	if _u.mutation.AvoidWindowsCleared() {
		_spec.ClearField(enrollment.FieldAvoidWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flexibility(); ok {
		_spec.SetField(enrollment.FieldFlexibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFlexibility(); ok {
		_spec.AddField(enrollment.FieldFlexibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeEnum, value)
	}
	_node = &Enrollment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
