// Code generated by ent, DO NOT EDIT.

package reschedulebatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldRequestID, v))
}

// CenterID applies equality check predicate on the "center_id" field. It's identical to CenterIDEQ.
func CenterID(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldCenterID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldEnrollmentID, v))
}

// SessionsRescheduled applies equality check predicate on the "sessions_rescheduled" field. It's identical to SessionsRescheduledEQ.
func SessionsRescheduled(v int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldSessionsRescheduled, v))
}

// OptimizationScore applies equality check predicate on the "optimization_score" field. It's identical to OptimizationScoreEQ.
func OptimizationScore(v float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldOptimizationScore, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// NewEndDate applies equality check predicate on the "new_end_date" field. It's identical to NewEndDateEQ.
func NewEndDate(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldNewEndDate, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldAppliedAt, v))
}

// RolledBackAt applies equality check predicate on the "rolled_back_at" field. It's identical to RolledBackAtEQ.
func RolledBackAt(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldRolledBackAt, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldFailureReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldUpdatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldRequestID, v))
}

// CenterIDEQ applies the EQ predicate on the "center_id" field.
func CenterIDEQ(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldCenterID, v))
}

// CenterIDNEQ applies the NEQ predicate on the "center_id" field.
func CenterIDNEQ(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldCenterID, v))
}

// CenterIDIn applies the In predicate on the "center_id" field.
func CenterIDIn(vs ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldCenterID, vs...))
}

// CenterIDNotIn applies the NotIn predicate on the "center_id" field.
func CenterIDNotIn(vs ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldCenterID, vs...))
}

// CenterIDGT applies the GT predicate on the "center_id" field.
func CenterIDGT(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldCenterID, v))
}

// CenterIDGTE applies the GTE predicate on the "center_id" field.
func CenterIDGTE(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldCenterID, v))
}

// CenterIDLT applies the LT predicate on the "center_id" field.
func CenterIDLT(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldCenterID, v))
}

// CenterIDLTE applies the LTE predicate on the "center_id" field.
func CenterIDLTE(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldCenterID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v uuid.UUID) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldEnrollmentID, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v Trigger) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v Trigger) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...Trigger) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...Trigger) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldTrigger, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldStatus, vs...))
}

// PreviousSessionsIsNil applies the IsNil predicate on the "previous_sessions" field.
func PreviousSessionsIsNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIsNull(FieldPreviousSessions))
}

// PreviousSessionsNotNil applies the NotNil predicate on the "previous_sessions" field.
func PreviousSessionsNotNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotNull(FieldPreviousSessions))
}

// ConflictsIsNil applies the IsNil predicate on the "conflicts" field.
func ConflictsIsNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIsNull(FieldConflicts))
}

// ConflictsNotNil applies the NotNil predicate on the "conflicts" field.
func ConflictsNotNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotNull(FieldConflicts))
}

// BlockersIsNil applies the IsNil predicate on the "blockers" field.
func BlockersIsNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIsNull(FieldBlockers))
}

// BlockersNotNil applies the NotNil predicate on the "blockers" field.
func BlockersNotNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotNull(FieldBlockers))
}

// SessionsRescheduledEQ applies the EQ predicate on the "sessions_rescheduled" field.
func SessionsRescheduledEQ(v int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldSessionsRescheduled, v))
}

// SessionsRescheduledNEQ applies the NEQ predicate on the "sessions_rescheduled" field.
func SessionsRescheduledNEQ(v int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldSessionsRescheduled, v))
}

// SessionsRescheduledIn applies the In predicate on the "sessions_rescheduled" field.
func SessionsRescheduledIn(vs ...int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldSessionsRescheduled, vs...))
}

// SessionsRescheduledNotIn applies the NotIn predicate on the "sessions_rescheduled" field.
func SessionsRescheduledNotIn(vs ...int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldSessionsRescheduled, vs...))
}

// SessionsRescheduledGT applies the GT predicate on the "sessions_rescheduled" field.
func SessionsRescheduledGT(v int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldSessionsRescheduled, v))
}

// SessionsRescheduledGTE applies the GTE predicate on the "sessions_rescheduled" field.
func SessionsRescheduledGTE(v int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldSessionsRescheduled, v))
}

// SessionsRescheduledLT applies the LT predicate on the "sessions_rescheduled" field.
func SessionsRescheduledLT(v int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldSessionsRescheduled, v))
}

// SessionsRescheduledLTE applies the LTE predicate on the "sessions_rescheduled" field.
func SessionsRescheduledLTE(v int) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldSessionsRescheduled, v))
}

// OptimizationScoreEQ applies the EQ predicate on the "optimization_score" field.
func OptimizationScoreEQ(v float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldOptimizationScore, v))
}

// OptimizationScoreNEQ applies the NEQ predicate on the "optimization_score" field.
func OptimizationScoreNEQ(v float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldOptimizationScore, v))
}

// OptimizationScoreIn applies the In predicate on the "optimization_score" field.
func OptimizationScoreIn(vs ...float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldOptimizationScore, vs...))
}

// OptimizationScoreNotIn applies the NotIn predicate on the "optimization_score" field.
func OptimizationScoreNotIn(vs ...float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldOptimizationScore, vs...))
}

// OptimizationScoreGT applies the GT predicate on the "optimization_score" field.
func OptimizationScoreGT(v float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldOptimizationScore, v))
}

// OptimizationScoreGTE applies the GTE predicate on the "optimization_score" field.
func OptimizationScoreGTE(v float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldOptimizationScore, v))
}

// OptimizationScoreLT applies the LT predicate on the "optimization_score" field.
func OptimizationScoreLT(v float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldOptimizationScore, v))
}

// OptimizationScoreLTE applies the LTE predicate on the "optimization_score" field.
func OptimizationScoreLTE(v float64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldOptimizationScore, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int64) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// NewEndDateEQ applies the EQ predicate on the "new_end_date" field.
func NewEndDateEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldNewEndDate, v))
}

// NewEndDateNEQ applies the NEQ predicate on the "new_end_date" field.
func NewEndDateNEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldNewEndDate, v))
}

// NewEndDateIn applies the In predicate on the "new_end_date" field.
func NewEndDateIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldNewEndDate, vs...))
}

// NewEndDateNotIn applies the NotIn predicate on the "new_end_date" field.
func NewEndDateNotIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldNewEndDate, vs...))
}

// NewEndDateGT applies the GT predicate on the "new_end_date" field.
func NewEndDateGT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldNewEndDate, v))
}

// NewEndDateGTE applies the GTE predicate on the "new_end_date" field.
func NewEndDateGTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldNewEndDate, v))
}

// NewEndDateLT applies the LT predicate on the "new_end_date" field.
func NewEndDateLT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldNewEndDate, v))
}

// NewEndDateLTE applies the LTE predicate on the "new_end_date" field.
func NewEndDateLTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldNewEndDate, v))
}

// NewEndDateIsNil applies the IsNil predicate on the "new_end_date" field.
func NewEndDateIsNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIsNull(FieldNewEndDate))
}

// NewEndDateNotNil applies the NotNil predicate on the "new_end_date" field.
func NewEndDateNotNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotNull(FieldNewEndDate))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldAppliedAt, v))
}

// AppliedAtIsNil applies the IsNil predicate on the "applied_at" field.
func AppliedAtIsNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIsNull(FieldAppliedAt))
}

// AppliedAtNotNil applies the NotNil predicate on the "applied_at" field.
func AppliedAtNotNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotNull(FieldAppliedAt))
}

// RolledBackAtEQ applies the EQ predicate on the "rolled_back_at" field.
func RolledBackAtEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldRolledBackAt, v))
}

// RolledBackAtNEQ applies the NEQ predicate on the "rolled_back_at" field.
func RolledBackAtNEQ(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldRolledBackAt, v))
}

// RolledBackAtIn applies the In predicate on the "rolled_back_at" field.
func RolledBackAtIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldRolledBackAt, vs...))
}

// RolledBackAtNotIn applies the NotIn predicate on the "rolled_back_at" field.
func RolledBackAtNotIn(vs ...time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldRolledBackAt, vs...))
}

// RolledBackAtGT applies the GT predicate on the "rolled_back_at" field.
func RolledBackAtGT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldRolledBackAt, v))
}

// RolledBackAtGTE applies the GTE predicate on the "rolled_back_at" field.
func RolledBackAtGTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldRolledBackAt, v))
}

// RolledBackAtLT applies the LT predicate on the "rolled_back_at" field.
func RolledBackAtLT(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldRolledBackAt, v))
}

// RolledBackAtLTE applies the LTE predicate on the "rolled_back_at" field.
func RolledBackAtLTE(v time.Time) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldRolledBackAt, v))
}

// RolledBackAtIsNil applies the IsNil predicate on the "rolled_back_at" field.
func RolledBackAtIsNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIsNull(FieldRolledBackAt))
}

// RolledBackAtNotNil applies the NotNil predicate on the "rolled_back_at" field.
func RolledBackAtNotNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotNull(FieldRolledBackAt))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.FieldContainsFold(FieldFailureReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RescheduleBatch) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RescheduleBatch) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RescheduleBatch) predicate.RescheduleBatch {
	return predicate.RescheduleBatch(sql.NotPredicates(p))
}
