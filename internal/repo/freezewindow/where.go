// Code generated by ent, DO NOT EDIT.

package freezewindow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldUpdatedAt, v))
}

// CenterID applies equality check predicate on the "center_id" field. It's identical to CenterIDEQ.
func CenterID(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldCenterID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldEnrollmentID, v))
}

// StartsOn applies equality check predicate on the "starts_on" field. It's identical to StartsOnEQ.
func StartsOn(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldStartsOn, v))
}

// EndsOn applies equality check predicate on the "ends_on" field. It's identical to EndsOnEQ.
func EndsOn(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldEndsOn, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldReason, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldBatchID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldUpdatedAt, v))
}

// CenterIDEQ applies the EQ predicate on the "center_id" field.
func CenterIDEQ(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldCenterID, v))
}

// CenterIDNEQ applies the NEQ predicate on the "center_id" field.
func CenterIDNEQ(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldCenterID, v))
}

// CenterIDIn applies the In predicate on the "center_id" field.
func CenterIDIn(vs ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldCenterID, vs...))
}

// CenterIDNotIn applies the NotIn predicate on the "center_id" field.
func CenterIDNotIn(vs ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldCenterID, vs...))
}

// CenterIDGT applies the GT predicate on the "center_id" field.
func CenterIDGT(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldCenterID, v))
}

// CenterIDGTE applies the GTE predicate on the "center_id" field.
func CenterIDGTE(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldCenterID, v))
}

// CenterIDLT applies the LT predicate on the "center_id" field.
func CenterIDLT(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldCenterID, v))
}

// CenterIDLTE applies the LTE predicate on the "center_id" field.
func CenterIDLTE(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldCenterID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldEnrollmentID, v))
}

// StartsOnEQ applies the EQ predicate on the "starts_on" field.
func StartsOnEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldStartsOn, v))
}

// StartsOnNEQ applies the NEQ predicate on the "starts_on" field.
func StartsOnNEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldStartsOn, v))
}

// StartsOnIn applies the In predicate on the "starts_on" field.
func StartsOnIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldStartsOn, vs...))
}

// StartsOnNotIn applies the NotIn predicate on the "starts_on" field.
func StartsOnNotIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldStartsOn, vs...))
}

// StartsOnGT applies the GT predicate on the "starts_on" field.
func StartsOnGT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldStartsOn, v))
}

// StartsOnGTE applies the GTE predicate on the "starts_on" field.
func StartsOnGTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldStartsOn, v))
}

// StartsOnLT applies the LT predicate on the "starts_on" field.
func StartsOnLT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldStartsOn, v))
}

// StartsOnLTE applies the LTE predicate on the "starts_on" field.
func StartsOnLTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldStartsOn, v))
}

// EndsOnEQ applies the EQ predicate on the "ends_on" field.
func EndsOnEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldEndsOn, v))
}

// EndsOnNEQ applies the NEQ predicate on the "ends_on" field.
func EndsOnNEQ(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldEndsOn, v))
}

// EndsOnIn applies the In predicate on the "ends_on" field.
func EndsOnIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldEndsOn, vs...))
}

// EndsOnNotIn applies the NotIn predicate on the "ends_on" field.
func EndsOnNotIn(vs ...time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldEndsOn, vs...))
}

// EndsOnGT applies the GT predicate on the "ends_on" field.
func EndsOnGT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldEndsOn, v))
}

// EndsOnGTE applies the GTE predicate on the "ends_on" field.
func EndsOnGTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldEndsOn, v))
}

// EndsOnLT applies the LT predicate on the "ends_on" field.
func EndsOnLT(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldEndsOn, v))
}

// EndsOnLTE applies the LTE predicate on the "ends_on" field.
func EndsOnLTE(v time.Time) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldEndsOn, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldContainsFold(FieldReason, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldStatus, vs...))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v uuid.UUID) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.FieldNotNull(FieldBatchID))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FreezeWindow) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FreezeWindow) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FreezeWindow) predicate.FreezeWindow {
	return predicate.FreezeWindow(sql.NotPredicates(p))
}
