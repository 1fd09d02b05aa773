// Code generated by ent, DO NOT EDIT.

package therapist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldUpdatedAt, v))
}

// CenterID applies equality check predicate on the "center_id" field. It's identical to CenterIDEQ.
func CenterID(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldCenterID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldDisplayName, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldSpecialty, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldPhone, v))
}

// MaxWeeklySessions applies equality check predicate on the "max_weekly_sessions" field. It's identical to MaxWeeklySessionsEQ.
func MaxWeeklySessions(v int) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldMaxWeeklySessions, v))
}

// IsAccepting applies equality check predicate on the "is_accepting" field. It's identical to IsAcceptingEQ.
func IsAccepting(v bool) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldIsAccepting, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldUpdatedAt, v))
}

// CenterIDEQ applies the EQ predicate on the "center_id" field.
func CenterIDEQ(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldCenterID, v))
}

// CenterIDNEQ applies the NEQ predicate on the "center_id" field.
func CenterIDNEQ(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldCenterID, v))
}

// CenterIDIn applies the In predicate on the "center_id" field.
func CenterIDIn(vs ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldCenterID, vs...))
}

// CenterIDNotIn applies the NotIn predicate on the "center_id" field.
func CenterIDNotIn(vs ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldCenterID, vs...))
}

// CenterIDGT applies the GT predicate on the "center_id" field.
func CenterIDGT(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldCenterID, v))
}

// CenterIDGTE applies the GTE predicate on the "center_id" field.
func CenterIDGTE(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldCenterID, v))
}

// CenterIDLT applies the LT predicate on the "center_id" field.
func CenterIDLT(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldCenterID, v))
}

// CenterIDLTE applies the LTE predicate on the "center_id" field.
func CenterIDLTE(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldCenterID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContainsFold(FieldDisplayName, v))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyIsNil applies the IsNil predicate on the "specialty" field.
func SpecialtyIsNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldIsNull(FieldSpecialty))
}

// SpecialtyNotNil applies the NotNil predicate on the "specialty" field.
func SpecialtyNotNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldNotNull(FieldSpecialty))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContainsFold(FieldSpecialty, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContainsFold(FieldPhone, v))
}

// MaxWeeklySessionsEQ applies the EQ predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsEQ(v int) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldMaxWeeklySessions, v))
}

// MaxWeeklySessionsNEQ applies the NEQ predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsNEQ(v int) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldMaxWeeklySessions, v))
}

// MaxWeeklySessionsIn applies the In predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsIn(vs ...int) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldMaxWeeklySessions, vs...))
}

// MaxWeeklySessionsNotIn applies the NotIn predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsNotIn(vs ...int) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldMaxWeeklySessions, vs...))
}

// MaxWeeklySessionsGT applies the GT predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsGT(v int) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldMaxWeeklySessions, v))
}

// MaxWeeklySessionsGTE applies the GTE predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsGTE(v int) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldMaxWeeklySessions, v))
}

// MaxWeeklySessionsLT applies the LT predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsLT(v int) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldMaxWeeklySessions, v))
}

// MaxWeeklySessionsLTE applies the LTE predicate on the "max_weekly_sessions" field.
func MaxWeeklySessionsLTE(v int) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldMaxWeeklySessions, v))
}

// IsAcceptingEQ applies the EQ predicate on the "is_accepting" field.
func IsAcceptingEQ(v bool) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldIsAccepting, v))
}

// IsAcceptingNEQ applies the NEQ predicate on the "is_accepting" field.
func IsAcceptingNEQ(v bool) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldIsAccepting, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Therapist) predicate.Therapist {
	return predicate.Therapist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Therapist) predicate.Therapist {
	return predicate.Therapist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Therapist) predicate.Therapist {
	return predicate.Therapist(sql.NotPredicates(p))
}
