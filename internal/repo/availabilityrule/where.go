// Code generated by ent, DO NOT EDIT.

package availabilityrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldTherapistID, v))
}

// CenterID applies equality check predicate on the "center_id" field. It's identical to CenterIDEQ.
func CenterID(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCenterID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDayOfWeek, v))
}

// StartHour applies equality check predicate on the "start_hour" field. It's identical to StartHourEQ.
func StartHour(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartHour, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartMinute, v))
}

// EndHour applies equality check predicate on the "end_hour" field. It's identical to EndHourEQ.
func EndHour(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndHour, v))
}

// EndMinute applies equality check predicate on the "end_minute" field. It's identical to EndMinuteEQ.
func EndMinute(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndMinute, v))
}

// ValidFrom applies equality check predicate on the "valid_from" field. It's identical to ValidFromEQ.
func ValidFrom(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldValidFrom, v))
}

// ValidUntil applies equality check predicate on the "valid_until" field. It's identical to ValidUntilEQ.
func ValidUntil(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldValidUntil, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldTherapistID, v))
}

// CenterIDEQ applies the EQ predicate on the "center_id" field.
func CenterIDEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCenterID, v))
}

// CenterIDNEQ applies the NEQ predicate on the "center_id" field.
func CenterIDNEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldCenterID, v))
}

// CenterIDIn applies the In predicate on the "center_id" field.
func CenterIDIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldCenterID, vs...))
}

// CenterIDNotIn applies the NotIn predicate on the "center_id" field.
func CenterIDNotIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldCenterID, vs...))
}

// CenterIDGT applies the GT predicate on the "center_id" field.
func CenterIDGT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldCenterID, v))
}

// CenterIDGTE applies the GTE predicate on the "center_id" field.
func CenterIDGTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldCenterID, v))
}

// CenterIDLT applies the LT predicate on the "center_id" field.
func CenterIDLT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldCenterID, v))
}

// CenterIDLTE applies the LTE predicate on the "center_id" field.
func CenterIDLTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldCenterID, v))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldDayOfWeek, v))
}

// StartHourEQ applies the EQ predicate on the "start_hour" field.
func StartHourEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartHour, v))
}

// StartHourNEQ applies the NEQ predicate on the "start_hour" field.
func StartHourNEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldStartHour, v))
}

// StartHourIn applies the In predicate on the "start_hour" field.
func StartHourIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldStartHour, vs...))
}

// StartHourNotIn applies the NotIn predicate on the "start_hour" field.
func StartHourNotIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldStartHour, vs...))
}

// StartHourGT applies the GT predicate on the "start_hour" field.
func StartHourGT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldStartHour, v))
}

// StartHourGTE applies the GTE predicate on the "start_hour" field.
func StartHourGTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldStartHour, v))
}

// StartHourLT applies the LT predicate on the "start_hour" field.
func StartHourLT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldStartHour, v))
}

// StartHourLTE applies the LTE predicate on the "start_hour" field.
func StartHourLTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldStartHour, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldStartMinute, v))
}

// EndHourEQ applies the EQ predicate on the "end_hour" field.
func EndHourEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndHour, v))
}

// EndHourNEQ applies the NEQ predicate on the "end_hour" field.
func EndHourNEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldEndHour, v))
}

// EndHourIn applies the In predicate on the "end_hour" field.
func EndHourIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldEndHour, vs...))
}

// EndHourNotIn applies the NotIn predicate on the "end_hour" field.
func EndHourNotIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldEndHour, vs...))
}

// EndHourGT applies the GT predicate on the "end_hour" field.
func EndHourGT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldEndHour, v))
}

// EndHourGTE applies the GTE predicate on the "end_hour" field.
func EndHourGTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldEndHour, v))
}

// EndHourLT applies the LT predicate on the "end_hour" field.
func EndHourLT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldEndHour, v))
}

// EndHourLTE applies the LTE predicate on the "end_hour" field.
func EndHourLTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldEndHour, v))
}

// EndMinuteEQ applies the EQ predicate on the "end_minute" field.
func EndMinuteEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndMinute, v))
}

// EndMinuteNEQ applies the NEQ predicate on the "end_minute" field.
func EndMinuteNEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldEndMinute, v))
}

// EndMinuteIn applies the In predicate on the "end_minute" field.
func EndMinuteIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldEndMinute, vs...))
}

// EndMinuteNotIn applies the NotIn predicate on the "end_minute" field.
func EndMinuteNotIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldEndMinute, vs...))
}

// EndMinuteGT applies the GT predicate on the "end_minute" field.
func EndMinuteGT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldEndMinute, v))
}

// EndMinuteGTE applies the GTE predicate on the "end_minute" field.
func EndMinuteGTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldEndMinute, v))
}

// EndMinuteLT applies the LT predicate on the "end_minute" field.
func EndMinuteLT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldEndMinute, v))
}

// EndMinuteLTE applies the LTE predicate on the "end_minute" field.
func EndMinuteLTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldEndMinute, v))
}

// ValidFromEQ applies the EQ predicate on the "valid_from" field.
func ValidFromEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldValidFrom, v))
}

// ValidFromNEQ applies the NEQ predicate on the "valid_from" field.
func ValidFromNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldValidFrom, v))
}

// ValidFromIn applies the In predicate on the "valid_from" field.
func ValidFromIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldValidFrom, vs...))
}

// ValidFromNotIn applies the NotIn predicate on the "valid_from" field.
func ValidFromNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldValidFrom, vs...))
}

// ValidFromGT applies the GT predicate on the "valid_from" field.
func ValidFromGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldValidFrom, v))
}

// ValidFromGTE applies the GTE predicate on the "valid_from" field.
func ValidFromGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldValidFrom, v))
}

// ValidFromLT applies the LT predicate on the "valid_from" field.
func ValidFromLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldValidFrom, v))
}

// ValidFromLTE applies the LTE predicate on the "valid_from" field.
func ValidFromLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldValidFrom, v))
}

// ValidUntilEQ applies the EQ predicate on the "valid_until" field.
func ValidUntilEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldValidUntil, v))
}

// ValidUntilNEQ applies the NEQ predicate on the "valid_until" field.
func ValidUntilNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldValidUntil, v))
}

// ValidUntilIn applies the In predicate on the "valid_until" field.
func ValidUntilIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldValidUntil, vs...))
}

// ValidUntilNotIn applies the NotIn predicate on the "valid_until" field.
func ValidUntilNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldValidUntil, vs...))
}

// ValidUntilGT applies the GT predicate on the "valid_until" field.
func ValidUntilGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldValidUntil, v))
}

// ValidUntilGTE applies the GTE predicate on the "valid_until" field.
func ValidUntilGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldValidUntil, v))
}

// ValidUntilLT applies the LT predicate on the "valid_until" field.
func ValidUntilLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldValidUntil, v))
}

// ValidUntilLTE applies the LTE predicate on the "valid_until" field.
func ValidUntilLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldValidUntil, v))
}

// ValidUntilIsNil applies the IsNil predicate on the "valid_until" field.
func ValidUntilIsNil() predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIsNull(FieldValidUntil))
}

// ValidUntilNotNil applies the NotNil predicate on the "valid_until" field.
func ValidUntilNotNil() predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotNull(FieldValidUntil))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.NotPredicates(p))
}
