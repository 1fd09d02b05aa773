// Code generated by ent, DO NOT EDIT.

package enrollment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldUpdatedAt, v))
}

// CenterID applies equality check predicate on the "center_id" field. It's identical to CenterIDEQ.
func CenterID(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldCenterID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStudentID, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldTherapistID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldRoomID, v))
}

// GuardianPhoneEnc applies equality check predicate on the "guardian_phone_enc" field. It's identical to GuardianPhoneEncEQ.
func GuardianPhoneEnc(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldGuardianPhoneEnc, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldEndDate, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldSessionCount, v))
}

// SessionsPerWeek applies equality check predicate on the "sessions_per_week" field. It's identical to SessionsPerWeekEQ.
func SessionsPerWeek(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldSessionsPerWeek, v))
}

// SessionDurationMin applies equality check predicate on the "session_duration_min" field. It's identical to SessionDurationMinEQ.
func SessionDurationMin(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldSessionDurationMin, v))
}

// Flexibility applies equality check predicate on the "flexibility" field. It's identical to FlexibilityEQ.
func Flexibility(v float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldFlexibility, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldUpdatedAt, v))
}

// CenterIDEQ applies the EQ predicate on the "center_id" field.
func CenterIDEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldCenterID, v))
}

// CenterIDNEQ applies the NEQ predicate on the "center_id" field.
func CenterIDNEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldCenterID, v))
}

// CenterIDIn applies the In predicate on the "center_id" field.
func CenterIDIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldCenterID, vs...))
}

// CenterIDNotIn applies the NotIn predicate on the "center_id" field.
func CenterIDNotIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldCenterID, vs...))
}

// CenterIDGT applies the GT predicate on the "center_id" field.
func CenterIDGT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldCenterID, v))
}

// CenterIDGTE applies the GTE predicate on the "center_id" field.
func CenterIDGTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldCenterID, v))
}

// CenterIDLT applies the LT predicate on the "center_id" field.
func CenterIDLT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldCenterID, v))
}

// CenterIDLTE applies the LTE predicate on the "center_id" field.
func CenterIDLTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldCenterID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldStudentID, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldTherapistID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v uuid.UUID) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDIsNil applies the IsNil predicate on the "room_id" field.
func RoomIDIsNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIsNull(FieldRoomID))
}

// RoomIDNotNil applies the NotNil predicate on the "room_id" field.
func RoomIDNotNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotNull(FieldRoomID))
}

// GuardianPhoneEncEQ applies the EQ predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncNEQ applies the NEQ predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncIn applies the In predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldGuardianPhoneEnc, vs...))
}

// GuardianPhoneEncNotIn applies the NotIn predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldGuardianPhoneEnc, vs...))
}

// GuardianPhoneEncGT applies the GT predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncGTE applies the GTE predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncLT applies the LT predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncLTE applies the LTE predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncContains applies the Contains predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncHasPrefix applies the HasPrefix predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncHasSuffix applies the HasSuffix predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncIsNil applies the IsNil predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncIsNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIsNull(FieldGuardianPhoneEnc))
}

// GuardianPhoneEncNotNil applies the NotNil predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncNotNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotNull(FieldGuardianPhoneEnc))
}

// GuardianPhoneEncEqualFold applies the EqualFold predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldGuardianPhoneEnc, v))
}

// GuardianPhoneEncContainsFold applies the ContainsFold predicate on the "guardian_phone_enc" field.
func GuardianPhoneEncContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldGuardianPhoneEnc, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldEndDate, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldSessionCount, v))
}

// SessionsPerWeekEQ applies the EQ predicate on the "sessions_per_week" field.
func SessionsPerWeekEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldSessionsPerWeek, v))
}

// SessionsPerWeekNEQ applies the NEQ predicate on the "sessions_per_week" field.
func SessionsPerWeekNEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldSessionsPerWeek, v))
}

// SessionsPerWeekIn applies the In predicate on the "sessions_per_week" field.
func SessionsPerWeekIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldSessionsPerWeek, vs...))
}

// SessionsPerWeekNotIn applies the NotIn predicate on the "sessions_per_week" field.
func SessionsPerWeekNotIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldSessionsPerWeek, vs...))
}

// SessionsPerWeekGT applies the GT predicate on the "sessions_per_week" field.
func SessionsPerWeekGT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldSessionsPerWeek, v))
}

// SessionsPerWeekGTE applies the GTE predicate on the "sessions_per_week" field.
func SessionsPerWeekGTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldSessionsPerWeek, v))
}

// SessionsPerWeekLT applies the LT predicate on the "sessions_per_week" field.
func SessionsPerWeekLT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldSessionsPerWeek, v))
}

// SessionsPerWeekLTE applies the LTE predicate on the "sessions_per_week" field.
func SessionsPerWeekLTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldSessionsPerWeek, v))
}

// SessionDurationMinEQ applies the EQ predicate on the "session_duration_min" field.
func SessionDurationMinEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldSessionDurationMin, v))
}

// SessionDurationMinNEQ applies the NEQ predicate on the "session_duration_min" field.
func SessionDurationMinNEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldSessionDurationMin, v))
}

// SessionDurationMinIn applies the In predicate on the "session_duration_min" field.
func SessionDurationMinIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldSessionDurationMin, vs...))
}

// SessionDurationMinNotIn applies the NotIn predicate on the "session_duration_min" field.
func SessionDurationMinNotIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldSessionDurationMin, vs...))
}

// SessionDurationMinGT applies the GT predicate on the "session_duration_min" field.
func SessionDurationMinGT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldSessionDurationMin, v))
}

// SessionDurationMinGTE applies the GTE predicate on the "session_duration_min" field.
func SessionDurationMinGTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldSessionDurationMin, v))
}

// SessionDurationMinLT applies the LT predicate on the "session_duration_min" field.
func SessionDurationMinLT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldSessionDurationMin, v))
}

// SessionDurationMinLTE applies the LTE predicate on the "session_duration_min" field.
func SessionDurationMinLTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldSessionDurationMin, v))
}

// PreferredDaysIsNil applies the IsNil predicate on the "preferred_days" field.
func PreferredDaysIsNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIsNull(FieldPreferredDays))
}

// PreferredDaysNotNil applies the NotNil predicate on the "preferred_days" field.
func PreferredDaysNotNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotNull(FieldPreferredDays))
}

// AvoidDaysIsNil applies the IsNil predicate on the "avoid_days" field.
func AvoidDaysIsNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIsNull(FieldAvoidDays))
}

// AvoidDaysNotNil applies the NotNil predicate on the "avoid_days" field.
func AvoidDaysNotNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotNull(FieldAvoidDays))
}

// PreferredWindowsIsNil applies the IsNil predicate on the "preferred_windows" field.
func PreferredWindowsIsNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIsNull(FieldPreferredWindows))
}

// PreferredWindowsNotNil applies the NotNil predicate on the "preferred_windows" field.
func PreferredWindowsNotNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotNull(FieldPreferredWindows))
}

// AvoidWindowsIsNil applies the IsNil predicate on the "avoid_windows" field.
func AvoidWindowsIsNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIsNull(FieldAvoidWindows))
}

// AvoidWindowsNotNil applies the NotNil predicate on the "avoid_windows" field.
func AvoidWindowsNotNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotNull(FieldAvoidWindows))
}

// FlexibilityEQ applies the EQ predicate on the "flexibility" field.
func FlexibilityEQ(v float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldFlexibility, v))
}

// FlexibilityNEQ applies the NEQ predicate on the "flexibility" field.
func FlexibilityNEQ(v float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldFlexibility, v))
}

// FlexibilityIn applies the In predicate on the "flexibility" field.
func FlexibilityIn(vs ...float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldFlexibility, vs...))
}

// FlexibilityNotIn applies the NotIn predicate on the "flexibility" field.
func FlexibilityNotIn(vs ...float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldFlexibility, vs...))
}

// FlexibilityGT applies the GT predicate on the "flexibility" field.
func FlexibilityGT(v float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldFlexibility, v))
}

// FlexibilityGTE applies the GTE predicate on the "flexibility" field.
func FlexibilityGTE(v float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldFlexibility, v))
}

// FlexibilityLT applies the LT predicate on the "flexibility" field.
func FlexibilityLT(v float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldFlexibility, v))
}

// FlexibilityLTE applies the LTE predicate on the "flexibility" field.
func FlexibilityLTE(v float64) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldFlexibility, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.NotPredicates(p))
}
