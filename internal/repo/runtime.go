// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/arkanhealth/jadwal_backend/internal/repo/availabilityrule"
	"github.com/arkanhealth/jadwal_backend/internal/repo/center"
	"github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	"github.com/arkanhealth/jadwal_backend/internal/repo/notification"
	"github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	"github.com/arkanhealth/jadwal_backend/internal/repo/room"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	availabilityruleMixin := schema.AvailabilityRule{}.Mixin()
	availabilityruleMixinFields0 := availabilityruleMixin[0].Fields()
	_ = availabilityruleMixinFields0
	availabilityruleMixinFields1 := availabilityruleMixin[1].Fields()
	_ = availabilityruleMixinFields1
	availabilityruleFields := schema.AvailabilityRule{}.Fields()
	_ = availabilityruleFields
	// availabilityruleDescCreatedAt is the schema descriptor for created_at field.
	availabilityruleDescCreatedAt := availabilityruleMixinFields1[0].Descriptor()
	// availabilityrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityrule.DefaultCreatedAt = availabilityruleDescCreatedAt.Default.(func() time.Time)
	// availabilityruleDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityruleDescUpdatedAt := availabilityruleMixinFields1[1].Descriptor()
	// availabilityrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityrule.DefaultUpdatedAt = availabilityruleDescUpdatedAt.Default.(func() time.Time)
	// availabilityrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityrule.UpdateDefaultUpdatedAt = availabilityruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityruleDescIsActive is the schema descriptor for is_active field.
	availabilityruleDescIsActive := availabilityruleFields[9].Descriptor()
	// availabilityrule.DefaultIsActive holds the default value on creation for the is_active field.
	availabilityrule.DefaultIsActive = availabilityruleDescIsActive.Default.(bool)
	// availabilityruleDescID is the schema descriptor for id field.
	availabilityruleDescID := availabilityruleMixinFields0[0].Descriptor()
	// availabilityrule.DefaultID holds the default value on creation for the id field.
	availabilityrule.DefaultID = availabilityruleDescID.Default.(func() uuid.UUID)
	centerMixin := schema.Center{}.Mixin()
	centerMixinFields0 := centerMixin[0].Fields()
	_ = centerMixinFields0
	centerMixinFields1 := centerMixin[1].Fields()
	_ = centerMixinFields1
	centerFields := schema.Center{}.Fields()
	_ = centerFields
	// centerDescCreatedAt is the schema descriptor for created_at field.
	centerDescCreatedAt := centerMixinFields1[0].Descriptor()
	// center.DefaultCreatedAt holds the default value on creation for the created_at field.
	center.DefaultCreatedAt = centerDescCreatedAt.Default.(func() time.Time)
	// centerDescUpdatedAt is the schema descriptor for updated_at field.
	centerDescUpdatedAt := centerMixinFields1[1].Descriptor()
	// center.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	center.DefaultUpdatedAt = centerDescUpdatedAt.Default.(func() time.Time)
	// center.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	center.UpdateDefaultUpdatedAt = centerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// centerDescName is the schema descriptor for name field.
	centerDescName := centerFields[0].Descriptor()
	// center.NameValidator is a validator for the "name" field. It is called by the builders before save.
	center.NameValidator = centerDescName.Validators[0].(func(string) error)
	// centerDescSlug is the schema descriptor for slug field.
	centerDescSlug := centerFields[1].Descriptor()
	// center.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	center.SlugValidator = centerDescSlug.Validators[0].(func(string) error)
	// centerDescTimezone is the schema descriptor for timezone field.
	centerDescTimezone := centerFields[2].Descriptor()
	// center.DefaultTimezone holds the default value on creation for the timezone field.
	center.DefaultTimezone = centerDescTimezone.Default.(string)
	// centerDescIsActive is the schema descriptor for is_active field.
	centerDescIsActive := centerFields[4].Descriptor()
	// center.DefaultIsActive holds the default value on creation for the is_active field.
	center.DefaultIsActive = centerDescIsActive.Default.(bool)
	// centerDescID is the schema descriptor for id field.
	centerDescID := centerMixinFields0[0].Descriptor()
	// center.DefaultID holds the default value on creation for the id field.
	center.DefaultID = centerDescID.Default.(func() uuid.UUID)
	enrollmentMixin := schema.Enrollment{}.Mixin()
	enrollmentMixinFields0 := enrollmentMixin[0].Fields()
	_ = enrollmentMixinFields0
	enrollmentMixinFields1 := enrollmentMixin[1].Fields()
	_ = enrollmentMixinFields1
	enrollmentFields := schema.Enrollment{}.Fields()
	_ = enrollmentFields
	// enrollmentDescCreatedAt is the schema descriptor for created_at field.
	enrollmentDescCreatedAt := enrollmentMixinFields1[0].Descriptor()
	// enrollment.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrollment.DefaultCreatedAt = enrollmentDescCreatedAt.Default.(func() time.Time)
	// enrollmentDescUpdatedAt is the schema descriptor for updated_at field.
	enrollmentDescUpdatedAt := enrollmentMixinFields1[1].Descriptor()
	// enrollment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	enrollment.DefaultUpdatedAt = enrollmentDescUpdatedAt.Default.(func() time.Time)
	// enrollment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	enrollment.UpdateDefaultUpdatedAt = enrollmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// enrollmentDescSessionCount is the schema descriptor for session_count field.
	enrollmentDescSessionCount := enrollmentFields[7].Descriptor()
	// enrollment.SessionCountValidator is a validator for the "session_count" field. It is called by the builders before save.
	enrollment.SessionCountValidator = enrollmentDescSessionCount.Validators[0].(func(int) error)
	// enrollmentDescSessionsPerWeek is the schema descriptor for sessions_per_week field.
	enrollmentDescSessionsPerWeek := enrollmentFields[8].Descriptor()
	// enrollment.SessionsPerWeekValidator is a validator for the "sessions_per_week" field. It is called by the builders before save.
	enrollment.SessionsPerWeekValidator = enrollmentDescSessionsPerWeek.Validators[0].(func(int) error)
	// enrollmentDescSessionDurationMin is the schema descriptor for session_duration_min field.
	enrollmentDescSessionDurationMin := enrollmentFields[9].Descriptor()
	// enrollment.DefaultSessionDurationMin holds the default value on creation for the session_duration_min field.
	enrollment.DefaultSessionDurationMin = enrollmentDescSessionDurationMin.Default.(int)
	// enrollmentDescFlexibility is the schema descriptor for flexibility field.
	enrollmentDescFlexibility := enrollmentFields[14].Descriptor()
	// enrollment.DefaultFlexibility holds the default value on creation for the flexibility field.
	enrollment.DefaultFlexibility = enrollmentDescFlexibility.Default.(float64)
	// enrollmentDescID is the schema descriptor for id field.
	enrollmentDescID := enrollmentMixinFields0[0].Descriptor()
	// enrollment.DefaultID holds the default value on creation for the id field.
	enrollment.DefaultID = enrollmentDescID.Default.(func() uuid.UUID)
	freezewindowMixin := schema.FreezeWindow{}.Mixin()
	freezewindowMixinFields0 := freezewindowMixin[0].Fields()
	_ = freezewindowMixinFields0
	freezewindowMixinFields1 := freezewindowMixin[1].Fields()
	_ = freezewindowMixinFields1
	freezewindowFields := schema.FreezeWindow{}.Fields()
	_ = freezewindowFields
	// freezewindowDescCreatedAt is the schema descriptor for created_at field.
	freezewindowDescCreatedAt := freezewindowMixinFields1[0].Descriptor()
	// freezewindow.DefaultCreatedAt holds the default value on creation for the created_at field.
	freezewindow.DefaultCreatedAt = freezewindowDescCreatedAt.Default.(func() time.Time)
	// freezewindowDescUpdatedAt is the schema descriptor for updated_at field.
	freezewindowDescUpdatedAt := freezewindowMixinFields1[1].Descriptor()
	// freezewindow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	freezewindow.DefaultUpdatedAt = freezewindowDescUpdatedAt.Default.(func() time.Time)
	// freezewindow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	freezewindow.UpdateDefaultUpdatedAt = freezewindowDescUpdatedAt.UpdateDefault.(func() time.Time)
	// freezewindowDescID is the schema descriptor for id field.
	freezewindowDescID := freezewindowMixinFields0[0].Descriptor()
	// freezewindow.DefaultID holds the default value on creation for the id field.
	freezewindow.DefaultID = freezewindowDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[2].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	reschedulebatchMixin := schema.RescheduleBatch{}.Mixin()
	reschedulebatchMixinFields0 := reschedulebatchMixin[0].Fields()
	_ = reschedulebatchMixinFields0
	reschedulebatchMixinFields1 := reschedulebatchMixin[1].Fields()
	_ = reschedulebatchMixinFields1
	reschedulebatchFields := schema.RescheduleBatch{}.Fields()
	_ = reschedulebatchFields
	// reschedulebatchDescCreatedAt is the schema descriptor for created_at field.
	reschedulebatchDescCreatedAt := reschedulebatchMixinFields1[0].Descriptor()
	// reschedulebatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	reschedulebatch.DefaultCreatedAt = reschedulebatchDescCreatedAt.Default.(func() time.Time)
	// reschedulebatchDescUpdatedAt is the schema descriptor for updated_at field.
	reschedulebatchDescUpdatedAt := reschedulebatchMixinFields1[1].Descriptor()
	// reschedulebatch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reschedulebatch.DefaultUpdatedAt = reschedulebatchDescUpdatedAt.Default.(func() time.Time)
	// reschedulebatch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reschedulebatch.UpdateDefaultUpdatedAt = reschedulebatchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reschedulebatchDescSessionsRescheduled is the schema descriptor for sessions_rescheduled field.
	reschedulebatchDescSessionsRescheduled := reschedulebatchFields[8].Descriptor()
	// reschedulebatch.DefaultSessionsRescheduled holds the default value on creation for the sessions_rescheduled field.
	reschedulebatch.DefaultSessionsRescheduled = reschedulebatchDescSessionsRescheduled.Default.(int)
	// reschedulebatchDescOptimizationScore is the schema descriptor for optimization_score field.
	reschedulebatchDescOptimizationScore := reschedulebatchFields[9].Descriptor()
	// reschedulebatch.DefaultOptimizationScore holds the default value on creation for the optimization_score field.
	reschedulebatch.DefaultOptimizationScore = reschedulebatchDescOptimizationScore.Default.(float64)
	// reschedulebatchDescExecutionTimeMs is the schema descriptor for execution_time_ms field.
	reschedulebatchDescExecutionTimeMs := reschedulebatchFields[10].Descriptor()
	// reschedulebatch.DefaultExecutionTimeMs holds the default value on creation for the execution_time_ms field.
	reschedulebatch.DefaultExecutionTimeMs = reschedulebatchDescExecutionTimeMs.Default.(int64)
	// reschedulebatchDescID is the schema descriptor for id field.
	reschedulebatchDescID := reschedulebatchMixinFields0[0].Descriptor()
	// reschedulebatch.DefaultID holds the default value on creation for the id field.
	reschedulebatch.DefaultID = reschedulebatchDescID.Default.(func() uuid.UUID)
	roomMixin := schema.Room{}.Mixin()
	roomMixinFields0 := roomMixin[0].Fields()
	_ = roomMixinFields0
	roomMixinFields1 := roomMixin[1].Fields()
	_ = roomMixinFields1
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescCreatedAt is the schema descriptor for created_at field.
	roomDescCreatedAt := roomMixinFields1[0].Descriptor()
	// room.DefaultCreatedAt holds the default value on creation for the created_at field.
	room.DefaultCreatedAt = roomDescCreatedAt.Default.(func() time.Time)
	// roomDescUpdatedAt is the schema descriptor for updated_at field.
	roomDescUpdatedAt := roomMixinFields1[1].Descriptor()
	// room.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	room.DefaultUpdatedAt = roomDescUpdatedAt.Default.(func() time.Time)
	// room.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	room.UpdateDefaultUpdatedAt = roomDescUpdatedAt.UpdateDefault.(func() time.Time)
	// roomDescName is the schema descriptor for name field.
	roomDescName := roomFields[1].Descriptor()
	// room.NameValidator is a validator for the "name" field. It is called by the builders before save.
	room.NameValidator = roomDescName.Validators[0].(func(string) error)
	// roomDescCapacity is the schema descriptor for capacity field.
	roomDescCapacity := roomFields[2].Descriptor()
	// room.DefaultCapacity holds the default value on creation for the capacity field.
	room.DefaultCapacity = roomDescCapacity.Default.(int)
	// roomDescIsActive is the schema descriptor for is_active field.
	roomDescIsActive := roomFields[3].Descriptor()
	// room.DefaultIsActive holds the default value on creation for the is_active field.
	room.DefaultIsActive = roomDescIsActive.Default.(bool)
	// roomDescID is the schema descriptor for id field.
	roomDescID := roomMixinFields0[0].Descriptor()
	// room.DefaultID holds the default value on creation for the id field.
	room.DefaultID = roomDescID.Default.(func() uuid.UUID)
	therapistMixin := schema.Therapist{}.Mixin()
	therapistMixinFields0 := therapistMixin[0].Fields()
	_ = therapistMixinFields0
	therapistMixinFields1 := therapistMixin[1].Fields()
	_ = therapistMixinFields1
	therapistFields := schema.Therapist{}.Fields()
	_ = therapistFields
	// therapistDescCreatedAt is the schema descriptor for created_at field.
	therapistDescCreatedAt := therapistMixinFields1[0].Descriptor()
	// therapist.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapist.DefaultCreatedAt = therapistDescCreatedAt.Default.(func() time.Time)
	// therapistDescUpdatedAt is the schema descriptor for updated_at field.
	therapistDescUpdatedAt := therapistMixinFields1[1].Descriptor()
	// therapist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	therapist.DefaultUpdatedAt = therapistDescUpdatedAt.Default.(func() time.Time)
	// therapist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	therapist.UpdateDefaultUpdatedAt = therapistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// therapistDescDisplayName is the schema descriptor for display_name field.
	therapistDescDisplayName := therapistFields[1].Descriptor()
	// therapist.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	therapist.DisplayNameValidator = therapistDescDisplayName.Validators[0].(func(string) error)
	// therapistDescMaxWeeklySessions is the schema descriptor for max_weekly_sessions field.
	therapistDescMaxWeeklySessions := therapistFields[4].Descriptor()
	// therapist.DefaultMaxWeeklySessions holds the default value on creation for the max_weekly_sessions field.
	therapist.DefaultMaxWeeklySessions = therapistDescMaxWeeklySessions.Default.(int)
	// therapistDescIsAccepting is the schema descriptor for is_accepting field.
	therapistDescIsAccepting := therapistFields[5].Descriptor()
	// therapist.DefaultIsAccepting holds the default value on creation for the is_accepting field.
	therapist.DefaultIsAccepting = therapistDescIsAccepting.Default.(bool)
	// therapistDescIsActive is the schema descriptor for is_active field.
	therapistDescIsActive := therapistFields[6].Descriptor()
	// therapist.DefaultIsActive holds the default value on creation for the is_active field.
	therapist.DefaultIsActive = therapistDescIsActive.Default.(bool)
	// therapistDescID is the schema descriptor for id field.
	therapistDescID := therapistMixinFields0[0].Descriptor()
	// therapist.DefaultID holds the default value on creation for the id field.
	therapist.DefaultID = therapistDescID.Default.(func() uuid.UUID)
	therapysessionMixin := schema.TherapySession{}.Mixin()
	therapysessionMixinFields0 := therapysessionMixin[0].Fields()
	_ = therapysessionMixinFields0
	therapysessionMixinFields1 := therapysessionMixin[1].Fields()
	_ = therapysessionMixinFields1
	therapysessionFields := schema.TherapySession{}.Fields()
	_ = therapysessionFields
	// therapysessionDescCreatedAt is the schema descriptor for created_at field.
	therapysessionDescCreatedAt := therapysessionMixinFields1[0].Descriptor()
	// therapysession.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapysession.DefaultCreatedAt = therapysessionDescCreatedAt.Default.(func() time.Time)
	// therapysessionDescUpdatedAt is the schema descriptor for updated_at field.
	therapysessionDescUpdatedAt := therapysessionMixinFields1[1].Descriptor()
	// therapysession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	therapysession.DefaultUpdatedAt = therapysessionDescUpdatedAt.Default.(func() time.Time)
	// therapysession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	therapysession.UpdateDefaultUpdatedAt = therapysessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// therapysessionDescID is the schema descriptor for id field.
	therapysessionDescID := therapysessionMixinFields0[0].Descriptor()
	// therapysession.DefaultID holds the default value on creation for the id field.
	therapysession.DefaultID = therapysessionDescID.Default.(func() uuid.UUID)
}
