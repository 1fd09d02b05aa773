package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Enrollment is a student's subscription to a recurring therapy schedule:
// how many sessions, how often, and the time preferences the generator
// honors when placing them.
type Enrollment struct {
	ent.Schema
}

func (Enrollment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Enrollment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("center_id", uuid.UUID{}).
			Comment("FK → centers.id"),

		field.UUID("student_id", uuid.UUID{}).
			Comment("External student reference; the student record lives in the admin platform"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.UUID("room_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Preferred room; nil = any"),

		field.String("guardian_phone_enc").
			Optional().
			Nillable().
			Comment("AES-256-GCM encrypted guardian phone for SMS notifications"),

		field.Time("start_date"),

		field.Time("end_date"),

		field.Int("session_count").
			Positive(),

		field.Int("sessions_per_week").
			Positive(),

		field.Int("session_duration_min").
			Default(45),

		field.Ints("preferred_days").
			Optional().
			Comment("Weekdays 0-6 the student prefers"),

		field.Ints("avoid_days").
			Optional(),

		field.JSON("preferred_windows", []TimeWindow{}).
			Optional().
			Comment("Minute-of-day windows the student prefers"),

		field.JSON("avoid_windows", []TimeWindow{}).
			Optional(),

		field.Float("flexibility").
			Default(0.5).
			Comment("0 = rigid, 1 = fully flexible; drives how far the generator may deviate from preferences"),

		field.Enum("status").
			Values("active", "frozen", "completed", "cancelled").
			Default("active"),
	}
}

func (Enrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("center_id", "status"),
		index.Fields("therapist_id", "status"),
		index.Fields("student_id"),
	}
}

// TimeWindow is a half-open [start, end) range in minutes from midnight,
// stored inside enrollment preference JSON columns.
type TimeWindow struct {
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`
}
