package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TherapySession is one concrete scheduled slot produced by the engine.
type TherapySession struct {
	ent.Schema
}

func (TherapySession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TherapySession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("center_id", uuid.UUID{}).
			Comment("FK → centers.id"),

		field.UUID("enrollment_id", uuid.UUID{}).
			Comment("FK → enrollments.id"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.UUID("student_id", uuid.UUID{}),

		field.UUID("room_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled", "frozen", "conflict").
			Default("scheduled"),

		field.UUID("generated_by_batch_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Non-FK ref to the reschedule_batch that created this session"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),
	}
}

func (TherapySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "start_time"),
		index.Fields("room_id", "start_time"),
		index.Fields("student_id", "start_time"),
		index.Fields("enrollment_id", "status"),
		index.Fields("center_id", "status", "start_time"),
	}
}
