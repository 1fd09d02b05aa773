package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FreezeWindow is a requested pause on an enrollment. Applying one triggers
// the batch rescheduler for every session inside the window.
type FreezeWindow struct {
	ent.Schema
}

func (FreezeWindow) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (FreezeWindow) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("center_id", uuid.UUID{}).
			Comment("FK → centers.id"),

		field.UUID("enrollment_id", uuid.UUID{}).
			Comment("FK → enrollments.id"),

		field.Time("starts_on"),

		field.Time("ends_on"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "applied", "cancelled").
			Default("pending"),

		field.UUID("batch_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Non-FK ref to the reschedule_batch that applied this freeze"),
	}
}

func (FreezeWindow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id", "status"),
		index.Fields("center_id"),
	}
}
