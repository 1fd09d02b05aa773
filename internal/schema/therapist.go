package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Therapist delivers therapy sessions within one center.
type Therapist struct {
	ent.Schema
}

func (Therapist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Therapist) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("center_id", uuid.UUID{}).
			Comment("FK → centers.id"),

		field.String("display_name").
			NotEmpty(),

		field.String("specialty").
			Optional().
			Nillable().
			Comment("e.g. speech, occupational, behavioral"),

		field.String("phone").
			Optional().
			Nillable().
			Comment("E.164, used for reschedule SMS"),

		field.Int("max_weekly_sessions").
			Default(30).
			Comment("Workload cap used by the schedule balancer"),

		field.Bool("is_accepting").
			Default(true).
			Comment("Whether new enrollments may be scheduled onto this therapist"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Therapist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("center_id", "is_active"),
	}
}
