package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is an in-app notification row written by the event workers
// and read by the admin platform.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("center_id", uuid.UUID{}),

		field.UUID("recipient_id", uuid.UUID{}).
			Comment("Therapist or student the notification targets"),

		field.String("type").
			NotEmpty().
			Comment("e.g. schedule_rescheduled, schedule_rolled_back, conflict_detected"),

		field.String("title").
			NotEmpty(),

		field.JSON("data", map[string]any{}).
			Optional(),

		field.Bool("is_read").
			Default(false),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "is_read"),
		index.Fields("center_id", "created_at"),
	}
}
