package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Room is a bookable physical resource inside a center.
type Room struct {
	ent.Schema
}

func (Room) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("center_id", uuid.UUID{}).
			Comment("FK → centers.id"),

		field.String("name").
			NotEmpty(),

		field.Int("capacity").
			Default(1),

		field.Bool("is_active").
			Default(true),
	}
}

func (Room) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("center_id", "is_active"),
	}
}
