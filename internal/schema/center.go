package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Center is a tenant: one therapy center with its own therapists, rooms and
// enrollments.
type Center struct {
	ent.Schema
}

func (Center) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Center) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),

		field.String("slug").
			NotEmpty().
			Unique(),

		field.String("timezone").
			Default("Asia/Riyadh").
			Comment("IANA timezone all session times are interpreted in"),

		field.String("contact_email").
			Optional().
			Nillable().
			Comment("Recipient for conflict digest emails"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Center) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("is_active"),
	}
}
