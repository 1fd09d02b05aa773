package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilityRule defines a weekly recurring working block for a therapist.
// The slot generator only places sessions inside active rules.
type AvailabilityRule struct {
	ent.Schema
}

func (AvailabilityRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilityRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.UUID("center_id", uuid.UUID{}).
			Comment("FK → centers.id"),

		field.Int8("day_of_week").
			Comment("0=Sunday, 1=Monday … 6=Saturday"),

		field.Int8("start_hour"),

		field.Int8("start_minute"),

		field.Int8("end_hour"),

		field.Int8("end_minute"),

		field.Time("valid_from").
			Comment("Rule takes effect from this date"),

		field.Time("valid_until").
			Optional().
			Nillable().
			Comment("Rule expires after this date; nil = no expiry"),

		field.Bool("is_active").
			Default(true),
	}
}

func (AvailabilityRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "day_of_week", "is_active"),
		index.Fields("center_id"),
	}
}
