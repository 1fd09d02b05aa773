package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// RescheduleBatch records one batch scheduling operation: what it touched,
// what it produced, and enough snapshot state to roll it back. The unique
// request_id gives at-most-once application per client request.
type RescheduleBatch struct {
	ent.Schema
}

func (RescheduleBatch) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (RescheduleBatch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("request_id", uuid.UUID{}).
			Unique().
			Comment("Client-supplied idempotency key; replays return the recorded outcome"),

		field.UUID("center_id", uuid.UUID{}).
			Comment("FK → centers.id"),

		field.UUID("enrollment_id", uuid.UUID{}).
			Comment("FK → enrollments.id"),

		field.Enum("trigger").
			Values("freeze", "regenerate", "manual"),

		field.Enum("status").
			Values("pending", "applied", "rolled_back", "failed").
			Default("pending"),

		field.JSON("previous_sessions", []SessionSnapshot{}).
			Optional().
			Comment("State of every touched session before the batch was applied"),

		field.JSON("conflicts", []ConflictRecord{}).
			Optional(),

		field.JSON("blockers", []BlockerRecord{}).
			Optional().
			Comment("Placement shortfalls reported by the generator"),

		field.Int("sessions_rescheduled").
			Default(0),

		field.Float("optimization_score").
			Default(0),

		field.Int64("execution_time_ms").
			Default(0),

		field.Time("new_end_date").
			Optional().
			Nillable().
			Comment("Set when the batch extended the enrollment end date"),

		field.Time("applied_at").
			Optional().
			Nillable(),

		field.Time("rolled_back_at").
			Optional().
			Nillable(),

		field.Text("failure_reason").
			Optional().
			Nillable(),
	}
}

func (RescheduleBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id").Unique(),
		index.Fields("enrollment_id", "status"),
		index.Fields("center_id", "created_at"),
	}
}

// SessionSnapshot is the rollback image of one session as it existed before
// a batch touched it.
type SessionSnapshot struct {
	SessionID   uuid.UUID  `json:"session_id"`
	TherapistID uuid.UUID  `json:"therapist_id"`
	RoomID      *uuid.UUID `json:"room_id,omitempty"`
	StartTime   string     `json:"start_time"` // RFC 3339
	EndTime     string     `json:"end_time"`
	Status      string     `json:"status"`
}

// BlockerRecord is the denormalized form of an engine blocker stored on the
// batch, so a shortfall stays visible on replays.
type BlockerRecord struct {
	WeekStart string `json:"week_start"` // date, 2006-01-02
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// ConflictRecord is the denormalized form of an engine conflict stored on
// the batch for audit.
type ConflictRecord struct {
	SessionID uuid.UUID `json:"session_id,omitempty"`
	Kind      string    `json:"kind"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
}
