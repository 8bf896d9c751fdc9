package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the root
// aggregate of the workflow. A security event enters as pending and is
// driven through bounded rounds until completed or failed.
//
// Child rows (tasks, actions, commands, executions) reference the event
// by its string event_id rather than a foreign key. Workers for different
// roles create and mutate children independently; loose references keep
// row claims free of FK ordering constraints. The integer primary key
// exists only for ordering.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			MaxLen(64).
			Unique().
			Immutable(),
		field.String("event_name").
			MaxLen(256).
			Optional(),
		field.Text("message").
			Comment("Raw alert or incident description as received"),
		field.Text("context").
			Optional().
			Comment("Free text or JSON blob supplied by the reporter"),
		field.String("source").
			MaxLen(64).
			Optional(),
		field.String("severity").
			MaxLen(32).
			Default("medium"),
		field.Enum("status").
			Values(
				"pending",
				"processing",
				"tasks_completed",
				"to_be_summarized",
				"summarized",
				"summary_failed",
				"round_finished",
				"completed",
				"failed",
				"resolved",
				"error_from_llm",
				"error_processing",
			).
			Default("pending"),
		field.Int("current_round").
			Default(1).
			Comment("Advances only on round_finished; never decreases"),
		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("Set by manual resolution; a summarized event with this set completes instead of starting another round"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Captain claims pending events FIFO by created_at
		index.Fields("status", "created_at"),
		index.Fields("status"),
	}
}
