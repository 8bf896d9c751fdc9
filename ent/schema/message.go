package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity — the
// append-only log of every notable occurrence in an event's lifetime.
// Rows are canonical: the bus copy is best-effort and clients reconcile by
// polling id > last_seen_id, so the integer primary key is the per-event
// total order.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id").
			MaxLen(64).
			Unique().
			Immutable(),
		field.String("event_id").
			MaxLen(64).
			Immutable(),
		field.Int("round_id").
			Immutable(),
		field.Enum("message_from").
			Values("system", "user", "_captain", "_manager", "_operator", "_executor", "_expert"),
		field.String("message_type").
			MaxLen(32).
			Comment("Open-ended tag, e.g. llm_request, task_created, command_result"),
		field.JSON("message_content", map[string]interface{}{}).
			Comment("{\"timestamp\": ..., \"data\": ...}"),
		field.String("user_id").
			MaxLen(64).
			Optional().
			Comment("Set when message_from is user"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Clients fetch incrementally with event_id + id > N
		index.Fields("event_id"),
		index.Fields("event_id", "message_from"),
	}
}
