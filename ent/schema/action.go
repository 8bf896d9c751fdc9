package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Action holds the schema definition for the Action entity — the Manager's
// refinement of a Task. An action inherits its parent task's type and round.
type Action struct {
	ent.Schema
}

// Fields of the Action.
func (Action) Fields() []ent.Field {
	return []ent.Field{
		field.String("action_id").
			MaxLen(64).
			Unique().
			Immutable(),
		field.String("task_id").
			MaxLen(64).
			Immutable(),
		field.String("event_id").
			MaxLen(64).
			Immutable(),
		field.Int("round_id").
			Immutable(),
		field.String("action_name").
			MaxLen(256),
		field.String("action_type").
			MaxLen(64).
			Optional(),
		field.String("action_assignee").
			MaxLen(64).
			Default("_operator"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.JSON("action_result", map[string]interface{}{}).
			Optional(),
		field.Int("retry_count").
			Default(0).
			Comment("Cycles the operator LLM has seen but skipped this action"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Action.
func (Action) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("event_id", "round_id"),
		index.Fields("task_id"),
	}
}
