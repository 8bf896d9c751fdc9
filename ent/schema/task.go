package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — a unit of work
// produced by the Captain from an Event. Each task belongs to exactly one
// event and one round.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			MaxLen(64).
			Unique().
			Immutable(),
		field.String("event_id").
			MaxLen(64).
			Immutable(),
		field.String("task_name").
			MaxLen(256),
		field.Enum("task_type").
			Values("query", "write", "notify").
			Default("query"),
		field.String("task_assignee").
			MaxLen(64).
			Default("_manager"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("round_id").
			Immutable(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Int("retry_count").
			Default(0).
			Comment("Cycles the manager LLM has seen but skipped this task"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Manager groups pending tasks by (event, round)
		index.Fields("status", "created_at"),
		index.Fields("event_id", "round_id"),
	}
}
