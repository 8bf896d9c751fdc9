package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity — one
// attempt to run a Command. Playbook runs record the raw SOAR payload;
// manual commands sit in waiting until a human completes them through the
// API. The expert summarizer turns completed executions into summarized
// ones, which is what releases the upward status propagation.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id").
			MaxLen(64).
			Unique().
			Immutable(),
		field.String("command_id").
			MaxLen(64).
			Immutable(),
		field.String("action_id").
			MaxLen(64).
			Immutable(),
		field.String("task_id").
			MaxLen(64).
			Immutable(),
		field.String("event_id").
			MaxLen(64).
			Immutable(),
		field.Int("round_id").
			Immutable(),
		field.Text("execution_result").
			Optional().
			Comment("Raw text/JSON returned by SOAR or entered by a human"),
		field.Text("ai_summary").
			Optional().
			Comment("Expert-generated narrative of the result"),
		field.Enum("status").
			Values(
				"pending",
				"waiting",
				"processing",
				"completed",
				"summarized",
				"summarized_error",
				"failed",
			).
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		// Summarizer claims completed executions FIFO by created_at
		index.Fields("status", "created_at"),
		index.Fields("event_id", "round_id"),
		index.Fields("command_id"),
	}
}
