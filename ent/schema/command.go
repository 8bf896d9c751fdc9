package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Command holds the schema definition for the Command entity — a concrete
// executable operation produced by the Operator. Playbook commands carry the
// SOAR playbook identity in command_entity and its arguments in
// command_params; manual commands describe work handed to a human.
type Command struct {
	ent.Schema
}

// Fields of the Command.
func (Command) Fields() []ent.Field {
	return []ent.Field{
		field.String("command_id").
			MaxLen(64).
			Unique().
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
		field.String("command_name").
			MaxLen(256),
		field.Enum("command_type").
			Values("playbook", "manual"),
		field.String("command_assignee").
			MaxLen(64).
			Default("_executor"),
		field.JSON("command_entity", map[string]interface{}{}).
			Optional().
			Comment("Playbook identity, e.g. {\"playbook_id\": ..., \"playbook_name\": ...}"),
		field.JSON("command_params", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.JSON("command_result", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Command.
func (Command) Indexes() []ent.Index {
	return []ent.Index{
		// Executor claims pending commands FIFO by created_at
		index.Fields("status", "created_at"),
		index.Fields("event_id", "round_id"),
		index.Fields("action_id"),
	}
}
