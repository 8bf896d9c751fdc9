package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRecord holds the schema definition for the LLMRecord entity, the audit
// trail of LLM invocations. One row is written per completed call, whichever
// role made it.
type LLMRecord struct {
	ent.Schema
}

// Fields of the LLMRecord.
func (LLMRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			MaxLen(128).
			Optional().
			Comment("Provider-assigned id from the completion response"),
		field.String("model_name").
			MaxLen(64),
		field.JSON("request_messages", []map[string]interface{}{}),
		field.Text("response_content").
			Optional(),
		field.JSON("response_full", map[string]interface{}{}).
			Optional(),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Int("completion_tokens").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Optional().
			Nillable(),
		field.Int("cached_tokens").
			Optional().
			Nillable(),
		field.String("event_id").
			MaxLen(64).
			Optional().
			Comment("Event the call was made for, when known"),
		field.Int("round_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMRecord.
func (LLMRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("created_at"),
	}
}
