package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Summary holds the schema definition for the Summary entity — the Expert's
// per-round narrative of an event. The next round's Captain prompt carries
// the previous round's summary as context.
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.String("summary_id").
			MaxLen(64).
			Unique().
			Immutable(),
		field.String("event_id").
			MaxLen(64).
			Immutable(),
		field.Int("round_id").
			Immutable(),
		field.Text("event_summary").
			Optional(),
		field.Text("event_suggestion").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Summary.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "round_id"),
	}
}
