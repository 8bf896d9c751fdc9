package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Prompt holds the schema definition for the Prompt entity — named text rows
// (role templates and background snippets) used to assemble system prompts.
// Compiled-in defaults apply when a row is absent.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(64).
			Unique(),
		field.Text("content").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
