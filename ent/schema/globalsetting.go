package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GlobalSetting holds the schema definition for the GlobalSetting entity —
// key/value rows for small pieces of singleton state such as the driving
// mode (auto|manual).
type GlobalSetting struct {
	ent.Schema
}

// Fields of the GlobalSetting.
func (GlobalSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			MaxLen(64).
			Unique(),
		field.String("value").
			MaxLen(256).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
