package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity — API credentials.
// Passwords are stored as argon2id encodings, never in clear.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			MaxLen(64).
			Unique(),
		field.String("email").
			MaxLen(120).
			Unique(),
		field.String("password_hash").
			MaxLen(256).
			Sensitive(),
		field.Enum("role").
			Values("admin", "user").
			Default("user"),
		field.Bool("is_active").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
