// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),

		field.String("username").
			NotEmpty().
			Unique().
			MinLen(3).
			MaxLen(50).
			Comment("Unique username"),

		field.String("password_hash").
			NotEmpty().
			Sensitive(). // Won't be included in logs
			Comment("Hashed password"),

		field.Enum("role").
			Values("user", "admin").
			Default("user").
			Comment("User role for authorization"),

		field.Bool("is_active").
			Default(true).
			Comment("Whether the user account is active"),

		field.Int("failed_login_attempts").
			Default(0).
			Comment("Number of consecutive failed login attempts"),

		field.Time("account_locked_until").
			Optional().
			Nillable().
			Comment("Account lockout expiration"),

		field.Time("last_login").
			Optional().
			Nillable().
			Comment("Last successful login timestamp"),

		field.String("last_login_ip").
			Optional().
			Comment("IP address of last login"),

		// JWT Tokens
		field.String("refresh_token").
			Optional().
			Sensitive().
			Comment("Current refresh token"),

		field.Time("refresh_token_expires_at").
			Optional().
			Nillable().
			Comment("Refresh token expiration"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the user was last updated"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// A user owns many lists
		edge.To("lists", TodoList.Type).
			Comment("Lists owned by this user"),

		// Activity events related to this user
		edge.To("activity_events", ActivityEvent.Type).
			Comment("Activity events related to this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Unique index on email
		index.Fields("email").
			Unique(),

		// Unique index on username
		index.Fields("username").
			Unique(),

		// Index for login queries (email + active status)
		index.Fields("email", "is_active"),

		// Index for account security
		index.Fields("account_locked_until"),

		// Index on created_at for sorting
		index.Fields("created_at"),
	}
}
