package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ActivityEvent holds the schema definition for the audit trail of
// auth, list, and task events.
type ActivityEvent struct {
	ent.Schema
}

// Fields of the ActivityEvent.
func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("User who triggered the event; unset for anonymous events"),

		field.Enum("event_type").
			Values(
				"login_success",
				"login_failed",
				"account_locked",
				"list_created",
				"list_deleted",
				"task_created",
				"subtask_created",
				"task_completed",
				"task_reopened",
				"task_moved",
				"task_deleted",
			).
			Comment("Type of activity event"),

		field.String("ip_address").
			Optional().
			Comment("IP address where the event originated"),

		field.String("user_agent").
			Optional().
			Comment("User agent string"),

		field.String("description").
			Optional().
			Comment("Human-readable description of the event"),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Default(map[string]interface{}{}).
			Comment("Additional event metadata"),

		field.Enum("severity").
			Values("low", "medium", "high").
			Default("low").
			Comment("Event severity level"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the event occurred"),
	}
}

// Edges of the ActivityEvent.
func (ActivityEvent) Edges() []ent.Edge {
	return []ent.Edge{
		// Activity event usually belongs to a user
		edge.From("user", User.Type).
			Ref("activity_events").
			Unique().
			Field("user_id"),
	}
}

// Indexes of the ActivityEvent.
func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Index on user_id for user-specific queries
		index.Fields("user_id"),

		// Index on event_type for filtering
		index.Fields("event_type"),

		// Index on created_at for time-based queries
		index.Fields("created_at"),

		// Composite index for user event queries
		index.Fields("user_id", "event_type", "created_at"),
	}
}
