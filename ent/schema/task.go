// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.Text("description").
			NotEmpty().
			Comment("What the task is about"),

		field.Bool("completed").
			Default(false).
			Comment("Completion status; kept consistent across the tree by the hierarchy engine"),

		field.UUID("list_id", uuid.UUID{}).
			Comment("List this task belongs to; always equals the parent's list_id"),

		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Null for top-level tasks"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		// Every task belongs to exactly one list
		edge.From("list", TodoList.Type).
			Ref("tasks").
			Unique().
			Required().
			Field("list_id"),

		// Self-referencing edge for subtasks
		edge.To("subtasks", Task.Type).
			From("parent").
			Unique().
			Field("parent_id"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Enumerating top-level tasks of a list
		index.Fields("list_id", "parent_id"),

		// Sibling reads during cascade-up
		index.Fields("parent_id"),

		// Sibling order is insertion order
		index.Fields("created_at"),
	}
}
