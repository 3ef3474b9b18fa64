// ent/schema/todolist.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TodoList holds the schema definition for the TodoList entity.
type TodoList struct {
	ent.Schema
}

// Fields of the TodoList.
func (TodoList) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("List name"),

		field.Text("description").
			Optional().
			Comment("Optional description of the list"),

		field.UUID("owner_id", uuid.UUID{}).
			Comment("User who owns this list"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the list was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the list was last updated"),
	}
}

// Edges of the TodoList.
func (TodoList) Edges() []ent.Edge {
	return []ent.Edge{
		// Each list belongs to exactly one user
		edge.From("owner", User.Type).
			Ref("lists").
			Unique().
			Required().
			Field("owner_id"),

		// A list owns its tasks; deletion cascades through the repository
		edge.To("tasks", Task.Type),
	}
}

// Indexes of the TodoList.
func (TodoList) Indexes() []ent.Index {
	return []ent.Index{
		// Enumerating a user's lists
		index.Fields("owner_id"),

		// Index on created_at for sorting
		index.Fields("created_at"),
	}
}
