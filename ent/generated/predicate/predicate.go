// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TodoList is the predicate function for todolist builders.
type TodoList func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
