// internal/hierarchy/node.go
package hierarchy

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrSubtaskNotAllowed signals a subtask creation under a task barred
	// from holding children. Unreachable while nesting is unlimited, but
	// the check point stays for future policy changes.
	ErrSubtaskNotAllowed = errors.New("task cannot have subtasks")

	// ErrSubtaskMove signals an attempt to move a task that has a parent
	// to another list. Never retriable.
	ErrSubtaskMove = errors.New("a task with a parent cannot be moved to another list")
)

// Node is the engine's view of a task. The parent relation forms a
// forest: a parent must already exist before a child references it, and
// a node's ListID always equals its parent's.
type Node struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	ParentID  *uuid.UUID
	Completed bool
}

// Root reports whether the node is a top-level task.
func (n *Node) Root() bool {
	return n.ParentID == nil
}

// Store is the narrow slice of task storage the engine walks. All reads
// and writes happen inside the caller's transaction; the engine never
// opens one itself.
type Store interface {
	// Node returns the task with the given id.
	Node(ctx context.Context, id uuid.UUID) (*Node, error)

	// Children returns the direct children of a task in insertion order.
	Children(ctx context.Context, parentID uuid.UUID) ([]*Node, error)

	// SetCompleted writes a task's completion status.
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error

	// SetListID rewrites the list a task belongs to.
	SetListID(ctx context.Context, id uuid.UUID, listID uuid.UUID) error
}
