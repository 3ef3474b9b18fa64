// internal/hierarchy/engine.go
package hierarchy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Engine keeps a forest of task nodes in a consistent completion state.
// It is trust-agnostic: ownership checks happen in the services calling
// it, and every operation is a synchronous tree walk bounded by the
// tree's height or size.
type Engine struct {
	store Store
}

// NewEngine creates an engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Depth returns the number of ancestor hops from the node to its
// top-level root. Top-level tasks have depth 0. Terminates because the
// parent relation is acyclic by construction.
func (e *Engine) Depth(ctx context.Context, n *Node) (int, error) {
	depth := 0
	current := n
	for current.ParentID != nil {
		parent, err := e.store.Node(ctx, *current.ParentID)
		if err != nil {
			return 0, fmt.Errorf("resolve parent of %s: %w", current.ID, err)
		}
		depth++
		current = parent
	}
	return depth, nil
}

// CanHaveSubtasks reports whether a task may acquire subtasks. Nesting
// is unlimited, so this always holds; callers go through it so the
// policy can change without touching call sites.
func (e *Engine) CanHaveSubtasks(ctx context.Context, n *Node) (bool, error) {
	return true, nil
}

// CheckSubtaskEligibility returns ErrSubtaskNotAllowed when the node may
// not hold children.
func (e *Engine) CheckSubtaskEligibility(ctx context.Context, n *Node) error {
	ok, err := e.CanHaveSubtasks(ctx, n)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSubtaskNotAllowed
	}
	return nil
}

// CascadeDown sets the node's completion status and overwrites every
// descendant with the same status, unconditionally. No partial or mixed
// state survives below the node.
func (e *Engine) CascadeDown(ctx context.Context, n *Node, completed bool) error {
	if err := e.store.SetCompleted(ctx, n.ID, completed); err != nil {
		return fmt.Errorf("set completion of %s: %w", n.ID, err)
	}
	n.Completed = completed

	queue := []uuid.UUID{n.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		children, err := e.store.Children(ctx, id)
		if err != nil {
			return fmt.Errorf("list children of %s: %w", id, err)
		}
		for _, child := range children {
			if err := e.store.SetCompleted(ctx, child.ID, completed); err != nil {
				return fmt.Errorf("set completion of %s: %w", child.ID, err)
			}
			queue = append(queue, child.ID)
		}
	}
	return nil
}

// CascadeUp recomputes ancestor completion after the node's own status
// changed. Each step derives the parent's status as the AND over all of
// its direct children (vacuously true for an empty set); a parent whose
// stored status already matches the derived one ends the walk, so the
// loop performs at most one write per ancestor and terminates at the
// root at the latest.
func (e *Engine) CascadeUp(ctx context.Context, n *Node) error {
	current := n
	for current.ParentID != nil {
		parent, err := e.store.Node(ctx, *current.ParentID)
		if err != nil {
			return fmt.Errorf("resolve parent of %s: %w", current.ID, err)
		}

		siblings, err := e.store.Children(ctx, parent.ID)
		if err != nil {
			return fmt.Errorf("list children of %s: %w", parent.ID, err)
		}

		allDone := true
		for _, s := range siblings {
			if !s.Completed {
				allDone = false
				break
			}
		}

		if parent.Completed == allDone {
			// Fixed point: nothing above can change either.
			return nil
		}

		if err := e.store.SetCompleted(ctx, parent.ID, allDone); err != nil {
			return fmt.Errorf("set completion of %s: %w", parent.ID, err)
		}
		parent.Completed = allDone
		current = parent
	}
	return nil
}

// ValidateMove checks whether the node may be relocated to another
// list. Only top-level tasks move; relocating a subtask would leave its
// parent in a different list.
func (e *Engine) ValidateMove(n *Node, targetListID uuid.UUID) error {
	if n.ParentID != nil {
		return ErrSubtaskMove
	}
	return nil
}

// Move relocates a top-level task to another list, rewriting list_id
// across its whole subtree so the list-consistency invariant holds for
// every descendant, not just the root.
func (e *Engine) Move(ctx context.Context, n *Node, targetListID uuid.UUID) error {
	if err := e.ValidateMove(n, targetListID); err != nil {
		return err
	}
	if n.ListID == targetListID {
		return nil
	}

	queue := []uuid.UUID{n.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if err := e.store.SetListID(ctx, id, targetListID); err != nil {
			return fmt.Errorf("rewrite list of %s: %w", id, err)
		}

		children, err := e.store.Children(ctx, id)
		if err != nil {
			return fmt.Errorf("list children of %s: %w", id, err)
		}
		for _, child := range children {
			queue = append(queue, child.ID)
		}
	}

	n.ListID = targetListID
	return nil
}
