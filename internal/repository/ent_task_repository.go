// internal/repository/ent_task_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/ent/generated/task"
	"github.com/nestlist/nestlist/internal/hierarchy"
)

// EntTaskRepository is the Ent-backed node store for the task forest.
type EntTaskRepository struct {
	client *ent.Client
}

func NewEntTaskRepository(client *ent.Client) *EntTaskRepository {
	return &EntTaskRepository{
		client: client,
	}
}

// WithTx runs fn inside a transaction, committing on success and rolling
// the whole unit back on any error. Multi-step cascades go through here
// so no partial cascade is ever left half-applied.
func (r *EntTaskRepository) WithTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// rollback rolls back the transaction, keeping the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}

// NewStore returns the hierarchy engine's view over a task client. Pass
// tx.Task to walk inside a transaction, or client.Task for plain reads.
func NewStore(tc *ent.TaskClient) hierarchy.Store {
	return &entStore{tasks: tc}
}

type entStore struct {
	tasks *ent.TaskClient
}

func (s *entStore) Node(ctx context.Context, id uuid.UUID) (*hierarchy.Node, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return nodeFromTask(t), nil
}

func (s *entStore) Children(ctx context.Context, parentID uuid.UUID) ([]*hierarchy.Node, error) {
	children, err := s.tasks.Query().
		Where(task.ParentID(parentID)).
		Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]*hierarchy.Node, len(children))
	for i, c := range children {
		nodes[i] = nodeFromTask(c)
	}
	return nodes, nil
}

func (s *entStore) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return s.tasks.UpdateOneID(id).SetCompleted(completed).Exec(ctx)
}

func (s *entStore) SetListID(ctx context.Context, id uuid.UUID, listID uuid.UUID) error {
	return s.tasks.UpdateOneID(id).SetListID(listID).Exec(ctx)
}

func nodeFromTask(t *ent.Task) *hierarchy.Node {
	return &hierarchy.Node{
		ID:        t.ID,
		ListID:    t.ListID,
		ParentID:  t.ParentID,
		Completed: t.Completed,
	}
}

// GetTask returns a single task by id.
func (r *EntTaskRepository) GetTask(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	return r.client.Task.Get(ctx, id)
}

// CreateTask inserts a top-level task into a list.
func (r *EntTaskRepository) CreateTask(ctx context.Context, listID uuid.UUID, description string, completed bool) (*ent.Task, error) {
	return r.client.Task.
		Create().
		SetDescription(description).
		SetCompleted(completed).
		SetListID(listID).
		Save(ctx)
}

// CreateSubtask inserts a child under parent. The child always lands in
// the parent's list.
func (r *EntTaskRepository) CreateSubtask(ctx context.Context, parent *ent.Task, description string, completed bool) (*ent.Task, error) {
	return createSubtask(ctx, r.client.Task, parent, description, completed)
}

// CreateSubtaskTx is CreateSubtask inside an open transaction, for
// callers that recompute ancestor completion in the same unit.
func (r *EntTaskRepository) CreateSubtaskTx(ctx context.Context, tx *ent.Tx, parent *ent.Task, description string, completed bool) (*ent.Task, error) {
	return createSubtask(ctx, tx.Task, parent, description, completed)
}

func createSubtask(ctx context.Context, tc *ent.TaskClient, parent *ent.Task, description string, completed bool) (*ent.Task, error) {
	return tc.
		Create().
		SetDescription(description).
		SetCompleted(completed).
		SetListID(parent.ListID).
		SetParentID(parent.ID).
		Save(ctx)
}

// ChildrenOf returns the direct children of a task in insertion order.
func (r *EntTaskRepository) ChildrenOf(ctx context.Context, parentID uuid.UUID) ([]*ent.Task, error) {
	return r.client.Task.Query().
		Where(task.ParentID(parentID)).
		Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		All(ctx)
}

// ListTasks returns every task of a list in insertion order, top-level
// and nested alike. Callers regroup them into trees.
func (r *EntTaskRepository) ListTasks(ctx context.Context, listID uuid.UUID) ([]*ent.Task, error) {
	return r.client.Task.Query().
		Where(task.ListID(listID)).
		Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		All(ctx)
}

// SubtreeIDs collects the ids of a task and all its descendants,
// breadth-first.
func (r *EntTaskRepository) SubtreeIDs(ctx context.Context, rootID uuid.UUID) ([]uuid.UUID, error) {
	return subtreeIDs(ctx, r.client.Task, rootID)
}

func subtreeIDs(ctx context.Context, tc *ent.TaskClient, rootID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{rootID}
	frontier := []uuid.UUID{rootID}

	for len(frontier) > 0 {
		childIDs, err := tc.Query().
			Where(task.ParentIDIn(frontier...)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("collect subtree of %s: %w", rootID, err)
		}
		ids = append(ids, childIDs...)
		frontier = childIDs
	}
	return ids, nil
}

// DeleteSubtree removes a task and every descendant in one transaction
// and returns the number of removed records.
func (r *EntTaskRepository) DeleteSubtree(ctx context.Context, rootID uuid.UUID) (int, error) {
	// Existence check so callers get ent's not-found for bad ids.
	if _, err := r.client.Task.Get(ctx, rootID); err != nil {
		return 0, err
	}

	var removed int
	err := r.WithTx(ctx, func(tx *ent.Tx) error {
		ids, err := subtreeIDs(ctx, tx.Task, rootID)
		if err != nil {
			return err
		}

		n, err := tx.Task.Delete().
			Where(task.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete subtree of %s: %w", rootID, err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// DeleteListTasks removes every task belonging to a list. Used by list
// deletion, which owns its tasks transitively.
func (r *EntTaskRepository) DeleteListTasks(ctx context.Context, tx *ent.Tx, listID uuid.UUID) (int, error) {
	return tx.Task.Delete().
		Where(task.ListID(listID)).
		Exec(ctx)
}
