// internal/repository/ent_task_repository_test.go
package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/ent/generated/enttest"
	"github.com/nestlist/nestlist/internal/hierarchy"

	_ "github.com/mattn/go-sqlite3"
)

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

func createTestList(t *testing.T, client *ent.Client) *ent.TodoList {
	ctx := context.Background()

	owner, err := client.User.Create().
		SetEmail(uuid.NewString() + "@example.com").
		SetUsername("u" + uuid.NewString()[:8]).
		SetPasswordHash("not-a-real-hash").
		Save(ctx)
	require.NoError(t, err)

	list, err := client.TodoList.Create().
		SetName("Groceries").
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)

	return list
}

func TestEntTaskRepository_CreateSubtask_InheritsList(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	repo := NewEntTaskRepository(client)
	list := createTestList(t, client)

	root, err := repo.CreateTask(ctx, list.ID, "Plan the week", false)
	require.NoError(t, err)
	assert.Nil(t, root.ParentID)
	assert.False(t, root.Completed)

	child, err := repo.CreateSubtask(ctx, root, "Write shopping list", false)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.ID, *child.ParentID)
	assert.Equal(t, list.ID, child.ListID)
}

func TestEntTaskRepository_ChildrenOf_InsertionOrder(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	repo := NewEntTaskRepository(client)
	list := createTestList(t, client)

	root, err := repo.CreateTask(ctx, list.ID, "Pack", false)
	require.NoError(t, err)

	descriptions := []string{"Books", "Clothes", "Kitchen"}
	for _, d := range descriptions {
		_, err := repo.CreateSubtask(ctx, root, d, false)
		require.NoError(t, err)
	}

	children, err := repo.ChildrenOf(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, len(descriptions))
	for i, child := range children {
		assert.Equal(t, descriptions[i], child.Description)
	}
}

func TestEntTaskRepository_SubtreeIDs(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	repo := NewEntTaskRepository(client)
	list := createTestList(t, client)

	root, err := repo.CreateTask(ctx, list.ID, "Renovate", false)
	require.NoError(t, err)
	a, err := repo.CreateSubtask(ctx, root, "Paint", false)
	require.NoError(t, err)
	b, err := repo.CreateSubtask(ctx, root, "Floor", false)
	require.NoError(t, err)
	a1, err := repo.CreateSubtask(ctx, a, "Buy paint", false)
	require.NoError(t, err)

	// An unrelated top-level task must stay out.
	other, err := repo.CreateTask(ctx, list.ID, "Unrelated", false)
	require.NoError(t, err)

	ids, err := repo.SubtreeIDs(ctx, root.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{root.ID, a.ID, b.ID, a1.ID}, ids)
	assert.NotContains(t, ids, other.ID)
}

func TestEntTaskRepository_DeleteSubtree(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	repo := NewEntTaskRepository(client)
	list := createTestList(t, client)

	root, err := repo.CreateTask(ctx, list.ID, "Trip", false)
	require.NoError(t, err)
	a, err := repo.CreateSubtask(ctx, root, "Book flights", false)
	require.NoError(t, err)
	_, err = repo.CreateSubtask(ctx, a, "Compare prices", false)
	require.NoError(t, err)

	survivor, err := repo.CreateTask(ctx, list.ID, "Taxes", false)
	require.NoError(t, err)

	removed, err := repo.DeleteSubtree(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	_, err = repo.GetTask(ctx, a.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = repo.GetTask(ctx, survivor.ID)
	assert.NoError(t, err)
}

func TestEntTaskRepository_DeleteSubtree_NotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	repo := NewEntTaskRepository(client)

	_, err := repo.DeleteSubtree(context.Background(), uuid.New())
	assert.True(t, ent.IsNotFound(err))
}

func TestEntStore_TransactionalCascade(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	repo := NewEntTaskRepository(client)
	list := createTestList(t, client)

	root, err := repo.CreateTask(ctx, list.ID, "Release", false)
	require.NoError(t, err)
	a, err := repo.CreateSubtask(ctx, root, "Tag version", false)
	require.NoError(t, err)
	b, err := repo.CreateSubtask(ctx, root, "Write changelog", true)
	require.NoError(t, err)
	_ = b

	// Completing the open child inside a transaction must complete the
	// root as well once the transaction commits.
	err = repo.WithTx(ctx, func(tx *ent.Tx) error {
		store := NewStore(tx.Task)
		engine := hierarchy.NewEngine(store)

		if err := store.SetCompleted(ctx, a.ID, true); err != nil {
			return err
		}
		n, err := store.Node(ctx, a.ID)
		if err != nil {
			return err
		}
		return engine.CascadeUp(ctx, n)
	})
	require.NoError(t, err)

	reloaded, err := repo.GetTask(ctx, root.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Completed)
}

func TestEntTaskRepository_CreateSubtaskTx_RollsBackWithCascade(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	repo := NewEntTaskRepository(client)
	list := createTestList(t, client)

	root, err := repo.CreateTask(ctx, list.ID, "Ship release", true)
	require.NoError(t, err)

	// A failure after the insert and the ancestor recomputation must
	// roll back both writes, leaving the parent untouched.
	failure := assert.AnError
	err = repo.WithTx(ctx, func(tx *ent.Tx) error {
		store := NewStore(tx.Task)
		engine := hierarchy.NewEngine(store)

		child, err := repo.CreateSubtaskTx(ctx, tx, root, "Last-minute fix", false)
		if err != nil {
			return err
		}
		n, err := store.Node(ctx, child.ID)
		if err != nil {
			return err
		}
		if err := engine.CascadeUp(ctx, n); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	reloaded, err := repo.GetTask(ctx, root.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Completed)

	children, err := repo.ChildrenOf(ctx, root.ID)
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestEntTaskRepository_DeleteListTasks(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	repo := NewEntTaskRepository(client)
	list := createTestList(t, client)
	other := createTestList(t, client)

	root, err := repo.CreateTask(ctx, list.ID, "Yard work", false)
	require.NoError(t, err)
	_, err = repo.CreateSubtask(ctx, root, "Mow the lawn", false)
	require.NoError(t, err)
	kept, err := repo.CreateTask(ctx, other.ID, "Keep me", false)
	require.NoError(t, err)

	var removed int
	err = repo.WithTx(ctx, func(tx *ent.Tx) error {
		n, err := repo.DeleteListTasks(ctx, tx, list.ID)
		removed = n
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = repo.GetTask(ctx, kept.ID)
	assert.NoError(t, err)
}
