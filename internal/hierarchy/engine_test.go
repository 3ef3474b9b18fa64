// internal/hierarchy/engine_test.go
package hierarchy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for exercising the engine without a
// database.
type memStore struct {
	nodes            map[uuid.UUID]*Node
	children         map[uuid.UUID][]uuid.UUID
	completionWrites int
	listWrites       int
}

func newMemStore() *memStore {
	return &memStore{
		nodes:    make(map[uuid.UUID]*Node),
		children: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *memStore) add(listID uuid.UUID, parentID *uuid.UUID, completed bool) uuid.UUID {
	id := uuid.New()
	s.nodes[id] = &Node{ID: id, ListID: listID, ParentID: parentID, Completed: completed}
	if parentID != nil {
		s.children[*parentID] = append(s.children[*parentID], id)
	}
	return id
}

func (s *memStore) Node(ctx context.Context, id uuid.UUID) (*Node, error) {
	n := s.nodes[id]
	copied := *n
	return &copied, nil
}

func (s *memStore) Children(ctx context.Context, parentID uuid.UUID) ([]*Node, error) {
	out := make([]*Node, 0, len(s.children[parentID]))
	for _, id := range s.children[parentID] {
		copied := *s.nodes[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (s *memStore) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	s.nodes[id].Completed = completed
	s.completionWrites++
	return nil
}

func (s *memStore) SetListID(ctx context.Context, id uuid.UUID, listID uuid.UUID) error {
	s.nodes[id].ListID = listID
	s.listWrites++
	return nil
}

func TestEngine_Depth(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, false)
	child := store.add(listID, &root, false)
	grandchild := store.add(listID, &child, false)
	greatGrandchild := store.add(listID, &grandchild, false)

	ctx := context.Background()
	for i, id := range []uuid.UUID{root, child, grandchild, greatGrandchild} {
		n, err := store.Node(ctx, id)
		require.NoError(t, err)

		depth, err := engine.Depth(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, i, depth)
	}
}

func TestEngine_CanHaveSubtasks_UnlimitedNesting(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	// Build a deep chain; eligibility must hold at every level.
	parent := store.add(listID, nil, false)
	for i := 0; i < 10; i++ {
		parent = store.add(listID, &parent, false)
	}

	ctx := context.Background()
	n, err := store.Node(ctx, parent)
	require.NoError(t, err)

	ok, err := engine.CanHaveSubtasks(ctx, n)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, engine.CheckSubtaskEligibility(ctx, n))
}

func TestEngine_CascadeDown(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	// Mixed completion state across three levels.
	root := store.add(listID, nil, false)
	a := store.add(listID, &root, true)
	b := store.add(listID, &root, false)
	a1 := store.add(listID, &a, false)
	a2 := store.add(listID, &a, true)
	b1 := store.add(listID, &b, false)

	ctx := context.Background()
	n, err := store.Node(ctx, root)
	require.NoError(t, err)

	require.NoError(t, engine.CascadeDown(ctx, n, true))
	for _, id := range []uuid.UUID{root, a, b, a1, a2, b1} {
		assert.True(t, store.nodes[id].Completed)
	}

	// Reopening cascades the same way.
	n, err = store.Node(ctx, root)
	require.NoError(t, err)
	require.NoError(t, engine.CascadeDown(ctx, n, false))
	for _, id := range []uuid.UUID{root, a, b, a1, a2, b1} {
		assert.False(t, store.nodes[id].Completed)
	}
}

func TestEngine_CascadeDown_Idempotent(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, false)
	a := store.add(listID, &root, true)
	b := store.add(listID, &root, false)
	a1 := store.add(listID, &a, false)

	ctx := context.Background()
	n, err := store.Node(ctx, root)
	require.NoError(t, err)
	require.NoError(t, engine.CascadeDown(ctx, n, true))

	firstPassWrites := store.completionWrites

	// Applying the same status again must land on the same state.
	n, err = store.Node(ctx, root)
	require.NoError(t, err)
	require.NoError(t, engine.CascadeDown(ctx, n, true))

	for _, id := range []uuid.UUID{root, a, b, a1} {
		assert.True(t, store.nodes[id].Completed)
	}
	assert.Equal(t, firstPassWrites, store.completionWrites-firstPassWrites,
		"second pass visits the same subtree")
}

func TestEngine_CascadeUp_CompletesAncestors(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, false)
	a := store.add(listID, &root, false)
	b := store.add(listID, &root, true)
	a1 := store.add(listID, &a, true)
	a2 := store.add(listID, &a, false)

	ctx := context.Background()
	_ = a1

	// Completing the last open leaf completes its parent and, since the
	// sibling subtree is done too, the root.
	require.NoError(t, store.SetCompleted(ctx, a2, true))
	n, err := store.Node(ctx, a2)
	require.NoError(t, err)
	require.NoError(t, engine.CascadeUp(ctx, n))

	assert.True(t, store.nodes[a].Completed)
	assert.True(t, store.nodes[root].Completed)
	assert.True(t, store.nodes[b].Completed)
}

func TestEngine_CascadeUp_StopsAtIncompleteSibling(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, false)
	a := store.add(listID, &root, false)
	b := store.add(listID, &root, false) // stays open
	a1 := store.add(listID, &a, true)
	a2 := store.add(listID, &a, false)
	_ = a1
	_ = b

	ctx := context.Background()
	require.NoError(t, store.SetCompleted(ctx, a2, true))
	n, err := store.Node(ctx, a2)
	require.NoError(t, err)
	require.NoError(t, engine.CascadeUp(ctx, n))

	assert.True(t, store.nodes[a].Completed, "parent with all children done must complete")
	assert.False(t, store.nodes[root].Completed, "root must stay open while a child subtree is open")
}

func TestEngine_CascadeUp_ReopenRipplesToRoot(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, true)
	a := store.add(listID, &root, true)
	a1 := store.add(listID, &a, true)
	a11 := store.add(listID, &a1, true)

	ctx := context.Background()
	require.NoError(t, store.SetCompleted(ctx, a11, false))
	n, err := store.Node(ctx, a11)
	require.NoError(t, err)
	require.NoError(t, engine.CascadeUp(ctx, n))

	assert.False(t, store.nodes[a1].Completed)
	assert.False(t, store.nodes[a].Completed)
	assert.False(t, store.nodes[root].Completed)
}

func TestEngine_CascadeUp_FixedPointWritesNothing(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, false)
	a := store.add(listID, &root, true)
	b := store.add(listID, &root, false)
	_ = b

	// The root already derives to open; recomputing from a completed
	// child must not touch storage.
	ctx := context.Background()
	n, err := store.Node(ctx, a)
	require.NoError(t, err)

	before := store.completionWrites
	require.NoError(t, engine.CascadeUp(ctx, n))
	assert.Equal(t, before, store.completionWrites)
}

func TestEngine_CascadeUp_TopLevelIsNoOp(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, true)

	ctx := context.Background()
	n, err := store.Node(ctx, root)
	require.NoError(t, err)

	before := store.completionWrites
	require.NoError(t, engine.CascadeUp(ctx, n))
	assert.Equal(t, before, store.completionWrites)
}

func TestEngine_Move(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	fromList := uuid.New()
	toList := uuid.New()

	root := store.add(fromList, nil, false)
	a := store.add(fromList, &root, false)
	a1 := store.add(fromList, &a, false)

	ctx := context.Background()
	n, err := store.Node(ctx, root)
	require.NoError(t, err)

	require.NoError(t, engine.Move(ctx, n, toList))
	for _, id := range []uuid.UUID{root, a, a1} {
		assert.Equal(t, toList, store.nodes[id].ListID, "every node of the subtree must follow the root")
	}
	assert.Equal(t, toList, n.ListID)
}

func TestEngine_Move_SameListIsNoOp(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, false)

	ctx := context.Background()
	n, err := store.Node(ctx, root)
	require.NoError(t, err)

	require.NoError(t, engine.Move(ctx, n, listID))
	assert.Zero(t, store.listWrites)
}

func TestEngine_Move_RejectsSubtask(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	listID := uuid.New()

	root := store.add(listID, nil, false)
	child := store.add(listID, &root, false)

	ctx := context.Background()
	n, err := store.Node(ctx, child)
	require.NoError(t, err)

	err = engine.Move(ctx, n, uuid.New())
	assert.ErrorIs(t, err, ErrSubtaskMove)
	assert.Equal(t, listID, store.nodes[child].ListID)
}
