// internal/service/task_tree.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	todov1 "github.com/nestlist/nestlist/api/proto/todo/v1/generated"
	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/internal/hierarchy"
)

// taskConverter builds the tree-shaped task representation. Depth and
// eligibility are computed on the way down, never read from storage, so
// converting unchanged state twice yields identical output.
type taskConverter struct {
	engine *hierarchy.Engine
}

func newTaskConverter(engine *hierarchy.Engine) *taskConverter {
	return &taskConverter{engine: engine}
}

func nodeFromEntTask(t *ent.Task) *hierarchy.Node {
	return &hierarchy.Node{
		ID:        t.ID,
		ListID:    t.ListID,
		ParentID:  t.ParentID,
		Completed: t.Completed,
	}
}

// proto converts a single task at a known depth, without subtasks.
func (c *taskConverter) proto(ctx context.Context, t *ent.Task, depth int) (*todov1.Task, error) {
	canHaveSubtasks, err := c.engine.CanHaveSubtasks(ctx, nodeFromEntTask(t))
	if err != nil {
		return nil, err
	}

	proto := &todov1.Task{
		Id:              t.ID.String(),
		ListId:          t.ListID.String(),
		Description:     t.Description,
		Completed:       t.Completed,
		Depth:           int32(depth),
		CanHaveSubtasks: canHaveSubtasks,
		CreatedAt:       timestamppb.New(t.CreatedAt),
		UpdatedAt:       timestamppb.New(t.UpdatedAt),
	}
	if t.ParentID != nil {
		proto.ParentId = t.ParentID.String()
	}
	return proto, nil
}

// forest converts a flat, insertion-ordered slice holding every task of
// a list into the nested top-level trees.
func (c *taskConverter) forest(ctx context.Context, tasks []*ent.Task) ([]*todov1.Task, error) {
	byParent := make(map[uuid.UUID][]*ent.Task)
	var roots []*ent.Task
	for _, t := range tasks {
		if t.ParentID == nil {
			roots = append(roots, t)
		} else {
			byParent[*t.ParentID] = append(byParent[*t.ParentID], t)
		}
	}

	out := make([]*todov1.Task, 0, len(roots))
	for _, r := range roots {
		node, err := c.subtreeFromIndex(ctx, r, byParent, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

// subtree converts a root task and a flat slice of its descendants into
// a nested tree rooted at the given depth.
func (c *taskConverter) subtree(ctx context.Context, root *ent.Task, descendants []*ent.Task, rootDepth int) (*todov1.Task, error) {
	byParent := make(map[uuid.UUID][]*ent.Task)
	for _, t := range descendants {
		if t.ParentID != nil {
			byParent[*t.ParentID] = append(byParent[*t.ParentID], t)
		}
	}
	return c.subtreeFromIndex(ctx, root, byParent, rootDepth)
}

func (c *taskConverter) subtreeFromIndex(ctx context.Context, t *ent.Task, byParent map[uuid.UUID][]*ent.Task, depth int) (*todov1.Task, error) {
	proto, err := c.proto(ctx, t, depth)
	if err != nil {
		return nil, err
	}
	for _, child := range byParent[t.ID] {
		sub, err := c.subtreeFromIndex(ctx, child, byParent, depth+1)
		if err != nil {
			return nil, err
		}
		proto.Subtasks = append(proto.Subtasks, sub)
	}
	return proto, nil
}
