// internal/service/task_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	todov1 "github.com/nestlist/nestlist/api/proto/todo/v1/generated"
)

func boolPtr(b bool) *bool { return &b }

// createTaskTree builds a list with one top-level task and the given
// subtask descriptions, returning the list id, root id and subtask ids.
func createTaskTree(t *testing.T, env *testEnv, ctx context.Context, subtasks ...string) (string, string, []string) {
	listResp, err := env.listService.CreateList(ctx, &todov1.CreateListRequest{Name: "Chores"})
	require.NoError(t, err)

	taskResp, err := env.taskService.CreateTask(ctx, &todov1.CreateTaskRequest{
		ListId:      listResp.List.Id,
		Description: "Clean the house",
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(subtasks))
	for _, description := range subtasks {
		subResp, err := env.taskService.CreateSubtask(ctx, &todov1.CreateSubtaskRequest{
			ParentTaskId: taskResp.Task.Id,
			Description:  description,
		})
		require.NoError(t, err)
		ids = append(ids, subResp.Task.Id)
	}
	return listResp.List.Id, taskResp.Task.Id, ids
}

func TestTaskService_CreateTask(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	listResp, err := env.listService.CreateList(ctx, &todov1.CreateListRequest{Name: "Inbox"})
	require.NoError(t, err)

	resp, err := env.taskService.CreateTask(ctx, &todov1.CreateTaskRequest{
		ListId:      listResp.List.Id,
		Description: "Answer emails",
	})
	require.NoError(t, err)
	assert.Equal(t, "Answer emails", resp.Task.Description)
	assert.Empty(t, resp.Task.ParentId)
	assert.Equal(t, int32(0), resp.Task.Depth)
	assert.True(t, resp.Task.CanHaveSubtasks)
	assert.False(t, resp.Task.Completed)
}

func TestTaskService_CreateTask_ForeignList(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.client, "owner@example.com", "owner")
	intruder := createTestUser(t, env.client, "intruder@example.com", "intruder")

	listResp, err := env.listService.CreateList(authContext(owner.ID), &todov1.CreateListRequest{Name: "Private"})
	require.NoError(t, err)

	_, err = env.taskService.CreateTask(authContext(intruder.ID), &todov1.CreateTaskRequest{
		ListId:      listResp.List.Id,
		Description: "Should not land here",
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestTaskService_CreateSubtask_Nesting(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum")

	// Subtasks nest arbitrarily deep; depth grows by one per level.
	parentID := subtaskIDs[0]
	for wantDepth := int32(2); wantDepth <= 4; wantDepth++ {
		resp, err := env.taskService.CreateSubtask(ctx, &todov1.CreateSubtaskRequest{
			ParentTaskId: parentID,
			Description:  "Nested step",
		})
		require.NoError(t, err)
		assert.Equal(t, wantDepth, resp.Task.Depth)
		assert.True(t, resp.Task.CanHaveSubtasks)
		parentID = resp.Task.Id
	}

	// The whole chain lives in the root's list.
	getResp, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: rootID, IncludeSubtasks: true})
	require.NoError(t, err)
	assert.Len(t, getResp.Task.Subtasks, 1)
}

func TestTaskService_CreateSubtask_ReopensCompletedParent(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, _ := createTaskTree(t, env, ctx)

	_, err := env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        rootID,
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	// A fresh open subtask under a completed task reopens it.
	_, err = env.taskService.CreateSubtask(ctx, &todov1.CreateSubtaskRequest{
		ParentTaskId: rootID,
		Description:  "Forgot this one",
	})
	require.NoError(t, err)

	getResp, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: rootID})
	require.NoError(t, err)
	assert.False(t, getResp.Task.Completed)
}

func TestTaskService_CreateSubtask_CompletedChildCompletesParent(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum")

	_, err := env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        subtaskIDs[0],
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	// The insert lands already complete, so the ancestor recomputation
	// bundled with it completes the parent in the same unit.
	_, err = env.taskService.CreateSubtask(ctx, &todov1.CreateSubtaskRequest{
		ParentTaskId: rootID,
		Description:  "Already handled",
		Completed:    true,
	})
	require.NoError(t, err)

	getResp, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: rootID})
	require.NoError(t, err)
	assert.True(t, getResp.Task.Completed)
}

func TestTaskService_UpdateTask_CascadeDown(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum", "Dust", "Mop")

	// Nest one more level under the first subtask.
	nested, err := env.taskService.CreateSubtask(ctx, &todov1.CreateSubtaskRequest{
		ParentTaskId: subtaskIDs[0],
		Description:  "Empty the vacuum bag",
	})
	require.NoError(t, err)

	resp, err := env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        rootID,
		Completed: boolPtr(true),
		Cascade:   true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Task.Completed)
	require.Len(t, resp.Task.Subtasks, 3)
	for _, sub := range resp.Task.Subtasks {
		assert.True(t, sub.Completed)
	}

	nestedResp, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: nested.Task.Id})
	require.NoError(t, err)
	assert.True(t, nestedResp.Task.Completed)
}

func TestTaskService_UpdateTask_LastSiblingCompletesParent(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum", "Dust")

	_, err := env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        subtaskIDs[0],
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	// One sibling still open, the parent stays open.
	getResp, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: rootID})
	require.NoError(t, err)
	assert.False(t, getResp.Task.Completed)

	// Completing the last open sibling completes the parent.
	_, err = env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        subtaskIDs[1],
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	getResp, err = env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: rootID})
	require.NoError(t, err)
	assert.True(t, getResp.Task.Completed)
}

func TestTaskService_UpdateTask_ReopenRipplesToRoot(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum")
	nested, err := env.taskService.CreateSubtask(ctx, &todov1.CreateSubtaskRequest{
		ParentTaskId: subtaskIDs[0],
		Description:  "Empty the vacuum bag",
	})
	require.NoError(t, err)

	_, err = env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        rootID,
		Completed: boolPtr(true),
		Cascade:   true,
	})
	require.NoError(t, err)

	// Reopening the deepest leaf reopens every ancestor.
	_, err = env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        nested.Task.Id,
		Completed: boolPtr(false),
	})
	require.NoError(t, err)

	getResp, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: rootID, IncludeSubtasks: true})
	require.NoError(t, err)
	assert.False(t, getResp.Task.Completed)
	require.Len(t, getResp.Task.Subtasks, 1)
	assert.False(t, getResp.Task.Subtasks[0].Completed)
}

func TestTaskService_UpdateTask_MoveSubtree(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum", "Dust")

	otherList, err := env.listService.CreateList(ctx, &todov1.CreateListRequest{Name: "Weekend"})
	require.NoError(t, err)

	resp, err := env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:     rootID,
		ListId: &otherList.List.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, otherList.List.Id, resp.Task.ListId)

	// Descendants follow the root into the new list.
	for _, id := range subtaskIDs {
		subResp, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: id})
		require.NoError(t, err)
		assert.Equal(t, otherList.List.Id, subResp.Task.ListId)
	}
}

func TestTaskService_UpdateTask_MoveSubtaskRejected(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, _, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum")

	otherList, err := env.listService.CreateList(ctx, &todov1.CreateListRequest{Name: "Weekend"})
	require.NoError(t, err)

	_, err = env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:     subtaskIDs[0],
		ListId: &otherList.List.Id,
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestTaskService_UpdateTask_MoveToForeignListRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.client, "owner@example.com", "owner")
	other := createTestUser(t, env.client, "other@example.com", "otheruser")
	ctx := authContext(owner.ID)

	_, rootID, _ := createTaskTree(t, env, ctx)

	foreignList, err := env.listService.CreateList(authContext(other.ID), &todov1.CreateListRequest{Name: "Not yours"})
	require.NoError(t, err)

	_, err = env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:     rootID,
		ListId: &foreignList.List.Id,
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestTaskService_UpdateTask_Description(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	_, rootID, _ := createTaskTree(t, env, ctx)

	newDescription := "Deep clean the house"
	resp, err := env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:          rootID,
		Description: &newDescription,
	})
	require.NoError(t, err)
	assert.Equal(t, newDescription, resp.Task.Description)
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")

	_, err := env.taskService.GetTask(authContext(user.ID), &todov1.GetTaskRequest{
		Id: "0e0cc1a4-0000-4000-8000-000000000000",
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTaskService_DeleteTask_RemovesSubtree(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	listID, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum", "Dust")

	_, err := env.taskService.DeleteTask(ctx, &todov1.DeleteTaskRequest{Id: rootID})
	require.NoError(t, err)

	for _, id := range append(subtaskIDs, rootID) {
		_, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: id})
		assert.Equal(t, codes.NotFound, status.Code(err))
	}

	// The list itself survives, empty.
	listResp, err := env.listService.GetList(ctx, &todov1.GetListRequest{Id: listID})
	require.NoError(t, err)
	assert.Empty(t, listResp.List.Tasks)
}

func TestTaskService_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.taskService.CreateTask(context.Background(), &todov1.CreateTaskRequest{
		ListId:      "0e0cc1a4-0000-4000-8000-000000000000",
		Description: "No user on context",
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
