// internal/service/list_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	todov1 "github.com/nestlist/nestlist/api/proto/todo/v1/generated"
)

func TestListService_CreateList(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	resp, err := env.listService.CreateList(ctx, &todov1.CreateListRequest{
		Name:        "Groceries",
		Description: "Weekly shopping",
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", resp.List.Name)
	assert.Equal(t, "Weekly shopping", resp.List.Description)
	assert.Empty(t, resp.List.Tasks)
}

func TestListService_GetList_NestedTrees(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	listID, rootID, _ := createTaskTree(t, env, ctx, "Vacuum", "Dust")

	// A second top-level task next to the tree.
	_, err := env.taskService.CreateTask(ctx, &todov1.CreateTaskRequest{
		ListId:      listID,
		Description: "Water the plants",
	})
	require.NoError(t, err)

	resp, err := env.listService.GetList(ctx, &todov1.GetListRequest{Id: listID})
	require.NoError(t, err)

	// Only top-level tasks appear at the first level, in insertion
	// order, with their subtasks nested beneath.
	require.Len(t, resp.List.Tasks, 2)
	first := resp.List.Tasks[0]
	assert.Equal(t, rootID, first.Id)
	assert.Equal(t, int32(0), first.Depth)
	require.Len(t, first.Subtasks, 2)
	assert.Equal(t, "Vacuum", first.Subtasks[0].Description)
	assert.Equal(t, int32(1), first.Subtasks[0].Depth)
	assert.Empty(t, resp.List.Tasks[1].Subtasks)
}

func TestListService_GetList_Ownership(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.client, "owner@example.com", "owner")
	other := createTestUser(t, env.client, "other@example.com", "otheruser")

	resp, err := env.listService.CreateList(authContext(owner.ID), &todov1.CreateListRequest{Name: "Private"})
	require.NoError(t, err)

	_, err = env.listService.GetList(authContext(other.ID), &todov1.GetListRequest{Id: resp.List.Id})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestListService_ListLists_OwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.client, "owner@example.com", "owner")
	other := createTestUser(t, env.client, "other@example.com", "otheruser")

	for _, name := range []string{"Home", "Work"} {
		_, err := env.listService.CreateList(authContext(owner.ID), &todov1.CreateListRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := env.listService.CreateList(authContext(other.ID), &todov1.CreateListRequest{Name: "Theirs"})
	require.NoError(t, err)

	resp, err := env.listService.ListLists(authContext(owner.ID), &todov1.ListListsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Lists, 2)
	assert.Equal(t, "Home", resp.Lists[0].Name)
	assert.Equal(t, "Work", resp.Lists[1].Name)
}

func TestListService_UpdateList(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	created, err := env.listService.CreateList(ctx, &todov1.CreateListRequest{Name: "Groceries"})
	require.NoError(t, err)

	newName := "Groceries and errands"
	resp, err := env.listService.UpdateList(ctx, &todov1.UpdateListRequest{
		Id:   created.List.Id,
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, resp.List.Name)
	// Untouched fields stay as they were.
	assert.Equal(t, created.List.Description, resp.List.Description)
}

func TestListService_DeleteList_RemovesTasks(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	listID, rootID, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum")

	_, err := env.listService.DeleteList(ctx, &todov1.DeleteListRequest{Id: listID})
	require.NoError(t, err)

	_, err = env.listService.GetList(ctx, &todov1.GetListRequest{Id: listID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	for _, id := range append(subtaskIDs, rootID) {
		_, err := env.taskService.GetTask(ctx, &todov1.GetTaskRequest{Id: id})
		assert.Equal(t, codes.NotFound, status.Code(err))
	}
}

func TestListService_GetListStats(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	listID, _, subtaskIDs := createTaskTree(t, env, ctx, "Vacuum", "Dust")

	_, err := env.taskService.UpdateTask(ctx, &todov1.UpdateTaskRequest{
		Id:        subtaskIDs[0],
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	resp, err := env.listService.GetListStats(ctx, &todov1.GetListStatsRequest{Id: listID})
	require.NoError(t, err)
	assert.Equal(t, listID, resp.ListId)
	assert.Equal(t, int32(3), resp.TotalTasks)
	assert.Equal(t, int32(1), resp.CompletedTasks)
	assert.Equal(t, int32(1), resp.TopLevelTasks)
}

func TestListService_GetListStats_EmptyList(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.client, "owner@example.com", "owner")
	ctx := authContext(user.ID)

	created, err := env.listService.CreateList(ctx, &todov1.CreateListRequest{Name: "Empty"})
	require.NoError(t, err)

	resp, err := env.listService.GetListStats(ctx, &todov1.GetListStatsRequest{Id: created.List.Id})
	require.NoError(t, err)
	assert.Zero(t, resp.TotalTasks)
	assert.Zero(t, resp.CompletedTasks)
	assert.Zero(t, resp.TopLevelTasks)
}
