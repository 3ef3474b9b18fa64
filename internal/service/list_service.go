// internal/service/list_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	todov1 "github.com/nestlist/nestlist/api/proto/todo/v1/generated"
	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/ent/generated/todolist"
	"github.com/nestlist/nestlist/internal/hierarchy"
	"github.com/nestlist/nestlist/internal/repository"
)

type ListService struct {
	todov1.UnimplementedListServiceServer
	client         *ent.Client
	repo           *repository.EntTaskRepository
	stats          *repository.StatsRepository
	activityLogger *ActivityLogger
	converter      *taskConverter
}

// NewListService creates a new list service
func NewListService(
	client *ent.Client,
	repo *repository.EntTaskRepository,
	stats *repository.StatsRepository,
	activityLogger *ActivityLogger,
) *ListService {
	return &ListService{
		client:         client,
		repo:           repo,
		stats:          stats,
		activityLogger: activityLogger,
		converter:      newTaskConverter(hierarchy.NewEngine(repository.NewStore(client.Task))),
	}
}

// CreateList creates a new list owned by the authenticated user
func (s *ListService) CreateList(ctx context.Context, req *todov1.CreateListRequest) (*todov1.CreateListResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.client.TodoList.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		SetOwnerID(userID).
		Save(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to create list")
	}

	if lerr := s.activityLogger.LogListCreated(ctx, userID, list.ID, list.Name); lerr != nil {
		log.Printf("Failed to record list creation: %v", lerr)
	}

	return &todov1.CreateListResponse{
		List: s.convertListToProto(list, nil),
	}, nil
}

// GetList returns a list with its nested top-level task trees
func (s *ListService) GetList(ctx context.Context, req *todov1.GetListRequest) (*todov1.GetListResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	listID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid list ID format")
	}

	list, err := ownedList(ctx, s.client, listID, userID)
	if err != nil {
		return nil, err
	}

	trees, err := s.loadTaskTrees(ctx, listID)
	if err != nil {
		return nil, err
	}

	return &todov1.GetListResponse{
		List: s.convertListToProto(list, trees),
	}, nil
}

// ListLists returns every list owned by the authenticated user
func (s *ListService) ListLists(ctx context.Context, req *todov1.ListListsRequest) (*todov1.ListListsResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	lists, err := s.client.TodoList.Query().
		Where(todolist.OwnerID(userID)).
		Order(ent.Asc(todolist.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list lists")
	}

	protoLists := make([]*todov1.TodoList, len(lists))
	for i, list := range lists {
		trees, err := s.loadTaskTrees(ctx, list.ID)
		if err != nil {
			return nil, err
		}
		protoLists[i] = s.convertListToProto(list, trees)
	}

	return &todov1.ListListsResponse{
		Lists: protoLists,
	}, nil
}

// UpdateList applies name and description changes
func (s *ListService) UpdateList(ctx context.Context, req *todov1.UpdateListRequest) (*todov1.UpdateListResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	listID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid list ID format")
	}

	list, err := ownedList(ctx, s.client, listID, userID)
	if err != nil {
		return nil, err
	}

	update := list.Update()
	if req.Name != nil {
		update = update.SetName(req.GetName())
	}
	if req.Description != nil {
		update = update.SetDescription(req.GetDescription())
	}

	list, err = update.Save(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to update list")
	}

	trees, err := s.loadTaskTrees(ctx, listID)
	if err != nil {
		return nil, err
	}

	return &todov1.UpdateListResponse{
		List: s.convertListToProto(list, trees),
	}, nil
}

// DeleteList removes a list together with every task it owns
func (s *ListService) DeleteList(ctx context.Context, req *todov1.DeleteListRequest) (*emptypb.Empty, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	listID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid list ID format")
	}

	if _, err := ownedList(ctx, s.client, listID, userID); err != nil {
		return nil, err
	}

	var removedTasks int
	err = s.repo.WithTx(ctx, func(tx *ent.Tx) error {
		n, err := s.repo.DeleteListTasks(ctx, tx, listID)
		if err != nil {
			return err
		}
		removedTasks = n
		return tx.TodoList.DeleteOneID(listID).Exec(ctx)
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to delete list")
	}

	if lerr := s.activityLogger.LogListDeleted(ctx, userID, listID, removedTasks); lerr != nil {
		log.Printf("Failed to record list deletion: %v", lerr)
	}

	return &emptypb.Empty{}, nil
}

// GetListStats returns the aggregate task counts of a list
func (s *ListService) GetListStats(ctx context.Context, req *todov1.GetListStatsRequest) (*todov1.GetListStatsResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	listID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid list ID format")
	}

	if _, err := ownedList(ctx, s.client, listID, userID); err != nil {
		return nil, err
	}

	stats, err := s.stats.ListStats(ctx, listID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to query list stats")
	}

	return &todov1.GetListStatsResponse{
		ListId:         listID.String(),
		TotalTasks:     int32(stats.TotalTasks),
		CompletedTasks: int32(stats.CompletedTasks),
		TopLevelTasks:  int32(stats.TopLevelTasks),
	}, nil
}

// loadTaskTrees loads every task of a list and nests it into top-level
// trees.
func (s *ListService) loadTaskTrees(ctx context.Context, listID uuid.UUID) ([]*todov1.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, listID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to load tasks")
	}

	trees, err := s.converter.forest(ctx, tasks)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to build task trees")
	}
	return trees, nil
}

func (s *ListService) convertListToProto(list *ent.TodoList, tasks []*todov1.Task) *todov1.TodoList {
	return &todov1.TodoList{
		Id:          list.ID.String(),
		Name:        list.Name,
		Description: list.Description,
		Tasks:       tasks,
		CreatedAt:   timestamppb.New(list.CreatedAt),
		UpdatedAt:   timestamppb.New(list.UpdatedAt),
	}
}
