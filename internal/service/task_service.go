// internal/service/task_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	todov1 "github.com/nestlist/nestlist/api/proto/todo/v1/generated"
	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/internal/hierarchy"
	"github.com/nestlist/nestlist/internal/repository"
)

type TaskService struct {
	todov1.UnimplementedTaskServiceServer
	client         *ent.Client
	repo           *repository.EntTaskRepository
	activityLogger *ActivityLogger
	engine         *hierarchy.Engine
	converter      *taskConverter
}

// NewTaskService creates a new task service
func NewTaskService(
	client *ent.Client,
	repo *repository.EntTaskRepository,
	activityLogger *ActivityLogger,
) *TaskService {
	engine := hierarchy.NewEngine(repository.NewStore(client.Task))
	return &TaskService{
		client:         client,
		repo:           repo,
		activityLogger: activityLogger,
		engine:         engine,
		converter:      newTaskConverter(engine),
	}
}

// CreateTask creates a top-level task in a list the caller owns
func (s *TaskService) CreateTask(ctx context.Context, req *todov1.CreateTaskRequest) (*todov1.CreateTaskResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	listID, err := uuid.Parse(req.ListId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid list ID format")
	}

	if _, err := ownedList(ctx, s.client, listID, userID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateTask(ctx, listID, req.Description, req.Completed)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to create task")
	}

	if lerr := s.activityLogger.LogTaskCreated(ctx, userID, created.ID, listID); lerr != nil {
		log.Printf("Failed to record task creation: %v", lerr)
	}

	// Top-level, so no subtasks yet and depth is zero.
	taskProto, err := s.converter.proto(ctx, created, 0)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to build task")
	}
	return &todov1.CreateTaskResponse{Task: taskProto}, nil
}

// CreateSubtask creates a task nested under an existing one. The
// subtask joins its parent's list and ancestor completion is recomputed,
// so inserting an open subtask under a completed parent reopens it.
func (s *TaskService) CreateSubtask(ctx context.Context, req *todov1.CreateSubtaskRequest) (*todov1.CreateSubtaskResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	parentID, err := uuid.Parse(req.ParentTaskId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	parent, err := s.repo.GetTask(ctx, parentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to get task")
	}

	if _, err := ownedList(ctx, s.client, parent.ListID, userID); err != nil {
		return nil, err
	}

	parentNode := nodeFromEntTask(parent)
	if err := s.engine.CheckSubtaskEligibility(ctx, parentNode); err != nil {
		if errors.Is(err, hierarchy.ErrSubtaskNotAllowed) {
			return nil, status.Error(codes.FailedPrecondition, "task cannot have subtasks")
		}
		return nil, status.Error(codes.Internal, "failed to check subtask eligibility")
	}

	parentDepth, err := s.engine.Depth(ctx, parentNode)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to resolve task depth")
	}

	// Insert and ancestor recomputation commit or roll back as one unit.
	var created *ent.Task
	err = s.repo.WithTx(ctx, func(tx *ent.Tx) error {
		store := repository.NewStore(tx.Task)
		engine := hierarchy.NewEngine(store)

		c, err := s.repo.CreateSubtaskTx(ctx, tx, parent, req.Description, req.Completed)
		if err != nil {
			return err
		}
		created = c
		return engine.CascadeUp(ctx, nodeFromEntTask(c))
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to create subtask")
	}

	if lerr := s.activityLogger.LogSubtaskCreated(ctx, userID, created.ID, parent.ID); lerr != nil {
		log.Printf("Failed to record subtask creation: %v", lerr)
	}

	taskProto, err := s.converter.proto(ctx, created, parentDepth+1)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to build task")
	}
	return &todov1.CreateSubtaskResponse{Task: taskProto}, nil
}

// GetTask returns a task, with its nested subtask tree when requested
func (s *TaskService) GetTask(ctx context.Context, req *todov1.GetTaskRequest) (*todov1.GetTaskResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	taskID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	t, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to get task")
	}

	if _, err := ownedList(ctx, s.client, t.ListID, userID); err != nil {
		return nil, err
	}

	depth, err := s.engine.Depth(ctx, nodeFromEntTask(t))
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to resolve task depth")
	}

	if !req.IncludeSubtasks {
		taskProto, err := s.converter.proto(ctx, t, depth)
		if err != nil {
			return nil, status.Error(codes.Internal, "failed to build task")
		}
		return &todov1.GetTaskResponse{Task: taskProto}, nil
	}

	taskProto, err := s.loadTaskTree(ctx, t, depth)
	if err != nil {
		return nil, err
	}
	return &todov1.GetTaskResponse{Task: taskProto}, nil
}

// UpdateTask applies a description change, a completion change and a
// list move, in that order, atomically. A cascading completion change
// overwrites the whole subtree; either way ancestors are recomputed
// afterwards.
func (s *TaskService) UpdateTask(ctx context.Context, req *todov1.UpdateTaskRequest) (*todov1.UpdateTaskResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	taskID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	t, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to get task")
	}

	if _, err := ownedList(ctx, s.client, t.ListID, userID); err != nil {
		return nil, err
	}

	var (
		completionChanged bool
		moved             bool
		movedFrom         uuid.UUID
		movedTo           uuid.UUID
	)

	err = s.repo.WithTx(ctx, func(tx *ent.Tx) error {
		store := repository.NewStore(tx.Task)
		engine := hierarchy.NewEngine(store)

		if req.Description != nil {
			if err := tx.Task.UpdateOneID(taskID).
				SetDescription(req.GetDescription()).
				Exec(ctx); err != nil {
				return err
			}
		}

		if req.Completed != nil {
			n, err := store.Node(ctx, taskID)
			if err != nil {
				return err
			}
			completionChanged = n.Completed != req.GetCompleted()

			if req.Cascade {
				if err := engine.CascadeDown(ctx, n, req.GetCompleted()); err != nil {
					return err
				}
			} else {
				if err := store.SetCompleted(ctx, taskID, req.GetCompleted()); err != nil {
					return err
				}
				n.Completed = req.GetCompleted()
			}
			if err := engine.CascadeUp(ctx, n); err != nil {
				return err
			}
		}

		if req.ListId != nil {
			targetID, err := uuid.Parse(req.GetListId())
			if err != nil {
				return status.Error(codes.InvalidArgument, "invalid list ID format")
			}
			if targetID != t.ListID {
				if _, err := ownedList(ctx, s.client, targetID, userID); err != nil {
					return err
				}
				n, err := store.Node(ctx, taskID)
				if err != nil {
					return err
				}
				if err := engine.Move(ctx, n, targetID); err != nil {
					return err
				}
				moved = true
				movedFrom = t.ListID
				movedTo = targetID
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
			return nil, err
		}
		if errors.Is(err, hierarchy.ErrSubtaskMove) {
			return nil, status.Error(codes.FailedPrecondition, "subtasks cannot be moved to another list")
		}
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to update task")
	}

	if completionChanged {
		if req.GetCompleted() {
			if lerr := s.activityLogger.LogTaskCompleted(ctx, userID, taskID, req.Cascade); lerr != nil {
				log.Printf("Failed to record task completion: %v", lerr)
			}
		} else {
			if lerr := s.activityLogger.LogTaskReopened(ctx, userID, taskID, req.Cascade); lerr != nil {
				log.Printf("Failed to record task reopening: %v", lerr)
			}
		}
	}
	if moved {
		if lerr := s.activityLogger.LogTaskMoved(ctx, userID, taskID, movedFrom, movedTo); lerr != nil {
			log.Printf("Failed to record task move: %v", lerr)
		}
	}

	t, err = s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to reload task")
	}
	depth, err := s.engine.Depth(ctx, nodeFromEntTask(t))
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to resolve task depth")
	}
	taskProto, err := s.loadTaskTree(ctx, t, depth)
	if err != nil {
		return nil, err
	}
	return &todov1.UpdateTaskResponse{Task: taskProto}, nil
}

// DeleteTask removes a task together with its whole subtree
func (s *TaskService) DeleteTask(ctx context.Context, req *todov1.DeleteTaskRequest) (*emptypb.Empty, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	taskID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	t, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to get task")
	}

	if _, err := ownedList(ctx, s.client, t.ListID, userID); err != nil {
		return nil, err
	}

	removed, err := s.repo.DeleteSubtree(ctx, taskID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to delete task")
	}

	if lerr := s.activityLogger.LogTaskDeleted(ctx, userID, taskID, removed); lerr != nil {
		log.Printf("Failed to record task deletion: %v", lerr)
	}

	return &emptypb.Empty{}, nil
}

// loadTaskTree nests the task's subtree under it. The list's full task
// set serves as the descendant index; branches outside the subtree are
// simply never reached from the root.
func (s *TaskService) loadTaskTree(ctx context.Context, t *ent.Task, depth int) (*todov1.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, t.ListID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to load tasks")
	}
	taskProto, err := s.converter.subtree(ctx, t, tasks, depth)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to build task tree")
	}
	return taskProto, nil
}
