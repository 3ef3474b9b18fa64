// internal/service/common.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/internal/middleware"
)

// authenticatedUser extracts the authenticated user id placed on the
// context by the auth interceptor.
func authenticatedUser(ctx context.Context) (uuid.UUID, error) {
	userIDStr, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "invalid user id in context")
	}
	return userID, nil
}

// ownedList loads a list and ensures it belongs to the requesting user.
func ownedList(ctx context.Context, client *ent.Client, listID, userID uuid.UUID) (*ent.TodoList, error) {
	list, err := client.TodoList.Get(ctx, listID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "list not found")
		}
		return nil, status.Error(codes.Internal, "failed to get list")
	}
	if list.OwnerID != userID {
		return nil, status.Error(codes.PermissionDenied, "unauthorized access to this list")
	}
	return list, nil
}
