// internal/service/activity_logger.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/pkg/activity"
)

// ActivityLogger provides convenience methods for recording activity
// events with the client info carried on the request context.
type ActivityLogger struct {
	activityService *ActivityService
}

// NewActivityLogger creates a new activity logger
func NewActivityLogger(activityService *ActivityService) *ActivityLogger {
	return &ActivityLogger{
		activityService: activityService,
	}
}

// LogFromContext records an event for a user using context information.
func (al *ActivityLogger) LogFromContext(ctx context.Context, userID uuid.UUID, eventType, description, severity string, metadata map[string]interface{}) error {
	clientInfo := middleware.GetClientInfoFromContext(ctx)

	return al.activityService.LogEvent(ctx, &LogActivityEventRequest{
		UserID:      userID,
		EventType:   eventType,
		Description: description,
		Severity:    severity,
		IPAddress:   clientInfo.IPAddress,
		UserAgent:   clientInfo.UserAgent,
		Metadata:    metadata,
	})
}

// Convenience methods for common events

func (al *ActivityLogger) LogLoginSuccess(ctx context.Context, userID uuid.UUID) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeLoginSuccess,
		"User successfully logged in", activity.SeverityLow, nil)
}

func (al *ActivityLogger) LogLoginFailed(ctx context.Context, loginID, reason string) error {
	return al.LogFromContext(ctx, uuid.Nil, activity.EventTypeLoginFailed,
		"Login failed for "+loginID+": "+reason, activity.SeverityMedium, nil)
}

func (al *ActivityLogger) LogAccountLocked(ctx context.Context, userID uuid.UUID, reason string) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeAccountLocked,
		"Account locked: "+reason, activity.SeverityHigh, nil)
}

func (al *ActivityLogger) LogListCreated(ctx context.Context, userID, listID uuid.UUID, name string) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeListCreated,
		fmt.Sprintf("List %q created", name), activity.SeverityLow,
		map[string]interface{}{"list_id": listID.String()})
}

func (al *ActivityLogger) LogListDeleted(ctx context.Context, userID, listID uuid.UUID, removedTasks int) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeListDeleted,
		fmt.Sprintf("List deleted with %d tasks", removedTasks), activity.SeverityLow,
		map[string]interface{}{"list_id": listID.String(), "removed_tasks": removedTasks})
}

func (al *ActivityLogger) LogTaskCreated(ctx context.Context, userID, taskID, listID uuid.UUID) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeTaskCreated,
		"Task created", activity.SeverityLow,
		map[string]interface{}{"task_id": taskID.String(), "list_id": listID.String()})
}

func (al *ActivityLogger) LogSubtaskCreated(ctx context.Context, userID, taskID, parentID uuid.UUID) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeSubtaskCreated,
		"Subtask created", activity.SeverityLow,
		map[string]interface{}{"task_id": taskID.String(), "parent_id": parentID.String()})
}

func (al *ActivityLogger) LogTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, cascade bool) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeTaskCompleted,
		"Task marked complete", activity.SeverityLow,
		map[string]interface{}{"task_id": taskID.String(), "cascade": cascade})
}

func (al *ActivityLogger) LogTaskReopened(ctx context.Context, userID, taskID uuid.UUID, cascade bool) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeTaskReopened,
		"Task marked incomplete", activity.SeverityLow,
		map[string]interface{}{"task_id": taskID.String(), "cascade": cascade})
}

func (al *ActivityLogger) LogTaskMoved(ctx context.Context, userID, taskID, fromList, toList uuid.UUID) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeTaskMoved,
		"Task moved to another list", activity.SeverityLow,
		map[string]interface{}{
			"task_id":   taskID.String(),
			"from_list": fromList.String(),
			"to_list":   toList.String(),
		})
}

func (al *ActivityLogger) LogTaskDeleted(ctx context.Context, userID, taskID uuid.UUID, removed int) error {
	return al.LogFromContext(ctx, userID, activity.EventTypeTaskDeleted,
		fmt.Sprintf("Task deleted with %d descendants", removed-1), activity.SeverityLow,
		map[string]interface{}{"task_id": taskID.String(), "removed_records": removed})
}
