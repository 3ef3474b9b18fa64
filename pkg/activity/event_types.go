// pkg/activity/event_types.go
package activity

import (
	"fmt"

	"github.com/nestlist/nestlist/ent/generated/activityevent"
)

// EventType constants for string-based event type handling
const (
	EventTypeLoginSuccess   = "login_success"
	EventTypeLoginFailed    = "login_failed"
	EventTypeAccountLocked  = "account_locked"
	EventTypeListCreated    = "list_created"
	EventTypeListDeleted    = "list_deleted"
	EventTypeTaskCreated    = "task_created"
	EventTypeSubtaskCreated = "subtask_created"
	EventTypeTaskCompleted  = "task_completed"
	EventTypeTaskReopened   = "task_reopened"
	EventTypeTaskMoved      = "task_moved"
	EventTypeTaskDeleted    = "task_deleted"
)

// Severity constants for string-based severity handling
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// ParseEventType converts a string event type to the Ent enum.
func ParseEventType(eventType string) (activityevent.EventType, error) {
	switch eventType {
	case EventTypeLoginSuccess:
		return activityevent.EventTypeLoginSuccess, nil
	case EventTypeLoginFailed:
		return activityevent.EventTypeLoginFailed, nil
	case EventTypeAccountLocked:
		return activityevent.EventTypeAccountLocked, nil
	case EventTypeListCreated:
		return activityevent.EventTypeListCreated, nil
	case EventTypeListDeleted:
		return activityevent.EventTypeListDeleted, nil
	case EventTypeTaskCreated:
		return activityevent.EventTypeTaskCreated, nil
	case EventTypeSubtaskCreated:
		return activityevent.EventTypeSubtaskCreated, nil
	case EventTypeTaskCompleted:
		return activityevent.EventTypeTaskCompleted, nil
	case EventTypeTaskReopened:
		return activityevent.EventTypeTaskReopened, nil
	case EventTypeTaskMoved:
		return activityevent.EventTypeTaskMoved, nil
	case EventTypeTaskDeleted:
		return activityevent.EventTypeTaskDeleted, nil
	default:
		return "", fmt.Errorf("unknown event type: %s", eventType)
	}
}

// ParseSeverity converts a string severity to the Ent enum.
func ParseSeverity(severity string) (activityevent.Severity, error) {
	switch severity {
	case SeverityLow:
		return activityevent.SeverityLow, nil
	case SeverityMedium:
		return activityevent.SeverityMedium, nil
	case SeverityHigh:
		return activityevent.SeverityHigh, nil
	default:
		return "", fmt.Errorf("unknown severity: %s", severity)
	}
}

// ValidEventTypes returns all valid event type strings.
func ValidEventTypes() []string {
	return []string{
		EventTypeLoginSuccess,
		EventTypeLoginFailed,
		EventTypeAccountLocked,
		EventTypeListCreated,
		EventTypeListDeleted,
		EventTypeTaskCreated,
		EventTypeSubtaskCreated,
		EventTypeTaskCompleted,
		EventTypeTaskReopened,
		EventTypeTaskMoved,
		EventTypeTaskDeleted,
	}
}

// IsValidEventType checks if the event type string is valid.
func IsValidEventType(eventType string) bool {
	_, err := ParseEventType(eventType)
	return err == nil
}

// IsValidSeverity checks if the severity string is valid.
func IsValidSeverity(severity string) bool {
	_, err := ParseSeverity(severity)
	return err == nil
}
