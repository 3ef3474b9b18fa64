// internal/service/activity_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/ent/generated/activityevent"
	"github.com/nestlist/nestlist/pkg/activity"
)

// ActivityService persists the audit trail of auth, list, and task
// events.
type ActivityService struct {
	client *ent.Client
}

// NewActivityService creates a new activity service
func NewActivityService(client *ent.Client) *ActivityService {
	return &ActivityService{
		client: client,
	}
}

// LogActivityEventRequest carries one event to record.
type LogActivityEventRequest struct {
	UserID      uuid.UUID // uuid.Nil for anonymous events
	EventType   string
	Description string
	Severity    string
	IPAddress   string
	UserAgent   string
	Metadata    map[string]interface{}
}

// LogEvent records an activity event. Failures here are reported to the
// caller but never abort the operation that produced the event.
func (s *ActivityService) LogEvent(ctx context.Context, req *LogActivityEventRequest) error {
	eventType, err := activity.ParseEventType(req.EventType)
	if err != nil {
		return fmt.Errorf("invalid event type: %w", err)
	}

	severity, err := activity.ParseSeverity(req.Severity)
	if err != nil {
		return fmt.Errorf("invalid severity: %w", err)
	}

	create := s.client.ActivityEvent.Create().
		SetEventType(eventType).
		SetSeverity(severity)

	if req.UserID != uuid.Nil {
		create = create.SetUserID(req.UserID)
	}
	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.IPAddress != "" {
		create = create.SetIPAddress(req.IPAddress)
	}
	if req.UserAgent != "" {
		create = create.SetUserAgent(req.UserAgent)
	}
	if len(req.Metadata) > 0 {
		create = create.SetMetadata(req.Metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

// RecentEvents returns a user's latest events, newest first.
func (s *ActivityService) RecentEvents(ctx context.Context, userID uuid.UUID, limit int) ([]*ent.ActivityEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.client.ActivityEvent.Query().
		Where(activityevent.UserID(userID)).
		Order(ent.Desc(activityevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
