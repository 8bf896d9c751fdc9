package services

import (
	"context"
	"fmt"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
)

// ActionService reads the action level of the decomposition. Action
// rows are written by the manager worker inside its group transaction;
// this service serves the API's hierarchy views.
type ActionService struct {
	client *ent.Client
}

// NewActionService creates a new ActionService.
func NewActionService(client *ent.Client) *ActionService {
	return &ActionService{client: client}
}

// ListByEvent returns an event's actions oldest first.
func (s *ActionService) ListByEvent(ctx context.Context, eventID string) ([]*ent.Action, error) {
	actions, err := s.client.Action.Query().
		Where(action.EventIDEQ(eventID)).
		Order(ent.Asc(action.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions for event %s: %w", eventID, err)
	}
	return actions, nil
}

// ListByTask returns a task's actions oldest first.
func (s *ActionService) ListByTask(ctx context.Context, taskID string) ([]*ent.Action, error) {
	actions, err := s.client.Action.Query().
		Where(action.TaskIDEQ(taskID)).
		Order(ent.Asc(action.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions for task %s: %w", taskID, err)
	}
	return actions, nil
}
