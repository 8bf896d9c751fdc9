package services

import (
	"context"
	"fmt"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/command"
)

// CommandService reads the command level of the decomposition. Command
// rows are written by the operator worker inside its group transaction;
// this service serves the API's hierarchy views.
type CommandService struct {
	client *ent.Client
}

// NewCommandService creates a new CommandService.
func NewCommandService(client *ent.Client) *CommandService {
	return &CommandService{client: client}
}

// ListByEvent returns an event's commands oldest first.
func (s *CommandService) ListByEvent(ctx context.Context, eventID string) ([]*ent.Command, error) {
	commands, err := s.client.Command.Query().
		Where(command.EventIDEQ(eventID)).
		Order(ent.Asc(command.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commands for event %s: %w", eventID, err)
	}
	return commands, nil
}

// ListByAction returns an action's commands oldest first.
func (s *CommandService) ListByAction(ctx context.Context, actionID string) ([]*ent.Command, error) {
	commands, err := s.client.Command.Query().
		Where(command.ActionIDEQ(actionID)).
		Order(ent.Asc(command.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commands for action %s: %w", actionID, err)
	}
	return commands, nil
}
