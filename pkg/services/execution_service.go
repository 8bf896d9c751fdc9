package services

import (
	"context"
	"fmt"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// ExecutionService serves the execution board and the manual
// completion path. Workers mutate executions through their own
// transactions; this service backs the HTTP API.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// ListByEvent returns an event's executions newest first, each
// enriched with its command's identity. status filters when non-empty.
func (s *ExecutionService) ListByEvent(ctx context.Context, eventID, status string) ([]*models.ExecutionDetail, error) {
	query := s.client.Execution.Query().Where(execution.EventIDEQ(eventID))
	if status != "" {
		st := execution.Status(status)
		if err := execution.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status '%s'", status))
		}
		query = query.Where(execution.StatusEQ(st))
	}

	executions, err := query.Order(ent.Desc(execution.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions for event %s: %w", eventID, err)
	}
	if len(executions) == 0 {
		return []*models.ExecutionDetail{}, nil
	}

	commandIDs := make([]string, 0, len(executions))
	for _, e := range executions {
		commandIDs = append(commandIDs, e.CommandID)
	}
	commands, err := s.client.Command.Query().
		Where(command.CommandIDIn(commandIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load commands for executions: %w", err)
	}
	byID := make(map[string]*ent.Command, len(commands))
	for _, c := range commands {
		byID[c.CommandID] = c
	}

	details := make([]*models.ExecutionDetail, 0, len(executions))
	for _, e := range executions {
		detail := &models.ExecutionDetail{Execution: e}
		if c, ok := byID[e.CommandID]; ok {
			detail.CommandName = c.CommandName
			detail.CommandType = string(c.CommandType)
			detail.CommandEntity = c.CommandEntity
			detail.CommandParams = c.CommandParams
		}
		details = append(details, detail)
	}
	return details, nil
}

// Complete records the outcome of a manually handled execution: the
// execution must be waiting, and its command settles in the same
// transaction, mirroring what the executor does for playbook runs.
// status may be "completed" (default) or "failed"; the caller then
// kicks the upward propagation.
func (s *ExecutionService) Complete(httpCtx context.Context, eventID, executionID, result, status string) (*ent.Execution, *ent.Command, error) {
	if result == "" {
		return nil, nil, NewValidationError("result", "required")
	}
	target := execution.StatusCompleted
	cmdStatus := command.StatusCompleted
	switch status {
	case "", string(execution.StatusCompleted):
	case string(execution.StatusFailed):
		target = execution.StatusFailed
		cmdStatus = command.StatusFailed
	default:
		return nil, nil, NewValidationError("status", fmt.Sprintf("must be completed or failed, got '%s'", status))
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exec, err := tx.Execution.Query().
		Where(execution.ExecutionIDEQ(executionID), execution.EventIDEQ(eventID)).
		ForUpdate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil, fmt.Errorf("execution %s: %w", executionID, ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get execution %s: %w", executionID, err)
	}
	if exec.Status != execution.StatusWaiting {
		return nil, nil, fmt.Errorf("execution %s is %s: %w", executionID, exec.Status, ErrNotWaiting)
	}

	updated, err := exec.Update().
		SetExecutionResult(result).
		SetStatus(target).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete execution %s: %w", executionID, err)
	}

	cmd, err := tx.Command.Query().
		Where(command.CommandIDEQ(exec.CommandID)).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, nil, fmt.Errorf("failed to get command %s: %w", exec.CommandID, err)
	}
	if cmd != nil && cmd.Status == command.StatusProcessing {
		cmd, err = cmd.Update().
			SetStatus(cmdStatus).
			SetCommandResult(map[string]any{"result": result}).
			Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to settle command %s: %w", exec.CommandID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit completion of execution %s: %w", executionID, err)
	}
	return updated, cmd, nil
}
