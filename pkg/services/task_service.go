package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/task"
)

// CreateTaskInput is one task as decomposed by the captain.
type CreateTaskInput struct {
	TaskName string
	TaskType string
	Assignee string
}

// TaskService manages the task level of the decomposition.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTasks persists one round's tasks for an event. All-or-nothing:
// a batch with an invalid entry creates no rows.
func (s *TaskService) CreateTasks(ctx context.Context, eventID string, roundID int, inputs []CreateTaskInput) ([]*ent.Task, error) {
	if len(inputs) == 0 {
		return nil, NewValidationError("tasks", "at least one task is required")
	}

	builders := make([]*ent.TaskCreate, 0, len(inputs))
	for i, in := range inputs {
		if in.TaskName == "" {
			return nil, NewValidationError("task_name", fmt.Sprintf("task %d has no name", i))
		}
		taskType := task.TaskType(in.TaskType)
		if err := task.TaskTypeValidator(taskType); err != nil {
			return nil, NewValidationError("task_type", fmt.Sprintf("task %d has unknown type '%s'", i, in.TaskType))
		}
		b := s.client.Task.Create().
			SetTaskID(uuid.New().String()).
			SetEventID(eventID).
			SetRoundID(roundID).
			SetTaskName(in.TaskName).
			SetTaskType(taskType).
			SetStatus(task.StatusPending)
		if in.Assignee != "" {
			b.SetTaskAssignee(in.Assignee)
		}
		builders = append(builders, b)
	}

	tasks, err := s.client.Task.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks for event %s: %w", eventID, err)
	}
	return tasks, nil
}

// ListByEvent returns an event's tasks oldest first.
func (s *TaskService) ListByEvent(ctx context.Context, eventID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.EventIDEQ(eventID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for event %s: %w", eventID, err)
	}
	return tasks, nil
}
