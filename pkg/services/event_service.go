// Package services contains the database-facing operations behind the
// HTTP handlers and the role workers. Services validate input, own
// their write timeouts, and return wrapped sentinel errors; they never
// talk to the LLM, the SOAR platform, or the bus.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/summary"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// writeTimeout bounds critical writes so a half-issued HTTP request
// cannot leave work stuck behind a dangling context.
const writeTimeout = 10 * time.Second

// EventService manages security event lifecycle and read models.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent persists a new event in pending status. The captain
// worker picks it up from there.
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	if req.Message == "" {
		return nil, NewValidationError("message", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	source := req.Source
	if source == "" {
		source = "manual"
	}

	builder := s.client.Event.Create().
		SetEventID(uuid.New().String()).
		SetMessage(req.Message).
		SetSource(source).
		SetStatus(event.StatusPending)
	if req.EventName != "" {
		builder.SetEventName(req.EventName)
	}
	if req.Context != "" {
		builder.SetContext(req.Context)
	}
	if req.Severity != "" {
		builder.SetSeverity(req.Severity)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// GetEvent returns one event by its public id.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*ent.Event, error) {
	ev, err := s.client.Event.Query().Where(event.EventIDEQ(eventID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
	}
	return ev, nil
}

// ListEvents returns events newest first, optionally filtered by
// status, with simple page/per_page pagination.
func (s *EventService) ListEvents(ctx context.Context, filters models.EventFilters) (*models.EventListResponse, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := s.client.Event.Query()
	if filters.Status != "" {
		status := event.Status(filters.Status)
		if err := event.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status '%s'", filters.Status))
		}
		query = query.Where(event.StatusEQ(status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	events, err := query.
		Order(ent.Desc(event.FieldCreatedAt)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &models.EventListResponse{
		Events:     events,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// UpdateStatus moves an event along a legal lifecycle edge. Callers
// that already hold a row lock use their own transaction instead.
func (s *EventService) UpdateStatus(httpCtx context.Context, eventID string, to event.Status) (*ent.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(ev.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ev.Status, to)
	}

	updated, err := ev.Update().SetStatus(to).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update event %s status: %w", eventID, err)
	}
	return updated, nil
}

// Resolve marks an event manually resolved. The expert summarizer then
// produces a closing summary and the lifecycle manager completes the
// event instead of starting another round.
func (s *EventService) Resolve(httpCtx context.Context, eventID string) (*ent.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalEventStatus(ev.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ev.Status, event.StatusResolved)
	}
	if ev.Status == event.StatusResolved {
		return ev, nil
	}

	updated, err := ev.Update().
		SetStatus(event.StatusResolved).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve event %s: %w", eventID, err)
	}
	return updated, nil
}

// Stats aggregates per-level row counts for one event's dashboard.
func (s *EventService) Stats(ctx context.Context, eventID string) (*models.EventStats, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	stats := &models.EventStats{EventID: eventID}

	taskRows, err := s.client.Task.Query().Where(task.EventIDEQ(eventID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for stats: %w", err)
	}
	stats.Tasks = models.LevelStats{Total: len(taskRows), ByStatus: map[string]int{}}
	for _, t := range taskRows {
		stats.Tasks.ByStatus[string(t.Status)]++
	}

	actionRows, err := s.client.Action.Query().Where(action.EventIDEQ(eventID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load actions for stats: %w", err)
	}
	stats.Actions = models.LevelStats{Total: len(actionRows), ByStatus: map[string]int{}}
	for _, a := range actionRows {
		stats.Actions.ByStatus[string(a.Status)]++
	}

	commandRows, err := s.client.Command.Query().Where(command.EventIDEQ(eventID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load commands for stats: %w", err)
	}
	stats.Commands = models.LevelStats{Total: len(commandRows), ByStatus: map[string]int{}}
	for _, c := range commandRows {
		stats.Commands.ByStatus[string(c.Status)]++
	}

	executionRows, err := s.client.Execution.Query().Where(execution.EventIDEQ(eventID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load executions for stats: %w", err)
	}
	stats.Executions = models.LevelStats{Total: len(executionRows), ByStatus: map[string]int{}}
	for _, e := range executionRows {
		stats.Executions.ByStatus[string(e.Status)]++
	}

	messages, err := s.client.Message.Query().Where(message.EventIDEQ(eventID)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages for stats: %w", err)
	}
	stats.Messages = messages

	return stats, nil
}

// Hierarchy assembles the full decomposition tree of an event, grouped
// by round. Children are matched in memory; the tables are loose-ref
// joined by the string ids, one query per level.
func (s *EventService) Hierarchy(ctx context.Context, eventID string) (*models.EventHierarchy, error) {
	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.client.Task.Query().
		Where(task.EventIDEQ(eventID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	actions, err := s.client.Action.Query().
		Where(action.EventIDEQ(eventID)).
		Order(ent.Asc(action.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load actions: %w", err)
	}
	commands, err := s.client.Command.Query().
		Where(command.EventIDEQ(eventID)).
		Order(ent.Asc(command.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load commands: %w", err)
	}
	executions, err := s.client.Execution.Query().
		Where(execution.EventIDEQ(eventID)).
		Order(ent.Asc(execution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load executions: %w", err)
	}
	summaries, err := s.client.Summary.Query().
		Where(summary.EventIDEQ(eventID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load summaries: %w", err)
	}

	executionsByCommand := make(map[string][]*ent.Execution)
	for _, e := range executions {
		executionsByCommand[e.CommandID] = append(executionsByCommand[e.CommandID], e)
	}
	commandsByAction := make(map[string][]*models.HierarchyCommand)
	for _, c := range commands {
		commandsByAction[c.ActionID] = append(commandsByAction[c.ActionID], &models.HierarchyCommand{
			Command:    c,
			Executions: executionsByCommand[c.CommandID],
		})
	}
	actionsByTask := make(map[string][]*models.HierarchyAction)
	for _, a := range actions {
		actionsByTask[a.TaskID] = append(actionsByTask[a.TaskID], &models.HierarchyAction{
			Action:   a,
			Commands: commandsByAction[a.ActionID],
		})
	}
	summaryByRound := make(map[int]*ent.Summary)
	for _, sum := range summaries {
		summaryByRound[sum.RoundID] = sum
	}

	tasksByRound := make(map[int][]*models.HierarchyTask)
	for _, tk := range tasks {
		tasksByRound[tk.RoundID] = append(tasksByRound[tk.RoundID], &models.HierarchyTask{
			Task:    tk,
			Actions: actionsByTask[tk.TaskID],
		})
	}

	hierarchy := &models.EventHierarchy{Event: ev}
	for round := 1; round <= ev.CurrentRound; round++ {
		roundTasks := tasksByRound[round]
		roundSummary := summaryByRound[round]
		if roundTasks == nil && roundSummary == nil {
			continue
		}
		hierarchy.Rounds = append(hierarchy.Rounds, &models.HierarchyRound{
			RoundID: round,
			Summary: roundSummary,
			Tasks:   roundTasks,
		})
	}
	return hierarchy, nil
}
