package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/llm"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/models"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/services"
)

// timeLayout renders timestamps inside prompt documents.
const timeLayout = "2006-01-02 15:04:05"

// eventNamePlaceholder asks the model to derive a name for events that
// arrived without one.
const eventNamePlaceholder = "{ derive a short name from message and context }"

// knownTaskAssignees are the manager-desk tokens the commander may
// address. Anything else is an unknown assignee and the task is skipped.
var knownTaskAssignees = map[string]bool{
	models.RoleManager: true,
	"_analyst":         true,
	"_responder":       true,
	"_coordinator":     true,
}

// Captain claims pending events and asks the commander model to either
// decompose them into tasks, declare the mission complete, or stand
// down. One event per tick, FIFO, serial.
type Captain struct {
	client    *ent.Client
	tasks     *services.TaskService
	summaries *services.SummaryService
	llm       llm.Caller
	prompts   *prompts.Store
	notifier  *messaging.Notifier
}

// NewCaptain creates the captain worker.
func NewCaptain(client *ent.Client, tasks *services.TaskService, summaries *services.SummaryService, caller llm.Caller, store *prompts.Store, notifier *messaging.Notifier) *Captain {
	return &Captain{
		client:    client,
		tasks:     tasks,
		summaries: summaries,
		llm:       caller,
		prompts:   store,
		notifier:  notifier,
	}
}

// Name implements Role.
func (c *Captain) Name() string { return "captain" }

// Tick claims and processes one pending event.
func (c *Captain) Tick(ctx context.Context) error {
	ev, err := c.claimEvent(ctx)
	if err != nil {
		return err
	}
	return c.process(ctx, ev)
}

// claimEvent claims the oldest pending event with FOR UPDATE SKIP
// LOCKED and marks it processing. The commit releases the row lock
// before the LLM round-trip.
func (c *Captain) claimEvent(ctx context.Context) (*ent.Event, error) {
	tx, err := c.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ev, err := tx.Event.Query().
		Where(event.StatusEQ(event.StatusPending)).
		Order(ent.Asc(event.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWork
		}
		return nil, fmt.Errorf("failed to query pending event: %w", err)
	}

	ev, err = ev.Update().SetStatus(event.StatusProcessing).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim event %s: %w", ev.EventID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return ev, nil
}

// process runs one commander round for a claimed event.
func (c *Captain) process(ctx context.Context, ev *ent.Event) error {
	log := slog.With("event_id", ev.EventID, "round_id", ev.CurrentRound)
	log.Info("Event claimed", "event_name", ev.EventName)

	c.postSystem(ctx, ev, models.MessageTypeLLMRequest,
		"Captain on the bridge! Asking the AI commander for orders.")

	userPrompt, err := c.buildUserPrompt(ctx, ev)
	if err != nil {
		return err
	}
	systemPrompt, err := c.prompts.SystemPrompt(ctx, models.RoleCaptain)
	if err != nil {
		return err
	}

	raw, err := c.llm.Call(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		EventID:      ev.EventID,
		RoundID:      ev.CurrentRound,
	})
	if err != nil {
		log.Error("Commander model call failed", "error", err)
		return c.failEvent(ctx, ev, event.StatusErrorFromLlm,
			fmt.Sprintf("commander model call failed: %v", err))
	}

	parsed, err := llm.ParseRoleResponse(raw)
	if err != nil {
		log.Error("Unparseable commander response", "error", err)
		return c.failEvent(ctx, ev, event.StatusErrorProcessing,
			fmt.Sprintf("unparseable commander response: %v", err))
	}

	if _, err := c.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromCaptain,
		MessageType: models.MessageTypeLLMResponse,
		Data:        parsed,
	}); err != nil {
		log.Warn("Failed to record commander response", "error", err)
	}

	switch parsed.ResponseType {
	case models.ResponseTypeTask:
		return c.applyTasks(ctx, ev, parsed)
	case models.ResponseTypeMissionComplete:
		return c.completeEvent(ctx, ev)
	case models.ResponseTypeRoger:
		log.Warn("Commander stood down", "response_text", parsed.ResponseText)
		return c.failEvent(ctx, ev, event.StatusErrorFromLlm,
			fmt.Sprintf("commander stood down without orders: %s", parsed.ResponseText))
	default:
		log.Error("Unexpected commander response type", "response_type", parsed.ResponseType)
		return c.failEvent(ctx, ev, event.StatusErrorProcessing,
			fmt.Sprintf("unexpected response_type %q from commander", parsed.ResponseType))
	}
}

// captainRequest is the YAML document handed to the commander model.
type captainRequest struct {
	Type         string            `yaml:"type"`
	ReqID        string            `yaml:"req_id"`
	ResID        string            `yaml:"res_id"`
	EventID      string            `yaml:"event_id"`
	RoundID      int               `yaml:"round_id"`
	EventName    string            `yaml:"event_name"`
	Message      string            `yaml:"message"`
	Context      string            `yaml:"context"`
	Source       string            `yaml:"source"`
	Severity     string            `yaml:"severity"`
	CreatedAt    string            `yaml:"created_at"`
	HistoryTasks []taskHistoryItem `yaml:"history_tasks,omitempty"`
}

// taskHistoryItem is one prior task in the commander's context.
type taskHistoryItem struct {
	TaskID    string `yaml:"task_id"`
	TaskName  string `yaml:"task_name"`
	TaskType  string `yaml:"task_type"`
	Status    string `yaml:"task_status"`
	CreatedAt string `yaml:"task_created_at"`
	UpdatedAt string `yaml:"task_updated_at"`
}

// buildUserPrompt assembles the per-round request: event metadata, the
// full task history across rounds, and the previous round's summary
// once a round has finished.
func (c *Captain) buildUserPrompt(ctx context.Context, ev *ent.Event) (string, error) {
	req := captainRequest{
		Type:      "request_tasks_by_event",
		ReqID:     uuid.New().String(),
		ResID:     uuid.New().String(),
		EventID:   ev.EventID,
		RoundID:   ev.CurrentRound,
		EventName: ev.EventName,
		Message:   ev.Message,
		Context:   ev.Context,
		Source:    ev.Source,
		Severity:  ev.Severity,
		CreatedAt: ev.CreatedAt.Format(timeLayout),
	}
	if req.EventName == "" {
		req.EventName = eventNamePlaceholder
	}
	if req.Context == "" {
		req.Context = "none"
	}
	if req.Source == "" {
		req.Source = "none"
	}

	history, err := c.client.Task.Query().
		Where(task.EventIDEQ(ev.EventID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load task history for event %s: %w", ev.EventID, err)
	}
	for _, t := range history {
		req.HistoryTasks = append(req.HistoryTasks, taskHistoryItem{
			TaskID:    t.TaskID,
			TaskName:  t.TaskName,
			TaskType:  string(t.TaskType),
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt.Format(timeLayout),
			UpdatedAt: t.UpdatedAt.Format(timeLayout),
		})
	}

	doc, err := yaml.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal commander request: %w", err)
	}

	var b strings.Builder
	b.WriteString("```yaml\n")
	b.Write(doc)
	b.WriteString("```\n")

	if ev.CurrentRound > 1 {
		prev, err := c.summaries.LatestForEvent(ctx, ev.EventID)
		if err != nil {
			return "", err
		}
		if prev != nil {
			b.WriteString("\nTo give you the full picture, here are the tasks you ordered last round and the progress report:\n")
			b.WriteString("<event_progress>\n")
			b.WriteString(prev.EventSummary)
			b.WriteString("\n</event_progress>\n")
		}
	}

	b.WriteString("\nAnalyze the incident, decide, and assign the appropriate tasks to the _manager desk (_analyst, _responder, _coordinator) if the situation calls for it.\n")
	return b.String(), nil
}

// applyTasks records a TASK response: insert the round's tasks and pick
// up a sharper event name when the commander supplied one.
func (c *Captain) applyTasks(ctx context.Context, ev *ent.Event, parsed *llm.RoleResponse) error {
	log := slog.With("event_id", ev.EventID, "round_id", ev.CurrentRound)

	inputs := make([]services.CreateTaskInput, 0, len(parsed.Tasks))
	for _, item := range parsed.Tasks {
		if item.TaskAssignee != "" && !knownTaskAssignees[item.TaskAssignee] {
			log.Warn("Skipping task with unknown assignee", "task_assignee", item.TaskAssignee, "task_name", item.TaskName)
			c.postError(ctx, ev, fmt.Sprintf("skipped task %q: unknown assignee %q", item.TaskName, item.TaskAssignee))
			continue
		}
		inputs = append(inputs, services.CreateTaskInput{
			TaskName: item.TaskName,
			TaskType: item.TaskType,
			Assignee: item.TaskAssignee,
		})
	}

	created, err := c.tasks.CreateTasks(ctx, ev.EventID, ev.CurrentRound, inputs)
	if err != nil {
		log.Error("Commander task batch rejected", "error", err)
		return c.failEvent(ctx, ev, event.StatusErrorProcessing,
			fmt.Sprintf("commander task batch rejected: %v", err))
	}

	if parsed.EventName != "" && parsed.EventName != ev.EventName && parsed.EventName != eventNamePlaceholder {
		if err := c.client.Event.Update().
			Where(event.EventIDEQ(ev.EventID)).
			SetEventName(parsed.EventName).
			Exec(ctx); err != nil {
			log.Warn("Failed to rename event", "error", err)
		}
	}

	taskData := make([]map[string]any, 0, len(created))
	for _, t := range created {
		taskData = append(taskData, map[string]any{
			"task_id":       t.TaskID,
			"task_name":     t.TaskName,
			"task_type":     string(t.TaskType),
			"task_assignee": t.TaskAssignee,
		})
	}
	if _, err := c.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromCaptain,
		MessageType: models.MessageTypeTaskCreated,
		Data:        map[string]any{"tasks": taskData},
	}); err != nil {
		log.Warn("Failed to record task creation", "error", err)
	}

	log.Info("Commander issued tasks", "count", len(created))
	return nil
}

// completeEvent records a MISSION_COMPLETE response.
func (c *Captain) completeEvent(ctx context.Context, ev *ent.Event) error {
	n, err := c.client.Event.Update().
		Where(event.EventIDEQ(ev.EventID), event.StatusEQ(event.StatusProcessing)).
		SetStatus(event.StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete event %s: %w", ev.EventID, err)
	}
	if n == 0 {
		slog.Warn("Event moved on before completion", "event_id", ev.EventID)
		return nil
	}

	c.postSystem(ctx, ev, models.MessageTypeEventCompleted,
		map[string]any{"event_id": ev.EventID, "reason": "mission_complete"})
	slog.Info("Commander declared mission complete", "event_id", ev.EventID)
	return nil
}

// failEvent parks the event in an error status and leaves an operator-
// visible trace. Guarded on the processing status so a concurrent
// manual resolve wins.
func (c *Captain) failEvent(ctx context.Context, ev *ent.Event, to event.Status, reason string) error {
	n, err := c.client.Event.Update().
		Where(event.EventIDEQ(ev.EventID), event.StatusEQ(event.StatusProcessing)).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to park event %s in %s: %w", ev.EventID, to, err)
	}
	if n > 0 {
		c.postError(ctx, ev, reason)
	}
	return nil
}

func (c *Captain) postSystem(ctx context.Context, ev *ent.Event, msgType string, data any) {
	if _, err := c.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromSystem,
		MessageType: msgType,
		Data:        data,
	}); err != nil {
		slog.Warn("Failed to post message", "event_id", ev.EventID, "message_type", msgType, "error", err)
	}
}

func (c *Captain) postError(ctx context.Context, ev *ent.Event, text string) {
	if _, err := c.notifier.PostError(ctx, ev.EventID, ev.CurrentRound, message.MessageFromCaptain, text); err != nil {
		slog.Warn("Failed to post error message", "event_id", ev.EventID, "error", err)
	}
}
