package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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
	"github.com/deepsoc/deepsoc/pkg/propagation"
)

// Manager turns one round's pending tasks into concrete actions. Tasks
// are processed in (event, round) groups: one model call per group, one
// transaction per group. Tasks the model keeps skipping accumulate a
// no-progress count and fail at the retry limit so a confused model
// cannot stall an event forever.
type Manager struct {
	client     *ent.Client
	llm        llm.Caller
	prompts    *prompts.Store
	notifier   *messaging.Notifier
	engine     *propagation.Engine
	retryLimit int
}

// NewManager creates the manager worker.
func NewManager(client *ent.Client, caller llm.Caller, store *prompts.Store, notifier *messaging.Notifier, engine *propagation.Engine, retryLimit int) *Manager {
	return &Manager{
		client:     client,
		llm:        caller,
		prompts:    store,
		notifier:   notifier,
		engine:     engine,
		retryLimit: retryLimit,
	}
}

// Name implements Role.
func (m *Manager) Name() string { return "manager" }

// taskGroup is one (event, round) batch of pending tasks.
type taskGroup struct {
	event   *ent.Event
	roundID int
	tasks   []*ent.Task
}

// Tick processes the group containing the oldest pending task.
func (m *Manager) Tick(ctx context.Context) error {
	group, err := m.nextGroup(ctx)
	if err != nil {
		return err
	}
	return m.processGroup(ctx, group)
}

// nextGroup finds the oldest pending task and collects its (event,
// round) siblings. No locks here: the status flips happen in one
// guarded transaction after the model call.
func (m *Manager) nextGroup(ctx context.Context) (*taskGroup, error) {
	oldest, err := m.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Order(ent.Asc(task.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWork
		}
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}

	tasks, err := m.client.Task.Query().
		Where(
			task.EventIDEQ(oldest.EventID),
			task.RoundIDEQ(oldest.RoundID),
			task.StatusEQ(task.StatusPending),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load task group for event %s: %w", oldest.EventID, err)
	}

	ev, err := m.client.Event.Query().Where(event.EventIDEQ(oldest.EventID)).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s for task group: %w", oldest.EventID, err)
	}

	return &taskGroup{event: ev, roundID: oldest.RoundID, tasks: tasks}, nil
}

// managerRequest is the YAML document handed to the manager model.
type managerRequest struct {
	Type         string            `yaml:"type"`
	ReqID        string            `yaml:"req_id"`
	ResID        string            `yaml:"res_id"`
	EventID      string            `yaml:"event_id"`
	EventRound   int               `yaml:"event_round"`
	EventName    string            `yaml:"event_name"`
	EventMessage string            `yaml:"event_message"`
	Tasks        []taskRequestItem `yaml:"tasks"`
}

type taskRequestItem struct {
	TaskID   string `yaml:"task_id"`
	TaskName string `yaml:"task_name"`
	TaskType string `yaml:"task_type"`
}

// processGroup runs one manager round for a task group.
func (m *Manager) processGroup(ctx context.Context, g *taskGroup) error {
	log := slog.With("event_id", g.event.EventID, "round_id", g.roundID)
	log.Info("Processing task group", "tasks", len(g.tasks))

	req := managerRequest{
		Type:         "request_actions_by_tasks",
		ReqID:        uuid.New().String(),
		ResID:        uuid.New().String(),
		EventID:      g.event.EventID,
		EventRound:   g.roundID,
		EventName:    g.event.EventName,
		EventMessage: g.event.Message,
	}
	for _, t := range g.tasks {
		req.Tasks = append(req.Tasks, taskRequestItem{
			TaskID:   t.TaskID,
			TaskName: t.TaskName,
			TaskType: string(t.TaskType),
		})
	}
	doc, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal manager request: %w", err)
	}

	var b strings.Builder
	b.WriteString("```yaml\n")
	b.Write(doc)
	b.WriteString("```\n\nAnalyze the task orders from `_captain` and produce concrete `ACTION` items `_operator` can work with.\n")

	m.postSystem(ctx, g, models.MessageTypeLLMRequest,
		"Reading the commander's tasks and splitting them into actions.")

	systemPrompt, err := m.prompts.SystemPrompt(ctx, models.RoleManager)
	if err != nil {
		return err
	}
	raw, err := m.llm.Call(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   b.String(),
		EventID:      g.event.EventID,
		RoundID:      g.roundID,
	})
	if err != nil {
		// Transient by assumption: the group stays pending and is
		// retried without touching the no-progress counters.
		m.postError(ctx, g, fmt.Sprintf("manager model call failed: %v", err))
		return fmt.Errorf("manager model call for event %s: %w", g.event.EventID, err)
	}

	parsed, err := llm.ParseRoleResponse(raw)
	if err != nil {
		log.Error("Unparseable manager response", "error", err)
		m.postError(ctx, g, fmt.Sprintf("unparseable manager response: %v", err))
		return m.apply(ctx, g, nil)
	}

	if _, err := m.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     g.event.EventID,
		RoundID:     g.roundID,
		MessageFrom: message.MessageFromManager,
		MessageType: models.MessageTypeLLMResponse,
		Data:        parsed,
	}); err != nil {
		log.Warn("Failed to record manager response", "error", err)
	}

	if parsed.ResponseType != models.ResponseTypeAction {
		log.Warn("Manager returned no actions", "response_type", parsed.ResponseType)
		return m.apply(ctx, g, nil)
	}
	return m.apply(ctx, g, parsed.Actions)
}

// apply commits one group outcome atomically: insert the accepted
// actions, flip their tasks to processing, and bump the no-progress
// counter on every task the model skipped. A nil item list means the
// whole group was skipped this cycle.
func (m *Manager) apply(ctx context.Context, g *taskGroup, items []llm.ActionItem) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Re-read under lock: a task may have failed or progressed since
	// the group was collected. Deterministic order avoids deadlocks
	// between concurrent managers.
	locked, err := tx.Task.Query().
		Where(
			task.EventIDEQ(g.event.EventID),
			task.RoundIDEQ(g.roundID),
			task.StatusEQ(task.StatusPending),
		).
		Order(ent.Asc(task.FieldID)).
		ForUpdate().
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock task group for event %s: %w", g.event.EventID, err)
	}
	if len(locked) == 0 {
		return tx.Commit()
	}

	byID := make(map[string]*ent.Task, len(locked))
	for _, t := range locked {
		byID[t.TaskID] = t
	}

	var skipped []string
	matched := make(map[string]bool)
	creates := make([]*ent.ActionCreate, 0, len(items))
	var createdData []map[string]any
	for _, item := range items {
		t, ok := byID[item.TaskID]
		if !ok {
			skipped = append(skipped, fmt.Sprintf("skipped action %q: unknown task_id %q", item.ActionName, item.TaskID))
			continue
		}
		if item.ActionName == "" {
			skipped = append(skipped, fmt.Sprintf("skipped action for task %s: no action name", item.TaskID))
			continue
		}
		if item.ActionAssignee != "" && item.ActionAssignee != models.RoleOperator {
			skipped = append(skipped, fmt.Sprintf("skipped action %q: unknown assignee %q", item.ActionName, item.ActionAssignee))
			continue
		}

		actionID := uuid.New().String()
		create := tx.Action.Create().
			SetActionID(actionID).
			SetTaskID(t.TaskID).
			SetEventID(g.event.EventID).
			SetRoundID(g.roundID).
			SetActionName(item.ActionName)
		if item.ActionType != "" {
			create = create.SetActionType(item.ActionType)
		}
		if item.ActionAssignee != "" {
			create = create.SetActionAssignee(item.ActionAssignee)
		}
		creates = append(creates, create)
		matched[t.TaskID] = true
		createdData = append(createdData, map[string]any{
			"action_id":   actionID,
			"action_name": item.ActionName,
			"action_type": item.ActionType,
			"task_id":     t.TaskID,
		})
	}

	if len(creates) > 0 {
		if _, err := tx.Action.CreateBulk(creates...).Save(ctx); err != nil {
			return fmt.Errorf("failed to create actions for event %s: %w", g.event.EventID, err)
		}
	}

	var failedTasks []string
	for _, t := range locked {
		if matched[t.TaskID] {
			if err := t.Update().SetStatus(task.StatusProcessing).Exec(ctx); err != nil {
				return fmt.Errorf("failed to update task %s: %w", t.TaskID, err)
			}
			continue
		}
		retries := t.RetryCount + 1
		update := t.Update().SetRetryCount(retries)
		if retries >= m.retryLimit {
			update = update.SetStatus(task.StatusFailed)
			failedTasks = append(failedTasks, t.TaskID)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update task %s: %w", t.TaskID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task group for event %s: %w", g.event.EventID, err)
	}

	for _, note := range skipped {
		m.postError(ctx, g, note)
	}
	for _, taskID := range failedTasks {
		m.postError(ctx, g, fmt.Sprintf("task %s made no progress after %d cycles, marked failed", taskID, m.retryLimit))
	}
	if len(createdData) > 0 {
		if _, err := m.notifier.Post(ctx, models.CreateMessageRequest{
			EventID:     g.event.EventID,
			RoundID:     g.roundID,
			MessageFrom: message.MessageFromManager,
			MessageType: models.MessageTypeActionCreated,
			Data:        map[string]any{"actions": createdData},
		}); err != nil {
			slog.Warn("Failed to record action creation", "event_id", g.event.EventID, "error", err)
		}
		slog.Info("Actions created", "event_id", g.event.EventID, "round_id", g.roundID, "count", len(createdData))
	}

	// A failed task may have been the round's last open one.
	if len(failedTasks) > 0 {
		if _, err := m.engine.EvaluateEvent(ctx, g.event.EventID); err != nil {
			slog.Warn("Round evaluation after task failure", "event_id", g.event.EventID, "error", err)
		}
	}
	return nil
}

func (m *Manager) postSystem(ctx context.Context, g *taskGroup, msgType string, data any) {
	if _, err := m.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     g.event.EventID,
		RoundID:     g.roundID,
		MessageFrom: message.MessageFromSystem,
		MessageType: msgType,
		Data:        data,
	}); err != nil {
		slog.Warn("Failed to post message", "event_id", g.event.EventID, "message_type", msgType, "error", err)
	}
}

func (m *Manager) postError(ctx context.Context, g *taskGroup, text string) {
	if _, err := m.notifier.PostError(ctx, g.event.EventID, g.roundID, message.MessageFromManager, text); err != nil {
		slog.Warn("Failed to post error message", "event_id", g.event.EventID, "error", err)
	}
}
