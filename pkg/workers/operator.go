package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/llm"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/models"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/propagation"
)

// Operator turns one round's pending actions into executable commands,
// mirroring the manager's group semantics one level down. Command rows
// carry everything the executor needs (type, entity, params), so the
// executor never talks to a model.
type Operator struct {
	client     *ent.Client
	llm        llm.Caller
	prompts    *prompts.Store
	notifier   *messaging.Notifier
	engine     *propagation.Engine
	retryLimit int
}

// NewOperator creates the operator worker.
func NewOperator(client *ent.Client, caller llm.Caller, store *prompts.Store, notifier *messaging.Notifier, engine *propagation.Engine, retryLimit int) *Operator {
	return &Operator{
		client:     client,
		llm:        caller,
		prompts:    store,
		notifier:   notifier,
		engine:     engine,
		retryLimit: retryLimit,
	}
}

// Name implements Role.
func (o *Operator) Name() string { return "operator" }

type actionGroup struct {
	event     *ent.Event
	roundID   int
	actions   []*ent.Action
	taskNames map[string]string
}

// Tick processes the group containing the oldest pending action.
func (o *Operator) Tick(ctx context.Context) error {
	group, err := o.nextGroup(ctx)
	if err != nil {
		return err
	}
	return o.processGroup(ctx, group)
}

func (o *Operator) nextGroup(ctx context.Context) (*actionGroup, error) {
	oldest, err := o.client.Action.Query().
		Where(action.StatusEQ(action.StatusPending)).
		Order(ent.Asc(action.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWork
		}
		return nil, fmt.Errorf("failed to query pending actions: %w", err)
	}

	actions, err := o.client.Action.Query().
		Where(
			action.EventIDEQ(oldest.EventID),
			action.RoundIDEQ(oldest.RoundID),
			action.StatusEQ(action.StatusPending),
		).
		Order(ent.Asc(action.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load action group for event %s: %w", oldest.EventID, err)
	}

	ev, err := o.client.Event.Query().Where(event.EventIDEQ(oldest.EventID)).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s for action group: %w", oldest.EventID, err)
	}

	taskIDs := make([]string, 0, len(actions))
	seen := make(map[string]bool)
	for _, act := range actions {
		if !seen[act.TaskID] {
			seen[act.TaskID] = true
			taskIDs = append(taskIDs, act.TaskID)
		}
	}
	tasks, err := o.client.Task.Query().Where(task.TaskIDIn(taskIDs...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for action group: %w", err)
	}
	names := make(map[string]string, len(tasks))
	for _, t := range tasks {
		names[t.TaskID] = t.TaskName
	}

	return &actionGroup{event: ev, roundID: oldest.RoundID, actions: actions, taskNames: names}, nil
}

// operatorRequest is the YAML document handed to the operator model.
type operatorRequest struct {
	Type         string              `yaml:"type"`
	ReqID        string              `yaml:"req_id"`
	ResID        string              `yaml:"res_id"`
	EventID      string              `yaml:"event_id"`
	EventRound   int                 `yaml:"event_round"`
	EventName    string              `yaml:"event_name"`
	EventMessage string              `yaml:"event_message"`
	Actions      []actionRequestItem `yaml:"actions"`
}

type actionRequestItem struct {
	ActionID   string `yaml:"action_id"`
	ActionName string `yaml:"action_name"`
	ActionType string `yaml:"action_type"`
	TaskID     string `yaml:"task_id"`
	TaskName   string `yaml:"task_name"`
}

func (o *Operator) processGroup(ctx context.Context, g *actionGroup) error {
	log := slog.With("event_id", g.event.EventID, "round_id", g.roundID)
	log.Info("Processing action group", "actions", len(g.actions))

	req := operatorRequest{
		Type:         "request_commands_by_actions",
		ReqID:        uuid.New().String(),
		ResID:        uuid.New().String(),
		EventID:      g.event.EventID,
		EventRound:   g.roundID,
		EventName:    g.event.EventName,
		EventMessage: g.event.Message,
	}
	for _, act := range g.actions {
		req.Actions = append(req.Actions, actionRequestItem{
			ActionID:   act.ActionID,
			ActionName: act.ActionName,
			ActionType: act.ActionType,
			TaskID:     act.TaskID,
			TaskName:   g.taskNames[act.TaskID],
		})
	}
	doc, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal operator request: %w", err)
	}

	var b strings.Builder
	b.WriteString("```yaml\n")
	b.Write(doc)
	b.WriteString("```\n\nAnalyze the action items from `_manager` and produce the `COMMAND` entries `_executor` should run. Prefer playbook commands when a suitable playbook exists and fall back to manual ones otherwise.\n")

	o.postSystem(ctx, g, models.MessageTypeLLMRequest,
		"Turning actions into runnable commands.")

	systemPrompt, err := o.prompts.SystemPrompt(ctx, models.RoleOperator)
	if err != nil {
		return err
	}
	raw, err := o.llm.Call(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   b.String(),
		EventID:      g.event.EventID,
		RoundID:      g.roundID,
	})
	if err != nil {
		o.postError(ctx, g, fmt.Sprintf("operator model call failed: %v", err))
		return fmt.Errorf("operator model call for event %s: %w", g.event.EventID, err)
	}

	parsed, err := llm.ParseRoleResponse(raw)
	if err != nil {
		log.Error("Unparseable operator response", "error", err)
		o.postError(ctx, g, fmt.Sprintf("unparseable operator response: %v", err))
		return o.apply(ctx, g, nil)
	}

	if _, err := o.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     g.event.EventID,
		RoundID:     g.roundID,
		MessageFrom: message.MessageFromOperator,
		MessageType: models.MessageTypeLLMResponse,
		Data:        parsed,
	}); err != nil {
		log.Warn("Failed to record operator response", "error", err)
	}

	if parsed.ResponseType != models.ResponseTypeCommand {
		log.Warn("Operator returned no commands", "response_type", parsed.ResponseType)
		return o.apply(ctx, g, nil)
	}
	return o.apply(ctx, g, parsed.Commands)
}

// apply commits one group outcome atomically. Command rows take their
// task and round from the matched action row, not from the model.
func (o *Operator) apply(ctx context.Context, g *actionGroup, items []llm.CommandItem) error {
	tx, err := o.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	locked, err := tx.Action.Query().
		Where(
			action.EventIDEQ(g.event.EventID),
			action.RoundIDEQ(g.roundID),
			action.StatusEQ(action.StatusPending),
		).
		Order(ent.Asc(action.FieldID)).
		ForUpdate().
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock action group for event %s: %w", g.event.EventID, err)
	}
	if len(locked) == 0 {
		return tx.Commit()
	}

	byID := make(map[string]*ent.Action, len(locked))
	for _, act := range locked {
		byID[act.ActionID] = act
	}

	var skipped []string
	matched := make(map[string]bool)
	creates := make([]*ent.CommandCreate, 0, len(items))
	var createdData []map[string]any
	for _, item := range items {
		act, ok := byID[item.ActionID]
		if !ok {
			skipped = append(skipped, fmt.Sprintf("skipped command %q: unknown action_id %q", item.CommandName, item.ActionID))
			continue
		}
		if item.CommandName == "" {
			skipped = append(skipped, fmt.Sprintf("skipped command for action %s: no command name", item.ActionID))
			continue
		}
		cmdType := command.CommandType(item.CommandType)
		if err := command.CommandTypeValidator(cmdType); err != nil {
			skipped = append(skipped, fmt.Sprintf("skipped command %q: unknown command_type %q", item.CommandName, item.CommandType))
			continue
		}
		if item.CommandAssignee != "" && item.CommandAssignee != models.RoleExecutor {
			skipped = append(skipped, fmt.Sprintf("skipped command %q: unknown assignee %q", item.CommandName, item.CommandAssignee))
			continue
		}

		commandID := uuid.New().String()
		create := tx.Command.Create().
			SetCommandID(commandID).
			SetActionID(act.ActionID).
			SetTaskID(act.TaskID).
			SetEventID(g.event.EventID).
			SetRoundID(g.roundID).
			SetCommandName(item.CommandName).
			SetCommandType(cmdType)
		if item.CommandEntity != nil {
			create = create.SetCommandEntity(item.CommandEntity)
		}
		if item.CommandParams != nil {
			create = create.SetCommandParams(item.CommandParams)
		}
		if item.CommandAssignee != "" {
			create = create.SetCommandAssignee(item.CommandAssignee)
		}
		creates = append(creates, create)
		matched[act.ActionID] = true
		createdData = append(createdData, map[string]any{
			"command_id":   commandID,
			"command_name": item.CommandName,
			"command_type": item.CommandType,
			"action_id":    act.ActionID,
			"task_id":      act.TaskID,
		})
	}

	if len(creates) > 0 {
		if _, err := tx.Command.CreateBulk(creates...).Save(ctx); err != nil {
			return fmt.Errorf("failed to create commands for event %s: %w", g.event.EventID, err)
		}
	}

	var failed []*ent.Action
	for _, act := range locked {
		if matched[act.ActionID] {
			if err := act.Update().SetStatus(action.StatusProcessing).Exec(ctx); err != nil {
				return fmt.Errorf("failed to update action %s: %w", act.ActionID, err)
			}
			continue
		}
		retries := act.RetryCount + 1
		update := act.Update().SetRetryCount(retries)
		if retries >= o.retryLimit {
			update = update.SetStatus(action.StatusFailed)
			failed = append(failed, act)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update action %s: %w", act.ActionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit action group for event %s: %w", g.event.EventID, err)
	}

	for _, note := range skipped {
		o.postError(ctx, g, note)
	}
	for _, act := range failed {
		o.postError(ctx, g, fmt.Sprintf("action %s made no progress after %d cycles, marked failed", act.ActionID, o.retryLimit))
	}
	if len(createdData) > 0 {
		if _, err := o.notifier.Post(ctx, models.CreateMessageRequest{
			EventID:     g.event.EventID,
			RoundID:     g.roundID,
			MessageFrom: message.MessageFromOperator,
			MessageType: models.MessageTypeCommandCreated,
			Data:        map[string]any{"commands": createdData},
		}); err != nil {
			slog.Warn("Failed to record command creation", "event_id", g.event.EventID, "error", err)
		}
		slog.Info("Commands created", "event_id", g.event.EventID, "round_id", g.roundID, "count", len(createdData))
	}

	// A failed action can settle its task and, transitively, the round.
	for _, act := range failed {
		if err := o.engine.FromCommand(ctx, act.ActionID, act.TaskID, act.EventID); err != nil {
			slog.Warn("Propagation after action failure", "action_id", act.ActionID, "error", err)
		}
	}
	return nil
}

func (o *Operator) postSystem(ctx context.Context, g *actionGroup, msgType string, data any) {
	if _, err := o.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     g.event.EventID,
		RoundID:     g.roundID,
		MessageFrom: message.MessageFromSystem,
		MessageType: msgType,
		Data:        data,
	}); err != nil {
		slog.Warn("Failed to post message", "event_id", g.event.EventID, "message_type", msgType, "error", err)
	}
}

func (o *Operator) postError(ctx context.Context, g *actionGroup, text string) {
	if _, err := o.notifier.PostError(ctx, g.event.EventID, g.roundID, message.MessageFromOperator, text); err != nil {
		slog.Warn("Failed to post error message", "event_id", g.event.EventID, "error", err)
	}
}
