package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/llm"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/models"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/propagation"
	"github.com/deepsoc/deepsoc/pkg/services"
)

// Lifecycle owns the event status edges no single role owns: it sweeps
// processing events as the recovery trigger for missed propagation,
// closes finished rounds, writes the expert's round report, and starts
// the next round when the driving mode allows it. It expects to be the
// only instance; each transition still re-checks the status under a row
// lock so a stray duplicate cannot corrupt an event.
type Lifecycle struct {
	client    *ent.Client
	llm       llm.Caller
	notifier  *messaging.Notifier
	engine    *propagation.Engine
	settings  *services.SettingService
	summaries *services.SummaryService
	maxRound  int
}

// NewLifecycle creates the lifecycle manager.
func NewLifecycle(client *ent.Client, caller llm.Caller, notifier *messaging.Notifier, engine *propagation.Engine, settings *services.SettingService, summaries *services.SummaryService, maxRound int) *Lifecycle {
	return &Lifecycle{
		client:    client,
		llm:       caller,
		notifier:  notifier,
		engine:    engine,
		settings:  settings,
		summaries: summaries,
		maxRound:  maxRound,
	}
}

// Name implements Role.
func (l *Lifecycle) Name() string { return "lifecycle" }

// Tick runs one sweep over all five lifecycle duties.
func (l *Lifecycle) Tick(ctx context.Context) error {
	worked := false
	for _, step := range []func(context.Context) (bool, error){
		l.sweepProcessing,
		l.closeRounds,
		l.writeSummaries,
		l.settleSummaries,
		l.advanceRounds,
	} {
		did, err := step(ctx)
		if err != nil {
			return err
		}
		worked = worked || did
	}
	if !worked {
		return ErrNoWork
	}
	return nil
}

// transition moves one event along a legal status edge. The row is
// re-checked under a lock; a concurrent move (manual resolution most
// often) makes this a no-op.
func (l *Lifecycle) transition(ctx context.Context, eventID string, from, to event.Status, mutate func(*ent.EventUpdateOne) *ent.EventUpdateOne) (bool, error) {
	if !models.CanTransition(from, to) {
		return false, fmt.Errorf("illegal event transition %s -> %s", from, to)
	}

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ev, err := tx.Event.Query().
		Where(event.EventIDEQ(eventID), event.StatusEQ(from)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}

	update := ev.Update().SetStatus(to)
	if mutate != nil {
		update = mutate(update)
	}
	if err := update.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to move event %s to %s: %w", eventID, to, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit event %s: %w", eventID, err)
	}
	slog.Info("Event status changed", "event_id", eventID, "from", from, "to", to)
	return true, nil
}

// sweepProcessing re-evaluates every processing event. Workers trigger
// propagation themselves when children settle; the sweep catches the
// ones lost to crashes between commit and trigger.
func (l *Lifecycle) sweepProcessing(ctx context.Context) (bool, error) {
	events, err := l.client.Event.Query().
		Where(event.StatusEQ(event.StatusProcessing)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list processing events: %w", err)
	}
	worked := false
	for _, ev := range events {
		changed, err := l.engine.EvaluateEvent(ctx, ev.EventID)
		if err != nil {
			slog.Error("Round evaluation failed", "event_id", ev.EventID, "error", err)
			continue
		}
		worked = worked || changed
	}
	return worked, nil
}

// closeRounds queues finished rounds for the expert report. Manually
// resolved events take the same path so every event ends with a report.
func (l *Lifecycle) closeRounds(ctx context.Context) (bool, error) {
	events, err := l.client.Event.Query().
		Where(event.StatusIn(event.StatusTasksCompleted, event.StatusResolved)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list closeable events: %w", err)
	}
	worked := false
	for _, ev := range events {
		moved, err := l.transition(ctx, ev.EventID, ev.Status, event.StatusToBeSummarized, nil)
		if err != nil {
			slog.Error("Failed to queue event for summary", "event_id", ev.EventID, "error", err)
			continue
		}
		worked = worked || moved
	}
	return worked, nil
}

// writeSummaries produces the expert's round report for each event
// waiting on one.
func (l *Lifecycle) writeSummaries(ctx context.Context) (bool, error) {
	events, err := l.client.Event.Query().
		Where(event.StatusEQ(event.StatusToBeSummarized)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list events to summarize: %w", err)
	}
	worked := false
	for _, ev := range events {
		did, err := l.summarizeEvent(ctx, ev)
		if err != nil {
			slog.Error("Round summary failed", "event_id", ev.EventID, "error", err)
			continue
		}
		worked = worked || did
	}
	return worked, nil
}

// summarizeEvent writes one round report. A model transport failure
// leaves the event queued for the next sweep; an empty answer is
// treated as a refusal and fails the summary.
func (l *Lifecycle) summarizeEvent(ctx context.Context, ev *ent.Event) (bool, error) {
	userPrompt, err := l.buildReportPrompt(ctx, ev)
	if err != nil {
		return false, err
	}

	raw, err := l.llm.Call(ctx, llm.Request{
		SystemPrompt: prompts.EventSummarySystem,
		UserPrompt:   userPrompt,
		LongText:     true,
		EventID:      ev.EventID,
		RoundID:      ev.CurrentRound,
	})
	if err != nil {
		return false, fmt.Errorf("summary model call for event %s: %w", ev.EventID, err)
	}
	if strings.TrimSpace(raw) == "" {
		moved, terr := l.transition(ctx, ev.EventID, event.StatusToBeSummarized, event.StatusSummaryFailed, nil)
		if terr != nil {
			return false, terr
		}
		l.postError(ctx, ev, "summary model returned an empty report")
		return moved, nil
	}

	text := parseSummaryText(raw, ev.EventID)
	if _, err := l.summaries.Create(ctx, ev.EventID, ev.CurrentRound, text, ""); err != nil {
		return false, fmt.Errorf("failed to store summary for event %s: %w", ev.EventID, err)
	}
	moved, err := l.transition(ctx, ev.EventID, event.StatusToBeSummarized, event.StatusSummarized, nil)
	if err != nil {
		return false, err
	}

	if _, err := l.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromExpert,
		MessageType: models.MessageTypeEventSummary,
		Data: map[string]any{
			"event_id":         ev.EventID,
			"event_name":       ev.EventName,
			"event_status":     string(event.StatusSummarized),
			"round_id":         ev.CurrentRound,
			"event_summary":    text,
			"event_suggestion": "",
		},
	}); err != nil {
		slog.Warn("Failed to post event summary", "event_id", ev.EventID, "error", err)
	}
	return moved, nil
}

// settleSummaries decides what a finished report means: another round,
// done, or failed.
func (l *Lifecycle) settleSummaries(ctx context.Context) (bool, error) {
	events, err := l.client.Event.Query().
		Where(event.StatusIn(event.StatusSummarized, event.StatusSummaryFailed)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list summarized events: %w", err)
	}
	worked := false
	for _, ev := range events {
		var moved bool
		var terr error
		switch {
		case ev.Status == event.StatusSummaryFailed:
			moved, terr = l.transition(ctx, ev.EventID, event.StatusSummaryFailed, event.StatusFailed, nil)
			if terr == nil && moved {
				l.postError(ctx, ev, "round report could not be produced; event marked failed")
			}
		case ev.ResolvedAt != nil:
			moved, terr = l.transition(ctx, ev.EventID, event.StatusSummarized, event.StatusCompleted, nil)
			if terr == nil && moved {
				l.postCompleted(ctx, ev, "resolved")
			}
		case ev.CurrentRound >= l.maxRound:
			moved, terr = l.transition(ctx, ev.EventID, event.StatusSummarized, event.StatusCompleted, nil)
			if terr == nil && moved {
				l.postCompleted(ctx, ev, "max_round_reached")
			}
		default:
			moved, terr = l.transition(ctx, ev.EventID, event.StatusSummarized, event.StatusRoundFinished, nil)
		}
		if terr != nil {
			slog.Error("Failed to settle summary", "event_id", ev.EventID, "error", terr)
			continue
		}
		worked = worked || moved
	}
	return worked, nil
}

// advanceRounds starts the next round for events whose report said the
// incident is not over. Manual driving mode parks events at
// round_finished until an analyst advances them through the API.
func (l *Lifecycle) advanceRounds(ctx context.Context) (bool, error) {
	mode, err := l.settings.GetDrivingMode(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read driving mode: %w", err)
	}
	if mode != models.DrivingModeAuto {
		return false, nil
	}

	events, err := l.client.Event.Query().
		Where(event.StatusEQ(event.StatusRoundFinished)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list round_finished events: %w", err)
	}
	worked := false
	for _, ev := range events {
		nextRound := ev.CurrentRound + 1
		moved, err := l.transition(ctx, ev.EventID, event.StatusRoundFinished, event.StatusPending,
			func(u *ent.EventUpdateOne) *ent.EventUpdateOne {
				return u.SetCurrentRound(nextRound)
			})
		if err != nil {
			slog.Error("Failed to advance round", "event_id", ev.EventID, "error", err)
			continue
		}
		if moved {
			slog.Info("Round advanced", "event_id", ev.EventID, "round_id", nextRound)
		}
		worked = worked || moved
	}
	return worked, nil
}

// Report context document types. Executions that already have a digest
// contribute the digest instead of the raw payload.
type reportExecution struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
	AiSummary   string `json:"ai_summary,omitempty"`
	Result      any    `json:"execution_result,omitempty"`
}

type reportCommand struct {
	CommandID   string            `json:"command_id"`
	CommandName string            `json:"command_name"`
	CommandType string            `json:"command_type"`
	Status      string            `json:"status"`
	Executions  []reportExecution `json:"executions,omitempty"`
}

type reportAction struct {
	ActionID   string          `json:"action_id"`
	ActionName string          `json:"action_name"`
	ActionType string          `json:"action_type,omitempty"`
	Status     string          `json:"status"`
	Commands   []reportCommand `json:"commands,omitempty"`
}

type reportTask struct {
	TaskID   string         `json:"task_id"`
	TaskName string         `json:"task_name"`
	TaskType string         `json:"task_type"`
	RoundID  int            `json:"round_id"`
	Status   string         `json:"status"`
	Actions  []reportAction `json:"actions,omitempty"`
}

type eventReport struct {
	EventID         string       `json:"event_id"`
	EventName       string       `json:"event_name"`
	Message         string       `json:"message"`
	Context         string       `json:"context,omitempty"`
	Source          string       `json:"source,omitempty"`
	Severity        string       `json:"severity"`
	CurrentRound    int          `json:"current_round"`
	Tasks           []reportTask `json:"tasks"`
	PreviousSummary string       `json:"previous_summary,omitempty"`
}

// buildReportPrompt assembles the whole event hierarchy, all rounds, as
// the report context.
func (l *Lifecycle) buildReportPrompt(ctx context.Context, ev *ent.Event) (string, error) {
	tasks, err := l.client.Task.Query().
		Where(task.EventIDEQ(ev.EventID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load tasks of event %s: %w", ev.EventID, err)
	}
	actions, err := l.client.Action.Query().
		Where(action.EventIDEQ(ev.EventID)).
		Order(ent.Asc(action.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load actions of event %s: %w", ev.EventID, err)
	}
	commands, err := l.client.Command.Query().
		Where(command.EventIDEQ(ev.EventID)).
		Order(ent.Asc(command.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load commands of event %s: %w", ev.EventID, err)
	}
	executions, err := l.client.Execution.Query().
		Where(execution.EventIDEQ(ev.EventID)).
		Order(ent.Asc(execution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load executions of event %s: %w", ev.EventID, err)
	}

	execsByCommand := make(map[string][]reportExecution)
	for _, ex := range executions {
		re := reportExecution{
			ExecutionID: ex.ExecutionID,
			Status:      string(ex.Status),
			AiSummary:   ex.AiSummary,
		}
		if ex.AiSummary == "" && ex.ExecutionResult != "" {
			var structured any
			if err := json.Unmarshal([]byte(ex.ExecutionResult), &structured); err == nil {
				re.Result = structured
			} else {
				re.Result = ex.ExecutionResult
			}
		}
		execsByCommand[ex.CommandID] = append(execsByCommand[ex.CommandID], re)
	}

	commandsByAction := make(map[string][]reportCommand)
	for _, cmd := range commands {
		commandsByAction[cmd.ActionID] = append(commandsByAction[cmd.ActionID], reportCommand{
			CommandID:   cmd.CommandID,
			CommandName: cmd.CommandName,
			CommandType: string(cmd.CommandType),
			Status:      string(cmd.Status),
			Executions:  execsByCommand[cmd.CommandID],
		})
	}

	actionsByTask := make(map[string][]reportAction)
	for _, act := range actions {
		actionsByTask[act.TaskID] = append(actionsByTask[act.TaskID], reportAction{
			ActionID:   act.ActionID,
			ActionName: act.ActionName,
			ActionType: act.ActionType,
			Status:     string(act.Status),
			Commands:   commandsByAction[act.ActionID],
		})
	}

	report := eventReport{
		EventID:      ev.EventID,
		EventName:    ev.EventName,
		Message:      ev.Message,
		Context:      ev.Context,
		Source:       ev.Source,
		Severity:     ev.Severity,
		CurrentRound: ev.CurrentRound,
	}
	for _, t := range tasks {
		report.Tasks = append(report.Tasks, reportTask{
			TaskID:   t.TaskID,
			TaskName: t.TaskName,
			TaskType: string(t.TaskType),
			RoundID:  t.RoundID,
			Status:   string(t.Status),
			Actions:  actionsByTask[t.TaskID],
		})
	}

	if prev, err := l.summaries.LatestForEvent(ctx, ev.EventID); err != nil {
		return "", fmt.Errorf("failed to load previous summary of event %s: %w", ev.EventID, err)
	} else if prev != nil {
		report.PreviousSummary = prev.EventSummary
	}

	doc, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report context: %w", err)
	}

	var b strings.Builder
	b.WriteString("```json\n")
	b.Write(doc)
	b.WriteString("\n```\n\nWrite the situation report for this round: what happened, the likely root cause, the response actions taken and their outcomes, and recommendations for prevention and next steps.\n")
	if ev.ResolvedAt != nil {
		b.WriteString("An analyst resolved this incident manually; write the report so it reflects that resolution.\n")
	}
	fmt.Fprintf(&b, "Respond with a JSON object of the form {\"summary\": \"<the report>\", \"event_id\": %q}.\n", ev.EventID)
	return b.String(), nil
}

// parseSummaryText extracts the report body from the model's JSON
// answer. Any mismatch, a different event id included, falls back to
// the raw text so the report is never lost to formatting.
func parseSummaryText(raw, eventID string) string {
	text := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(text, "```json"); ok {
		text = rest
	} else if rest, ok := strings.CutPrefix(text, "```"); ok {
		text = rest
	}
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))

	var doc struct {
		Summary string `json:"summary"`
		EventID string `json:"event_id"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil || doc.Summary == "" {
		return strings.TrimSpace(raw)
	}
	if doc.EventID != "" && doc.EventID != eventID {
		return strings.TrimSpace(raw)
	}
	return doc.Summary
}

func (l *Lifecycle) postCompleted(ctx context.Context, ev *ent.Event, reason string) {
	if _, err := l.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromSystem,
		MessageType: models.MessageTypeEventCompleted,
		Data: map[string]any{
			"event_id": ev.EventID,
			"reason":   reason,
		},
	}); err != nil {
		slog.Warn("Failed to post completion message", "event_id", ev.EventID, "error", err)
	}
}

func (l *Lifecycle) postError(ctx context.Context, ev *ent.Event, text string) {
	if _, err := l.notifier.PostError(ctx, ev.EventID, ev.CurrentRound, message.MessageFromExpert, text); err != nil {
		slog.Warn("Failed to post error message", "event_id", ev.EventID, "error", err)
	}
}
