package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/llm"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/models"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/propagation"
)

// digestTemperature keeps the execution digest close to extraction.
const digestTemperature = 0.3

// Summarizer is the expert's first duty: condense each completed
// execution's raw output into a short narrative. Summarized executions
// are what release the upward status propagation, so a round cannot end
// while raw output is still undigested.
type Summarizer struct {
	client   *ent.Client
	llm      llm.Caller
	notifier *messaging.Notifier
	engine   *propagation.Engine
}

// NewSummarizer creates the execution digest worker.
func NewSummarizer(client *ent.Client, caller llm.Caller, notifier *messaging.Notifier, engine *propagation.Engine) *Summarizer {
	return &Summarizer{client: client, llm: caller, notifier: notifier, engine: engine}
}

// Name implements Role.
func (s *Summarizer) Name() string { return "summarizer" }

// digestContext is the JSON document handed to the digest model.
type digestContext struct {
	ExecutionID     string `json:"execution_id"`
	CommandID       string `json:"command_id"`
	CommandName     string `json:"command_name"`
	CommandType     string `json:"command_type"`
	ActionID        string `json:"action_id"`
	ActionName      string `json:"action_name"`
	TaskID          string `json:"task_id"`
	TaskName        string `json:"task_name"`
	EventID         string `json:"event_id"`
	RoundID         int    `json:"round_id"`
	ExecutionStatus string `json:"execution_status"`
	ExecutionResult any    `json:"execution_result"`
	ReqID           string `json:"req_id"`
	ResID           string `json:"res_id"`
}

// Tick digests the oldest completed execution. The row stays locked
// through the model call; there is no intermediate status, and SKIP
// LOCKED keeps other summarizers moving.
func (s *Summarizer) Tick(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exec, err := tx.Execution.Query().
		Where(execution.StatusEQ(execution.StatusCompleted)).
		Order(ent.Asc(execution.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNoWork
		}
		return fmt.Errorf("failed to query completed executions: %w", err)
	}

	log := slog.With("execution_id", exec.ExecutionID, "event_id", exec.EventID)
	log.Info("Summarizing execution")

	userPrompt, err := s.buildUserPrompt(ctx, tx, exec)
	if err != nil {
		return err
	}

	temp := digestTemperature
	summary, callErr := s.llm.Call(ctx, llm.Request{
		SystemPrompt: prompts.ExecutionDigestSystem,
		UserPrompt:   userPrompt,
		Temperature:  &temp,
		LongText:     true,
		EventID:      exec.EventID,
		RoundID:      exec.RoundID,
	})
	summary = strings.TrimSpace(summary)

	update := exec.Update()
	if callErr != nil || summary == "" {
		log.Error("Execution digest failed", "error", callErr)
		summary = ""
		update = update.SetStatus(execution.StatusSummarizedError)
	} else {
		update = update.SetStatus(execution.StatusSummarized).SetAiSummary(summary)
	}
	exec, err = update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to settle execution %s: %w", exec.ExecutionID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit execution %s: %w", exec.ExecutionID, err)
	}

	if summary != "" {
		if _, err := s.notifier.Post(ctx, models.CreateMessageRequest{
			EventID:     exec.EventID,
			RoundID:     exec.RoundID,
			MessageFrom: message.MessageFromExpert,
			MessageType: models.MessageTypeExecutionSummary,
			Data: map[string]any{
				"execution_id": exec.ExecutionID,
				"command_id":   exec.CommandID,
				"action_id":    exec.ActionID,
				"task_id":      exec.TaskID,
				"ai_summary":   summary,
			},
		}); err != nil {
			log.Warn("Failed to post execution summary", "error", err)
		}
	}

	if err := s.engine.FromExecution(ctx, exec); err != nil {
		log.Warn("Propagation after digest", "error", err)
	}
	return nil
}

// buildUserPrompt assembles the execution's chain context. Missing
// ancestors get placeholders rather than aborting the digest.
func (s *Summarizer) buildUserPrompt(ctx context.Context, tx *ent.Tx, exec *ent.Execution) (string, error) {
	dc := digestContext{
		ExecutionID:     exec.ExecutionID,
		CommandID:       exec.CommandID,
		CommandName:     "unknown command",
		CommandType:     "",
		ActionID:        exec.ActionID,
		ActionName:      "unknown action",
		TaskID:          exec.TaskID,
		TaskName:        "unknown task",
		EventID:         exec.EventID,
		RoundID:         exec.RoundID,
		ExecutionStatus: string(exec.Status),
		ReqID:           uuid.New().String(),
		ResID:           uuid.New().String(),
	}

	if cmd, err := tx.Command.Query().Where(command.CommandIDEQ(exec.CommandID)).Only(ctx); err == nil {
		dc.CommandName = cmd.CommandName
		dc.CommandType = string(cmd.CommandType)
	} else if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to load command %s: %w", exec.CommandID, err)
	}
	if act, err := tx.Action.Query().Where(action.ActionIDEQ(exec.ActionID)).Only(ctx); err == nil {
		dc.ActionName = act.ActionName
	} else if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to load action %s: %w", exec.ActionID, err)
	}
	if tk, err := tx.Task.Query().Where(task.TaskIDEQ(exec.TaskID)).Only(ctx); err == nil {
		dc.TaskName = tk.TaskName
	} else if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to load task %s: %w", exec.TaskID, err)
	}

	// Show structured results as structure, anything else verbatim.
	var structured any
	if err := json.Unmarshal([]byte(exec.ExecutionResult), &structured); err == nil {
		dc.ExecutionResult = structured
	} else {
		dc.ExecutionResult = exec.ExecutionResult
	}

	doc, err := json.MarshalIndent(dc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal digest context: %w", err)
	}

	var b strings.Builder
	b.WriteString("```json\n")
	b.Write(doc)
	b.WriteString("\n```\n\nExtract the key findings from execution_result and write a concise digest a security analyst can read at a glance.\n")
	return b.String(), nil
}
