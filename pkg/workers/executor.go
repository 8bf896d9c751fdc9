package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/models"
	"github.com/deepsoc/deepsoc/pkg/propagation"
	"github.com/deepsoc/deepsoc/pkg/soar"
)

// Executor runs commands. Playbook commands go to the SOAR platform and
// settle the command as soon as the run finishes; manual commands park a
// waiting execution for a human to complete through the API. Every
// playbook outcome, success or failure, leaves an execution row so the
// round accounting never loses an attempt.
type Executor struct {
	client   *ent.Client
	soar     soar.Runner
	notifier *messaging.Notifier
	engine   *propagation.Engine
}

// NewExecutor creates the executor worker.
func NewExecutor(client *ent.Client, runner soar.Runner, notifier *messaging.Notifier, engine *propagation.Engine) *Executor {
	return &Executor{client: client, soar: runner, notifier: notifier, engine: engine}
}

// Name implements Role.
func (e *Executor) Name() string { return "executor" }

// Tick claims the oldest pending command and runs it.
func (e *Executor) Tick(ctx context.Context) error {
	cmd, err := e.claimCommand(ctx)
	if err != nil {
		return err
	}
	return e.execute(ctx, cmd)
}

// claimCommand flips the oldest pending command to processing under a
// row lock so parallel executors never double-run a command.
func (e *Executor) claimCommand(ctx context.Context) (*ent.Command, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cmd, err := tx.Command.Query().
		Where(command.StatusEQ(command.StatusPending)).
		Order(ent.Asc(command.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWork
		}
		return nil, fmt.Errorf("failed to query pending commands: %w", err)
	}

	cmd, err = cmd.Update().SetStatus(command.StatusProcessing).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim command %s: %w", cmd.CommandID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim of command %s: %w", cmd.CommandID, err)
	}
	return cmd, nil
}

func (e *Executor) execute(ctx context.Context, cmd *ent.Command) error {
	log := slog.With("command_id", cmd.CommandID, "event_id", cmd.EventID)
	log.Info("Executing command", "command_name", cmd.CommandName, "command_type", cmd.CommandType)

	switch cmd.CommandType {
	case command.CommandTypeManual:
		return e.queueManual(ctx, cmd)
	case command.CommandTypePlaybook:
		playbookID := playbookIDFrom(cmd.CommandEntity)
		if playbookID == "" {
			return e.finish(ctx, cmd, false, map[string]any{
				"error": "command entity has no playbook_id",
			})
		}
		result, err := e.soar.Run(ctx, playbookID, cmd.CommandParams)
		if err != nil {
			log.Error("Playbook run failed", "playbook_id", playbookID, "error", err)
			return e.finish(ctx, cmd, false, map[string]any{"error": err.Error()})
		}
		return e.finish(ctx, cmd, true, result)
	default:
		return e.finish(ctx, cmd, false, map[string]any{
			"error": fmt.Sprintf("unsupported command type %q", cmd.CommandType),
		})
	}
}

// queueManual parks a waiting execution for a human. The command stays
// processing until the operator-entered result is digested.
func (e *Executor) queueManual(ctx context.Context, cmd *ent.Command) error {
	exec, err := e.client.Execution.Create().
		SetExecutionID(uuid.New().String()).
		SetCommandID(cmd.CommandID).
		SetActionID(cmd.ActionID).
		SetTaskID(cmd.TaskID).
		SetEventID(cmd.EventID).
		SetRoundID(cmd.RoundID).
		SetStatus(execution.StatusWaiting).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create waiting execution for command %s: %w", cmd.CommandID, err)
	}

	e.postResult(ctx, cmd, string(execution.StatusWaiting), map[string]any{
		"execution_id": exec.ExecutionID,
		"note":         "manual command waiting for a human to record the result",
	})
	slog.Info("Manual command queued", "command_id", cmd.CommandID, "execution_id", exec.ExecutionID)
	return nil
}

// finish records the playbook outcome: one execution row plus the eager
// command settle, in a single transaction.
func (e *Executor) finish(ctx context.Context, cmd *ent.Command, ok bool, result map[string]any) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		resultJSON = []byte(fmt.Sprintf(`{"error":"unencodable result: %v"}`, err))
	}

	execStatus := execution.StatusCompleted
	cmdStatus := command.StatusCompleted
	if !ok {
		execStatus = execution.StatusFailed
		cmdStatus = command.StatusFailed
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exec, err := tx.Execution.Create().
		SetExecutionID(uuid.New().String()).
		SetCommandID(cmd.CommandID).
		SetActionID(cmd.ActionID).
		SetTaskID(cmd.TaskID).
		SetEventID(cmd.EventID).
		SetRoundID(cmd.RoundID).
		SetStatus(execStatus).
		SetExecutionResult(string(resultJSON)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record execution for command %s: %w", cmd.CommandID, err)
	}
	if err := tx.Command.Update().
		Where(command.CommandIDEQ(cmd.CommandID)).
		SetStatus(cmdStatus).
		SetCommandResult(result).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to settle command %s: %w", cmd.CommandID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit execution of command %s: %w", cmd.CommandID, err)
	}

	e.postResult(ctx, cmd, string(cmdStatus), result)

	// The failed branch settles the chain now; the completed one waits
	// for the expert digest, except the action/task levels which only
	// need the command verdict.
	if err := e.engine.FromExecution(ctx, exec); err != nil {
		slog.Warn("Propagation after execution", "execution_id", exec.ExecutionID, "error", err)
	}
	return nil
}

func (e *Executor) postResult(ctx context.Context, cmd *ent.Command, status string, result map[string]any) {
	if _, err := e.notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     cmd.EventID,
		RoundID:     cmd.RoundID,
		MessageFrom: message.MessageFromExecutor,
		MessageType: models.MessageTypeCommandResult,
		Data: map[string]any{
			"command_id":   cmd.CommandID,
			"command_type": string(cmd.CommandType),
			"command_name": cmd.CommandName,
			"action_id":    cmd.ActionID,
			"task_id":      cmd.TaskID,
			"status":       status,
			"result":       result,
		},
	}); err != nil {
		slog.Warn("Failed to post command result", "command_id", cmd.CommandID, "error", err)
	}
}

// playbookIDFrom renders the playbook id however the model or the
// database round-trip delivered it: string, JSON number, or any of the
// integer shapes the YAML decoder produces.
func playbookIDFrom(entity map[string]any) string {
	if entity == nil {
		return ""
	}
	switch v := entity["playbook_id"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return ""
	}
}
