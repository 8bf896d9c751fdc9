// Package propagation re-evaluates parent statuses after a child row
// reaches a final state. The chain runs execution → command → action →
// task → event as separate short transactions, each locking exactly one
// row, so concurrent workers and the lifecycle manager can fire it at
// any time without deadlock. Every step is idempotent: a settled parent
// is left alone and the walk continues upward anyway.
package propagation

import (
	"context"
	"fmt"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// Engine walks the ancestor chain of a finished execution.
type Engine struct {
	client *ent.Client
}

// NewEngine creates a new propagation engine.
func NewEngine(client *ent.Client) *Engine {
	return &Engine{client: client}
}

// FromExecution re-evaluates every ancestor of the given execution.
// Levels whose children are not all settled yet are left untouched; the
// next trigger (another execution finishing, or the lifecycle manager's
// sweep) picks them up.
func (e *Engine) FromExecution(ctx context.Context, exec *ent.Execution) error {
	if _, err := e.EvaluateCommand(ctx, exec.CommandID); err != nil {
		return err
	}
	return e.FromCommand(ctx, exec.ActionID, exec.TaskID, exec.EventID)
}

// FromCommand re-evaluates the chain above a command whose own status
// the caller just settled.
func (e *Engine) FromCommand(ctx context.Context, actionID, taskID, eventID string) error {
	if _, err := e.EvaluateAction(ctx, actionID); err != nil {
		return err
	}
	if _, err := e.EvaluateTask(ctx, taskID); err != nil {
		return err
	}
	if _, err := e.EvaluateEvent(ctx, eventID); err != nil {
		return err
	}
	return nil
}

// executionSettled reports whether an execution needs no further work.
// A completed execution is not settled: the summarizer still owns it.
func executionSettled(s execution.Status) bool {
	return s == execution.StatusSummarized ||
		s == execution.StatusSummarizedError ||
		s == execution.StatusFailed
}

// EvaluateCommand completes or fails a processing command once all its
// executions have settled. Reports whether the command changed.
func (e *Engine) EvaluateCommand(ctx context.Context, commandID string) (bool, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cmd, err := tx.Command.Query().
		Where(command.CommandIDEQ(commandID)).
		ForUpdate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock command %s: %w", commandID, err)
	}
	if cmd.Status != command.StatusProcessing {
		return false, nil
	}

	executions, err := tx.Execution.Query().
		Where(execution.CommandIDEQ(commandID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load executions of command %s: %w", commandID, err)
	}
	if len(executions) == 0 {
		// Executor claimed the command but has not recorded an
		// execution yet.
		return false, nil
	}

	verdict := command.StatusCompleted
	for _, ex := range executions {
		if !executionSettled(ex.Status) {
			return false, nil
		}
		if ex.Status != execution.StatusSummarized {
			verdict = command.StatusFailed
		}
	}

	if _, err := cmd.Update().SetStatus(verdict).Save(ctx); err != nil {
		return false, fmt.Errorf("failed to settle command %s: %w", commandID, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit command %s: %w", commandID, err)
	}
	return true, nil
}

// EvaluateAction completes or fails a processing action once all its
// commands have settled.
func (e *Engine) EvaluateAction(ctx context.Context, actionID string) (bool, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	act, err := tx.Action.Query().
		Where(action.ActionIDEQ(actionID)).
		ForUpdate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock action %s: %w", actionID, err)
	}
	if act.Status != action.StatusProcessing {
		return false, nil
	}

	commands, err := tx.Command.Query().
		Where(command.ActionIDEQ(actionID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load commands of action %s: %w", actionID, err)
	}
	if len(commands) == 0 {
		return false, nil
	}

	verdict := action.StatusCompleted
	for _, cmd := range commands {
		switch cmd.Status {
		case command.StatusCompleted:
		case command.StatusFailed:
			verdict = action.StatusFailed
		default:
			return false, nil
		}
	}

	if _, err := act.Update().SetStatus(verdict).Save(ctx); err != nil {
		return false, fmt.Errorf("failed to settle action %s: %w", actionID, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit action %s: %w", actionID, err)
	}
	return true, nil
}

// EvaluateTask completes or fails a processing task once all its
// actions have settled.
func (e *Engine) EvaluateTask(ctx context.Context, taskID string) (bool, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tk, err := tx.Task.Query().
		Where(task.TaskIDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock task %s: %w", taskID, err)
	}
	if tk.Status != task.StatusProcessing {
		return false, nil
	}

	actions, err := tx.Action.Query().
		Where(action.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load actions of task %s: %w", taskID, err)
	}
	if len(actions) == 0 {
		return false, nil
	}

	verdict := task.StatusCompleted
	for _, act := range actions {
		switch act.Status {
		case action.StatusCompleted:
		case action.StatusFailed:
			verdict = task.StatusFailed
		default:
			return false, nil
		}
	}

	if _, err := tk.Update().SetStatus(verdict).Save(ctx); err != nil {
		return false, fmt.Errorf("failed to settle task %s: %w", taskID, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit task %s: %w", taskID, err)
	}
	return true, nil
}

// EvaluateEvent closes out a processing event's round once every
// current-round task is terminal and every current-round execution has
// settled. The event moves to tasks_completed, or failed when any task
// failed. The lifecycle manager calls this each sweep as the recovery
// path for missed triggers.
func (e *Engine) EvaluateEvent(ctx context.Context, eventID string) (bool, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ev, err := tx.Event.Query().
		Where(event.EventIDEQ(eventID)).
		ForUpdate().
		Only(ctx)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}
	if ev.Status != event.StatusProcessing {
		return false, nil
	}

	tasks, err := tx.Task.Query().
		Where(task.EventIDEQ(eventID), task.RoundIDEQ(ev.CurrentRound)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load tasks of event %s: %w", eventID, err)
	}
	if len(tasks) == 0 {
		// Captain marked the event processing but its tasks are not
		// visible yet.
		return false, nil
	}

	verdict := event.StatusTasksCompleted
	for _, tk := range tasks {
		switch tk.Status {
		case task.StatusCompleted:
		case task.StatusFailed:
			verdict = event.StatusFailed
		default:
			return false, nil
		}
	}

	executions, err := tx.Execution.Query().
		Where(execution.EventIDEQ(eventID), execution.RoundIDEQ(ev.CurrentRound)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load executions of event %s: %w", eventID, err)
	}
	for _, ex := range executions {
		if !executionSettled(ex.Status) {
			return false, nil
		}
	}

	if !models.CanTransition(ev.Status, verdict) {
		return false, nil
	}
	if _, err := ev.Update().SetStatus(verdict).Save(ctx); err != nil {
		return false, fmt.Errorf("failed to settle event %s: %w", eventID, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit event %s: %w", eventID, err)
	}
	return true, nil
}
