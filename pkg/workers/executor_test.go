package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
)

func TestExecutor_NoWork(t *testing.T) {
	h := newHarness(t)
	err := h.executor().Tick(context.Background())
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestExecutor_PlaybookSuccess(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Check the callback domain")
	act := h.createAction(t, tk, action.StatusProcessing, "Resolve domain reputation")
	cmd := h.createCommand(t, act, command.CommandTypePlaybook, command.StatusPending,
		map[string]any{"playbook_id": "2042", "playbook_name": "Domain Reputation"})
	_, err := h.client.Command.Update().
		Where(command.CommandIDEQ(cmd.CommandID)).
		SetCommandParams(map[string]any{"domain": "evil.test"}).
		Save(ctx)
	require.NoError(t, err)

	h.soar.result = map[string]any{"verdict": "malicious", "first_seen": "2026-08-20"}

	require.NoError(t, h.executor().Tick(ctx))

	require.Equal(t, []string{"2042"}, h.soar.ids)
	require.Len(t, h.soar.params, 1)
	assert.Equal(t, "evil.test", h.soar.params[0]["domain"])

	execs, err := h.client.Execution.Query().Where(execution.CommandIDEQ(cmd.CommandID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, execution.StatusCompleted, execs[0].Status)
	assert.Contains(t, execs[0].ExecutionResult, "malicious")

	got := h.reloadCommand(t, cmd.CommandID)
	assert.Equal(t, command.StatusCompleted, got.Status)
	assert.Equal(t, "malicious", got.CommandResult["verdict"])

	// The eager command settle closes action and task; the event waits
	// for the expert digest of the completed execution.
	assert.Equal(t, action.StatusCompleted, h.reloadAction(t, act.ActionID).Status)
	assert.Equal(t, task.StatusCompleted, h.reloadTask(t, tk.TaskID).Status)
	assert.Equal(t, event.StatusProcessing, h.reloadEvent(t, ev.EventID).Status)

	results := h.messagesOfType(t, ev.EventID, models.MessageTypeCommandResult)
	require.Len(t, results, 1)
	assert.Equal(t, string(command.StatusCompleted), results[0].MessageContent["status"])
}

func TestExecutor_PlaybookFailureCascades(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Check the callback domain")
	act := h.createAction(t, tk, action.StatusProcessing, "Resolve domain reputation")
	cmd := h.createCommand(t, act, command.CommandTypePlaybook, command.StatusPending,
		map[string]any{"playbook_id": "2042"})

	h.soar.err = errors.New("playbook activity did not complete in time")

	require.NoError(t, h.executor().Tick(ctx))

	execs, err := h.client.Execution.Query().Where(execution.CommandIDEQ(cmd.CommandID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, execution.StatusFailed, execs[0].Status)
	assert.Contains(t, execs[0].ExecutionResult, "did not complete")

	assert.Equal(t, command.StatusFailed, h.reloadCommand(t, cmd.CommandID).Status)
	assert.Equal(t, action.StatusFailed, h.reloadAction(t, act.ActionID).Status)
	assert.Equal(t, task.StatusFailed, h.reloadTask(t, tk.TaskID).Status)
	assert.Equal(t, event.StatusFailed, h.reloadEvent(t, ev.EventID).Status)
}

func TestExecutor_ManualCommandWaits(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Notify the workstation owner")
	act := h.createAction(t, tk, action.StatusProcessing, "Call the user")
	cmd := h.createCommand(t, act, command.CommandTypeManual, command.StatusPending, nil)

	require.NoError(t, h.executor().Tick(ctx))

	execs, err := h.client.Execution.Query().Where(execution.CommandIDEQ(cmd.CommandID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, execution.StatusWaiting, execs[0].Status)

	// The command keeps processing until a human records the outcome.
	assert.Equal(t, command.StatusProcessing, h.reloadCommand(t, cmd.CommandID).Status)
	assert.Equal(t, event.StatusProcessing, h.reloadEvent(t, ev.EventID).Status)

	results := h.messagesOfType(t, ev.EventID, models.MessageTypeCommandResult)
	require.Len(t, results, 1)
	assert.Equal(t, string(execution.StatusWaiting), results[0].MessageContent["status"])
}

func TestExecutor_MissingPlaybookID(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Check the callback domain")
	act := h.createAction(t, tk, action.StatusProcessing, "Resolve domain reputation")
	cmd := h.createCommand(t, act, command.CommandTypePlaybook, command.StatusPending, nil)

	require.NoError(t, h.executor().Tick(ctx))

	assert.Empty(t, h.soar.ids)

	execs, err := h.client.Execution.Query().Where(execution.CommandIDEQ(cmd.CommandID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, execution.StatusFailed, execs[0].Status)
	assert.Contains(t, execs[0].ExecutionResult, "playbook_id")

	assert.Equal(t, command.StatusFailed, h.reloadCommand(t, cmd.CommandID).Status)
}
