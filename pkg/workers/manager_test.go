package workers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
)

func TestManager_NoWork(t *testing.T) {
	h := newHarness(t)
	err := h.manager(3).Tick(context.Background())
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestManager_CreatesActions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	matched := h.createTask(t, ev, task.StatusPending, "Pull the EDR process tree")
	skipped := h.createTask(t, ev, task.StatusPending, "Check proxy logs for the domain")

	h.caller.script(fmt.Sprintf(`
response_type: ACTION
event_id: %s
round_id: 1
actions:
  - task_id: %s
    action_name: Query EDR for process ancestry on FIN-042
    action_type: query
    action_assignee: _operator
  - task_id: task-does-not-exist
    action_name: Orphaned action
`, ev.EventID, matched.TaskID))

	require.NoError(t, h.manager(3).Tick(ctx))

	req := h.caller.lastRequest(t)
	assert.Contains(t, req.UserPrompt, "request_actions_by_tasks")
	assert.Contains(t, req.UserPrompt, "Pull the EDR process tree")
	assert.Contains(t, req.UserPrompt, "Check proxy logs for the domain")

	actions, err := h.client.Action.Query().Where(action.EventIDEQ(ev.EventID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, matched.TaskID, actions[0].TaskID)
	assert.Equal(t, action.StatusPending, actions[0].Status)
	assert.Equal(t, models.RoleOperator, actions[0].ActionAssignee)

	assert.Equal(t, task.StatusProcessing, h.reloadTask(t, matched.TaskID).Status)

	bumped := h.reloadTask(t, skipped.TaskID)
	assert.Equal(t, task.StatusPending, bumped.Status)
	assert.Equal(t, 1, bumped.RetryCount)

	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeActionCreated), 1)
	assert.NotEmpty(t, h.messagesOfType(t, ev.EventID, models.MessageTypeError))
}

func TestManager_GroupIsOneEventRound(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusPending, "Pull the EDR process tree")

	other := h.createEvent(t, event.StatusProcessing)
	untouched := h.createTask(t, other, task.StatusPending, "Review IAM audit trail")

	h.caller.script(fmt.Sprintf(`
response_type: ACTION
event_id: %s
round_id: 1
actions:
  - task_id: %s
    action_name: Query EDR for process ancestry
`, ev.EventID, tk.TaskID))

	require.NoError(t, h.manager(3).Tick(ctx))

	assert.Equal(t, task.StatusProcessing, h.reloadTask(t, tk.TaskID).Status)

	got := h.reloadTask(t, untouched.TaskID)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Equal(t, 0, got.RetryCount)
}

func TestManager_RetryLimitFailsTask(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusPending, "Pull the EDR process tree")
	_, err := h.client.Task.Update().
		Where(task.TaskIDEQ(tk.TaskID)).
		SetRetryCount(2).
		Save(ctx)
	require.NoError(t, err)

	h.caller.script(`
response_type: ROGER
response_text: No actions required for these tasks.
`)

	require.NoError(t, h.manager(3).Tick(ctx))

	got := h.reloadTask(t, tk.TaskID)
	assert.Equal(t, task.StatusFailed, got.Status)
	assert.Equal(t, 3, got.RetryCount)

	// The failed task was the round's only one, so the event fails too.
	assert.Equal(t, event.StatusFailed, h.reloadEvent(t, ev.EventID).Status)
	assert.NotEmpty(t, h.messagesOfType(t, ev.EventID, models.MessageTypeError))
}

func TestManager_UnparseableResponseBumpsGroup(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusPending, "Pull the EDR process tree")

	h.caller.script("Let me think about this some more.")

	require.NoError(t, h.manager(3).Tick(ctx))

	got := h.reloadTask(t, tk.TaskID)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Equal(t, 1, got.RetryCount)
}

func TestManager_TransportErrorLeavesGroupUntouched(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusPending, "Pull the EDR process tree")
	h.caller.err = errors.New("connection reset")

	err := h.manager(3).Tick(ctx)
	require.Error(t, err)

	got := h.reloadTask(t, tk.TaskID)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Equal(t, 0, got.RetryCount)
}
