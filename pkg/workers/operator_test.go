package workers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
)

func TestOperator_NoWork(t *testing.T) {
	h := newHarness(t)
	err := h.operator(3).Tick(context.Background())
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestOperator_CreatesCommands(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Pull the EDR process tree")
	matched := h.createAction(t, tk, action.StatusPending, "Query EDR for process ancestry")
	skipped := h.createAction(t, tk, action.StatusPending, "Check the domain reputation")

	// The model reports a wrong task_id for the first command; the row
	// must take its chain ids from the matched action, not the model.
	h.caller.script(fmt.Sprintf(`
response_type: COMMAND
event_id: %s
round_id: 1
commands:
  - action_id: %s
    task_id: task-made-up
    command_name: edr_process_tree
    command_type: playbook
    command_assignee: _executor
    command_entity:
      playbook_id: "1907"
      playbook_name: EDR Process Tree Export
    command_params:
      hostname: FIN-042
  - action_id: %s
    command_name: consult_the_oracle
    command_type: divination
`, ev.EventID, matched.ActionID, skipped.ActionID))

	require.NoError(t, h.operator(3).Tick(ctx))

	req := h.caller.lastRequest(t)
	assert.Contains(t, req.UserPrompt, "request_commands_by_actions")
	assert.Contains(t, req.UserPrompt, "Pull the EDR process tree")

	commands, err := h.client.Command.Query().Where(command.EventIDEQ(ev.EventID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, commands, 1)
	cmd := commands[0]
	assert.Equal(t, command.StatusPending, cmd.Status)
	assert.Equal(t, command.CommandTypePlaybook, cmd.CommandType)
	assert.Equal(t, matched.ActionID, cmd.ActionID)
	assert.Equal(t, tk.TaskID, cmd.TaskID)
	assert.Equal(t, "1907", cmd.CommandEntity["playbook_id"])
	assert.Equal(t, "FIN-042", cmd.CommandParams["hostname"])

	assert.Equal(t, action.StatusProcessing, h.reloadAction(t, matched.ActionID).Status)

	bumped := h.reloadAction(t, skipped.ActionID)
	assert.Equal(t, action.StatusPending, bumped.Status)
	assert.Equal(t, 1, bumped.RetryCount)

	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeCommandCreated), 1)
	assert.NotEmpty(t, h.messagesOfType(t, ev.EventID, models.MessageTypeError))
}

func TestOperator_SkipsForeignAssignee(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Pull the EDR process tree")
	act := h.createAction(t, tk, action.StatusPending, "Query EDR for process ancestry")

	h.caller.script(fmt.Sprintf(`
response_type: COMMAND
event_id: %s
round_id: 1
commands:
  - action_id: %s
    command_name: edr_process_tree
    command_type: playbook
    command_assignee: _manager
`, ev.EventID, act.ActionID))

	require.NoError(t, h.operator(3).Tick(ctx))

	count, err := h.client.Command.Query().Where(command.EventIDEQ(ev.EventID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	bumped := h.reloadAction(t, act.ActionID)
	assert.Equal(t, action.StatusPending, bumped.Status)
	assert.Equal(t, 1, bumped.RetryCount)
}

func TestOperator_RetryLimitFailsActionAndCascades(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Pull the EDR process tree")
	act := h.createAction(t, tk, action.StatusPending, "Query EDR for process ancestry")
	_, err := h.client.Action.Update().
		Where(action.ActionIDEQ(act.ActionID)).
		SetRetryCount(2).
		Save(ctx)
	require.NoError(t, err)

	h.caller.script(`
response_type: ROGER
response_text: These actions need no commands.
`)

	require.NoError(t, h.operator(3).Tick(ctx))

	assert.Equal(t, action.StatusFailed, h.reloadAction(t, act.ActionID).Status)
	assert.Equal(t, task.StatusFailed, h.reloadTask(t, tk.TaskID).Status)
	assert.Equal(t, event.StatusFailed, h.reloadEvent(t, ev.EventID).Status)
}
