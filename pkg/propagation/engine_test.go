package propagation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/database"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

// chain is one event with a single task/action/command path and any
// number of executions, all in the states the test needs.
type chain struct {
	event   *ent.Event
	task    *ent.Task
	action  *ent.Action
	command *ent.Command
	execs   []*ent.Execution
}

func buildChain(t *testing.T, client *database.Client, execStatuses ...execution.Status) *chain {
	t.Helper()
	ctx := context.Background()

	ev, err := client.Event.Create().
		SetEventID(uuid.New().String()).
		SetMessage("Suspicious outbound transfer").
		SetStatus(event.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	tk, err := client.Task.Create().
		SetTaskID(uuid.New().String()).
		SetEventID(ev.EventID).
		SetTaskName("Inspect the transfer destination").
		SetStatus(task.StatusProcessing).
		SetRoundID(1).
		Save(ctx)
	require.NoError(t, err)

	act, err := client.Action.Create().
		SetActionID(uuid.New().String()).
		SetTaskID(tk.TaskID).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetActionName("Resolve destination reputation").
		SetStatus(action.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	cmd, err := client.Command.Create().
		SetCommandID(uuid.New().String()).
		SetActionID(act.ActionID).
		SetTaskID(tk.TaskID).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetCommandName("ip_reputation_query").
		SetCommandType(command.CommandTypePlaybook).
		SetStatus(command.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	c := &chain{event: ev, task: tk, action: act, command: cmd}
	for _, st := range execStatuses {
		ex, err := client.Execution.Create().
			SetExecutionID(uuid.New().String()).
			SetCommandID(cmd.CommandID).
			SetActionID(act.ActionID).
			SetTaskID(tk.TaskID).
			SetEventID(ev.EventID).
			SetRoundID(1).
			SetStatus(st).
			Save(ctx)
		require.NoError(t, err)
		c.execs = append(c.execs, ex)
	}
	return c
}

func (c *chain) reload(t *testing.T, client *database.Client) (event.Status, task.Status, action.Status, command.Status) {
	t.Helper()
	ctx := context.Background()

	ev, err := client.Event.Query().Where(event.EventIDEQ(c.event.EventID)).Only(ctx)
	require.NoError(t, err)
	tk, err := client.Task.Query().Where(task.TaskIDEQ(c.task.TaskID)).Only(ctx)
	require.NoError(t, err)
	act, err := client.Action.Query().Where(action.ActionIDEQ(c.action.ActionID)).Only(ctx)
	require.NoError(t, err)
	cmd, err := client.Command.Query().Where(command.CommandIDEQ(c.command.CommandID)).Only(ctx)
	require.NoError(t, err)
	return ev.Status, tk.Status, act.Status, cmd.Status
}

func TestEngine_FromExecution_HappyPath(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	c := buildChain(t, client, execution.StatusSummarized)

	require.NoError(t, engine.FromExecution(ctx, c.execs[0]))

	evStatus, tkStatus, actStatus, cmdStatus := c.reload(t, client)
	assert.Equal(t, command.StatusCompleted, cmdStatus)
	assert.Equal(t, action.StatusCompleted, actStatus)
	assert.Equal(t, task.StatusCompleted, tkStatus)
	assert.Equal(t, event.StatusTasksCompleted, evStatus)
}

func TestEngine_FromExecution_FailureCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	c := buildChain(t, client, execution.StatusSummarized, execution.StatusSummarizedError)

	require.NoError(t, engine.FromExecution(ctx, c.execs[1]))

	evStatus, tkStatus, actStatus, cmdStatus := c.reload(t, client)
	assert.Equal(t, command.StatusFailed, cmdStatus)
	assert.Equal(t, action.StatusFailed, actStatus)
	assert.Equal(t, task.StatusFailed, tkStatus)
	assert.Equal(t, event.StatusFailed, evStatus)
}

func TestEngine_FromExecution_Idempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	c := buildChain(t, client, execution.StatusSummarized)

	require.NoError(t, engine.FromExecution(ctx, c.execs[0]))
	require.NoError(t, engine.FromExecution(ctx, c.execs[0]))

	evStatus, tkStatus, actStatus, cmdStatus := c.reload(t, client)
	assert.Equal(t, command.StatusCompleted, cmdStatus)
	assert.Equal(t, action.StatusCompleted, actStatus)
	assert.Equal(t, task.StatusCompleted, tkStatus)
	assert.Equal(t, event.StatusTasksCompleted, evStatus)
}

func TestEngine_UnsettledSiblingBlocksCommand(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	// Second execution is completed but not yet summarized.
	c := buildChain(t, client, execution.StatusSummarized, execution.StatusCompleted)

	require.NoError(t, engine.FromExecution(ctx, c.execs[0]))

	evStatus, tkStatus, actStatus, cmdStatus := c.reload(t, client)
	assert.Equal(t, command.StatusProcessing, cmdStatus)
	assert.Equal(t, action.StatusProcessing, actStatus)
	assert.Equal(t, task.StatusProcessing, tkStatus)
	assert.Equal(t, event.StatusProcessing, evStatus)
}

func TestEngine_WaitingExecutionBlocksEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	// A manual handoff waiting on a human.
	c := buildChain(t, client, execution.StatusWaiting)

	require.NoError(t, engine.FromExecution(ctx, c.execs[0]))

	evStatus, _, _, cmdStatus := c.reload(t, client)
	assert.Equal(t, command.StatusProcessing, cmdStatus)
	assert.Equal(t, event.StatusProcessing, evStatus)
}

func TestEngine_SettledCommandStillClosesChainAbove(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	// Executor settled the command inline; ancestors are still open.
	c := buildChain(t, client, execution.StatusSummarized)
	_, err := client.Command.Update().
		Where(command.CommandIDEQ(c.command.CommandID)).
		SetStatus(command.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, engine.FromExecution(ctx, c.execs[0]))

	evStatus, tkStatus, actStatus, cmdStatus := c.reload(t, client)
	assert.Equal(t, command.StatusCompleted, cmdStatus)
	assert.Equal(t, action.StatusCompleted, actStatus)
	assert.Equal(t, task.StatusCompleted, tkStatus)
	assert.Equal(t, event.StatusTasksCompleted, evStatus)
}

func TestEngine_EvaluateEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	t.Run("pending sibling task keeps the event open", func(t *testing.T) {
		c := buildChain(t, client, execution.StatusSummarized)
		_, err := client.Task.Create().
			SetTaskID(uuid.New().String()).
			SetEventID(c.event.EventID).
			SetTaskName("Second line of inquiry").
			SetStatus(task.StatusPending).
			SetRoundID(1).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, engine.FromExecution(ctx, c.execs[0]))

		evStatus, tkStatus, _, _ := c.reload(t, client)
		assert.Equal(t, task.StatusCompleted, tkStatus)
		assert.Equal(t, event.StatusProcessing, evStatus)
	})

	t.Run("prior-round rows do not gate the current round", func(t *testing.T) {
		c := buildChain(t, client, execution.StatusSummarized)

		// Round 2 in progress; round 1 left an unfinished task behind.
		_, err := client.Event.Update().
			Where(event.EventIDEQ(c.event.EventID)).
			SetCurrentRound(2).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.Task.Create().
			SetTaskID(uuid.New().String()).
			SetEventID(c.event.EventID).
			SetTaskName("Round two follow-up").
			SetStatus(task.StatusCompleted).
			SetRoundID(2).
			Save(ctx)
		require.NoError(t, err)

		changed, err := engine.EvaluateEvent(ctx, c.event.EventID)
		require.NoError(t, err)
		assert.True(t, changed)

		ev, err := client.Event.Query().Where(event.EventIDEQ(c.event.EventID)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, event.StatusTasksCompleted, ev.Status)
	})

	t.Run("no-op on a non-processing event", func(t *testing.T) {
		c := buildChain(t, client, execution.StatusSummarized)
		_, err := client.Event.Update().
			Where(event.EventIDEQ(c.event.EventID)).
			SetStatus(event.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)

		changed, err := engine.EvaluateEvent(ctx, c.event.EventID)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("no-op on an unknown event", func(t *testing.T) {
		changed, err := engine.EvaluateEvent(ctx, "no-such-event")
		require.NoError(t, err)
		assert.False(t, changed)
	})
}
