package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/database"
)

func seedEvent(t *testing.T, client *database.Client, status event.Status) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetEventID(uuid.New().String()).
		SetMessage("Suspicious login from 203.0.113.7").
		SetSource("siem").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func seedTask(t *testing.T, client *database.Client, eventID string, roundID int, status task.Status) *ent.Task {
	t.Helper()
	tk, err := client.Task.Create().
		SetTaskID(uuid.New().String()).
		SetEventID(eventID).
		SetTaskName("Check login history for the account").
		SetTaskType(task.TaskTypeQuery).
		SetTaskAssignee("_manager").
		SetStatus(status).
		SetRoundID(roundID).
		Save(context.Background())
	require.NoError(t, err)
	return tk
}

func seedAction(t *testing.T, client *database.Client, eventID, taskID string, roundID int, status action.Status) *ent.Action {
	t.Helper()
	a, err := client.Action.Create().
		SetActionID(uuid.New().String()).
		SetTaskID(taskID).
		SetEventID(eventID).
		SetRoundID(roundID).
		SetActionName("Query the last 24h of logins").
		SetActionType("query").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func seedCommand(t *testing.T, client *database.Client, eventID, taskID, actionID string, roundID int, status command.Status) *ent.Command {
	t.Helper()
	c, err := client.Command.Create().
		SetCommandID(uuid.New().String()).
		SetActionID(actionID).
		SetTaskID(taskID).
		SetEventID(eventID).
		SetRoundID(roundID).
		SetCommandName("os_login_log_query").
		SetCommandType(command.CommandTypePlaybook).
		SetCommandEntity(map[string]interface{}{"playbook_id": "12321445036046216", "playbook_name": "os_login_log_query"}).
		SetCommandParams(map[string]interface{}{"address": "203.0.113.7"}).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func seedExecution(t *testing.T, client *database.Client, cmd *ent.Command, status execution.Status) *ent.Execution {
	t.Helper()
	e, err := client.Execution.Create().
		SetExecutionID(uuid.New().String()).
		SetCommandID(cmd.CommandID).
		SetActionID(cmd.ActionID).
		SetTaskID(cmd.TaskID).
		SetEventID(cmd.EventID).
		SetRoundID(cmd.RoundID).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return e
}

// seedDecomposition creates a full one-round chain under a processing
// event and returns every row.
func seedDecomposition(t *testing.T, client *database.Client) (*ent.Event, *ent.Task, *ent.Action, *ent.Command, *ent.Execution) {
	t.Helper()
	ev := seedEvent(t, client, event.StatusProcessing)
	tk := seedTask(t, client, ev.EventID, 1, task.StatusProcessing)
	a := seedAction(t, client, ev.EventID, tk.TaskID, 1, action.StatusProcessing)
	c := seedCommand(t, client, ev.EventID, tk.TaskID, a.ActionID, 1, command.StatusProcessing)
	e := seedExecution(t, client, c, execution.StatusPending)
	return ev, tk, a, c, e
}
