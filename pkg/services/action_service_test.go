package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/task"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestActionService_ListByTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewActionService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusProcessing)
	tk := seedTask(t, client, ev.EventID, 1, task.StatusProcessing)
	other := seedTask(t, client, ev.EventID, 1, task.StatusProcessing)

	mine := seedAction(t, client, ev.EventID, tk.TaskID, 1, action.StatusPending)
	seedAction(t, client, ev.EventID, other.TaskID, 1, action.StatusPending)

	actions, err := service.ListByTask(ctx, tk.TaskID)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, mine.ActionID, actions[0].ActionID)
}

func TestActionService_ListByTask_Empty(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewActionService(client.Client)

	actions, err := service.ListByTask(context.Background(), "no-such-task")
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestActionService_ListByEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewActionService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusProcessing)
	tk := seedTask(t, client, ev.EventID, 1, task.StatusProcessing)
	seedAction(t, client, ev.EventID, tk.TaskID, 1, action.StatusPending)
	seedAction(t, client, ev.EventID, tk.TaskID, 1, action.StatusPending)

	foreign := seedEvent(t, client, event.StatusProcessing)
	foreignTask := seedTask(t, client, foreign.EventID, 1, task.StatusProcessing)
	seedAction(t, client, foreign.EventID, foreignTask.TaskID, 1, action.StatusPending)

	actions, err := service.ListByEvent(ctx, ev.EventID)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	for _, a := range actions {
		assert.Equal(t, ev.EventID, a.EventID)
	}
}
