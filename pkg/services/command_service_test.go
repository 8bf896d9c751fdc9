package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestCommandService_ListByAction(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCommandService(client.Client)
	ctx := context.Background()

	ev, tk, a, c, _ := seedDecomposition(t, client)
	otherAction := seedAction(t, client, ev.EventID, tk.TaskID, 1, action.StatusPending)
	seedCommand(t, client, ev.EventID, tk.TaskID, otherAction.ActionID, 1, command.StatusPending)

	commands, err := service.ListByAction(ctx, a.ActionID)
	require.NoError(t, err)
	require.Len(t, commands, 1)
	assert.Equal(t, c.CommandID, commands[0].CommandID)
}

func TestCommandService_ListByAction_Empty(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCommandService(client.Client)

	commands, err := service.ListByAction(context.Background(), "no-such-action")
	require.NoError(t, err)
	assert.Empty(t, commands)
}

func TestCommandService_ListByEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCommandService(client.Client)
	ctx := context.Background()

	ev, tk, a, c, _ := seedDecomposition(t, client)
	second := seedCommand(t, client, ev.EventID, tk.TaskID, a.ActionID, 1, command.StatusPending)

	commands, err := service.ListByEvent(ctx, ev.EventID)
	require.NoError(t, err)
	require.Len(t, commands, 2)
	assert.Equal(t, c.CommandID, commands[0].CommandID)
	assert.Equal(t, second.CommandID, commands[1].CommandID)
}
