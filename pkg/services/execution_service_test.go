package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/execution"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestExecutionService_ListByEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	ev, _, _, c, _ := seedDecomposition(t, client)
	completed := seedExecution(t, client, c, execution.StatusCompleted)

	t.Run("enriches executions with command identity", func(t *testing.T) {
		details, err := service.ListByEvent(ctx, ev.EventID, "")
		require.NoError(t, err)
		require.Len(t, details, 2)

		for _, d := range details {
			assert.Equal(t, "os_login_log_query", d.CommandName)
			assert.Equal(t, "playbook", d.CommandType)
			assert.Equal(t, "203.0.113.7", d.CommandParams["address"])
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		details, err := service.ListByEvent(ctx, ev.EventID, "completed")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, completed.ExecutionID, details[0].ExecutionID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := service.ListByEvent(ctx, ev.EventID, "exploded")
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "status", validErr.Field)
	})

	t.Run("returns empty slice for unknown event", func(t *testing.T) {
		details, err := service.ListByEvent(ctx, "no-such-event", "")
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestExecutionService_Complete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("completes a waiting execution and settles its command", func(t *testing.T) {
		ev, _, _, c, _ := seedDecomposition(t, client)
		waiting := seedExecution(t, client, c, execution.StatusWaiting)

		done, cmd, err := service.Complete(ctx, ev.EventID, waiting.ExecutionID, "Owner confirmed the login was expected.", "")
		require.NoError(t, err)
		assert.Equal(t, execution.StatusCompleted, done.Status)
		assert.Equal(t, "Owner confirmed the login was expected.", done.ExecutionResult)

		require.NotNil(t, cmd)
		assert.Equal(t, command.StatusCompleted, cmd.Status)
		assert.Equal(t, "Owner confirmed the login was expected.", cmd.CommandResult["result"])
	})

	t.Run("records a failed outcome", func(t *testing.T) {
		ev, _, _, c, _ := seedDecomposition(t, client)
		waiting := seedExecution(t, client, c, execution.StatusWaiting)

		done, cmd, err := service.Complete(ctx, ev.EventID, waiting.ExecutionID, "Owner unreachable.", "failed")
		require.NoError(t, err)
		assert.Equal(t, execution.StatusFailed, done.Status)

		require.NotNil(t, cmd)
		assert.Equal(t, command.StatusFailed, cmd.Status)
	})

	t.Run("rejects an execution that is not waiting", func(t *testing.T) {
		ev, _, _, _, pending := seedDecomposition(t, client)

		_, _, err := service.Complete(ctx, ev.EventID, pending.ExecutionID, "done", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotWaiting)
	})

	t.Run("requires a result", func(t *testing.T) {
		ev, _, _, c, _ := seedDecomposition(t, client)
		waiting := seedExecution(t, client, c, execution.StatusWaiting)

		_, _, err := service.Complete(ctx, ev.EventID, waiting.ExecutionID, "", "")
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "result", validErr.Field)
	})

	t.Run("rejects other target statuses", func(t *testing.T) {
		ev, _, _, c, _ := seedDecomposition(t, client)
		waiting := seedExecution(t, client, c, execution.StatusWaiting)

		_, _, err := service.Complete(ctx, ev.EventID, waiting.ExecutionID, "done", "summarized")
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "status", validErr.Field)
	})

	t.Run("scopes lookup to the event", func(t *testing.T) {
		_, _, _, c, _ := seedDecomposition(t, client)
		waiting := seedExecution(t, client, c, execution.StatusWaiting)

		_, _, err := service.Complete(ctx, "other-event", waiting.ExecutionID, "done", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
