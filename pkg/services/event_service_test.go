package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestEventService_CreateEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	t.Run("creates event with all fields", func(t *testing.T) {
		req := models.CreateEventRequest{
			EventName: "Brute force against VPN",
			Message:   "200 failed logins for user jdoe in 5 minutes",
			Context:   `{"asset": "vpn-gw-1"}`,
			Source:    "siem",
			Severity:  "high",
		}

		ev, err := service.CreateEvent(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, ev)

		assert.NotEmpty(t, ev.EventID)
		assert.Equal(t, req.EventName, ev.EventName)
		assert.Equal(t, req.Message, ev.Message)
		assert.Equal(t, req.Context, ev.Context)
		assert.Equal(t, "siem", ev.Source)
		assert.Equal(t, "high", ev.Severity)
		assert.Equal(t, event.StatusPending, ev.Status)
		assert.Equal(t, 1, ev.CurrentRound)
		assert.Nil(t, ev.ResolvedAt)
	})

	t.Run("defaults source and severity", func(t *testing.T) {
		ev, err := service.CreateEvent(ctx, models.CreateEventRequest{
			Message: "Phishing report forwarded by a user",
		})
		require.NoError(t, err)

		assert.Equal(t, "manual", ev.Source)
		assert.Equal(t, "medium", ev.Severity)
	})

	t.Run("requires message", func(t *testing.T) {
		ev, err := service.CreateEvent(ctx, models.CreateEventRequest{Source: "siem"})
		require.Error(t, err)
		assert.Nil(t, ev)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "message", validErr.Field)
	})
}

func TestEventService_GetEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	seeded := seedEvent(t, client, event.StatusPending)

	t.Run("returns the event", func(t *testing.T) {
		ev, err := service.GetEvent(ctx, seeded.EventID)
		require.NoError(t, err)
		assert.Equal(t, seeded.EventID, ev.EventID)
	})

	t.Run("wraps not found", func(t *testing.T) {
		ev, err := service.GetEvent(ctx, "no-such-event")
		require.Error(t, err)
		assert.Nil(t, ev)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventService_ListEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedEvent(t, client, event.StatusPending)
	}
	seedEvent(t, client, event.StatusCompleted)

	t.Run("returns all events with defaults", func(t *testing.T) {
		resp, err := service.ListEvents(ctx, models.EventFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Events, 4)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PerPage)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListEvents(ctx, models.EventFilters{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, event.StatusCompleted, resp.Events[0].Status)
	})

	t.Run("paginates", func(t *testing.T) {
		first, err := service.ListEvents(ctx, models.EventFilters{Page: 1, PerPage: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, first.TotalCount)
		assert.Len(t, first.Events, 3)

		second, err := service.ListEvents(ctx, models.EventFilters{Page: 2, PerPage: 3})
		require.NoError(t, err)
		assert.Len(t, second.Events, 1)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		resp, err := service.ListEvents(ctx, models.EventFilters{Status: "bogus"})
		require.Error(t, err)
		assert.Nil(t, resp)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "status", validErr.Field)
	})
}

func TestEventService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	t.Run("moves along a legal edge", func(t *testing.T) {
		ev := seedEvent(t, client, event.StatusPending)

		updated, err := service.UpdateStatus(ctx, ev.EventID, event.StatusProcessing)
		require.NoError(t, err)
		assert.Equal(t, event.StatusProcessing, updated.Status)
	})

	t.Run("rejects an illegal edge", func(t *testing.T) {
		ev := seedEvent(t, client, event.StatusPending)

		updated, err := service.UpdateStatus(ctx, ev.EventID, event.StatusSummarized)
		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// Status is unchanged after the rejection.
		current, err := service.GetEvent(ctx, ev.EventID)
		require.NoError(t, err)
		assert.Equal(t, event.StatusPending, current.Status)
	})

	t.Run("rejects leaving a terminal status", func(t *testing.T) {
		ev := seedEvent(t, client, event.StatusCompleted)

		_, err := service.UpdateStatus(ctx, ev.EventID, event.StatusPending)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestEventService_Resolve(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	t.Run("resolves an active event", func(t *testing.T) {
		ev := seedEvent(t, client, event.StatusProcessing)

		resolved, err := service.Resolve(ctx, ev.EventID)
		require.NoError(t, err)
		assert.Equal(t, event.StatusResolved, resolved.Status)
		require.NotNil(t, resolved.ResolvedAt)
	})

	t.Run("is idempotent for an already resolved event", func(t *testing.T) {
		ev := seedEvent(t, client, event.StatusResolved)

		resolved, err := service.Resolve(ctx, ev.EventID)
		require.NoError(t, err)
		assert.Equal(t, event.StatusResolved, resolved.Status)
	})

	t.Run("rejects resolving a terminal event", func(t *testing.T) {
		ev := seedEvent(t, client, event.StatusFailed)

		_, err := service.Resolve(ctx, ev.EventID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestEventService_Stats(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	ev, _, _, c, _ := seedDecomposition(t, client)
	seedExecution(t, client, c, execution.StatusCompleted)
	// Second task still pending
	seedTask(t, client, ev.EventID, 1, task.StatusPending)

	t.Run("counts rows per level and status", func(t *testing.T) {
		stats, err := service.Stats(ctx, ev.EventID)
		require.NoError(t, err)

		assert.Equal(t, ev.EventID, stats.EventID)
		assert.Equal(t, 2, stats.Tasks.Total)
		assert.Equal(t, 1, stats.Tasks.ByStatus["pending"])
		assert.Equal(t, 1, stats.Tasks.ByStatus["processing"])
		assert.Equal(t, 1, stats.Actions.Total)
		assert.Equal(t, 1, stats.Commands.Total)
		assert.Equal(t, 2, stats.Executions.Total)
		assert.Equal(t, 1, stats.Executions.ByStatus["pending"])
		assert.Equal(t, 1, stats.Executions.ByStatus["completed"])
	})

	t.Run("errors on unknown event", func(t *testing.T) {
		_, err := service.Stats(ctx, "no-such-event")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventService_Hierarchy(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	summaries := NewSummaryService(client.Client)
	ctx := context.Background()

	ev, tk, a, c, e := seedDecomposition(t, client)
	_, err := summaries.Create(ctx, ev.EventID, 1, "Round one looked at login history.", "Block the source address.")
	require.NoError(t, err)

	hierarchy, err := service.Hierarchy(ctx, ev.EventID)
	require.NoError(t, err)

	assert.Equal(t, ev.EventID, hierarchy.Event.EventID)
	require.Len(t, hierarchy.Rounds, 1)

	round := hierarchy.Rounds[0]
	assert.Equal(t, 1, round.RoundID)
	require.NotNil(t, round.Summary)
	assert.Equal(t, "Round one looked at login history.", round.Summary.EventSummary)

	require.Len(t, round.Tasks, 1)
	assert.Equal(t, tk.TaskID, round.Tasks[0].Task.TaskID)
	require.Len(t, round.Tasks[0].Actions, 1)
	assert.Equal(t, a.ActionID, round.Tasks[0].Actions[0].Action.ActionID)
	require.Len(t, round.Tasks[0].Actions[0].Commands, 1)
	assert.Equal(t, c.CommandID, round.Tasks[0].Actions[0].Commands[0].Command.CommandID)
	require.Len(t, round.Tasks[0].Actions[0].Commands[0].Executions, 1)
	assert.Equal(t, e.ExecutionID, round.Tasks[0].Actions[0].Commands[0].Executions[0].ExecutionID)
}
