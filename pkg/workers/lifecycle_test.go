package workers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/summary"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
)

func TestParseSummaryText(t *testing.T) {
	const raw = `{"summary": "Contained the host and blocked the domain.", "event_id": "evt-1"}`

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fenced json", "```json\n" + raw + "\n```", "Contained the host and blocked the domain."},
		{"anonymous fence", "```\n" + raw + "\n```", "Contained the host and blocked the domain."},
		{"bare json", raw, "Contained the host and blocked the domain."},
		{"no event id", `{"summary": "Contained."}`, "Contained."},
		{"wrong event id falls back to raw",
			`{"summary": "Contained.", "event_id": "evt-2"}`,
			`{"summary": "Contained.", "event_id": "evt-2"}`},
		{"plain text passes through",
			"The incident is contained.",
			"The incident is contained."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseSummaryText(tc.in, "evt-1"))
		})
	}
}

func scriptSummary(h *harness, eventID string) {
	h.caller.script(fmt.Sprintf(
		"```json\n{\"summary\": \"Round contained the host and blocked the C2 domain.\", \"event_id\": %q}\n```",
		eventID))
}

func TestLifecycle_NoWork(t *testing.T) {
	h := newHarness(t)
	err := h.lifecycle(3).Tick(context.Background())
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestLifecycle_RoundTurnover(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusTasksCompleted)
	h.createTask(t, ev, task.StatusCompleted, "Round one sweep")
	scriptSummary(h, ev.EventID)

	// One sweep drives the whole turnover: report, then next round.
	require.NoError(t, h.lifecycle(3).Tick(ctx))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusPending, got.Status)
	assert.Equal(t, 2, got.CurrentRound)

	stored, err := h.client.Summary.Query().
		Where(summary.EventIDEQ(ev.EventID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.RoundID)
	assert.Contains(t, stored.EventSummary, "blocked the C2 domain")

	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeEventSummary), 1)
}

func TestLifecycle_MaxRoundCompletes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusTasksCompleted)
	_, err := h.client.Event.Update().
		Where(event.EventIDEQ(ev.EventID)).
		SetCurrentRound(3).
		Save(ctx)
	require.NoError(t, err)
	scriptSummary(h, ev.EventID)

	require.NoError(t, h.lifecycle(3).Tick(ctx))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusCompleted, got.Status)
	assert.Equal(t, 3, got.CurrentRound)

	completed := h.messagesOfType(t, ev.EventID, models.MessageTypeEventCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "max_round_reached", completed[0].MessageContent["reason"])
}

func TestLifecycle_ManualModeParksRound(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.settings.SetDrivingMode(ctx, models.DrivingModeManual))

	ev := h.createEvent(t, event.StatusTasksCompleted)
	scriptSummary(h, ev.EventID)

	lc := h.lifecycle(3)
	require.NoError(t, lc.Tick(ctx))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusRoundFinished, got.Status)
	assert.Equal(t, 1, got.CurrentRound)

	// Nothing moves until an analyst advances the round.
	assert.ErrorIs(t, lc.Tick(ctx), ErrNoWork)
	assert.Equal(t, event.StatusRoundFinished, h.reloadEvent(t, ev.EventID).Status)
}

func TestLifecycle_ResolvedEventCompletes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusResolved)
	_, err := h.client.Event.Update().
		Where(event.EventIDEQ(ev.EventID)).
		SetResolvedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	scriptSummary(h, ev.EventID)

	require.NoError(t, h.lifecycle(3).Tick(ctx))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusCompleted, got.Status)

	req := h.caller.lastRequest(t)
	assert.Contains(t, req.UserPrompt, "resolved this incident manually")

	completed := h.messagesOfType(t, ev.EventID, models.MessageTypeEventCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "resolved", completed[0].MessageContent["reason"])
}

func TestLifecycle_UnstructuredReportKeptVerbatim(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusTasksCompleted)
	h.caller.script("The beacon traced back to a red team exercise; no action needed.")

	require.NoError(t, h.lifecycle(3).Tick(ctx))

	stored, err := h.client.Summary.Query().
		Where(summary.EventIDEQ(ev.EventID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The beacon traced back to a red team exercise; no action needed.", stored.EventSummary)
}

func TestLifecycle_EmptyReportFailsEvent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusTasksCompleted)
	h.caller.script("")

	require.NoError(t, h.lifecycle(3).Tick(ctx))

	assert.Equal(t, event.StatusFailed, h.reloadEvent(t, ev.EventID).Status)
	assert.NotEmpty(t, h.messagesOfType(t, ev.EventID, models.MessageTypeError))
}

func TestLifecycle_SweepSettlesStalledEvent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// All children settled but the event never got its trigger.
	ev := h.createEvent(t, event.StatusProcessing)
	h.createTask(t, ev, task.StatusCompleted, "Round one sweep")
	scriptSummary(h, ev.EventID)

	require.NoError(t, h.lifecycle(3).Tick(ctx))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusPending, got.Status)
	assert.Equal(t, 2, got.CurrentRound)
}

func TestLifecycle_ModelOutageKeepsEventQueued(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusTasksCompleted)
	h.caller.err = errors.New("model unavailable")

	lc := h.lifecycle(3)
	require.NoError(t, lc.Tick(ctx))
	assert.Equal(t, event.StatusToBeSummarized, h.reloadEvent(t, ev.EventID).Status)

	// The event waits for the model to come back rather than failing.
	assert.ErrorIs(t, lc.Tick(ctx), ErrNoWork)
	assert.Equal(t, event.StatusToBeSummarized, h.reloadEvent(t, ev.EventID).Status)
}
