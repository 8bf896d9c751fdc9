package workers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/models"
)

func TestCaptain_NoWork(t *testing.T) {
	h := newHarness(t)
	err := h.captain().Tick(context.Background())
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestCaptain_IssuesTasks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusPending)

	h.caller.script(fmt.Sprintf(`
response_type: TASK
event_id: %s
round_id: 1
event_name: Cobalt Strike beacon on finance workstation
tasks:
  - task_name: Pull the EDR process tree for the flagged host
    task_type: query
    task_assignee: _analyst
  - task_name: Block the callback domain at the proxy
    task_type: write
    task_assignee: _responder
`, ev.EventID))

	require.NoError(t, h.captain().Tick(ctx))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusProcessing, got.Status)
	assert.Equal(t, "Cobalt Strike beacon on finance workstation", got.EventName)

	tasks, err := h.client.Task.Query().Where(task.EventIDEQ(ev.EventID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, tk := range tasks {
		assert.Equal(t, task.StatusPending, tk.Status)
		assert.Equal(t, 1, tk.RoundID)
	}

	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeLLMRequest), 1)
	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeLLMResponse), 1)
	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeTaskCreated), 1)
}

func TestCaptain_SkipsUnknownAssignee(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusPending)

	h.caller.script(fmt.Sprintf(`
response_type: TASK
event_id: %s
round_id: 1
tasks:
  - task_name: Pull the EDR process tree
    task_type: query
    task_assignee: _analyst
  - task_name: Hand this to the wizards
    task_type: notify
    task_assignee: _wizard
`, ev.EventID))

	require.NoError(t, h.captain().Tick(ctx))

	tasks, err := h.client.Task.Query().Where(task.EventIDEQ(ev.EventID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Pull the EDR process tree", tasks[0].TaskName)

	errs := h.messagesOfType(t, ev.EventID, models.MessageTypeError)
	require.Len(t, errs, 1)
	assert.Contains(t, fmt.Sprint(errs[0].MessageContent), "_wizard")
}

func TestCaptain_MissionComplete(t *testing.T) {
	h := newHarness(t)
	ev := h.createEvent(t, event.StatusPending)

	h.caller.script(fmt.Sprintf(`
response_type: MISSION_COMPLETE
event_id: %s
round_id: 1
response_text: The beacon was a false positive from a vulnerability scanner.
`, ev.EventID))

	require.NoError(t, h.captain().Tick(context.Background()))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusCompleted, got.Status)
	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeEventCompleted), 1)
}

func TestCaptain_RogerParksEvent(t *testing.T) {
	h := newHarness(t)
	ev := h.createEvent(t, event.StatusPending)

	h.caller.script(`
response_type: ROGER
response_text: Awaiting further data before assigning tasks.
`)

	require.NoError(t, h.captain().Tick(context.Background()))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusErrorFromLlm, got.Status)
	assert.NotEmpty(t, h.messagesOfType(t, ev.EventID, models.MessageTypeError))
}

func TestCaptain_ModelFailureParksEvent(t *testing.T) {
	h := newHarness(t)
	ev := h.createEvent(t, event.StatusPending)
	h.caller.err = errors.New("gateway timeout")

	require.NoError(t, h.captain().Tick(context.Background()))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusErrorFromLlm, got.Status)
}

func TestCaptain_UnparseableResponse(t *testing.T) {
	h := newHarness(t)
	ev := h.createEvent(t, event.StatusPending)

	h.caller.script("I would suggest escalating this to the SOC lead.")

	require.NoError(t, h.captain().Tick(context.Background()))

	got := h.reloadEvent(t, ev.EventID)
	assert.Equal(t, event.StatusErrorProcessing, got.Status)
}

func TestCaptain_ClaimsOldestEventFirst(t *testing.T) {
	h := newHarness(t)
	first := h.createEvent(t, event.StatusPending)
	h.createEvent(t, event.StatusPending)

	h.caller.script(fmt.Sprintf(`
response_type: MISSION_COMPLETE
event_id: %s
round_id: 1
`, first.EventID))

	require.NoError(t, h.captain().Tick(context.Background()))

	assert.Equal(t, event.StatusCompleted, h.reloadEvent(t, first.EventID).Status)
}

func TestCaptain_SecondRoundCarriesProgress(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusPending)
	_, err := h.client.Event.Update().
		Where(event.EventIDEQ(ev.EventID)).
		SetCurrentRound(2).
		Save(ctx)
	require.NoError(t, err)
	ev = h.reloadEvent(t, ev.EventID)

	h.createTask(t, ev, task.StatusCompleted, "Round one EDR sweep")
	_, err = h.client.Summary.Create().
		SetSummaryID("sum-1").
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetEventSummary("Round one confirmed C2 traffic from host FIN-042.").
		Save(ctx)
	require.NoError(t, err)

	h.caller.script(fmt.Sprintf(`
response_type: MISSION_COMPLETE
event_id: %s
round_id: 2
`, ev.EventID))

	require.NoError(t, h.captain().Tick(ctx))

	req := h.caller.lastRequest(t)
	assert.Contains(t, req.UserPrompt, "<event_progress>")
	assert.Contains(t, req.UserPrompt, "FIN-042")
	assert.Contains(t, req.UserPrompt, "Round one EDR sweep")
}
