package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/llm"
	"github.com/deepsoc/deepsoc/pkg/models"
	"github.com/deepsoc/deepsoc/pkg/prompts"
)

// gatedCaller blocks inside Call until released, keeping its worker's
// claim transaction open so a second worker can be raced against it.
type gatedCaller struct {
	entered chan struct{}
	release chan struct{}
	reply   string
}

func (c *gatedCaller) Call(context.Context, llm.Request) (string, error) {
	c.entered <- struct{}{}
	<-c.release
	return c.reply, nil
}

func TestSummarizer_NoWork(t *testing.T) {
	h := newHarness(t)
	err := h.summarizer().Tick(context.Background())
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestSummarizer_DigestsExecution(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Check the callback domain")
	act := h.createAction(t, tk, action.StatusProcessing, "Resolve domain reputation")
	cmd := h.createCommand(t, act, command.CommandTypePlaybook, command.StatusProcessing,
		map[string]any{"playbook_id": "2042"})
	ex := h.createExecution(t, cmd, execution.StatusCompleted,
		`{"verdict":"malicious","registrar":"shady-names-llc"}`)

	h.caller.script("The domain review confirmed active C2 infrastructure registered through shady-names-llc.")

	require.NoError(t, h.summarizer().Tick(ctx))

	req := h.caller.lastRequest(t)
	assert.Equal(t, prompts.ExecutionDigestSystem, req.SystemPrompt)
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, digestTemperature, *req.Temperature, 0.001)
	assert.True(t, req.LongText)
	assert.Contains(t, req.UserPrompt, "reputation_lookup")
	assert.Contains(t, req.UserPrompt, "malicious")

	got, err := h.client.Execution.Query().
		Where(execution.ExecutionIDEQ(ex.ExecutionID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusSummarized, got.Status)
	assert.Contains(t, got.AiSummary, "C2 infrastructure")

	// Digest settles the chain all the way up.
	assert.Equal(t, command.StatusCompleted, h.reloadCommand(t, cmd.CommandID).Status)
	assert.Equal(t, action.StatusCompleted, h.reloadAction(t, act.ActionID).Status)
	assert.Equal(t, task.StatusCompleted, h.reloadTask(t, tk.TaskID).Status)
	assert.Equal(t, event.StatusTasksCompleted, h.reloadEvent(t, ev.EventID).Status)

	summaries := h.messagesOfType(t, ev.EventID, models.MessageTypeExecutionSummary)
	require.Len(t, summaries, 1)
	assert.Equal(t, ex.ExecutionID, summaries[0].MessageContent["execution_id"])
}

func TestSummarizer_ModelFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Check the callback domain")
	act := h.createAction(t, tk, action.StatusProcessing, "Resolve domain reputation")
	cmd := h.createCommand(t, act, command.CommandTypePlaybook, command.StatusProcessing, nil)
	ex := h.createExecution(t, cmd, execution.StatusCompleted, `{"verdict":"clean"}`)

	h.caller.err = errors.New("model overloaded")

	require.NoError(t, h.summarizer().Tick(ctx))

	got, err := h.client.Execution.Query().
		Where(execution.ExecutionIDEQ(ex.ExecutionID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusSummarizedError, got.Status)
	assert.Empty(t, got.AiSummary)

	// summarized_error settles the execution as a failure.
	assert.Equal(t, command.StatusFailed, h.reloadCommand(t, cmd.CommandID).Status)
	assert.Equal(t, event.StatusFailed, h.reloadEvent(t, ev.EventID).Status)
	assert.Empty(t, h.messagesOfType(t, ev.EventID, models.MessageTypeExecutionSummary))
}

func TestSummarizer_OrphanExecutionGetsPlaceholders(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	ex, err := h.client.Execution.Create().
		SetExecutionID(uuid.New().String()).
		SetCommandID("cmd-gone").
		SetActionID("act-gone").
		SetTaskID("task-gone").
		SetEventID("evt-gone").
		SetRoundID(1).
		SetStatus(execution.StatusCompleted).
		SetExecutionResult("plain text output").
		Save(ctx)
	require.NoError(t, err)

	h.caller.script("Output recorded with no surrounding context.")

	require.NoError(t, h.summarizer().Tick(ctx))

	req := h.caller.lastRequest(t)
	assert.Contains(t, req.UserPrompt, "unknown command")
	assert.Contains(t, req.UserPrompt, "plain text output")

	got, err := h.client.Execution.Query().
		Where(execution.ExecutionIDEQ(ex.ExecutionID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusSummarized, got.Status)
}

func TestSummarizer_ConcurrentWorkersClaimOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ev := h.createEvent(t, event.StatusProcessing)
	tk := h.createTask(t, ev, task.StatusProcessing, "Check the callback domain")
	act := h.createAction(t, tk, action.StatusProcessing, "Resolve domain reputation")
	cmd := h.createCommand(t, act, command.CommandTypePlaybook, command.StatusProcessing, nil)
	ex := h.createExecution(t, cmd, execution.StatusCompleted, `{"verdict":"malicious"}`)

	gate := &gatedCaller{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		reply:   "The callback domain is confirmed C2; the host needs isolation.",
	}
	first := NewSummarizer(h.client.Client, gate, h.notifier, h.engine)

	done := make(chan error, 1)
	go func() { done <- first.Tick(ctx) }()
	// once the gate is entered, the first worker holds the row lock
	<-gate.entered

	// The rival must skip the locked row, not queue behind it. The
	// timeout turns a wrongly-waiting rival into a failure, not a hang.
	rivalCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := h.summarizer().Tick(rivalCtx)
	assert.ErrorIs(t, err, ErrNoWork)

	close(gate.release)
	require.NoError(t, <-done)

	got, err := h.client.Execution.Query().
		Where(execution.ExecutionIDEQ(ex.ExecutionID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusSummarized, got.Status)

	// the rival never reached its model
	assert.Empty(t, h.caller.requests)
	assert.Len(t, h.messagesOfType(t, ev.EventID, models.MessageTypeExecutionSummary), 1)
	assert.Equal(t, command.StatusCompleted, h.reloadCommand(t, cmd.CommandID).Status)
	assert.Equal(t, event.StatusTasksCompleted, h.reloadEvent(t, ev.EventID).Status)
}
