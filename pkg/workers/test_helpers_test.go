package workers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/bus"
	"github.com/deepsoc/deepsoc/pkg/database"
	"github.com/deepsoc/deepsoc/pkg/llm"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/propagation"
	"github.com/deepsoc/deepsoc/pkg/services"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

// scriptedCaller plays back canned model responses in order and records
// every request it saw. Set err to simulate a transport failure.
type scriptedCaller struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []llm.Request
}

func (c *scriptedCaller) script(responses ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, responses...)
}

func (c *scriptedCaller) Call(_ context.Context, req llm.Request) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "", errors.New("scripted caller exhausted")
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func (c *scriptedCaller) lastRequest(t *testing.T) llm.Request {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.requests)
	return c.requests[len(c.requests)-1]
}

// stubSOAR records playbook runs and returns a canned result.
type stubSOAR struct {
	mu     sync.Mutex
	result map[string]any
	err    error
	ids    []string
	params []map[string]any
}

func (s *stubSOAR) Run(_ context.Context, playbookID string, params map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, playbookID)
	s.params = append(s.params, params)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// harness bundles the fixtures every role worker needs.
type harness struct {
	client   *database.Client
	caller   *scriptedCaller
	soar     *stubSOAR
	store    *prompts.Store
	notifier *messaging.Notifier
	engine   *propagation.Engine
	settings *services.SettingService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := prompts.NewStore(client.Client)
	_, err := store.Seed(context.Background())
	require.NoError(t, err)

	return &harness{
		client:   client,
		caller:   &scriptedCaller{},
		soar:     &stubSOAR{},
		store:    store,
		notifier: messaging.NewNotifier(client.Client, bus.NopPublisher{}),
		engine:   propagation.NewEngine(client.Client),
		settings: services.NewSettingService(client.Client),
	}
}

func (h *harness) captain() *Captain {
	return NewCaptain(h.client.Client,
		services.NewTaskService(h.client.Client),
		services.NewSummaryService(h.client.Client),
		h.caller, h.store, h.notifier)
}

func (h *harness) manager(retryLimit int) *Manager {
	return NewManager(h.client.Client, h.caller, h.store, h.notifier, h.engine, retryLimit)
}

func (h *harness) operator(retryLimit int) *Operator {
	return NewOperator(h.client.Client, h.caller, h.store, h.notifier, h.engine, retryLimit)
}

func (h *harness) executor() *Executor {
	return NewExecutor(h.client.Client, h.soar, h.notifier, h.engine)
}

func (h *harness) summarizer() *Summarizer {
	return NewSummarizer(h.client.Client, h.caller, h.notifier, h.engine)
}

func (h *harness) lifecycle(maxRound int) *Lifecycle {
	return NewLifecycle(h.client.Client, h.caller, h.notifier, h.engine,
		h.settings, services.NewSummaryService(h.client.Client), maxRound)
}

func (h *harness) createEvent(t *testing.T, status event.Status) *ent.Event {
	t.Helper()
	ev, err := h.client.Event.Create().
		SetEventID(uuid.New().String()).
		SetEventName("Beaconing workstation").
		SetMessage("EDR flagged periodic callbacks to an unregistered domain").
		SetSource("edr").
		SetSeverity("high").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func (h *harness) createTask(t *testing.T, ev *ent.Event, status task.Status, name string) *ent.Task {
	t.Helper()
	tk, err := h.client.Task.Create().
		SetTaskID(uuid.New().String()).
		SetEventID(ev.EventID).
		SetRoundID(ev.CurrentRound).
		SetTaskName(name).
		SetTaskType(task.TaskTypeQuery).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return tk
}

func (h *harness) createAction(t *testing.T, tk *ent.Task, status action.Status, name string) *ent.Action {
	t.Helper()
	act, err := h.client.Action.Create().
		SetActionID(uuid.New().String()).
		SetTaskID(tk.TaskID).
		SetEventID(tk.EventID).
		SetRoundID(tk.RoundID).
		SetActionName(name).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return act
}

func (h *harness) createCommand(t *testing.T, act *ent.Action, cmdType command.CommandType, status command.Status, entity map[string]any) *ent.Command {
	t.Helper()
	create := h.client.Command.Create().
		SetCommandID(uuid.New().String()).
		SetActionID(act.ActionID).
		SetTaskID(act.TaskID).
		SetEventID(act.EventID).
		SetRoundID(act.RoundID).
		SetCommandName("reputation_lookup").
		SetCommandType(cmdType).
		SetStatus(status)
	if entity != nil {
		create = create.SetCommandEntity(entity)
	}
	cmd, err := create.Save(context.Background())
	require.NoError(t, err)
	return cmd
}

func (h *harness) createExecution(t *testing.T, cmd *ent.Command, status execution.Status, result string) *ent.Execution {
	t.Helper()
	create := h.client.Execution.Create().
		SetExecutionID(uuid.New().String()).
		SetCommandID(cmd.CommandID).
		SetActionID(cmd.ActionID).
		SetTaskID(cmd.TaskID).
		SetEventID(cmd.EventID).
		SetRoundID(cmd.RoundID).
		SetStatus(status)
	if result != "" {
		create = create.SetExecutionResult(result)
	}
	ex, err := create.Save(context.Background())
	require.NoError(t, err)
	return ex
}

func (h *harness) reloadEvent(t *testing.T, eventID string) *ent.Event {
	t.Helper()
	ev, err := h.client.Event.Query().Where(event.EventIDEQ(eventID)).Only(context.Background())
	require.NoError(t, err)
	return ev
}

func (h *harness) reloadTask(t *testing.T, taskID string) *ent.Task {
	t.Helper()
	tk, err := h.client.Task.Query().Where(task.TaskIDEQ(taskID)).Only(context.Background())
	require.NoError(t, err)
	return tk
}

func (h *harness) reloadAction(t *testing.T, actionID string) *ent.Action {
	t.Helper()
	act, err := h.client.Action.Query().Where(action.ActionIDEQ(actionID)).Only(context.Background())
	require.NoError(t, err)
	return act
}

func (h *harness) reloadCommand(t *testing.T, commandID string) *ent.Command {
	t.Helper()
	cmd, err := h.client.Command.Query().Where(command.CommandIDEQ(commandID)).Only(context.Background())
	require.NoError(t, err)
	return cmd
}

func (h *harness) messagesOfType(t *testing.T, eventID, msgType string) []*ent.Message {
	t.Helper()
	msgs, err := h.client.Message.Query().
		Where(message.EventIDEQ(eventID), message.MessageTypeEQ(msgType)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return msgs
}
