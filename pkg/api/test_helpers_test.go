package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/auth"
	"github.com/deepsoc/deepsoc/pkg/bus"
	"github.com/deepsoc/deepsoc/pkg/config"
	"github.com/deepsoc/deepsoc/pkg/database"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/services"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

// testServer is an API instance over a per-test database, pre-seeded
// with one admin and one analyst account.
type testServer struct {
	router *gin.Engine
	client *database.Client
	hub    *Hub
	tokens *auth.TokenManager

	admin        *ent.User
	adminToken   string
	analyst      *ent.User
	analystToken string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	client := testdb.NewTestClient(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	notifier := messaging.NewNotifier(client.Client, bus.NopPublisher{})
	hub := NewHub()
	t.Cleanup(hub.Stop)

	srv := NewServer(config.DefaultServerConfig(), client, tokens, notifier, hub)

	ctx := context.Background()
	users := services.NewUserService(client.Client)
	admin, err := users.Create(ctx, services.CreateUserInput{
		Username: "admin",
		Email:    "admin@deepsoc.local",
		Password: "first-watch-42",
		Role:     "admin",
	})
	require.NoError(t, err)
	analyst, err := users.Create(ctx, services.CreateUserInput{
		Username: "nightwatch",
		Email:    "nightwatch@deepsoc.local",
		Password: "graveyard-shift-9",
	})
	require.NoError(t, err)

	adminToken, _, err := tokens.Generate(admin.ID, admin.Username, string(admin.Role))
	require.NoError(t, err)
	analystToken, _, err := tokens.Generate(analyst.ID, analyst.Username, string(analyst.Role))
	require.NoError(t, err)

	return &testServer{
		router:       srv.Router(),
		client:       client,
		hub:          hub,
		tokens:       tokens,
		admin:        admin,
		adminToken:   adminToken,
		analyst:      analyst,
		analystToken: analystToken,
	}
}

// do performs one request against the in-process router.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// envelope decodes a response body and asserts its declared status.
func envelope(t *testing.T, rec *httptest.ResponseRecorder, wantStatus string) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	require.Equal(t, wantStatus, env.Status, "body: %s", rec.Body.String())
	return env
}

// dataMap asserts the envelope data is a JSON object and returns it.
func dataMap(t *testing.T, env Envelope) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "envelope data is %T, want object", env.Data)
	return m
}

func seedEvent(t *testing.T, client *database.Client, status event.Status) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetEventID(uuid.New().String()).
		SetEventName("Impossible travel sign-in").
		SetMessage("Sign-in for svc-backup from two countries within an hour").
		SetSource("siem").
		SetSeverity("high").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

// seedManualChain creates a processing decomposition ending in a manual
// command with a waiting execution, the state a human completes through
// the API.
func seedManualChain(t *testing.T, client *database.Client) (*ent.Event, *ent.Task, *ent.Action, *ent.Command, *ent.Execution) {
	t.Helper()
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusProcessing)
	tk, err := client.Task.Create().
		SetTaskID(uuid.New().String()).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetTaskName("Confirm the travel with the account owner").
		SetTaskType(task.TaskTypeQuery).
		SetTaskAssignee("_manager").
		SetStatus(task.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	a, err := client.Action.Create().
		SetActionID(uuid.New().String()).
		SetTaskID(tk.TaskID).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetActionName("Reach the owner through their manager").
		SetActionType("query").
		SetStatus(action.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	cmd, err := client.Command.Create().
		SetCommandID(uuid.New().String()).
		SetActionID(a.ActionID).
		SetTaskID(tk.TaskID).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetCommandName("phone_account_owner").
		SetCommandType(command.CommandTypeManual).
		SetStatus(command.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	exec, err := client.Execution.Create().
		SetExecutionID(uuid.New().String()).
		SetCommandID(cmd.CommandID).
		SetActionID(a.ActionID).
		SetTaskID(tk.TaskID).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetStatus(execution.StatusWaiting).
		Save(ctx)
	require.NoError(t, err)

	return ev, tk, a, cmd, exec
}

// messagesOfType loads an event's message rows of one type.
func messagesOfType(t *testing.T, client *database.Client, eventID, msgType string) []*ent.Message {
	t.Helper()
	rows, err := client.Message.Query().
		Where(message.EventIDEQ(eventID), message.MessageTypeEQ(msgType)).
		Order(ent.Asc(message.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func reloadEvent(t *testing.T, client *database.Client, eventID string) *ent.Event {
	t.Helper()
	ev, err := client.Event.Query().Where(event.EventIDEQ(eventID)).Only(context.Background())
	require.NoError(t, err)
	return ev
}

func reloadTask(t *testing.T, client *database.Client, taskID string) *ent.Task {
	t.Helper()
	tk, err := client.Task.Query().Where(task.TaskIDEQ(taskID)).Only(context.Background())
	require.NoError(t, err)
	return tk
}

func reloadAction(t *testing.T, client *database.Client, actionID string) *ent.Action {
	t.Helper()
	a, err := client.Action.Query().Where(action.ActionIDEQ(actionID)).Only(context.Background())
	require.NoError(t, err)
	return a
}

func reloadCommand(t *testing.T, client *database.Client, commandID string) *ent.Command {
	t.Helper()
	cmd, err := client.Command.Query().Where(command.CommandIDEQ(commandID)).Only(context.Background())
	require.NoError(t, err)
	return cmd
}

func reloadExecution(t *testing.T, client *database.Client, executionID string) *ent.Execution {
	t.Helper()
	exec, err := client.Execution.Query().Where(execution.ExecutionIDEQ(executionID)).Only(context.Background())
	require.NoError(t, err)
	return exec
}
