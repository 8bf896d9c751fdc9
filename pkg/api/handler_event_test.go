package api

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/pkg/models"
)

func TestEventAPI_CreateAndFetch(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/event/create", ts.analystToken, models.CreateEventRequest{
		EventName: "Beaconing from build agent",
		Message:   "Host build-07 makes periodic callbacks to an unregistered domain",
		Source:    "ids",
		Severity:  "high",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	env := envelope(t, rec, "success")
	assert.Equal(t, "event accepted for triage", env.Message)
	data := dataMap(t, env)
	eventID, _ := data["event_id"].(string)
	require.NotEmpty(t, eventID)
	assert.Equal(t, "pending", data["status"])

	t.Run("creation is announced in the event log", func(t *testing.T) {
		rows := messagesOfType(t, ts.client, eventID, models.MessageTypeEventCreated)
		require.Len(t, rows, 1)
		assert.Equal(t, message.MessageFromSystem, rows[0].MessageFrom)
		assert.Equal(t, "Beaconing from build agent", rows[0].MessageContent["data"].(map[string]any)["event_name"])
	})

	t.Run("fetch by id", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/"+eventID, ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, eventID, data["event_id"])
		assert.Equal(t, "ids", data["source"])
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/no-such-event", ts.analystToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		envelope(t, rec, "error")
	})

	t.Run("message is required", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/event/create", ts.analystToken, map[string]string{
			"event_name": "empty report",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		envelope(t, rec, "error")
	})
}

func TestEventAPI_List(t *testing.T) {
	ts := newTestServer(t)
	seedEvent(t, ts.client, event.StatusPending)
	seedEvent(t, ts.client, event.StatusPending)
	seedEvent(t, ts.client, event.StatusCompleted)

	t.Run("all events", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/list", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.EqualValues(t, 3, data["total_count"])
		assert.Len(t, data["events"], 3)
	})

	t.Run("status filter", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/list?status=pending", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.EqualValues(t, 2, data["total_count"])
	})

	t.Run("pagination", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/list?page=2&per_page=2", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.EqualValues(t, 3, data["total_count"])
		assert.Len(t, data["events"], 1)
		assert.EqualValues(t, 2, data["page"])
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/list?status=melting", ts.analystToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		envelope(t, rec, "error")
	})
}

func TestEventAPI_Messages(t *testing.T) {
	ts := newTestServer(t)
	ev := seedEvent(t, ts.client, event.StatusProcessing)

	send := func(text string) {
		rec := ts.do(t, http.MethodPost, "/api/event/send_message/"+ev.EventID, ts.analystToken,
			SendMessageRequest{Message: text})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	send("Checking the VPN logs now")
	send("No concurrent session from the second country")

	var lastID int
	t.Run("initial poll returns everything", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/messages", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		msgs, ok := data["messages"].([]any)
		require.True(t, ok)
		require.Len(t, msgs, 2)

		first, ok := msgs[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, models.MessageTypeUserMessage, first["message_type"])
		assert.Equal(t, string(message.MessageFromUser), first["message_from"])
		assert.Equal(t, strconv.Itoa(ts.analyst.ID), first["user_id"])

		lastID = int(data["last_message_db_id"].(float64))
		require.NotZero(t, lastID)
	})

	t.Run("incremental poll sees only new rows", func(t *testing.T) {
		path := fmt.Sprintf("/api/event/%s/messages?last_message_db_id=%d", ev.EventID, lastID)
		rec := ts.do(t, http.MethodGet, path, ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Empty(t, data["messages"])
		assert.EqualValues(t, lastID, data["last_message_db_id"])

		send("Calling the account owner")
		rec = ts.do(t, http.MethodGet, path, ts.analystToken, nil)
		data = dataMap(t, envelope(t, rec, "success"))
		assert.Len(t, data["messages"], 1)
		assert.EqualValues(t, lastID+1, data["last_message_db_id"])
	})

	t.Run("role filter", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/messages?role=user", ts.analystToken, nil)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Len(t, data["messages"], 3)

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/messages?role=_captain", ts.analystToken, nil)
		data = dataMap(t, envelope(t, rec, "success"))
		assert.Empty(t, data["messages"])

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/messages?role=intruder", ts.analystToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/event/send_message/"+ev.EventID, ts.analystToken,
			map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event is a 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/no-such-event/messages", ts.analystToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventAPI_Resolve(t *testing.T) {
	ts := newTestServer(t)

	t.Run("a processing event can be resolved", func(t *testing.T) {
		ev := seedEvent(t, ts.client, event.StatusProcessing)
		rec := ts.do(t, http.MethodPost, "/api/event/"+ev.EventID+"/resolve", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		env := envelope(t, rec, "success")
		assert.Equal(t, "event resolved", env.Message)
		assert.Equal(t, "resolved", dataMap(t, env)["status"])

		rows := messagesOfType(t, ts.client, ev.EventID, models.MessageTypeEventResolved)
		require.Len(t, rows, 1)
		assert.Equal(t, message.MessageFromUser, rows[0].MessageFrom)
		assert.Equal(t, ts.analyst.Username, rows[0].MessageContent["data"].(map[string]any)["resolved_by"])

		// Resolving again is a no-op, not an error.
		rec = ts.do(t, http.MethodPost, "/api/event/"+ev.EventID+"/resolve", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, event.StatusResolved, reloadEvent(t, ts.client, ev.EventID).Status)
	})

	t.Run("a completed event cannot be reopened as resolved", func(t *testing.T) {
		ev := seedEvent(t, ts.client, event.StatusCompleted)
		rec := ts.do(t, http.MethodPost, "/api/event/"+ev.EventID+"/resolve", ts.analystToken, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		envelope(t, rec, "error")
	})
}

func TestEventAPI_ManualExecutionComplete(t *testing.T) {
	ts := newTestServer(t)

	t.Run("a confirmed outcome settles the whole branch", func(t *testing.T) {
		ev, tk, a, cmd, exec := seedManualChain(t, ts.client)
		path := fmt.Sprintf("/api/event/%s/execution/%s/complete", ev.EventID, exec.ExecutionID)

		rec := ts.do(t, http.MethodPost, path, ts.analystToken, models.CompleteExecutionRequest{
			Result: "Owner confirmed both sign-ins; the second was their travel laptop",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		env := envelope(t, rec, "success")
		assert.Equal(t, "execution completed", env.Message)

		reloaded := reloadExecution(t, ts.client, exec.ExecutionID)
		assert.Equal(t, execution.StatusCompleted, reloaded.Status)
		assert.Contains(t, reloaded.ExecutionResult, "travel laptop")

		// The verdict walked up: command, action and task settled, the
		// event keeps processing until the expert digests the result.
		assert.EqualValues(t, "completed", reloadCommand(t, ts.client, cmd.CommandID).Status)
		assert.EqualValues(t, "completed", reloadAction(t, ts.client, a.ActionID).Status)
		assert.EqualValues(t, "completed", reloadTask(t, ts.client, tk.TaskID).Status)
		assert.Equal(t, event.StatusProcessing, reloadEvent(t, ts.client, ev.EventID).Status)

		rows := messagesOfType(t, ts.client, ev.EventID, models.MessageTypeCommandResult)
		require.Len(t, rows, 1)
		assert.Equal(t, message.MessageFromUser, rows[0].MessageFrom)
		assert.Equal(t, strconv.Itoa(ts.analyst.ID), rows[0].UserID)
		content := rows[0].MessageContent["data"].(map[string]any)
		assert.Equal(t, cmd.CommandID, content["command_id"])
		assert.Equal(t, "phone_account_owner", content["command_name"])

		t.Run("a second completion is rejected", func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, path, ts.analystToken, models.CompleteExecutionRequest{
				Result: "duplicate submission",
			})
			require.Equal(t, http.StatusConflict, rec.Code)
			envelope(t, rec, "error")
		})
	})

	t.Run("a failed outcome fails the branch and the event", func(t *testing.T) {
		ev, tk, a, cmd, exec := seedManualChain(t, ts.client)
		path := fmt.Sprintf("/api/event/%s/execution/%s/complete", ev.EventID, exec.ExecutionID)

		rec := ts.do(t, http.MethodPost, path, ts.analystToken, models.CompleteExecutionRequest{
			Result: "Owner unreachable, desk phone disconnected",
			Status: "failed",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, execution.StatusFailed, reloadExecution(t, ts.client, exec.ExecutionID).Status)
		assert.EqualValues(t, "failed", reloadCommand(t, ts.client, cmd.CommandID).Status)
		assert.EqualValues(t, "failed", reloadAction(t, ts.client, a.ActionID).Status)
		assert.EqualValues(t, "failed", reloadTask(t, ts.client, tk.TaskID).Status)
		// A failed execution needs no digest, so the round closes out.
		assert.Equal(t, event.StatusFailed, reloadEvent(t, ts.client, ev.EventID).Status)
	})

	t.Run("result is required", func(t *testing.T) {
		ev, _, _, _, exec := seedManualChain(t, ts.client)
		path := fmt.Sprintf("/api/event/%s/execution/%s/complete", ev.EventID, exec.ExecutionID)
		rec := ts.do(t, http.MethodPost, path, ts.analystToken, models.CompleteExecutionRequest{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("the execution must belong to the event in the path", func(t *testing.T) {
		_, _, _, _, exec := seedManualChain(t, ts.client)
		other := seedEvent(t, ts.client, event.StatusProcessing)
		path := fmt.Sprintf("/api/event/%s/execution/%s/complete", other.EventID, exec.ExecutionID)
		rec := ts.do(t, http.MethodPost, path, ts.analystToken, models.CompleteExecutionRequest{
			Result: "spoofed",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventAPI_StatsAndHierarchy(t *testing.T) {
	ts := newTestServer(t)
	ev, tk, a, _, _ := seedManualChain(t, ts.client)

	t.Run("stats count each level", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/stats", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))

		tasks, ok := data["tasks"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 1, tasks["total"])
		byStatus, ok := tasks["by_status"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 1, byStatus["processing"])

		executions, ok := data["executions"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 1, executions["total"])
	})

	t.Run("hierarchy nests the decomposition by round", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/hierarchy", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))

		rounds, ok := data["rounds"].([]any)
		require.True(t, ok)
		require.Len(t, rounds, 1)
		round := rounds[0].(map[string]any)
		assert.EqualValues(t, 1, round["round_id"])

		tasks := round["tasks"].([]any)
		require.Len(t, tasks, 1)
		actions := tasks[0].(map[string]any)["actions"].([]any)
		require.Len(t, actions, 1)
		commands := actions[0].(map[string]any)["commands"].([]any)
		require.Len(t, commands, 1)
		execs := commands[0].(map[string]any)["executions"].([]any)
		require.Len(t, execs, 1)
	})

	t.Run("level listings", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/tasks", ts.analystToken, nil)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Len(t, data["tasks"], 1)

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/actions?task_id="+tk.TaskID, ts.analystToken, nil)
		data = dataMap(t, envelope(t, rec, "success"))
		assert.Len(t, data["actions"], 1)

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/actions?task_id=no-such-task", ts.analystToken, nil)
		data = dataMap(t, envelope(t, rec, "success"))
		assert.Empty(t, data["actions"])

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/commands?action_id="+a.ActionID, ts.analystToken, nil)
		data = dataMap(t, envelope(t, rec, "success"))
		assert.Len(t, data["commands"], 1)

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/executions?status=waiting", ts.analystToken, nil)
		data = dataMap(t, envelope(t, rec, "success"))
		assert.Len(t, data["executions"], 1)

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/executions?status=daydreaming", ts.analystToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/event/"+ev.EventID+"/summaries", ts.analystToken, nil)
		data = dataMap(t, envelope(t, rec, "success"))
		assert.Empty(t, data["summaries"])
	})
}
