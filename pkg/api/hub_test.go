package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/pkg/bus"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// dialWS connects a WebSocket client to the test server and waits for
// the hub to see it; the handshake completes before the handler's
// register call runs.
func dialWS(t *testing.T, ts *testServer, httpSrv *httptest.Server, eventID, token string) *websocket.Conn {
	t.Helper()

	before := roomSize(ts.hub, eventID)
	url := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/ws?event_id=" + eventID + "&token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return roomSize(ts.hub, eventID) > before
	}, 2*time.Second, 10*time.Millisecond, "client never joined room %s", eventID)
	return conn
}

func roomSize(h *Hub, eventID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[eventID])
}

func readFrame(t *testing.T, conn *websocket.Conn) WSFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame WSFrame
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame
}

func TestHub_RelaysDeliveriesToRoom(t *testing.T) {
	ts := newTestServer(t)
	httpSrv := httptest.NewServer(ts.router)
	defer httpSrv.Close()

	evA := seedEvent(t, ts.client, event.StatusProcessing)
	evB := seedEvent(t, ts.client, event.StatusProcessing)

	connA := dialWS(t, ts, httpSrv, evA.EventID, ts.analystToken)
	connB := dialWS(t, ts, httpSrv, evB.EventID, ts.adminToken)

	deliver := func(eventID, text string) {
		body, err := json.Marshal(models.BusEnvelope{
			MessageID:      "m-" + text,
			EventID:        eventID,
			RoundID:        1,
			MessageFrom:    "user",
			MessageType:    models.MessageTypeUserMessage,
			MessageContent: map[string]any{"data": map[string]any{"message": text}},
			CreatedAt:      time.Now().UTC(),
		})
		require.NoError(t, err)
		require.NoError(t, ts.hub.HandleDelivery(
			bus.FrontendKey(eventID, "user", models.MessageTypeUserMessage), body))
	}

	// B first, then A: if rooms leaked, A's first frame would be B's.
	deliver(evB.EventID, "for room B")
	deliver(evA.EventID, "for room A")

	frameA := readFrame(t, connA)
	assert.Equal(t, "new_message", frameA.Type)
	dataA, ok := frameA.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, evA.EventID, dataA["event_id"])

	frameB := readFrame(t, connB)
	dataB, ok := frameB.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, evB.EventID, dataB["event_id"])
}

func TestHub_FallsBackToRoutingKeyEventID(t *testing.T) {
	ts := newTestServer(t)
	httpSrv := httptest.NewServer(ts.router)
	defer httpSrv.Close()

	ev := seedEvent(t, ts.client, event.StatusProcessing)
	conn := dialWS(t, ts, httpSrv, ev.EventID, ts.analystToken)

	// Envelope without an event id; the routing key carries it.
	body := []byte(`{"message_type":"user_message","message_content":{"data":{"message":"keyed"}}}`)
	require.NoError(t, ts.hub.HandleDelivery(
		bus.FrontendKey(ev.EventID, "user", models.MessageTypeUserMessage), body))

	frame := readFrame(t, conn)
	assert.Equal(t, "new_message", frame.Type)
}

func TestHub_HandleDeliveryErrors(t *testing.T) {
	hub := NewHub()

	t.Run("undecodable body", func(t *testing.T) {
		err := hub.HandleDelivery("notifications.frontend.abc.user.user_message", []byte("{not json"))
		require.Error(t, err)
	})

	t.Run("no event id anywhere", func(t *testing.T) {
		err := hub.HandleDelivery("some.other.key", []byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "without event id")
	})

	t.Run("delivery to an empty room succeeds", func(t *testing.T) {
		body := []byte(`{"event_id":"nobody-home","message_type":"user_message"}`)
		require.NoError(t, hub.HandleDelivery("notifications.frontend.nobody-home.user.user_message", body))
	})
}

func TestHub_StopRefusesNewClients(t *testing.T) {
	hub := NewHub()
	cl := &wsClient{hub: hub, eventID: "ev-1", send: make(chan []byte, 1)}
	require.True(t, hub.register(cl))

	hub.Stop()

	// The registered client's channel was closed by Stop.
	_, open := <-cl.send
	assert.False(t, open)

	late := &wsClient{hub: hub, eventID: "ev-1", send: make(chan []byte, 1)}
	assert.False(t, hub.register(late))

	// Unregistering the already-dropped client must not panic.
	hub.unregister(cl)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	cl := &wsClient{hub: hub, eventID: "ev-1", send: make(chan []byte, 1)}
	require.True(t, hub.register(cl))

	hub.broadcast("ev-1", []byte("one"))
	// Buffer full: the second frame drops the client instead of blocking.
	hub.broadcast("ev-1", []byte("two"))

	assert.Zero(t, roomSize(hub, "ev-1"))
	frame, open := <-cl.send
	assert.Equal(t, "one", string(frame))
	require.True(t, open)
	_, open = <-cl.send
	assert.False(t, open)
}

func TestWSHandler_RejectsBadHandshakes(t *testing.T) {
	ts := newTestServer(t)
	httpSrv := httptest.NewServer(ts.router)
	defer httpSrv.Close()

	ev := seedEvent(t, ts.client, event.StatusProcessing)
	base := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/ws"

	cases := []struct {
		name string
		url  string
		code int
	}{
		{"missing event_id", base + "?token=" + ts.analystToken, http.StatusBadRequest},
		{"missing token", base + "?event_id=" + ev.EventID, http.StatusUnauthorized},
		{"bad token", base + "?event_id=" + ev.EventID + "&token=forged", http.StatusUnauthorized},
		{"unknown event", base + "?event_id=no-such-event&token=" + ts.analystToken, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conn, resp, err := websocket.DefaultDialer.Dial(tc.url, nil)
			require.Error(t, err)
			require.Nil(t, conn)
			require.NotNil(t, resp)
			defer resp.Body.Close()
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}
