package api

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/deepsoc/deepsoc/pkg/bus"
	"github.com/deepsoc/deepsoc/pkg/models"
)

const (
	// writeWait bounds one socket write.
	writeWait = 10 * time.Second
	// pongWait is how long a connection may stay silent; pings go out a
	// little faster so a healthy client always answers in time.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize caps inbound frames; clients only ever send pongs
	// and closes.
	maxMessageSize = 4096
)

// WSFrame is the JSON frame pushed to connected clients.
type WSFrame struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub groups WebSocket clients into per-event rooms and relays bus
// deliveries into them. The messages table stays the canonical record;
// a client that misses frames reconciles from the messages endpoint.
type Hub struct {
	mu     sync.Mutex
	rooms  map[string]map[*wsClient]struct{}
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*wsClient]struct{})}
}

// HandleDelivery implements bus.Handler: decode the envelope, wrap it
// in a new_message frame, and push it to the event's room. Errors mean
// an undecodable payload the consumer should drop.
func (h *Hub) HandleDelivery(routingKey string, body []byte) error {
	var env models.BusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decoding notification body: %w", err)
	}
	eventID := env.EventID
	if eventID == "" {
		eventID = bus.EventIDFromKey(routingKey)
	}
	if eventID == "" {
		return fmt.Errorf("notification without event id on key %q", routingKey)
	}

	frame, err := json.Marshal(WSFrame{Type: "new_message", Data: env})
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	h.broadcast(eventID, frame)
	return nil
}

// broadcast pushes one frame to every client in the room. A client too
// slow to drain its buffer is disconnected rather than allowed to stall
// the room.
func (h *Hub) broadcast(eventID string, frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.rooms[eventID] {
		select {
		case cl.send <- frame:
		default:
			h.dropLocked(cl)
		}
	}
}

// register adds a client to its event room. Returns false when the hub
// is already stopped.
func (h *Hub) register(cl *wsClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	room := h.rooms[cl.eventID]
	if room == nil {
		room = make(map[*wsClient]struct{})
		h.rooms[cl.eventID] = room
	}
	room[cl] = struct{}{}
	return true
}

// unregister removes a client and closes its send channel. Safe to call
// for a client already dropped.
func (h *Hub) unregister(cl *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(cl)
}

// dropLocked removes a client from its room, deleting empty rooms. The
// membership check makes the channel close exactly-once.
func (h *Hub) dropLocked(cl *wsClient) {
	room, ok := h.rooms[cl.eventID]
	if !ok {
		return
	}
	if _, member := room[cl]; !member {
		return
	}
	delete(room, cl)
	if len(room) == 0 {
		delete(h.rooms, cl.eventID)
	}
	close(cl.send)
}

// Stop disconnects every client and refuses new registrations.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for eventID, room := range h.rooms {
		for cl := range room {
			close(cl.send)
		}
		delete(h.rooms, eventID)
	}
}

// wsClient is one connected browser session.
type wsClient struct {
	hub     *Hub
	conn    *websocket.Conn
	eventID string
	send    chan []byte
}

// writePump drains the send channel to the socket and keeps the
// connection alive with pings. The single writer per connection the
// websocket package requires.
func (cl *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes client frames so pongs and closes are processed,
// unregistering on disconnect.
func (cl *wsClient) readPump() {
	defer func() {
		cl.hub.unregister(cl)
		_ = cl.conn.Close()
	}()
	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
