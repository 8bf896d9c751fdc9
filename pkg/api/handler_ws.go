package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// upgrader performs the HTTP to WebSocket upgrade. Origin checks are
// left to the fronting proxy; the token gates the endpoint itself.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// wsHandler handles GET /ws?event_id=&token=. Browsers cannot set an
// Authorization header on a WebSocket dial, so the token rides in the
// query string. The handler blocks until the connection closes.
func (s *Server) wsHandler(c *gin.Context) {
	eventID := c.Query("event_id")
	if eventID == "" {
		respondError(c, http.StatusBadRequest, "event_id is required")
		return
	}
	token := c.Query("token")
	if token == "" {
		respondError(c, http.StatusUnauthorized, "missing token")
		return
	}
	if _, err := s.tokens.Parse(token); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	if _, err := s.events.GetEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade wrote the HTTP error itself.
		slog.Warn("WebSocket upgrade failed", "event_id", eventID, "error", err)
		return
	}

	cl := &wsClient{hub: s.hub, conn: conn, eventID: eventID, send: make(chan []byte, 16)}
	if !s.hub.register(cl) {
		_ = conn.Close()
		return
	}
	slog.Info("WebSocket client joined", "event_id", eventID)

	go cl.writePump()
	cl.readPump()
}
