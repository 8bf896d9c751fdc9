package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// createEventHandler handles POST /api/event/create. The event lands in
// pending status and returns immediately; the captain picks it up from
// there.
func (s *Server) createEventHandler(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := s.events.CreateEvent(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if _, err := s.notifier.Post(c.Request.Context(), models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromSystem,
		MessageType: models.MessageTypeEventCreated,
		Data: map[string]any{
			"event_id":   ev.EventID,
			"event_name": ev.EventName,
			"message":    ev.Message,
			"source":     ev.Source,
			"severity":   ev.Severity,
			"status":     string(ev.Status),
		},
	}); err != nil {
		respondServiceError(c, err)
		return
	}

	respondAccepted(c, "event accepted for triage", ev)
}

// listEventsHandler handles GET /api/event/list.
func (s *Server) listEventsHandler(c *gin.Context) {
	filters := models.EventFilters{
		Status:  c.Query("status"),
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "per_page", 20),
	}

	result, err := s.events.ListEvents(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", result)
}

// getEventHandler handles GET /api/event/:event_id.
func (s *Server) getEventHandler(c *gin.Context) {
	ev, err := s.events.GetEvent(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", ev)
}

// listMessagesHandler handles GET /api/event/:event_id/messages. Clients
// poll with the last_message_db_id they saw; the response carries the
// next value to hand back.
func (s *Server) listMessagesHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	if _, err := s.events.GetEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}

	sinceID := intQuery(c, "last_message_db_id", 0)
	result, err := s.messages.ListByEvent(c.Request.Context(), eventID, sinceID, c.Query("role"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", result)
}

// listTasksHandler handles GET /api/event/:event_id/tasks.
func (s *Server) listTasksHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	if _, err := s.events.GetEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}

	tasks, err := s.tasks.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", gin.H{"tasks": tasks})
}

// listActionsHandler handles GET /api/event/:event_id/actions, optionally
// narrowed to one task with ?task_id=.
func (s *Server) listActionsHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	if _, err := s.events.GetEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}

	var err error
	var actions any
	if taskID := c.Query("task_id"); taskID != "" {
		actions, err = s.actions.ListByTask(c.Request.Context(), taskID)
	} else {
		actions, err = s.actions.ListByEvent(c.Request.Context(), eventID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", gin.H{"actions": actions})
}

// listCommandsHandler handles GET /api/event/:event_id/commands,
// optionally narrowed to one action with ?action_id=.
func (s *Server) listCommandsHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	if _, err := s.events.GetEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}

	var err error
	var commands any
	if actionID := c.Query("action_id"); actionID != "" {
		commands, err = s.commands.ListByAction(c.Request.Context(), actionID)
	} else {
		commands, err = s.commands.ListByEvent(c.Request.Context(), eventID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", gin.H{"commands": commands})
}

// listExecutionsHandler handles GET /api/event/:event_id/executions with
// an optional ?status= filter.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	if _, err := s.events.GetEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}

	executions, err := s.executions.ListByEvent(c.Request.Context(), eventID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", gin.H{"executions": executions})
}

// listSummariesHandler handles GET /api/event/:event_id/summaries.
func (s *Server) listSummariesHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	if _, err := s.events.GetEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}

	summaries, err := s.summaries.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", gin.H{"summaries": summaries})
}

// eventStatsHandler handles GET /api/event/:event_id/stats.
func (s *Server) eventStatsHandler(c *gin.Context) {
	stats, err := s.events.Stats(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", stats)
}

// eventHierarchyHandler handles GET /api/event/:event_id/hierarchy.
func (s *Server) eventHierarchyHandler(c *gin.Context) {
	hierarchy, err := s.events.Hierarchy(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", hierarchy)
}

// SendMessageRequest is the payload for a human warroom message.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// sendMessageHandler handles POST /api/event/send_message/:event_id.
// The message lands in the event's log with the sender's account id and
// reaches connected clients through the bus.
func (s *Server) sendMessageHandler(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := s.events.GetEvent(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	claims, _ := claimsFrom(c)
	msg, err := s.notifier.Post(c.Request.Context(), models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromUser,
		MessageType: models.MessageTypeUserMessage,
		Data:        map[string]any{"message": req.Message},
		UserID:      strconv.Itoa(claims.UserID),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "message sent", msg)
}

// resolveEventHandler handles POST /api/event/:event_id/resolve. The
// event moves to resolved; the expert writes a closing summary and the
// lifecycle manager completes it instead of starting another round.
func (s *Server) resolveEventHandler(c *gin.Context) {
	ev, err := s.events.Resolve(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	claims, _ := claimsFrom(c)
	if _, err := s.notifier.Post(c.Request.Context(), models.CreateMessageRequest{
		EventID:     ev.EventID,
		RoundID:     ev.CurrentRound,
		MessageFrom: message.MessageFromUser,
		MessageType: models.MessageTypeEventResolved,
		Data: map[string]any{
			"event_id":    ev.EventID,
			"status":      string(ev.Status),
			"resolved_by": claims.Username,
		},
		UserID: strconv.Itoa(claims.UserID),
	}); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "event resolved", ev)
}

// completeExecutionHandler handles
// POST /api/event/:event_id/execution/:execution_id/complete — a human
// recording the outcome of a manual command. The execution must be
// waiting; its command settles with it and the verdict propagates up
// the chain.
func (s *Server) completeExecutionHandler(c *gin.Context) {
	var req models.CompleteExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	exec, cmd, err := s.executions.Complete(c.Request.Context(),
		c.Param("event_id"), c.Param("execution_id"), req.Result, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	claims, _ := claimsFrom(c)
	data := map[string]any{
		"execution_id": exec.ExecutionID,
		"command_id":   exec.CommandID,
		"action_id":    exec.ActionID,
		"task_id":      exec.TaskID,
		"status":       string(exec.Status),
		"result":       req.Result,
	}
	if cmd != nil {
		data["command_type"] = string(cmd.CommandType)
		data["command_name"] = cmd.CommandName
	}
	if _, err := s.notifier.Post(c.Request.Context(), models.CreateMessageRequest{
		EventID:     exec.EventID,
		RoundID:     exec.RoundID,
		MessageFrom: message.MessageFromUser,
		MessageType: models.MessageTypeCommandResult,
		Data:        data,
		UserID:      strconv.Itoa(claims.UserID),
	}); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := s.engine.FromExecution(c.Request.Context(), exec); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "execution completed", exec)
}

// intQuery parses an integer query parameter, falling back on absent or
// unparseable values.
func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
