package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/pkg/prompts"
)

// PromptPayload is one prompt row in list and get responses.
type PromptPayload struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SetPromptRequest is the payload for PUT /api/prompt/:name.
type SetPromptRequest struct {
	Content string `json:"content" binding:"required"`
}

// listPromptsHandler handles GET /api/prompt/.
func (s *Server) listPromptsHandler(c *gin.Context) {
	names := prompts.Names()
	payload := make([]PromptPayload, 0, len(names))
	for _, name := range names {
		content, err := s.prompts.Get(c.Request.Context(), name)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		payload = append(payload, PromptPayload{Name: name, Content: content})
	}
	respondOK(c, "", gin.H{"prompts": payload})
}

// getPromptHandler handles GET /api/prompt/:name.
func (s *Server) getPromptHandler(c *gin.Context) {
	name := c.Param("name")
	content, err := s.prompts.Get(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", PromptPayload{Name: name, Content: content})
}

// setPromptHandler handles PUT /api/prompt/:name.
func (s *Server) setPromptHandler(c *gin.Context) {
	var req SetPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	name := c.Param("name")
	if err := s.prompts.Set(c.Request.Context(), name, req.Content); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "prompt updated", PromptPayload{Name: name, Content: req.Content})
}
