package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/pkg/models"
)

// DrivingModeRequest is the payload for PUT /api/state/driving-mode.
type DrivingModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// getDrivingModeHandler handles GET /api/state/driving-mode.
func (s *Server) getDrivingModeHandler(c *gin.Context) {
	mode, err := s.settings.GetDrivingMode(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", gin.H{"mode": mode})
}

// setDrivingModeHandler handles PUT /api/state/driving-mode. In manual
// mode the lifecycle manager parks finished rounds until a human
// switches back.
func (s *Server) setDrivingModeHandler(c *gin.Context) {
	var req DrivingModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	mode := models.DrivingMode(req.Mode)
	if !mode.Valid() {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("mode must be auto or manual, got '%s'", req.Mode))
		return
	}

	if err := s.settings.SetDrivingMode(c.Request.Context(), mode); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "driving mode updated", gin.H{"mode": mode})
}
