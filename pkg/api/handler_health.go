package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/pkg/database"
	"github.com/deepsoc/deepsoc/pkg/version"
)

// HealthResponse is returned by GET /health. It bypasses the envelope
// so probes and load balancers see a conventional shape.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
	Error    string                 `json:"error,omitempty"`
}

// healthHandler handles GET /health with a bounded database ping.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Version:  version.Full(),
			Database: dbHealth,
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  version.Full(),
		Database: dbHealth,
	})
}
