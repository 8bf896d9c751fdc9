package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP error envelopes.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		respondError(c, http.StatusBadRequest, validErr.Error())
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		respondError(c, http.StatusNotFound, "resource not found")
		return
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if errors.Is(err, services.ErrNotWaiting) {
		respondError(c, http.StatusConflict, "execution is not waiting for manual completion")
		return
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		respondError(c, http.StatusConflict, "event is not in a state that allows this change")
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		respondError(c, http.StatusConflict, "resource already exists")
		return
	}
	if errors.Is(err, prompts.ErrUnknownPrompt) {
		respondError(c, http.StatusNotFound, "unknown prompt name")
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
	respondError(c, http.StatusInternalServerError, "internal server error")
}
