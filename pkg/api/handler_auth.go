package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the credential payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginHandler handles POST /api/auth/login.
func (s *Server) loginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := s.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, expiresAt, err := s.tokens.Generate(account.ID, account.Username, string(account.Role))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "login successful", gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user":       account,
	})
}

// logoutHandler handles POST /api/auth/logout. Tokens are stateless;
// the client simply drops its copy.
func (s *Server) logoutHandler(c *gin.Context) {
	respondOK(c, "logged out", nil)
}

// meHandler handles GET /api/auth/me.
func (s *Server) meHandler(c *gin.Context) {
	claims, _ := claimsFrom(c)
	account, err := s.users.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", account)
}
