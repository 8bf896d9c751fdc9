package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/pkg/services"
)

// CreateUserRequest is the payload for POST /api/user/.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserRequest carries the mutable account fields. Absent fields
// leave the current value untouched.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ChangePasswordRequest is the payload for PUT /api/user/:user_id/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// listUsersHandler handles GET /api/user/.
func (s *Server) listUsersHandler(c *gin.Context) {
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", gin.H{"users": users})
}

// createUserHandler handles POST /api/user/.
func (s *Server) createUserHandler(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.users.Create(c.Request.Context(), services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, "user created", created)
}

// getUserHandler handles GET /api/user/:user_id.
func (s *Server) getUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	account, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "", account)
}

// updateUserHandler handles PUT /api/user/:user_id.
func (s *Server) updateUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.users.Update(c.Request.Context(), id, services.UpdateUserInput{
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "user updated", updated)
}

// deleteUserHandler handles DELETE /api/user/:user_id. Admins cannot
// delete their own account, which keeps at least one working login.
func (s *Server) deleteUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	claims, _ := claimsFrom(c)
	if claims.UserID == id {
		respondError(c, http.StatusBadRequest, "cannot delete your own account")
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "user deleted", nil)
}

// changePasswordHandler handles PUT /api/user/:user_id/password. Only
// the account owner may change their password; the current password is
// verified in the service.
func (s *Server) changePasswordHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	claims, _ := claimsFrom(c)
	if claims.UserID != id {
		respondError(c, http.StatusForbidden, "can only change your own password")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.users.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, "password changed", nil)
}

// userIDParam parses the :user_id path segment. Writes the 400 response
// itself so handlers can bail with a bare return.
func userIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "user_id must be an integer")
		return 0, false
	}
	return id, true
}
