package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAPI_AdminCRUD(t *testing.T) {
	ts := newTestServer(t)

	var createdID int
	t.Run("create", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/user/", ts.adminToken, CreateUserRequest{
			Username: "daywatch",
			Email:    "daywatch@deepsoc.local",
			Password: "morning-rounds-7",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, "daywatch", data["username"])
		assert.Equal(t, "user", data["role"])
		assert.NotContains(t, rec.Body.String(), "password_hash")
		createdID = int(data["id"].(float64))
		require.NotZero(t, createdID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/user/", ts.adminToken, CreateUserRequest{
			Username: "daywatch",
			Email:    "other@deepsoc.local",
			Password: "morning-rounds-7",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		envelope(t, rec, "error")
	})

	t.Run("list", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/user/", ts.adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Len(t, data["users"], 3) // admin, nightwatch, daywatch
	})

	t.Run("get", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, fmt.Sprintf("/api/user/%d", createdID), ts.adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, "daywatch", data["username"])

		rec = ts.do(t, http.MethodGet, "/api/user/99999", ts.adminToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/user/abc", ts.adminToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		role := "admin"
		active := false
		rec := ts.do(t, http.MethodPut, fmt.Sprintf("/api/user/%d", createdID), ts.adminToken, UpdateUserRequest{
			Role:     &role,
			IsActive: &active,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, "admin", data["role"])
		assert.Equal(t, false, data["is_active"])
		// Untouched fields survive a partial update.
		assert.Equal(t, "daywatch@deepsoc.local", data["email"])

		badRole := "overlord"
		rec = ts.do(t, http.MethodPut, fmt.Sprintf("/api/user/%d", createdID), ts.adminToken, UpdateUserRequest{
			Role: &badRole,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "daywatch",
			"password": "morning-rounds-7",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", createdID), ts.adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/user/%d", createdID), ts.adminToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("admins cannot delete themselves", func(t *testing.T) {
		rec := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", ts.admin.ID), ts.adminToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := envelope(t, rec, "error")
		assert.Contains(t, env.Message, "own account")
	})
}

func TestUserAPI_Permissions(t *testing.T) {
	ts := newTestServer(t)

	t.Run("analysts cannot manage accounts", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/user/", ts.analystToken, CreateUserRequest{
			Username: "sneaky",
			Email:    "sneaky@deepsoc.local",
			Password: "let-me-in-123",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", ts.admin.ID), ts.analystToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUserAPI_ChangePassword(t *testing.T) {
	ts := newTestServer(t)
	selfPath := fmt.Sprintf("/api/user/%d/password", ts.analyst.ID)

	t.Run("wrong current password", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, selfPath, ts.analystToken, ChangePasswordRequest{
			CurrentPassword: "not-it",
			NewPassword:     "midnight-oil-11",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("only the owner may change it", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, selfPath, ts.adminToken, ChangePasswordRequest{
			CurrentPassword: "graveyard-shift-9",
			NewPassword:     "midnight-oil-11",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner with the right current password", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, selfPath, ts.analystToken, ChangePasswordRequest{
			CurrentPassword: "graveyard-shift-9",
			NewPassword:     "midnight-oil-11",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		// The old password is out, the new one works.
		rec = ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "nightwatch",
			"password": "graveyard-shift-9",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		rec = ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "nightwatch",
			"password": "midnight-oil-11",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("short new password", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, selfPath, ts.analystToken, ChangePasswordRequest{
			CurrentPassword: "midnight-oil-11",
			NewPassword:     "tiny",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
