package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/pkg/auth"
)

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	t.Run("valid credentials return a working token", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "nightwatch",
			"password": "graveyard-shift-9",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		data := dataMap(t, envelope(t, rec, "success"))
		token, _ := data["token"].(string)
		require.NotEmpty(t, token)
		assert.NotEmpty(t, data["expires_at"])

		user, ok := data["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "nightwatch", user["username"])
		assert.NotContains(t, rec.Body.String(), "password_hash")

		me := ts.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, me.Code)
		meData := dataMap(t, envelope(t, me, "success"))
		assert.Equal(t, "nightwatch", meData["username"])
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "nightwatch",
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope(t, rec, "error")
	})

	t.Run("unknown user gets the same rejection", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "ghost",
			"password": "graveyard-shift-9",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "nightwatch",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ts := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/list", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := envelope(t, rec, "error")
		assert.Contains(t, env.Message, "missing bearer token")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/event/list", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		forger := auth.NewTokenManager("other-secret", time.Hour)
		forged, _, err := forger.Generate(ts.analyst.ID, ts.analyst.Username, "admin")
		require.NoError(t, err)
		rec := ts.do(t, http.MethodGet, "/api/event/list", forged, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("analyst is not an admin", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/user/", ts.analystToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("logout is stateless", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/logout", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// The token still verifies; the client is expected to drop it.
		me := ts.do(t, http.MethodGet, "/api/auth/me", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, me.Code)
	})
}
