package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/pkg/prompts"
)

func TestStateAPI_DrivingMode(t *testing.T) {
	ts := newTestServer(t)

	t.Run("defaults to auto", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/state/driving-mode", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, "auto", data["mode"])
	})

	t.Run("switch to manual", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/state/driving-mode", ts.analystToken,
			DrivingModeRequest{Mode: "manual"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/state/driving-mode", ts.analystToken, nil)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, "manual", data["mode"])
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/state/driving-mode", ts.analystToken,
			DrivingModeRequest{Mode: "cruise"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := envelope(t, rec, "error")
		assert.Contains(t, env.Message, "auto or manual")
	})
}

func TestPromptAPI(t *testing.T) {
	ts := newTestServer(t)

	t.Run("list carries every known prompt", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/prompt/", ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		list, ok := data["prompts"].([]any)
		require.True(t, ok)
		require.Len(t, list, len(prompts.Names()))
		for _, entry := range list {
			row := entry.(map[string]any)
			assert.NotEmpty(t, row["name"])
			assert.NotEmpty(t, row["content"], "prompt %v has no default", row["name"])
		}
	})

	t.Run("get falls back to the compiled-in default", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/prompt/"+prompts.NameCaptain, ts.analystToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, prompts.NameCaptain, data["name"])
		assert.NotEmpty(t, data["content"])
	})

	t.Run("admins can override a prompt", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/prompt/"+prompts.NameCaptain, ts.adminToken,
			SetPromptRequest{Content: "You are the duty captain. Keep rounds short."})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/prompt/"+prompts.NameCaptain, ts.analystToken, nil)
		data := dataMap(t, envelope(t, rec, "success"))
		assert.Equal(t, "You are the duty captain. Keep rounds short.", data["content"])
	})

	t.Run("analysts cannot write prompts", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/prompt/"+prompts.NameCaptain, ts.analystToken,
			SetPromptRequest{Content: "hijacked"})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown name is a 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/prompt/role_soc_janitor", ts.analystToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = ts.do(t, http.MethodPut, "/api/prompt/role_soc_janitor", ts.adminToken,
			SetPromptRequest{Content: "sweep the floors"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
