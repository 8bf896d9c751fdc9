package soar

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/pkg/config"
)

func testConfig(apiURL string) config.SOARConfig {
	return config.SOARConfig{
		APIURL:     apiURL,
		Token:      "soar-test-token",
		Timeout:    5 * time.Second,
		RetryCount: 5,
		RetryDelay: time.Millisecond,
	}
}

func writeResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"result": result}))
}

func TestClientRun(t *testing.T) {
	var (
		submitBody  string
		authHeader  string
		statusPolls atomic.Int32
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/event/execution":
			authHeader = r.Header.Get("Authorization")
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			submitBody = string(body)
			writeResult(t, w, json.Number("424242"))
		case r.Method == http.MethodGet && r.URL.Path == "/odp/core/v1/api/activity/424242":
			if statusPolls.Add(1) < 3 {
				writeResult(t, w, map[string]any{"executeStatus": "RUNNING"})
				return
			}
			writeResult(t, w, map[string]any{"executeStatus": "SUCCESS"})
		case r.Method == http.MethodGet && r.URL.Path == "/odp/core/v1/api/event/activity":
			require.Equal(t, "424242", r.URL.Query().Get("activityId"))
			writeResult(t, w, map[string]any{"host": "ws-114", "verdict": "isolated"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), slog.Default())

	// A playbook id above 2^53: float64 round-tripping would corrupt it.
	result, err := client.Run(context.Background(), "9007199254740993", map[string]any{
		"address": "203.0.113.7",
		"action":  "isolate",
	})
	require.NoError(t, err)
	assert.Equal(t, "ws-114", result["host"])
	assert.Equal(t, "isolated", result["verdict"])

	assert.Equal(t, "Bearer soar-test-token", authHeader)
	assert.Contains(t, submitBody, `"executorInstanceId":9007199254740993`)
	assert.Contains(t, submitBody, `"executorInstanceType":"PLAYBOOK"`)
	// params render as a sorted key/value list
	actionIdx := strings.Index(submitBody, `"key":"action"`)
	addressIdx := strings.Index(submitBody, `"key":"address"`)
	require.Positive(t, actionIdx)
	require.Positive(t, addressIdx)
	assert.Less(t, actionIdx, addressIdx)
	assert.EqualValues(t, 3, statusPolls.Load())
}

func TestClientWaitForCompletion_Timeout(t *testing.T) {
	var statusPolls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statusPolls.Add(1)
		writeResult(t, w, map[string]any{"executeStatus": "RUNNING"})
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RetryCount = 3
	client := NewClient(cfg, slog.Default())

	_, err := client.WaitForCompletion(context.Background(), "55")
	require.ErrorIs(t, err, ErrActivityTimeout)
	assert.EqualValues(t, 3, statusPolls.Load())
}

func TestClientWaitForCompletion_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeResult(t, w, map[string]any{"executeStatus": "RUNNING"})
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RetryDelay = time.Minute
	client := NewClient(cfg, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.WaitForCompletion(ctx, "55")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientExecutePlaybook_Errors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), slog.Default())
		_, err := client.ExecutePlaybook(context.Background(), "1", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})

	t.Run("missing activity id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeResult(t, w, nil)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), slog.Default())
		_, err := client.ExecutePlaybook(context.Background(), "1", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no activity id")
	})
}

func TestClientActivityResult_Shapes(t *testing.T) {
	t.Run("scalar result wrapped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeResult(t, w, "all clear")
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), slog.Default())
		result, err := client.ActivityResult(context.Background(), "7")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"result": "all clear"}, result)
	})

	t.Run("empty result rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeResult(t, w, nil)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), slog.Default())
		_, err := client.ActivityResult(context.Background(), "7")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty result")
	})
}
