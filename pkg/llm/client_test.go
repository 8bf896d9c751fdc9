package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/pkg/config"
)

func testConfig(baseURL string) config.LLMConfig {
	cfg := config.DefaultLLMConfig()
	cfg.BaseURL = baseURL
	cfg.APIKey = "sk-test"
	cfg.RequestTimeout = 5 * time.Second
	return cfg
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"id":    "chatcmpl-123",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{
			"prompt_tokens":         120,
			"completion_tokens":     30,
			"total_tokens":          150,
			"prompt_tokens_details": map[string]any{"cached_tokens": 100},
		},
	}
}

func TestClientCall(t *testing.T) {
	var captured struct {
		auth    string
		payload map[string]any
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		captured.auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.payload))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(completionBody("response_type: ROGER")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL+"/v1"), nil, slog.Default())

	content, err := client.Call(context.Background(), Request{
		SystemPrompt: "You are the captain.",
		UserPrompt:   "Plan the response.",
		History: []ChatMessage{
			{Role: "user", Content: "earlier question"},
			{Role: "assistant", Content: "earlier answer"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "response_type: ROGER", content)

	assert.Equal(t, "Bearer sk-test", captured.auth)
	assert.Equal(t, "gpt-4o-mini", captured.payload["model"])
	assert.Equal(t, 0.6, captured.payload["temperature"])

	messages := captured.payload["messages"].([]any)
	require.Len(t, messages, 4)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	last := messages[3].(map[string]any)
	assert.Equal(t, "Plan the response.", last["content"])
}

func TestClientCallLongTextModel(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotModel = payload["model"].(string)
		require.NoError(t, json.NewEncoder(w).Encode(completionBody("ok")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, slog.Default())

	t.Run("forced", func(t *testing.T) {
		_, err := client.Call(context.Background(), Request{UserPrompt: "short", LongText: true})
		require.NoError(t, err)
		assert.Equal(t, "qwen-long", gotModel)
	})

	t.Run("by prompt length", func(t *testing.T) {
		long := make([]rune, 20001)
		for i := range long {
			long[i] = 'x'
		}
		_, err := client.Call(context.Background(), Request{UserPrompt: string(long)})
		require.NoError(t, err)
		assert.Equal(t, "qwen-long", gotModel)
	})

	t.Run("default", func(t *testing.T) {
		_, err := client.Call(context.Background(), Request{UserPrompt: "short"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", gotModel)
	})
}

func TestClientCallTemperatureOverride(t *testing.T) {
	var gotTemperature float64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotTemperature = payload["temperature"].(float64)
		require.NoError(t, json.NewEncoder(w).Encode(completionBody("ok")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, slog.Default())

	temp := 0.3
	_, err := client.Call(context.Background(), Request{UserPrompt: "summarize", Temperature: &temp})
	require.NoError(t, err)
	assert.Equal(t, 0.3, gotTemperature)
}

func TestClientCallErrors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := config.DefaultLLMConfig()
		client := NewClient(cfg, nil, slog.Default())

		_, err := client.Call(context.Background(), Request{UserPrompt: "hello"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_API_KEY")
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), nil, slog.Default())
		_, err := client.Call(context.Background(), Request{UserPrompt: "hello"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("error object in body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"bad model"}}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), nil, slog.Default())
		_, err := client.Call(context.Background(), Request{UserPrompt: "hello"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad model")
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), nil, slog.Default())
		_, err := client.Call(context.Background(), Request{UserPrompt: "hello"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})
}
