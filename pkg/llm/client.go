// Package llm implements the OpenAI-compatible chat completion client used by
// every role worker. Each completed call is recorded as an LLMRecord row; the
// recording is best-effort and never fails the call itself.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/pkg/config"
)

// ChatMessage is one entry in a chat completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one chat completion call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	History      []ChatMessage

	// Temperature overrides the configured default when non-nil.
	Temperature *float64

	// LongText forces the long-context model regardless of prompt size.
	LongText bool

	// EventID and RoundID tag the LLMRecord row, when known.
	EventID string
	RoundID int
}

// Caller is the interface workers use; it allows tests to substitute a stub.
type Caller interface {
	Call(ctx context.Context, req Request) (string, error)
}

// Client speaks the /chat/completions endpoint.
type Client struct {
	cfg        config.LLMConfig
	httpClient *http.Client
	db         *ent.Client
	logger     *slog.Logger
}

// NewClient creates an LLM client. db may be nil, in which case no LLMRecord
// rows are written (used by tests that only exercise transport).
func NewClient(cfg config.LLMConfig, db *ent.Client, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		db:         db,
		logger:     logger,
	}
}

type completionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens        int `json:"prompt_tokens"`
		CompletionTokens    int `json:"completion_tokens"`
		TotalTokens         int `json:"total_tokens"`
		PromptTokensDetails *struct {
			CachedTokens int `json:"cached_tokens"`
		} `json:"prompt_tokens_details"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Call sends a chat completion request and returns the assistant content.
// The model is chosen by prompt length unless req.LongText forces the
// long-context variant.
func (c *Client) Call(ctx context.Context, req Request) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("LLM_API_KEY is not set")
	}

	messages := make([]ChatMessage, 0, len(req.History)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: req.SystemPrompt})
	messages = append(messages, req.History...)
	messages = append(messages, ChatMessage{Role: "user", Content: req.UserPrompt})

	promptLen := 0
	for _, m := range messages {
		promptLen += len([]rune(m.Content))
	}
	model := c.cfg.ModelFor(promptLen)
	if req.LongText && c.cfg.ModelLongText != "" {
		model = c.cfg.ModelLongText
	}

	temperature := c.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	body, err := json.Marshal(map[string]any{
		"model":       model,
		"messages":    messages,
		"temperature": temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm request failed: %d %s", resp.StatusCode, string(respBody))
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return "", fmt.Errorf("llm error: %s: %s", parsed.Error.Type, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	content := parsed.Choices[0].Message.Content

	c.record(ctx, req, model, messages, content, respBody, parsed)

	return content, nil
}

// record writes the audit row. Failure is logged and swallowed.
func (c *Client) record(ctx context.Context, req Request, model string, messages []ChatMessage, content string, raw []byte, parsed completionResponse) {
	if c.db == nil {
		return
	}

	requestMessages := make([]map[string]interface{}, len(messages))
	for i, m := range messages {
		requestMessages[i] = map[string]interface{}{"role": m.Role, "content": m.Content}
	}

	var full map[string]interface{}
	if err := json.Unmarshal(raw, &full); err != nil {
		full = map[string]interface{}{"raw": string(raw)}
	}

	modelName := parsed.Model
	if modelName == "" {
		modelName = model
	}

	create := c.db.LLMRecord.Create().
		SetRequestID(parsed.ID).
		SetModelName(modelName).
		SetRequestMessages(requestMessages).
		SetResponseContent(content).
		SetResponseFull(full).
		SetPromptTokens(parsed.Usage.PromptTokens).
		SetCompletionTokens(parsed.Usage.CompletionTokens).
		SetTotalTokens(parsed.Usage.TotalTokens)
	if parsed.Usage.PromptTokensDetails != nil {
		create = create.SetCachedTokens(parsed.Usage.PromptTokensDetails.CachedTokens)
	}
	if req.EventID != "" {
		create = create.SetEventID(req.EventID)
	}
	if req.RoundID > 0 {
		create = create.SetRoundID(req.RoundID)
	}

	if _, err := create.Save(ctx); err != nil {
		c.logger.Warn("failed to record llm call", "error", err, "event_id", req.EventID)
	}
}
