// Package soar implements the client for the SOAR platform that runs
// playbooks. A run is submit, poll until SUCCESS or the retry budget is
// exhausted, then fetch the result payload.
package soar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/deepsoc/deepsoc/pkg/config"
)

// ErrActivityTimeout reports a playbook that did not reach SUCCESS within the
// configured polling budget.
var ErrActivityTimeout = errors.New("playbook activity did not complete in time")

// Runner is the interface the executor worker uses; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, playbookID string, params map[string]any) (map[string]any, error)
}

// Client provides HTTP access to the SOAR API.
type Client struct {
	httpClient *http.Client
	cfg        config.SOARConfig
	logger     *slog.Logger
}

// NewClient creates a SOAR client.
func NewClient(cfg config.SOARConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type executionParam struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// ExecutePlaybook submits a playbook run and returns the activity id used to
// poll for completion. playbookID is a decimal string; it is sent as a bare
// number so ids above 2^53 survive intact.
func (c *Client) ExecutePlaybook(ctx context.Context, playbookID string, params map[string]any) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	requestParams := make([]executionParam, 0, len(params))
	for _, k := range keys {
		requestParams = append(requestParams, executionParam{Key: k, Value: params[k]})
	}

	payload := map[string]any{
		"eventId":              0,
		"executorInstanceId":   json.Number(playbookID),
		"executorInstanceType": "PLAYBOOK",
		"params":               requestParams,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal execution request: %w", err)
	}

	endpoint := c.cfg.APIURL + "/api/event/execution"
	result, err := c.doJSON(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("submit playbook %s: %w", playbookID, err)
	}

	activityID := stringify(result)
	if activityID == "" {
		return "", fmt.Errorf("submit playbook %s: no activity id in response", playbookID)
	}

	c.logger.Info("playbook submitted", "playbook_id", playbookID, "activity_id", activityID)
	return activityID, nil
}

// ActivityStatus returns the executeStatus of a running activity.
func (c *Client) ActivityStatus(ctx context.Context, activityID string) (string, error) {
	endpoint := c.cfg.APIURL + "/odp/core/v1/api/activity/" + url.PathEscape(activityID)
	result, err := c.doJSON(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("activity %s status: %w", activityID, err)
	}

	status, ok := result.(map[string]any)
	if !ok {
		return "", fmt.Errorf("activity %s status: unexpected result shape", activityID)
	}
	executeStatus, _ := status["executeStatus"].(string)
	return executeStatus, nil
}

// ActivityResult fetches the payload of a finished activity.
func (c *Client) ActivityResult(ctx context.Context, activityID string) (map[string]any, error) {
	endpoint := c.cfg.APIURL + "/odp/core/v1/api/event/activity?activityId=" + url.QueryEscape(activityID)
	result, err := c.doJSON(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("activity %s result: %w", activityID, err)
	}

	switch v := result.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return nil, fmt.Errorf("activity %s result: empty result", activityID)
	default:
		return map[string]any{"result": v}, nil
	}
}

// WaitForCompletion polls the activity until it reports SUCCESS, then fetches
// its result. It returns ErrActivityTimeout when the retry budget runs out.
func (c *Client) WaitForCompletion(ctx context.Context, activityID string) (map[string]any, error) {
	for attempt := 0; attempt < c.cfg.RetryCount; attempt++ {
		status, err := c.ActivityStatus(ctx, activityID)
		if err != nil {
			c.logger.Warn("activity status poll failed", "activity_id", activityID, "error", err)
		} else if status == "SUCCESS" {
			return c.ActivityResult(ctx, activityID)
		}

		if err := sleep(ctx, c.cfg.RetryDelay); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("activity %s: %w", activityID, ErrActivityTimeout)
}

// Run submits a playbook and waits for its result.
func (c *Client) Run(ctx context.Context, playbookID string, params map[string]any) (map[string]any, error) {
	activityID, err := c.ExecutePlaybook(ctx, playbookID, params)
	if err != nil {
		return nil, err
	}
	return c.WaitForCompletion(ctx, activityID)
}

// doJSON performs a request and unwraps the "result" field of the response.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body []byte) (any, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SOAR returned HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope struct {
		Result any `json:"result"`
	}
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return envelope.Result, nil
}

// stringify renders an activity id that may arrive as a string or a number.
func stringify(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
