package config

import (
	"fmt"
	"time"
)

// LLMConfig defines the connection to an OpenAI-compatible chat completion API.
type LLMConfig struct {
	// Base URL of the API, without the /chat/completions suffix
	BaseURL string

	// API key sent as a bearer token
	APIKey string

	// Model used for ordinary prompts
	Model string

	// Model used when the assembled prompt exceeds LongTextThreshold
	ModelLongText string

	// Sampling temperature
	Temperature float64

	// Prompt length (in runes) above which ModelLongText is selected
	LongTextThreshold int

	// Per-request timeout
	RequestTimeout time.Duration
}

// DefaultLLMConfig returns an LLMConfig with sensible defaults.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		BaseURL:           "https://api.openai.com/v1",
		Model:             "gpt-4o-mini",
		ModelLongText:     "qwen-long",
		Temperature:       0.6,
		LongTextThreshold: 20000,
		RequestTimeout:    120 * time.Second,
	}
}

// LoadLLMConfig reads the LLM section from the environment.
func LoadLLMConfig() (LLMConfig, error) {
	cfg := DefaultLLMConfig()

	cfg.BaseURL = getEnv("LLM_BASE_URL", cfg.BaseURL)
	cfg.APIKey = getEnv("LLM_API_KEY", cfg.APIKey)
	cfg.Model = getEnv("LLM_MODEL", cfg.Model)
	cfg.ModelLongText = getEnv("LLM_MODEL_LONG_TEXT", cfg.ModelLongText)

	temperature, err := getEnvFloat("LLM_TEMPERATURE", cfg.Temperature)
	if err != nil {
		return LLMConfig{}, err
	}
	cfg.Temperature = temperature

	threshold, err := getEnvInt("LLM_LONG_TEXT_THRESHOLD", cfg.LongTextThreshold)
	if err != nil {
		return LLMConfig{}, err
	}
	cfg.LongTextThreshold = threshold

	timeout, err := getEnvSeconds("LLM_REQUEST_TIMEOUT", cfg.RequestTimeout)
	if err != nil {
		return LLMConfig{}, err
	}
	cfg.RequestTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return LLMConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would break requests at runtime.
func (c LLMConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL must not be empty")
	}
	if c.Model == "" {
		return fmt.Errorf("LLM_MODEL must not be empty")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %v", c.Temperature)
	}
	if c.LongTextThreshold <= 0 {
		return fmt.Errorf("LLM_LONG_TEXT_THRESHOLD must be positive, got %d", c.LongTextThreshold)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("LLM_REQUEST_TIMEOUT must be positive, got %v", c.RequestTimeout)
	}
	return nil
}

// ModelFor picks the model for a prompt of the given rune length.
func (c LLMConfig) ModelFor(promptLen int) string {
	if promptLen > c.LongTextThreshold && c.ModelLongText != "" {
		return c.ModelLongText
	}
	return c.Model
}
