package config

import (
	"fmt"
	"time"
)

// SOARConfig defines the connection to the SOAR platform that runs playbooks.
type SOARConfig struct {
	// Base URL of the SOAR API
	APIURL string

	// Bearer token for authentication
	Token string

	// Per-request timeout
	Timeout time.Duration

	// Number of polls for an activity result before giving up
	RetryCount int

	// Delay between polls
	RetryDelay time.Duration
}

// DefaultSOARConfig returns a SOARConfig with sensible defaults.
func DefaultSOARConfig() SOARConfig {
	return SOARConfig{
		APIURL:     "https://example.com",
		Timeout:    30 * time.Second,
		RetryCount: 3,
		RetryDelay: 5 * time.Second,
	}
}

// LoadSOARConfig reads the SOAR section from the environment.
func LoadSOARConfig() (SOARConfig, error) {
	cfg := DefaultSOARConfig()

	cfg.APIURL = getEnv("SOAR_API_URL", cfg.APIURL)
	cfg.Token = getEnv("SOAR_API_TOKEN", cfg.Token)

	timeout, err := getEnvSeconds("SOAR_API_TIMEOUT", cfg.Timeout)
	if err != nil {
		return SOARConfig{}, err
	}
	cfg.Timeout = timeout

	retryCount, err := getEnvInt("SOAR_RETRY_COUNT", cfg.RetryCount)
	if err != nil {
		return SOARConfig{}, err
	}
	cfg.RetryCount = retryCount

	retryDelay, err := getEnvSeconds("SOAR_RETRY_DELAY", cfg.RetryDelay)
	if err != nil {
		return SOARConfig{}, err
	}
	cfg.RetryDelay = retryDelay

	if err := cfg.Validate(); err != nil {
		return SOARConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would break requests at runtime.
func (c SOARConfig) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("SOAR_API_URL must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("SOAR_API_TIMEOUT must be positive, got %v", c.Timeout)
	}
	if c.RetryCount < 1 {
		return fmt.Errorf("SOAR_RETRY_COUNT must be at least 1, got %d", c.RetryCount)
	}
	if c.RetryDelay <= 0 {
		return fmt.Errorf("SOAR_RETRY_DELAY must be positive, got %v", c.RetryDelay)
	}
	return nil
}
