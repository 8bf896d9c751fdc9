package config

import (
	"fmt"
	"time"
)

// WorkerConfig contains worker loop and workflow progression configuration.
// These values control how pending rows are polled and claimed, and how many
// rounds an event may run before it is forced to completion.
type WorkerConfig struct {
	// PollInterval is the base interval for checking pending rows.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// MaxBackoff caps the exponential backoff applied after idle polls.
	MaxBackoff time.Duration

	// EventMaxRound is the number of analysis rounds an event may run.
	// An event whose current round reaches this value completes instead of
	// starting another round.
	EventMaxRound int

	// TaskRetryLimit is the number of processing cycles a task or action may
	// be skipped by the model before it is marked failed.
	TaskRetryLimit int

	// LifecycleInterval is how often the lifecycle manager re-evaluates
	// events and re-drives stalled status propagation.
	LifecycleInterval time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight work
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultWorkerConfig returns the built-in worker defaults.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxBackoff:              30 * time.Second,
		EventMaxRound:           3,
		TaskRetryLimit:          3,
		LifecycleInterval:       10 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

// LoadWorkerConfig reads the worker section from the environment.
func LoadWorkerConfig() (WorkerConfig, error) {
	cfg := DefaultWorkerConfig()

	maxRound, err := getEnvInt("EVENT_MAX_ROUND", cfg.EventMaxRound)
	if err != nil {
		return WorkerConfig{}, err
	}
	cfg.EventMaxRound = maxRound

	retryLimit, err := getEnvInt("WORKER_TASK_RETRY_LIMIT", cfg.TaskRetryLimit)
	if err != nil {
		return WorkerConfig{}, err
	}
	cfg.TaskRetryLimit = retryLimit

	pollInterval, err := getEnvSeconds("WORKER_POLL_INTERVAL", cfg.PollInterval)
	if err != nil {
		return WorkerConfig{}, err
	}
	cfg.PollInterval = pollInterval

	maxBackoff, err := getEnvSeconds("WORKER_MAX_BACKOFF", cfg.MaxBackoff)
	if err != nil {
		return WorkerConfig{}, err
	}
	cfg.MaxBackoff = maxBackoff

	lifecycleInterval, err := getEnvSeconds("LIFECYCLE_INTERVAL", cfg.LifecycleInterval)
	if err != nil {
		return WorkerConfig{}, err
	}
	cfg.LifecycleInterval = lifecycleInterval

	if err := cfg.Validate(); err != nil {
		return WorkerConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would stall the workflow.
func (c WorkerConfig) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("WORKER_POLL_INTERVAL must be positive, got %v", c.PollInterval)
	}
	if c.MaxBackoff < c.PollInterval {
		return fmt.Errorf("WORKER_MAX_BACKOFF must be at least the poll interval, got %v", c.MaxBackoff)
	}
	if c.EventMaxRound < 1 {
		return fmt.Errorf("EVENT_MAX_ROUND must be at least 1, got %d", c.EventMaxRound)
	}
	if c.TaskRetryLimit < 1 {
		return fmt.Errorf("WORKER_TASK_RETRY_LIMIT must be at least 1, got %d", c.TaskRetryLimit)
	}
	if c.LifecycleInterval <= 0 {
		return fmt.Errorf("LIFECYCLE_INTERVAL must be positive, got %v", c.LifecycleInterval)
	}
	return nil
}
