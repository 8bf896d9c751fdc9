package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls purging of closed events. Every analysis round
// adds tasks, actions, commands, executions, messages and model call
// records; without a retention window the tables grow without bound.
type RetentionConfig struct {
	// Enabled turns the background retention sweep on or off.
	Enabled bool

	// EventRetentionDays is how many days a completed or failed event is
	// kept before it is purged together with its decomposition tree.
	EventRetentionDays int

	// SweepInterval is how often the retention loop runs.
	SweepInterval time.Duration

	// SweepBatchSize caps how many events a single sweep pass purges.
	// The remainder waits for the next pass.
	SweepBatchSize int
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		Enabled:            true,
		EventRetentionDays: 90,
		SweepInterval:      12 * time.Hour,
		SweepBatchSize:     50,
	}
}

// LoadRetentionConfig reads the retention section from the environment.
func LoadRetentionConfig() (RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	enabled, err := getEnvBool("RETENTION_ENABLED", cfg.Enabled)
	if err != nil {
		return RetentionConfig{}, err
	}
	cfg.Enabled = enabled

	days, err := getEnvInt("EVENT_RETENTION_DAYS", cfg.EventRetentionDays)
	if err != nil {
		return RetentionConfig{}, err
	}
	cfg.EventRetentionDays = days

	interval, err := getEnvSeconds("RETENTION_SWEEP_INTERVAL", cfg.SweepInterval)
	if err != nil {
		return RetentionConfig{}, err
	}
	cfg.SweepInterval = interval

	batch, err := getEnvInt("RETENTION_SWEEP_BATCH", cfg.SweepBatchSize)
	if err != nil {
		return RetentionConfig{}, err
	}
	cfg.SweepBatchSize = batch

	if err := cfg.Validate(); err != nil {
		return RetentionConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would make the sweep
// either a no-op or a hot loop.
func (c RetentionConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.EventRetentionDays < 1 {
		return fmt.Errorf("EVENT_RETENTION_DAYS must be at least 1, got %d", c.EventRetentionDays)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("RETENTION_SWEEP_INTERVAL must be positive, got %v", c.SweepInterval)
	}
	if c.SweepBatchSize < 1 {
		return fmt.Errorf("RETENTION_SWEEP_BATCH must be at least 1, got %d", c.SweepBatchSize)
	}
	return nil
}
