// Package config loads typed configuration sections from the environment.
// A .env file is read at process start (godotenv); every section has
// compiled-in defaults so a bare environment still yields a runnable
// configuration for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object that encapsulates
// all sections read from the environment.
// This is the primary object returned by Load() and used throughout the application.
type Config struct {
	LLM       LLMConfig
	SOAR      SOARConfig
	Worker    WorkerConfig
	Broker    BrokerConfig
	Auth      AuthConfig
	Server    ServerConfig
	Retention RetentionConfig
}

// Load reads every configuration section from the environment.
func Load() (*Config, error) {
	llm, err := LoadLLMConfig()
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	soar, err := LoadSOARConfig()
	if err != nil {
		return nil, fmt.Errorf("soar config: %w", err)
	}
	worker, err := LoadWorkerConfig()
	if err != nil {
		return nil, fmt.Errorf("worker config: %w", err)
	}
	broker, err := LoadBrokerConfig()
	if err != nil {
		return nil, fmt.Errorf("broker config: %w", err)
	}
	auth, err := LoadAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}
	server, err := LoadServerConfig()
	if err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	retention, err := LoadRetentionConfig()
	if err != nil {
		return nil, fmt.Errorf("retention config: %w", err)
	}

	return &Config{
		LLM:       llm,
		SOAR:      soar,
		Worker:    worker,
		Broker:    broker,
		Auth:      auth,
		Server:    server,
		Retention: retention,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

// getEnvSeconds reads an integer environment variable expressed in seconds.
// Deployment environments set bare second counts, not duration strings.
func getEnvSeconds(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(n) * time.Second, nil
}
