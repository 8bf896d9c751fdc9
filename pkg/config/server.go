package config

import (
	"fmt"
	"strings"
)

// ServerConfig defines the HTTP listener and CORS policy.
type ServerConfig struct {
	Host string
	Port int

	// AllowedOrigins is the CORS allowlist. "*" allows any origin.
	AllowedOrigins []string
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:           "0.0.0.0",
		Port:           5000,
		AllowedOrigins: []string{"*"},
	}
}

// LoadServerConfig reads the server section from the environment.
func LoadServerConfig() (ServerConfig, error) {
	cfg := DefaultServerConfig()

	cfg.Host = getEnv("LISTEN_HOST", cfg.Host)

	port, err := getEnvInt("LISTEN_PORT", cfg.Port)
	if err != nil {
		return ServerConfig{}, err
	}
	cfg.Port = port

	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would break the listener.
func (c ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("LISTEN_PORT must be a valid port, got %d", c.Port)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must not be empty")
	}
	return nil
}

// Addr renders the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
