package config

import (
	"fmt"
	"time"
)

// AuthConfig defines JWT signing and the bootstrap admin account.
type AuthConfig struct {
	// JWTSecret signs access tokens (HMAC-SHA256)
	JWTSecret string

	// TokenTTL is the access token lifetime
	TokenTTL time.Duration

	// Bootstrap admin account created by the init command when absent
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// DefaultAuthConfig returns the built-in auth defaults.
// The default secret exists for local development only; deployments must
// set JWT_SECRET_KEY.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:     "deepsoc_secret_key",
		TokenTTL:      24 * time.Hour,
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminEmail:    "admin@deepsoc.local",
	}
}

// LoadAuthConfig reads the auth section from the environment.
func LoadAuthConfig() (AuthConfig, error) {
	cfg := DefaultAuthConfig()

	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", cfg.JWTSecret)
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", cfg.AdminUsername)
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", cfg.AdminEmail)

	ttl, err := getEnvSeconds("JWT_TOKEN_TTL", cfg.TokenTTL)
	if err != nil {
		return AuthConfig{}, err
	}
	cfg.TokenTTL = ttl

	if err := cfg.Validate(); err != nil {
		return AuthConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would break token issuance.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TOKEN_TTL must be positive, got %v", c.TokenTTL)
	}
	return nil
}
