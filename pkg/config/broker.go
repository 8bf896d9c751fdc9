package config

import (
	"fmt"
	"net/url"
	"time"
)

// BrokerConfig defines the RabbitMQ connection and the notification topology.
// The broker is a best-effort delivery channel; the messages table remains
// the canonical record even when the broker is down.
type BrokerConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string

	// Exchange is the durable topic exchange notifications are published to.
	Exchange string

	// Queue is the durable queue the frontend consumer binds.
	Queue string

	// BindingKey is the topic pattern binding Queue to Exchange.
	BindingKey string

	// PublishRetries is the number of attempts before a publish is dropped.
	PublishRetries int

	// PublishRetryDelay is the delay between publish attempts.
	PublishRetryDelay time.Duration
}

// DefaultBrokerConfig returns the built-in broker defaults.
func DefaultBrokerConfig() BrokerConfig {
	return BrokerConfig{
		Host:              "localhost",
		Port:              5672,
		User:              "guest",
		Password:          "guest",
		VHost:             "/",
		Exchange:          "deepsoc_notifications_exchange",
		Queue:             "deepsoc_frontend_notifications_queue",
		BindingKey:        "notifications.frontend.#",
		PublishRetries:    5,
		PublishRetryDelay: 5 * time.Second,
	}
}

// LoadBrokerConfig reads the broker section from the environment.
func LoadBrokerConfig() (BrokerConfig, error) {
	cfg := DefaultBrokerConfig()

	cfg.Host = getEnv("RABBITMQ_HOST", cfg.Host)
	cfg.User = getEnv("RABBITMQ_USER", cfg.User)
	cfg.Password = getEnv("RABBITMQ_PASSWORD", cfg.Password)
	cfg.VHost = getEnv("RABBITMQ_VHOST", cfg.VHost)

	port, err := getEnvInt("RABBITMQ_PORT", cfg.Port)
	if err != nil {
		return BrokerConfig{}, err
	}
	cfg.Port = port

	retries, err := getEnvInt("RABBITMQ_PUBLISH_RETRIES", cfg.PublishRetries)
	if err != nil {
		return BrokerConfig{}, err
	}
	cfg.PublishRetries = retries

	if err := cfg.Validate(); err != nil {
		return BrokerConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would break the dial URL.
func (c BrokerConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("RABBITMQ_HOST must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("RABBITMQ_PORT must be a valid port, got %d", c.Port)
	}
	if c.PublishRetries < 1 {
		return fmt.Errorf("RABBITMQ_PUBLISH_RETRIES must be at least 1, got %d", c.PublishRetries)
	}
	return nil
}

// URL renders the amqp dial URL. The vhost is path-escaped so the default
// "/" vhost becomes %2F as the amqp scheme requires.
func (c BrokerConfig) URL() string {
	return fmt.Sprintf("amqp://%s@%s:%d/%s",
		url.UserPassword(c.User, c.Password).String(),
		c.Host,
		c.Port,
		url.PathEscape(c.VHost),
	)
}
