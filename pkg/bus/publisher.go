package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/deepsoc/deepsoc/pkg/config"
)

// Publisher delivers notification payloads to the broker.
type Publisher interface {
	// Publish sends one JSON payload with the given routing key.
	Publish(ctx context.Context, routingKey string, body []byte) error
	// Close releases the underlying connection.
	Close() error
}

// AMQPPublisher publishes to a durable topic exchange over a single
// guarded channel. A failed publish triggers one reconnect-and-retry;
// if that also fails the error is returned and the caller decides
// whether to drop (notifications are droppable, the DB row is not).
type AMQPPublisher struct {
	cfg config.BrokerConfig

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher creates a publisher and eagerly dials the broker.
// Dialing retries per the config before giving up.
func NewPublisher(cfg config.BrokerConfig) (*AMQPPublisher, error) {
	p := &AMQPPublisher{cfg: cfg}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

// connectLocked dials the broker, opens a channel, and declares the
// exchange. Callers must hold p.mu.
func (p *AMQPPublisher) connectLocked(ctx context.Context) error {
	p.closeLocked()

	var lastErr error
	for attempt := 1; attempt <= p.cfg.PublishRetries; attempt++ {
		conn, err := amqp.Dial(p.cfg.URL())
		if err == nil {
			ch, chErr := conn.Channel()
			if chErr == nil {
				if declErr := declareExchange(ch, p.cfg.Exchange); declErr == nil {
					p.conn = conn
					p.ch = ch
					slog.Info("Connected to RabbitMQ",
						"host", p.cfg.Host, "exchange", p.cfg.Exchange)
					return nil
				} else {
					lastErr = declErr
				}
			} else {
				lastErr = chErr
			}
			_ = conn.Close()
		} else {
			lastErr = err
		}

		slog.Warn("RabbitMQ connection attempt failed",
			"attempt", attempt, "max_attempts", p.cfg.PublishRetries, "error", lastErr)
		if attempt < p.cfg.PublishRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.cfg.PublishRetryDelay):
			}
		}
	}
	return fmt.Errorf("connecting to RabbitMQ after %d attempts: %w", p.cfg.PublishRetries, lastErr)
}

// declareExchange is idempotent; durable topic exchanges survive broker
// restarts, matching the durable queue on the consumer side.
func declareExchange(ch *amqp.Channel, name string) error {
	if err := ch.ExchangeDeclare(name, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring exchange %q: %w", name, err)
	}
	return nil
}

// Publish sends body with persistent delivery. On a broken channel it
// reconnects once and retries before reporting failure.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.conn == nil || p.conn.IsClosed() {
		if err := p.connectLocked(ctx); err != nil {
			return err
		}
	}

	err := p.publishLocked(ctx, routingKey, body)
	if err == nil {
		return nil
	}

	slog.Warn("Publish failed, reconnecting and retrying once",
		"routing_key", routingKey, "error", err)
	if err := p.connectLocked(ctx); err != nil {
		return err
	}
	if err := p.publishLocked(ctx, routingKey, body); err != nil {
		return fmt.Errorf("publishing to %q after reconnect: %w", routingKey, err)
	}
	return nil
}

func (p *AMQPPublisher) publishLocked(ctx context.Context, routingKey string, body []byte) error {
	return p.ch.PublishWithContext(ctx, p.cfg.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// Close shuts the channel and connection down.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *AMQPPublisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// NopPublisher discards every publish. Used when the broker is not
// configured; message rows are still written so nothing is lost except
// live push.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }
func (NopPublisher) Close() error                                  { return nil }
