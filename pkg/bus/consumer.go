package bus

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/deepsoc/deepsoc/pkg/config"
)

// Handler processes one delivery. A nil return acks the message; an
// error nacks it without requeue so a malformed payload cannot wedge
// the queue.
type Handler func(routingKey string, body []byte) error

// errDeliveriesClosed signals that the broker closed our channel and
// the consume loop should redial.
var errDeliveriesClosed = errors.New("delivery channel closed by broker")

// Consumer binds the frontend queue to the notification exchange and
// feeds deliveries to a handler. It owns its connection and redials
// forever until stopped, so a broker restart only pauses the push path.
type Consumer struct {
	cfg     config.BrokerConfig
	handler Handler

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewConsumer creates a consumer for the configured queue.
func NewConsumer(cfg config.BrokerConfig, handler Handler) *Consumer {
	return &Consumer{
		cfg:     cfg,
		handler: handler,
		stopCh:  make(chan struct{}),
	}
}

// Start begins consuming in a goroutine.
func (c *Consumer) Start() {
	c.wg.Add(1)
	go c.run()
}

// Stop signals the consumer to stop and waits for it to finish.
// Safe to call multiple times.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

func (c *Consumer) run() {
	defer c.wg.Done()

	log := slog.With("queue", c.cfg.Queue)
	log.Info("Notification consumer started")

	for {
		select {
		case <-c.stopCh:
			log.Info("Notification consumer shutting down")
			return
		default:
			if err := c.consumeOnce(); err != nil {
				log.Warn("Consume session ended, redialing", "error", err)
				c.sleep(c.cfg.PublishRetryDelay)
			}
		}
	}
}

// consumeOnce holds one broker session: dial, declare topology, then
// drain deliveries until the channel breaks or Stop is called.
func (c *Consumer) consumeOnce() error {
	conn, err := amqp.Dial(c.cfg.URL())
	if err != nil {
		return fmt.Errorf("dialing RabbitMQ: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}

	if err := declareExchange(ch, c.cfg.Exchange); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring queue %q: %w", c.cfg.Queue, err)
	}
	if err := ch.QueueBind(c.cfg.Queue, c.cfg.BindingKey, c.cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("binding queue %q to %q: %w", c.cfg.Queue, c.cfg.Exchange, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return fmt.Errorf("setting prefetch: %w", err)
	}

	deliveries, err := ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("starting consume: %w", err)
	}

	for {
		select {
		case <-c.stopCh:
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errDeliveriesClosed
			}
			c.dispatch(d)
		}
	}
}

func (c *Consumer) dispatch(d amqp.Delivery) {
	if err := c.handler(d.RoutingKey, d.Body); err != nil {
		slog.Warn("Dropping undeliverable notification",
			"routing_key", d.RoutingKey, "error", err)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// sleep waits for the given duration or until stop is signalled.
func (c *Consumer) sleep(d time.Duration) {
	select {
	case <-c.stopCh:
	case <-time.After(d):
	}
}
