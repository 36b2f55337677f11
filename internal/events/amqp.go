package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/observability"
)

const exchangeType = "topic"

// Config contains event broker settings. An empty URL disables the broker.
type Config struct {
	URL             string        `env:"AMQP_URL"`
	Exchange        string        `env:"AMQP_EXCHANGE"         envDefault:"codegen.events"`
	ConnectAttempts int           `env:"AMQP_CONNECT_ATTEMPTS" envDefault:"3"`
	PublishTimeout  time.Duration `env:"AMQP_PUBLISH_TIMEOUT"  envDefault:"2s"`
}

// Envelope is the JSON body of every published message.
type Envelope struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// AMQPPublisher implements domain.EventPublisher on a durable topic exchange.
// The event type is used as the routing key.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	timeout  time.Duration
}

// NewAMQPPublisher connects to the broker and declares the exchange.
func NewAMQPPublisher(cfg Config) (*AMQPPublisher, error) {
	if cfg.URL == "" {
		return nil, errors.New("amqp URL is required")
	}
	if cfg.Exchange == "" {
		return nil, errors.New("amqp exchange is required")
	}

	attempts := max(cfg.ConnectAttempts, 1)

	var (
		conn *amqp.Connection
		err  error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			break
		}
		observability.FromContext(context.Background()).Warn("broker connection failed, retrying",
			observability.Int("attempt", attempt),
			observability.Error(err))
		if attempt < attempts {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("broker connect after %d attempts: %w", attempts, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if declareErr := ch.ExchangeDeclare(
		cfg.Exchange,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); declareErr != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, declareErr)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		timeout:  cfg.PublishTimeout,
	}, nil
}

// Publish sends the event to the exchange. Failures are logged and dropped.
func (p *AMQPPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	body, err := encode(eventType, data, time.Now())
	if err != nil {
		observability.FromContext(ctx).Warn("failed to encode event",
			observability.String("event", eventType),
			observability.Error(err))
		return
	}

	// Publishing must not be cut short by the request that produced the event.
	pubCtx := context.WithoutCancel(ctx)
	if p.timeout > 0 {
		var cancel context.CancelFunc
		pubCtx, cancel = context.WithTimeout(pubCtx, p.timeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(pubCtx,
		p.exchange,
		eventType,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		observability.FromContext(ctx).Warn("failed to publish event",
			observability.String("event", eventType),
			observability.Error(err))
	}
}

// Close shuts down the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}

	return errors.Join(errs...)
}

// NewPublisher returns the broker publisher when a URL is configured and
// reachable, and the log bus otherwise. The returned func releases resources.
func NewPublisher(cfg Config) (domain.EventPublisher, func() error) {
	if cfg.URL == "" {
		return NewLogBus(), func() error { return nil }
	}

	publisher, err := NewAMQPPublisher(cfg)
	if err != nil {
		observability.FromContext(context.Background()).Warn("event broker unavailable, logging events instead",
			observability.Error(err))
		return NewLogBus(), func() error { return nil }
	}

	return publisher, publisher.Close
}

func encode(eventType string, data map[string]interface{}, at time.Time) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:      eventType,
		Timestamp: at.UTC(),
		Data:      data,
	})
}
