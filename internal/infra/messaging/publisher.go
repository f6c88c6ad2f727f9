package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ExchangeKind = "topic"

type Envelope struct {
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher sends events to a topic exchange, one routing key per
// event name. Failures are logged and dropped.
type RabbitPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	clock    clock.Clock
	logger   *slog.Logger
}

var _ shared.EventPublisher = (*RabbitPublisher)(nil)

func NewRabbitPublisher(url, exchange string, clk clock.Clock, logger *slog.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange, clock: clk, logger: logger}, nil
}

func newRabbitPublisherWithChannel(ch channel, exchange string, clk clock.Clock, logger *slog.Logger) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, exchange: exchange, clock: clk, logger: logger}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event string, payload any) {
	body, err := json.Marshal(Envelope{Event: event, OccurredAt: p.clock.Now(), Payload: payload})
	if err != nil {
		p.logger.Warn("failed to encode event", "event", event, "error", err)
		return
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, event, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.clock.Now(),
		Body:         body,
	})
	if err != nil {
		p.logger.Warn("failed to publish event", "event", event, "error", err)
		return
	}
	p.logger.Debug("event published", "exchange", p.exchange, "event", event)
}

func (p *RabbitPublisher) Close() {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) {}
