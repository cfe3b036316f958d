// Package pubsub fans notification records out to RabbitMQ.
package pubsub

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// ExchangeName is the durable topic exchange notifications are published to.
const ExchangeName = "robotcare.events"

// AMQPPublisher keeps one connection and channel and redials after the broker
// drops them. Publish is safe for concurrent use.
type AMQPPublisher struct {
	url    string
	queue  string
	logger logger.Interface

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, queue string, log logger.Interface) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue, logger: log}
}

// Publish sends body as a persistent JSON message with routingKey.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, ExchangeName, routingKey, false, false, msg); err != nil {
		p.resetLocked()
		return fmt.Errorf("failed to publish to %s: %w", routingKey, err)
	}
	return nil
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.resetLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}
	if err := declareTopology(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn, p.ch = conn, ch
	p.logger.Infow("broker channel opened", "exchange", ExchangeName, "queue", p.queue)
	return nil
}

// declareTopology is idempotent: a durable topic exchange and, when queue is
// set, a durable queue bound to every notification routing key.
func declareTopology(ch *amqp.Channel, queue string) error {
	if err := ch.ExchangeDeclare(ExchangeName, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	if queue == "" {
		return nil
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.QueueBind(queue, "notification.#", ExchangeName, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close releases the connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
	return nil
}
