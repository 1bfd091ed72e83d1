// Package amqp publishes outbound notification texts to a RabbitMQ exchange.
// A downstream worker owns the actual SMS channel; the core only hands the
// message off and treats broker failures as best-effort losses.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eventsupply/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "notifications_topic"
	routingKey   = "notifications.sms"
)

// smsMessage is the wire payload handed to the SMS worker.
type smsMessage struct {
	Phone    string    `json:"phone"`
	Message  string    `json:"message"`
	QueuedAt time.Time `json:"queued_at"`
}

// NotificationGateway implements ports.NotificationGateway over RabbitMQ.
type NotificationGateway struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewNotificationGateway dials the broker and declares the notifications
// exchange. The returned gateway owns the connection; call Close on shutdown.
func NewNotificationGateway(url string) (*NotificationGateway, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &NotificationGateway{conn: conn, ch: ch}, nil
}

// Send publishes one text as a persistent message. The publish is
// fire-and-forget from the caller's perspective; an error here means the
// broker refused the message, which callers log and move past.
func (g *NotificationGateway) Send(ctx context.Context, phone kernel.Phone, message string) error {
	body, err := json.Marshal(smsMessage{
		Phone:    phone.String(),
		Message:  message,
		QueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sms message: %w", err)
	}

	err = g.ch.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close releases the channel and connection.
func (g *NotificationGateway) Close() {
	if g.ch != nil {
		g.ch.Close()
	}
	if g.conn != nil {
		g.conn.Close()
	}
}
