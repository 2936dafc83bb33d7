// Package events publishes booking lifecycle events for downstream
// consumers (driver apps, analytics). Riders never wait on it.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"luxride/internal/models"
)

const (
	Exchange = "luxride.bookings"

	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type       string         `json:"type"`
	Booking    models.Booking `json:"booking"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev BookingEvent) error
	Close() error
}

// Nop discards events. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, BookingEvent) error { return nil }
func (Nop) Close() error                                { return nil }

// RabbitMQ publishes to a durable topic exchange keyed by event type.
type RabbitMQ struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

// DialRabbitMQ connects to url and declares the booking exchange.
func DialRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitMQ{conn: conn, ch: ch}, nil
}

func (r *RabbitMQ) Publish(ctx context.Context, ev BookingEvent) error {
	msg, err := encode(ev)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return r.ch.PublishWithContext(ctx, Exchange, ev.Type, false, false, msg)
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ch != nil && !r.ch.IsClosed() {
		if err := r.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if r.conn != nil && !r.conn.IsClosed() {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}

func encode(ev BookingEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.Booking.ID,
		Timestamp:    ev.OccurredAt,
		Type:         ev.Type,
		Body:         body,
	}, nil
}

// Emit publishes ev and logs failures.
func Emit(ctx context.Context, p Publisher, eventType string, b models.Booking, at time.Time) {
	if p == nil {
		return
	}
	ev := BookingEvent{Type: eventType, Booking: b, OccurredAt: at}
	if err := p.Publish(ctx, ev); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"booking_id": b.ID,
			"event":      eventType,
		}).Warn("Failed to publish booking event.")
	}
}
