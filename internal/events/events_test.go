package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxride/internal/models"
)

func TestEncode(t *testing.T) {
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	b := models.Booking{Pickup: "A", Destination: "B", Price: 34.5}
	b.ID = "bk-1"

	msg, err := encode(BookingEvent{Type: BookingCreated, Booking: b, OccurredAt: at})
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "bk-1", msg.MessageId)
	assert.Equal(t, BookingCreated, msg.Type)

	var decoded BookingEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "A", decoded.Booking.Pickup)
	assert.True(t, at.Equal(decoded.OccurredAt))
}

type failing struct{ calls int }

func (f *failing) Publish(context.Context, BookingEvent) error {
	f.calls++
	return errors.New("broker down")
}
func (f *failing) Close() error { return nil }

func TestEmitSwallowsErrors(t *testing.T) {
	p := &failing{}
	Emit(context.Background(), p, BookingCancelled, models.Booking{}, time.Now())
	assert.Equal(t, 1, p.calls)

	Emit(context.Background(), nil, BookingCreated, models.Booking{}, time.Now())
	assert.NoError(t, Nop{}.Publish(context.Background(), BookingEvent{}))
}
