//go:build unit

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldbook/internal/pkg/clock"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func TestRabbitPublisher(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("publishes an envelope under the event name", func(t *testing.T) {
		ch := &fakeChannel{}
		p := newRabbitPublisherWithChannel(ch, "fieldbook", clock.NewMockClock(now), discard)

		p.Publish(context.Background(), "booking.created", map[string]string{"id": "b1"})

		assert.Equal(t, "fieldbook", ch.exchange)
		assert.Equal(t, "booking.created", ch.key)
		assert.Equal(t, "application/json", ch.msg.ContentType)

		var env struct {
			Event   string            `json:"event"`
			Payload map[string]string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(ch.msg.Body, &env))
		assert.Equal(t, "booking.created", env.Event)
		assert.Equal(t, "b1", env.Payload["id"])
	})

	t.Run("broker errors are swallowed", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		p := newRabbitPublisherWithChannel(ch, "fieldbook", clock.NewMockClock(now), discard)
		assert.NotPanics(t, func() { p.Publish(context.Background(), "field.deleted", nil) })
	})
}
