package rabbit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

func declareExchange(ch *amqp.Channel, name string) error {
	return ch.ExchangeDeclare(name, exchangeKind, true, false, false, false, nil)
}

func completedKey(id uuid.UUID) string {
	return CompletedKeyPrefix + id.String()
}

// requeueable reports whether a failed delivery may succeed on redelivery.
// Only interrupted handlers qualify; anything else is dropped.
func requeueable(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// retry calls fn up to attempts times, pausing between failures. It returns
// the last error, or ctx.Err() when ctx ends first.
func retry(ctx context.Context, attempts int, pause time.Duration, fn func() error) error {
	var err error
	for i := range attempts {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 && !sleepCtx(ctx, pause) {
			return ctx.Err()
		}
	}
	return err
}

// sleepCtx waits for d and reports false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
