package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/metrics"
	"github.com/kavitasoren02/greencart-logistics/pkg/rabbit"
	amqp "github.com/rabbitmq/amqp091-go"
)

type HandlerFunc func(ctx context.Context, event models.SimulationCompletedEvent) error

// FeedConsumer delivers completed runs to this instance. Every instance binds
// its own exclusive queue, so each one sees every event.
type FeedConsumer struct {
	client   *rabbit.RabbitMQ
	exchange string
	queue    string
	l        logger.Logger
}

func NewFeedConsumer(client *rabbit.RabbitMQ, exchange, queuePrefix string, l logger.Logger) *FeedConsumer {
	return &FeedConsumer{
		client:   client,
		exchange: exchange,
		queue:    queuePrefix + "." + uuid.NewString(),
		l:        l,
	}
}

// declareAndBindQueue declares the exchange and this instance's queue and binds them.
func (c *FeedConsumer) declareAndBindQueue(ch *amqp.Channel) (amqp.Queue, error) {
	const op = "FeedConsumer.declareAndBindQueue"

	if err := declareExchange(ch, c.exchange); err != nil {
		return amqp.Queue{}, fmt.Errorf("%s: declare exchange failed: %w", op, err)
	}

	q, err := ch.QueueDeclare(c.queue, false, true, true, false, nil)
	if err != nil {
		return q, fmt.Errorf("%s: declare queue failed: %w", op, err)
	}

	if err := ch.QueueBind(q.Name, CompletedKeyPrefix+"*", c.exchange, false, nil); err != nil {
		return q, fmt.Errorf("%s: bind queue failed: %w", op, err)
	}

	return q, nil
}

func (c *FeedConsumer) handleMessage(ctx context.Context, fn HandlerFunc, msg amqp.Delivery) {
	const op = "FeedConsumer.handleMessage"

	var event models.SimulationCompletedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		metrics.RecordRabbitMQConsume(c.queue, err)
		c.l.Error(ctx, "decode failed", err, "op", op)
		_ = msg.Nack(false, false)
		return
	}

	ctx = wrap.WithSimulationID(ctx, event.SimulationID.String())

	err := fn(ctx, event)
	metrics.RecordRabbitMQConsume(c.queue, err)
	if err != nil {
		c.l.Error(ctx, "handler failed", err, "op", op)
		_ = msg.Nack(false, requeueable(err))
		return
	}

	if err := msg.Ack(false); err != nil {
		c.l.Warn(ctx, "ack failed", "error", err, "op", op)
	}
}

// Consume delivers simulation.completed.* events to fn until ctx is done.
// It reconnects and redeclares its queue whenever the delivery channel closes.
func (c *FeedConsumer) Consume(ctx context.Context, fn HandlerFunc) error {
	const op = "FeedConsumer.Consume"

	for {
		if ctx.Err() != nil {
			c.l.Debug(ctx, "feed consumer stopped by context")
			return nil
		}

		if err := c.client.EnsureConnection(ctx); err != nil {
			c.l.Error(ctx, "ensure connection failed", err, "op", op)
			if !sleepCtx(ctx, 2*time.Second) {
				return nil
			}
			continue
		}

		var msgs <-chan amqp.Delivery
		err := retry(ctx, 3, time.Second, func() error {
			ch, err := c.client.NewChannel()
			if err != nil {
				return err
			}
			q, err := c.declareAndBindQueue(ch)
			if err != nil {
				_ = ch.Close()
				return err
			}
			msgs, err = ch.Consume(q.Name, "", false, true, false, false, nil)
			if err != nil {
				_ = ch.Close()
			}
			return err
		})
		if err != nil {
			c.l.Error(ctx, "consume setup failed", err, "op", op)
			if !sleepCtx(ctx, 2*time.Second) {
				return nil
			}
			continue
		}

		c.l.Info(ctx, "start consuming simulation feed", "queue", c.queue)

	consumeLoop:
		for {
			select {
			case <-ctx.Done():
				c.l.Info(ctx, "feed consumer shutting down", "op", op)
				return nil

			case msg, ok := <-msgs:
				if !ok {
					c.l.Warn(ctx, "message channel closed, reconnecting...", "op", op)
					break consumeLoop
				}

				c.handleMessage(ctx, fn, msg)
			}
		}
	}
}
