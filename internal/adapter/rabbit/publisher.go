package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/metrics"
	"github.com/kavitasoren02/greencart-logistics/pkg/rabbit"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CompletedKeyPrefix prefixes the routing key of every completed run.
const CompletedKeyPrefix = "simulation.completed."

type SimulationPublisher struct {
	client   *rabbit.RabbitMQ
	exchange string
}

func NewSimulationPublisher(client *rabbit.RabbitMQ, exchange string) *SimulationPublisher {
	return &SimulationPublisher{
		client:   client,
		exchange: exchange,
	}
}

// DeclareExchange makes sure the durable topic exchange exists.
func (p *SimulationPublisher) DeclareExchange(ctx context.Context) error {
	const op = "SimulationPublisher.DeclareExchange"

	ch, err := p.client.Channel()
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	if err := declareExchange(ch, p.exchange); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

// PublishSimulationCompleted publishes the event with key simulation.completed.<id>.
func (p *SimulationPublisher) PublishSimulationCompleted(ctx context.Context, event models.SimulationCompletedEvent) (err error) {
	const op = "SimulationPublisher.PublishSimulationCompleted"
	ctx = wrap.WithAction(ctx, types.ActionPublishCompletion)
	defer func() {
		metrics.RecordRabbitMQPublish(p.exchange, err)
	}()

	body, err := json.Marshal(event)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal message: %w", op, err))
	}

	if err := p.client.EnsureConnection(ctx); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	ch, err := p.client.Channel()
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	if err := ch.PublishWithContext(
		ctx,
		p.exchange,                       // exchange
		completedKey(event.SimulationID), // routing key
		false,                            // mandatory
		false,                            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.SimulationID.String(),
			Type:         event.Type.String(),
			Body:         body,
			Timestamp:    time.Now(),
		},
	); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish with context: %w", op, err))
	}

	return nil
}
