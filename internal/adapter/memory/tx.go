package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

// TxManager runs fn directly. Memory stores have no transactions.
type TxManager struct{}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// EventLog is an EventPublisher that keeps every event it receives.
type EventLog struct {
	events []models.SimulationCompletedEvent
	mu     sync.Mutex
}

func (l *EventLog) PublishSimulationCompleted(ctx context.Context, event models.SimulationCompletedEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

func (l *EventLog) Events() []models.SimulationCompletedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}
