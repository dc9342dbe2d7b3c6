package simulation

import (
	"context"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

/*=====================Reference Data=============================*/

type DriverStore interface {
	// ListFirst returns at most n drivers in ascending id order.
	ListFirst(ctx context.Context, n int) ([]models.Driver, error)
}

type RouteStore interface {
	ListAll(ctx context.Context) ([]models.Route, error)
}

type OrderStore interface {
	ListAll(ctx context.Context) ([]models.Order, error)
	RecordOutcome(ctx context.Context, orderID string, outcome models.OrderOutcome) error
}

/*=====================Simulation Results=========================*/

type SimulationStore interface {
	Save(ctx context.Context, run *models.SimulationRun) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error)
	List(ctx context.Context, filters models.Filters) ([]models.SimulationSummary, int, error)
	Stats(ctx context.Context) (models.SimulationStats, error)
}

/*========================Publisher===============================*/

type EventPublisher interface {
	PublishSimulationCompleted(ctx context.Context, event models.SimulationCompletedEvent) error
}
