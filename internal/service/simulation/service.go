package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/metrics"
	"github.com/kavitasoren02/greencart-logistics/pkg/trm"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

/*
Service runs delivery simulations against the current reference data
and serves the stored results.
*/
type Service struct {
	drivers   DriverStore
	routes    RouteStore
	orders    OrderStore
	runs      SimulationStore
	publisher EventPublisher
	trm       trm.TxManager
	l         logger.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService returns a simulation service with all dependencies injected.
func NewService(drivers DriverStore, routes RouteStore, orders OrderStore, runs SimulationStore, publisher EventPublisher, trm trm.TxManager, l logger.Logger) *Service {
	return &Service{
		drivers:   drivers,
		routes:    routes,
		orders:    orders,
		runs:      runs,
		publisher: publisher,
		trm:       trm,
		l:         l,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.New,
	}
}

// Run validates the inputs, schedules the order backlog over the first
// AvailableDrivers drivers and stores the resulting run.
func (s *Service) Run(ctx context.Context, in models.SimulationInputs) (run *models.SimulationRun, err error) {
	ctx = wrap.WithAction(ctx, types.ActionRunSimulation)
	started := time.Now()
	defer func() {
		metrics.RecordSimulation(err, time.Since(started))
	}()

	v := validator.New()
	if in.Validate(v); !v.Valid() {
		return nil, wrap.Error(ctx, types.NewValidationError(v.Errors))
	}

	drivers, err := s.drivers.ListFirst(ctx, in.AvailableDrivers)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: drivers: %w", types.ErrFetchFailed, err))
	}
	routes, err := s.routes.ListAll(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: routes: %w", types.ErrFetchFailed, err))
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: orders: %w", types.ErrFetchFailed, err))
	}

	plan := PlanSchedule(drivers, routes, orders, in.MaxHoursPerDay)

	for _, id := range plan.Unrouted {
		s.l.Debug(ctx, "order skipped, route not found", "order_id", id)
	}
	if len(plan.Unassigned) > 0 {
		s.l.Info(ctx, "orders left without a driver", "count", len(plan.Unassigned))
	}

	s.recordOutcomes(ctx, plan.Assignments)

	run = &models.SimulationRun{
		ID:          s.newID(),
		Inputs:      in,
		Results:     AggregateKPIs(plan.Assignments),
		Assignments: plan.Assignments,
		CreatedAt:   s.now(),
	}
	ctx = wrap.WithSimulationID(ctx, run.ID.String())

	fn := func(ctx context.Context) error {
		if err := s.runs.Save(ctx, run); err != nil {
			return fmt.Errorf("%w: %w", types.ErrSaveFailed, err)
		}
		return nil
	}

	if err := s.trm.Do(ctx, fn); err != nil {
		return nil, wrap.Error(wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed), err)
	}

	metrics.RecordSchedule(len(plan.Assignments), len(plan.Unassigned), len(plan.Unrouted), run.Results.EfficiencyScore)

	if err := s.publisher.PublishSimulationCompleted(ctx, models.NewSimulationCompletedEvent(run)); err != nil {
		s.l.Warn(wrap.WithAction(ctx, types.ActionPublishCompletion), "failed to publish simulation completed event", "error", err)
	}

	s.l.Info(ctx, "simulation completed",
		"start_time", in.StartTime,
		"available_drivers", len(drivers),
		"total_orders", run.Results.TotalOrders,
		"efficiency_score", run.Results.EfficiencyScore,
		"total_profit", run.Results.TotalProfit,
	)

	return run, nil
}

// recordOutcomes writes each assignment back onto its order. Failures are
// logged and counted, the run goes on.
func (s *Service) recordOutcomes(ctx context.Context, assignments []models.Assignment) {
	ctx = wrap.WithAction(ctx, types.ActionRecordOutcome)

	for _, a := range assignments {
		if err := s.orders.RecordOutcome(ctx, a.OrderID, a.Outcome()); err != nil {
			metrics.OutcomeWriteFailures.Inc()
			err = fmt.Errorf("%w: order %s: %w", types.ErrOutcomeWrite, a.OrderID, err)
			s.l.Warn(ctx, "failed to record order outcome", "order_id", a.OrderID, "error", err)
		}
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error) {
	run, err := s.runs.FindByID(ctx, id)
	if err != nil {
		return nil, wrap.Error(wrap.WithSimulationID(ctx, id.String()), err)
	}
	return run, nil
}

// History lists stored runs without their assignments.
func (s *Service) History(ctx context.Context, filters models.Filters) ([]models.SimulationSummary, models.Metadata, error) {
	v := validator.New()
	if filters.Validate(v); !v.Valid() {
		return nil, models.Metadata{}, wrap.Error(ctx, types.NewValidationError(v.Errors))
	}

	runs, total, err := s.runs.List(ctx, filters)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, fmt.Errorf("failed to list simulations: %w", err))
	}
	if runs == nil {
		runs = []models.SimulationSummary{}
	}

	return runs, models.CalculateMetadata(total, filters.Page, filters.PageSize), nil
}

func (s *Service) Stats(ctx context.Context) (models.SimulationStats, error) {
	stats, err := s.runs.Stats(ctx)
	if err != nil {
		return models.SimulationStats{}, wrap.Error(ctx, fmt.Errorf("failed to get simulation stats: %w", err))
	}

	stats.AverageProfit = Round2(stats.AverageProfit)
	stats.AverageEfficiency = Round2(stats.AverageEfficiency)
	stats.BestEfficiency = Round2(stats.BestEfficiency)
	stats.WorstEfficiency = Round2(stats.WorstEfficiency)

	return stats, nil
}
