package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	pg "github.com/kavitasoren02/greencart-logistics/pkg/postgres"
)

var assignmentColumns = []string{
	"simulation_id", "position", "order_id", "driver_id", "driver_name", "route_id",
	"is_on_time", "actual_time_min", "profit_contribution", "fuel_cost", "penalty", "bonus",
}

type SimulationRepo struct {
	db Querier
}

func NewSimulationRepo(db Querier) *SimulationRepo {
	return &SimulationRepo{db: db}
}

// Save inserts the run and copies its assignments. Call it inside a transaction
// so a failed copy leaves no partial run behind.
func (r *SimulationRepo) Save(ctx context.Context, run *models.SimulationRun) (err error) {
	const op = "SimulationRepo.Save"
	defer observe(op)(&err)

	q := TxorDB(ctx, r.db)

	query := `
		INSERT INTO simulations (
			id, available_drivers, start_time, max_hours_per_day,
			total_profit, efficiency_score, on_time_deliveries, late_deliveries,
			total_fuel_cost, total_penalties, total_bonuses, total_orders, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	res := run.Results
	if _, err := q.Exec(ctx, query,
		run.ID, run.Inputs.AvailableDrivers, run.Inputs.StartTime, run.Inputs.MaxHoursPerDay,
		res.TotalProfit, res.EfficiencyScore, res.OnTimeDeliveries, res.LateDeliveries,
		res.TotalFuelCost, res.TotalPenalties, res.TotalBonuses, res.TotalOrders, run.CreatedAt,
	); err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("%s: %s: %w", op, run.ID, types.ErrSimulationExists)
		}
		return fmt.Errorf("%s: insert run: %w", op, err)
	}

	if len(run.Assignments) == 0 {
		return nil
	}

	copied, err := q.CopyFrom(ctx, pgx.Identifier{"simulation_assignments"}, assignmentColumns, pgx.CopyFromSlice(len(run.Assignments), func(i int) ([]any, error) {
		return assignmentRow(run.ID, i, run.Assignments[i]), nil
	}))
	if err != nil {
		return fmt.Errorf("%s: copy assignments: %w", op, err)
	}
	if copied != int64(len(run.Assignments)) {
		return fmt.Errorf("%s: copied %d of %d assignments", op, copied, len(run.Assignments))
	}

	return nil
}

func assignmentRow(simulationID uuid.UUID, position int, a models.Assignment) []any {
	return []any{
		simulationID, position, a.OrderID, a.DriverID, a.DriverName, a.RouteID,
		a.IsOnTime, a.ActualTimeMin, a.ProfitContribution, a.FuelCost, a.Penalty, a.Bonus,
	}
}

func (r *SimulationRepo) FindByID(ctx context.Context, id uuid.UUID) (run *models.SimulationRun, err error) {
	const op = "SimulationRepo.FindByID"
	defer observe(op)(&err)

	q := TxorDB(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM simulations
		WHERE id = $1`

	summary, err := scanSummary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrSimulationNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := q.Query(ctx, `
		SELECT order_id, driver_id, driver_name, route_id, is_on_time, actual_time_min,
		       profit_contribution, fuel_cost, penalty, bonus
		FROM simulation_assignments
		WHERE simulation_id = $1
		ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: assignments: %w", op, err)
	}

	assignments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Assignment, error) {
		var a models.Assignment
		err := row.Scan(
			&a.OrderID, &a.DriverID, &a.DriverName, &a.RouteID, &a.IsOnTime, &a.ActualTimeMin,
			&a.ProfitContribution, &a.FuelCost, &a.Penalty, &a.Bonus,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: assignments: %w", op, err)
	}

	return &models.SimulationRun{
		ID:          summary.ID,
		Inputs:      summary.Inputs,
		Results:     summary.Results,
		Assignments: assignments,
		CreatedAt:   summary.CreatedAt,
	}, nil
}

// List returns one page of runs and the total number of stored runs.
func (r *SimulationRepo) List(ctx context.Context, filters models.Filters) (runs []models.SimulationSummary, total int, err error) {
	const op = "SimulationRepo.List"
	defer observe(op)(&err)

	runs, total, err = listPage(ctx, TxorDB(ctx, r.db), simulationPage, filters, func(row pgx.CollectableRow, total *int) (models.SimulationSummary, error) {
		var s models.SimulationSummary
		err := row.Scan(append(summaryDest(&s), total)...)
		return s, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return runs, total, nil
}

var simulationPage = page{table: "simulations", columns: summaryColumns, key: "id"}

func (r *SimulationRepo) Stats(ctx context.Context) (stats models.SimulationStats, err error) {
	const op = "SimulationRepo.Stats"
	defer observe(op)(&err)

	query := `
		SELECT COUNT(*),
		       COALESCE(AVG(total_profit), 0),
		       COALESCE(AVG(efficiency_score), 0),
		       COALESCE(MAX(efficiency_score), 0),
		       COALESCE(MIN(efficiency_score), 0)
		FROM simulations`

	if err := TxorDB(ctx, r.db).QueryRow(ctx, query).Scan(
		&stats.TotalSimulations,
		&stats.AverageProfit,
		&stats.AverageEfficiency,
		&stats.BestEfficiency,
		&stats.WorstEfficiency,
	); err != nil {
		return models.SimulationStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

const summaryColumns = `id, available_drivers, start_time, max_hours_per_day,
		       total_profit, efficiency_score, on_time_deliveries, late_deliveries,
		       total_fuel_cost, total_penalties, total_bonuses, total_orders, created_at`

func summaryDest(s *models.SimulationSummary) []any {
	return []any{
		&s.ID, &s.Inputs.AvailableDrivers, &s.Inputs.StartTime, &s.Inputs.MaxHoursPerDay,
		&s.Results.TotalProfit, &s.Results.EfficiencyScore, &s.Results.OnTimeDeliveries, &s.Results.LateDeliveries,
		&s.Results.TotalFuelCost, &s.Results.TotalPenalties, &s.Results.TotalBonuses, &s.Results.TotalOrders, &s.CreatedAt,
	}
}

func scanSummary(row pgx.Row) (models.SimulationSummary, error) {
	var s models.SimulationSummary
	err := row.Scan(summaryDest(&s)...)
	return s, err
}
