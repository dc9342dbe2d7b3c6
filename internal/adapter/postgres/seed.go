package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

// SeedRepo replaces the reference data tables. Used by dbtool.
type SeedRepo struct {
	db Querier
}

func NewSeedRepo(db Querier) *SeedRepo {
	return &SeedRepo{db: db}
}

// ApplySchema executes a multi-statement DDL script.
func (r *SeedRepo) ApplySchema(ctx context.Context, schema string) (err error) {
	const op = "SeedRepo.ApplySchema"
	defer observe(op)(&err)

	if _, err := TxorDB(ctx, r.db).Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Replace deletes every driver, route and order and copies the given ones in.
// Stored simulation runs are left untouched.
func (r *SeedRepo) Replace(ctx context.Context, drivers []models.Driver, routes []models.Route, orders []models.Order) (err error) {
	const op = "SeedRepo.Replace"
	defer observe(op)(&err)

	q := TxorDB(ctx, r.db)

	for _, table := range []string{"orders", "drivers", "routes"} {
		if _, err := q.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%s: clear %s: %w", op, table, err)
		}
	}

	if _, err := q.CopyFrom(ctx, pgx.Identifier{"drivers"},
		[]string{"id", "name", "shift_hours", "past_week_hours", "current_day_hours"},
		pgx.CopyFromSlice(len(drivers), func(i int) ([]any, error) {
			d := drivers[i]
			return []any{d.ID, d.Name, d.ShiftHours, d.WeeklyHours.String(), d.CurrentDayHours}, nil
		}),
	); err != nil {
		return fmt.Errorf("%s: copy drivers: %w", op, err)
	}

	// Keep BIGSERIAL ahead of the explicit ids just copied.
	if _, err := q.Exec(ctx, `SELECT setval(pg_get_serial_sequence('drivers', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM drivers`); err != nil {
		return fmt.Errorf("%s: reset driver sequence: %w", op, err)
	}

	if _, err := q.CopyFrom(ctx, pgx.Identifier{"routes"},
		[]string{"route_id", "distance_km", "traffic_level", "base_time_min"},
		pgx.CopyFromSlice(len(routes), func(i int) ([]any, error) {
			rt := routes[i]
			return []any{rt.ID, rt.DistanceKm, rt.Traffic.String(), rt.BaseTimeMin}, nil
		}),
	); err != nil {
		return fmt.Errorf("%s: copy routes: %w", op, err)
	}

	if _, err := q.CopyFrom(ctx, pgx.Identifier{"orders"},
		[]string{"order_id", "value_rs", "route_id", "delivery_time"},
		pgx.CopyFromSlice(len(orders), func(i int) ([]any, error) {
			o := orders[i]
			return []any{o.ID, o.ValueRs, o.RouteID, o.DeliveryTime}, nil
		}),
	); err != nil {
		return fmt.Errorf("%s: copy orders: %w", op, err)
	}

	return nil
}
