package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

const routeColumns = `route_id, distance_km, traffic_level, base_time_min`

type RouteRepo struct {
	db Querier
}

func NewRouteRepo(db Querier) *RouteRepo {
	return &RouteRepo{db: db}
}

func (r *RouteRepo) ListAll(ctx context.Context) (routes []models.Route, err error) {
	const op = "RouteRepo.ListAll"
	defer observe(op)(&err)

	query := `
		SELECT ` + routeColumns + `
		FROM routes
		ORDER BY route_id`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	routes, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Route, error) {
		return scanRoute(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return routes, nil
}

func (r *RouteRepo) List(ctx context.Context, filters models.Filters) (routes []models.Route, total int, err error) {
	const op = "RouteRepo.List"
	defer observe(op)(&err)

	p := page{table: "routes", columns: routeColumns, key: "route_id"}

	routes, total, err = listPage(ctx, TxorDB(ctx, r.db), p, filters, func(row pgx.CollectableRow, total *int) (models.Route, error) {
		return scanRoute(row, total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return routes, total, nil
}

func (r *RouteRepo) FindByID(ctx context.Context, id int) (route models.Route, err error) {
	const op = "RouteRepo.FindByID"
	defer observe(op)(&err)

	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE route_id = $1`

	route, err = scanRoute(TxorDB(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Route{}, types.ErrRouteNotFound
		}
		return models.Route{}, fmt.Errorf("%s: %w", op, err)
	}

	return route, nil
}

func scanRoute(row pgx.Row, extra ...any) (models.Route, error) {
	var (
		rt      models.Route
		traffic string
	)

	dest := append([]any{&rt.ID, &rt.DistanceKm, &traffic, &rt.BaseTimeMin}, extra...)
	if err := row.Scan(dest...); err != nil {
		return rt, err
	}

	level, err := types.ParseTrafficLevel(traffic)
	if err != nil {
		return rt, fmt.Errorf("route %d: %w", rt.ID, err)
	}
	rt.Traffic = level

	return rt, nil
}
