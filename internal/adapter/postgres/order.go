package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	pg "github.com/kavitasoren02/greencart-logistics/pkg/postgres"
)

const orderColumns = `order_id, value_rs, route_id, delivery_time,
		       assigned_driver, is_delivered, is_on_time, penalty_applied, bonus_applied`

type OrderRepo struct {
	db Querier
}

func NewOrderRepo(db Querier) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) ListAll(ctx context.Context) (orders []models.Order, err error) {
	const op = "OrderRepo.ListAll"
	defer observe(op)(&err)

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY order_id`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

// List returns one page of orders. A nil RouteID or IsDelivered matches every order.
func (r *OrderRepo) List(ctx context.Context, filters models.OrderFilters) (orders []models.Order, total int, err error) {
	const op = "OrderRepo.List"
	defer observe(op)(&err)

	p := page{
		table:   "orders",
		columns: orderColumns,
		key:     "order_id",
		where:   "($1::int IS NULL OR route_id = $1) AND ($2::boolean IS NULL OR is_delivered = $2)",
		args:    []any{filters.RouteID, filters.IsDelivered},
	}

	orders, total, err = listPage(ctx, TxorDB(ctx, r.db), p, filters.Filters, func(row pgx.CollectableRow, total *int) (models.Order, error) {
		return scanOrder(row, total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return orders, total, nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (order models.Order, err error) {
	const op = "OrderRepo.FindByID"
	defer observe(op)(&err)

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = $1`

	order, err = scanOrder(TxorDB(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, types.ErrOrderNotFound
		}
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

func scanOrder(row pgx.Row, extra ...any) (models.Order, error) {
	var o models.Order
	dest := append([]any{
		&o.ID, &o.ValueRs, &o.RouteID, &o.DeliveryTime,
		&o.AssignedDriverID, &o.IsDelivered, &o.IsOnTime, &o.PenaltyApplied, &o.BonusApplied,
	}, extra...)
	err := row.Scan(dest...)
	return o, err
}

// RecordOutcome stores the result of the latest simulation that assigned the order.
func (r *OrderRepo) RecordOutcome(ctx context.Context, orderID string, outcome models.OrderOutcome) (err error) {
	const op = "OrderRepo.RecordOutcome"
	defer observe(op)(&err)

	query := `
		UPDATE orders
		SET assigned_driver = $2,
		    is_delivered    = TRUE,
		    is_on_time      = $3,
		    penalty_applied = $4,
		    bonus_applied   = $5
		WHERE order_id = $1`

	tag, err := TxorDB(ctx, r.db).Exec(ctx, query, orderID, outcome.DriverID, outcome.IsOnTime, outcome.Penalty, outcome.Bonus)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return fmt.Errorf("%s: driver %d: %w", op, outcome.DriverID, types.ErrDriverNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, types.ErrOrderNotFound)
	}

	return nil
}
