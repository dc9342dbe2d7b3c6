package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

const driverColumns = `id, name, shift_hours, past_week_hours, current_day_hours`

type DriverRepo struct {
	db Querier
}

func NewDriverRepo(db Querier) *DriverRepo {
	return &DriverRepo{db: db}
}

// ListFirst returns up to n drivers in ascending id order.
func (r *DriverRepo) ListFirst(ctx context.Context, n int) (drivers []models.Driver, err error) {
	const op = "DriverRepo.ListFirst"
	defer observe(op)(&err)

	query := `
		SELECT ` + driverColumns + `
		FROM drivers
		ORDER BY id
		LIMIT $1`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	drivers, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Driver, error) {
		return scanDriver(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return drivers, nil
}

func (r *DriverRepo) List(ctx context.Context, filters models.Filters) (drivers []models.Driver, total int, err error) {
	const op = "DriverRepo.List"
	defer observe(op)(&err)

	p := page{table: "drivers", columns: driverColumns, key: "id"}

	drivers, total, err = listPage(ctx, TxorDB(ctx, r.db), p, filters, func(row pgx.CollectableRow, total *int) (models.Driver, error) {
		return scanDriver(row, total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return drivers, total, nil
}

func (r *DriverRepo) FindByID(ctx context.Context, id int64) (driver models.Driver, err error) {
	const op = "DriverRepo.FindByID"
	defer observe(op)(&err)

	query := `
		SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	driver, err = scanDriver(TxorDB(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Driver{}, types.ErrDriverNotFound
		}
		return models.Driver{}, fmt.Errorf("%s: %w", op, err)
	}

	return driver, nil
}

// scanDriver reads driverColumns followed by any extra destinations.
func scanDriver(row pgx.Row, extra ...any) (models.Driver, error) {
	var (
		d      models.Driver
		weekly string
	)

	dest := append([]any{&d.ID, &d.Name, &d.ShiftHours, &weekly, &d.CurrentDayHours}, extra...)
	if err := row.Scan(dest...); err != nil {
		return d, err
	}

	hours, err := models.ParseWeeklyHours(weekly)
	if err != nil {
		return d, fmt.Errorf("driver %d: %w", d.ID, err)
	}
	d.WeeklyHours = hours

	return d, nil
}
