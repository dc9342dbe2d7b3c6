package postgres

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

// page describes one paginated listing. where may reference args as $1..$n;
// LIMIT and OFFSET take the next two placeholders.
type page struct {
	table   string
	columns string
	key     string
	where   string
	args    []any
}

func (p page) query(f models.Filters) string {
	n := len(p.args)
	return fmt.Sprintf(`
		SELECT %s, count(*) OVER()
		FROM %s%s
		ORDER BY %s %s, %s ASC
		LIMIT $%d OFFSET $%d`, p.columns, p.table, p.whereClause(), f.SortColumn(), f.SortDirection(), p.key, n+1, n+2)
}

func (p page) countQuery() string {
	return fmt.Sprintf(`SELECT count(*) FROM %s%s`, p.table, p.whereClause())
}

func (p page) whereClause() string {
	if p.where == "" {
		return ""
	}
	return "\n\t\tWHERE " + p.where
}

// listPage runs the page query. scan receives the window count as its last
// destination. A page past the end has no rows to carry that count, so it is
// read with a separate query.
func listPage[T any](ctx context.Context, q Querier, p page, f models.Filters, scan func(row pgx.CollectableRow, total *int) (T, error)) ([]T, int, error) {
	rows, err := q.Query(ctx, p.query(f), slices.Concat(p.args, []any{f.Limit(), f.Offset()})...)
	if err != nil {
		return nil, 0, err
	}

	var total int
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row, &total)
	})
	if err != nil {
		return nil, 0, err
	}

	if len(items) == 0 && f.Offset() > 0 {
		if err := q.QueryRow(ctx, p.countQuery(), p.args...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count: %w", err)
		}
	}

	return items, total, nil
}
