package postgres

import (
	"context"
	"time"

	"github.com/kavitasoren02/greencart-logistics/pkg/metrics"
	"github.com/kavitasoren02/greencart-logistics/pkg/trm"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the part of pgx shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// TxorDB returns the transaction carried by ctx, or the pool when there is none.
func TxorDB(ctx context.Context, db Querier) Querier {
	tx, ok := ctx.Value(trm.TxKey).(pgx.Tx)
	if !ok {
		return db
	}
	return tx
}

// observe times one repository call:
//
//	defer observe(op)(&err)
func observe(op string) func(*error) {
	start := time.Now()
	return func(err *error) {
		metrics.RecordDatabaseQuery(op, *err, time.Since(start))
	}
}
