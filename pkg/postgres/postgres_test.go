package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type poolCfg struct{}

func (poolCfg) PoolSettings() (int32, int32, time.Duration, time.Duration) {
	return 12, 3, time.Hour, time.Minute
}

func TestApplyPoolSettings(t *testing.T) {
	cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/db?sslmode=disable")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	applyPoolSettings(cfg, poolCfg{})

	if cfg.MaxConns != 12 || cfg.MinConns != 3 || cfg.MaxConnLifetime != time.Hour || cfg.MaxConnIdleTime != time.Minute {
		t.Fatalf("pool settings not applied: %d %d %s %s", cfg.MaxConns, cfg.MinConns, cfg.MaxConnLifetime, cfg.MaxConnIdleTime)
	}
}

func TestSQLStateHelpers(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) || IsForeignKeyViolation(unique) {
		t.Fatalf("unique violation misclassified")
	}
	if !IsForeignKeyViolation(fk) || IsUniqueViolation(fk) {
		t.Fatalf("foreign key violation misclassified")
	}
	if IsUniqueViolation(nil) || IsUniqueViolation(fmt.Errorf("plain")) {
		t.Fatalf("non pg errors must not match")
	}
}
