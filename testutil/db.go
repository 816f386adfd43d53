// Package testutil provides shared helpers for integration tests against the
// Postgres database named by TEST_DATABASE_URL. Without it the helpers skip
// the calling test, so `go test ./...` passes on a machine with no database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/rolodex-crm/backend/migrations"
)

// DSNEnv names the environment variable holding the test database DSN.
const DSNEnv = "TEST_DATABASE_URL"

const (
	// Repo tests each hold one transaction; a handful of connections is plenty.
	maxTestConns   = 4
	connectTimeout = 5 * time.Second
)

// NewPool opens a small pool against the test database and closes it when
// the test finishes. Repo tests begin a transaction on it and roll back.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := openPool(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB returns a database/sql handle for goose, backed by a test pool.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { db.Close() })
	return db
}

// MustMigrate brings the database at dsn up to the latest schema. It is for
// TestMain, where there is no *testing.T to fail, and panics on error.
func MustMigrate(dsn string) {
	pool, err := openPool(dsn)
	if err != nil {
		panic("testutil.MustMigrate: " + err.Error())
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := migrations.Up(ctx, db); err != nil {
		panic("testutil.MustMigrate: " + err.Error())
	}
}

func openPool(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = maxTestConns
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s not set; skipping integration test", DSNEnv)
	}
	return dsn
}
