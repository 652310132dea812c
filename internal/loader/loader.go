// Package loader writes accounts and journals straight into PostgreSQL,
// resolving ids from RETURNING clauses instead of natural-key subqueries.
package loader

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Querier is the subset of pgx.Tx the loader needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Loader inserts records through a Querier.
type Loader struct {
	log zerolog.Logger
}

// New creates a Loader.
func New(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// Connect opens a pool and checks the connection.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// Run executes fn in a single transaction, committing only if fn succeeds.
func Run(ctx context.Context, pool *pgxpool.Pool, fn func(q Querier) error) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return fn(tx)
	})
}
