package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows is returned by QueryOne when the statement matched nothing.
var ErrNoRows = errors.New("no rows in result set")

// DBTX is implemented by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TxBeginner is implemented by *pgxpool.Pool.
type TxBeginner interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ConnectDB opens a connection pool and verifies it with a ping.
func ConnectDB(ctx context.Context, connString string, maxConns int, logger logr.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	if maxConns > 0 {
		config.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("Connected to database",
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"maxConns", config.MaxConns)
	return pool, nil
}

// QueryRows runs a parameterized statement and collects every row with scan.
// The pooled connection backing the rows is released on every return path.
func QueryRows[T any](ctx context.Context, db DBTX, sql string, args []any, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	// CollectRows closes rows, which hands the connection back to the pool.
	return pgx.CollectRows(rows, scan)
}

// QueryOne is QueryRows for statements expected to produce a single row.
func QueryOne[T any](ctx context.Context, db DBTX, sql string, args []any, scan pgx.RowToFunc[T]) (T, error) {
	var zero T
	rows, err := QueryRows(ctx, db, sql, args, scan)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNoRows
	}
	return rows[0], nil
}

// InTx runs fn in a single transaction, committing when it returns nil and
// rolling back otherwise.
func InTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, db, fn)
}

const foreignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err came from a violated foreign key.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
