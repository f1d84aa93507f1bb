// Package db wraps a single PostgreSQL connection behind generic
// parameterized-statement primitives. A Database owns one logical
// connection: every operation checks it out, runs exactly one statement
// and releases it before returning. Instances are not safe for
// concurrent use; callers that need parallelism construct one Database
// per goroutine.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/identitypg/internal/common"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	// Connection opening is retried at a constant interval as a
	// transient-network-hiccup mitigation, not a backoff strategy.
	openRetries       = 10
	openRetryInterval = 50 * time.Millisecond
)

// Database executes parameterized statements against one PostgreSQL
// connection with bounded open-retry and scoped acquire/release.
type Database struct {
	db *sql.DB

	closeOnce sync.Once
	closeErr  error
}

// Open creates a Database for the given pgx DSN. No connection is dialed
// until the first statement runs.
func Open(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: dsn cannot be empty", common.ErrInvalidArgument)
	}

	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return New(sqldb), nil
}

// New wraps an existing *sql.DB. The handle is capped at a single open
// connection so that at most one statement is ever in flight.
func New(sqldb *sql.DB) *Database {
	sqldb.SetMaxOpenConns(1)
	return &Database{db: sqldb}
}

// Conn exposes the underlying handle for schema migrations.
func (d *Database) Conn() *sql.DB {
	return d.db
}

// acquire checks the connection out of the pool, dialing if necessary.
// Failed opens are retried up to openRetries times with a constant pause
// between attempts; the last open error propagates once retries are
// exhausted.
func (d *Database) acquire(ctx context.Context) (*sql.Conn, error) {
	var conn *sql.Conn

	b := retry.WithMaxRetries(openRetries, retry.NewConstant(openRetryInterval))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		c, err := d.db.Conn(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// Execute runs a non-query statement and returns the number of affected
// rows. Nil arguments are bound as SQL NULL.
func (d *Database) Execute(ctx context.Context, commandText string, args ...any) (int64, error) {
	if commandText == "" {
		return 0, fmt.Errorf("%w: command text cannot be empty", common.ErrInvalidArgument)
	}

	conn, err := d.acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("db open error: %w", err)
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, commandText, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}

// QueryValue runs a query and returns the first column of the first row.
// The second return value reports whether a non-NULL value was found.
func (d *Database) QueryValue(ctx context.Context, commandText string, args ...any) (string, bool, error) {
	if commandText == "" {
		return "", false, fmt.Errorf("%w: command text cannot be empty", common.ErrInvalidArgument)
	}

	conn, err := d.acquire(ctx)
	if err != nil {
		return "", false, fmt.Errorf("db open error: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, commandText, args...)
	if err != nil {
		return "", false, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", false, fmt.Errorf("db error: %w", err)
		}
		return "", false, nil
	}

	var value sql.NullString
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("db error: %w", err)
	}
	if err := rows.Err(); err != nil {
		return "", false, fmt.Errorf("db error: %w", err)
	}

	return value.String, value.Valid, nil
}

// Query runs a query and returns the ordered result rows.
func (d *Database) Query(ctx context.Context, commandText string, args ...any) ([]Row, error) {
	if commandText == "" {
		return nil, fmt.Errorf("%w: command text cannot be empty", common.ErrInvalidArgument)
	}

	conn, err := d.acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, commandText, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := []Row{}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = normalizeValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Close releases the underlying handle. Safe to call multiple times.
func (d *Database) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = d.db.Close()
	})
	return d.closeErr
}
