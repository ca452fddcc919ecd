package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Querier is the subset of [sql.DB] and [sql.Tx] the accessor primitives
// need, so the same helpers serve transactional and non-transactional paths.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// RowScanner is satisfied by both [sql.Row] and [sql.Rows].
type RowScanner interface {
	Scan(dest ...any) error
}

// FetchOne binds positional parameters into the query and scans the first
// matching row. ok is false when no row matched.
func FetchOne[T any](ctx context.Context, q Querier, query string, scan func(RowScanner) (T, error), args ...any) (T, bool, error) {
	var zero T

	row := q.QueryRowContext(ctx, query, args...)
	value, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("failed to scan row: %w", err)
	}

	return value, true, nil
}

// FetchAll binds positional parameters into the query and scans every row.
// Ordering is whatever the query itself dictates.
func FetchAll[T any](ctx context.Context, q Querier, query string, scan func(RowScanner) (T, error), args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	results := []T{}
	for rows.Next() {
		value, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return results, nil
}

// ExecuteWrite executes an insert or update statement and returns the
// store's last-assigned row id for it.
func ExecuteWrite(ctx context.Context, q Querier, query string, args ...any) (int64, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute write: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}
