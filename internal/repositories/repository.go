// Package repositories reads list-screen records straight from the HR MySQL
// database. It never writes: actions still go through the HR backend.
package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intdb "hrportal/internal/db"
)

// querier is the subset of *sql.DB the repositories need.
type querier interface {
	intdb.QueryRower
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// optional is an optional column and the literal used when it is missing.
type optional struct {
	column   string
	fallback string
}

// selectList resolves optional columns of table against the live schema.
func selectList(ctx context.Context, q querier, table, alias string, cols []optional) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, intdb.AliasedColumnOr(ctx, q, table, alias, c.column, c.fallback))
	}
	return strings.Join(parts, ",\n\t\t\t")
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, q querier, table, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	out := []T{}
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

func timeOrZero(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}
