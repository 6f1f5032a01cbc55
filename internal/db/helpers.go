package db

import (
	"context"
	"database/sql"
)

// QueryRower is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema. Lookup errors
// (bad connection included) read as "absent" and the caller degrades.
func HasTable(ctx context.Context, q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// HasColumn reports whether table.column exists in the current schema.
func HasColumn(ctx context.Context, q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// ColumnOr returns column when it exists, otherwise a literal fallback
// expression aliased to the same name, so optional columns keep scan order.
func ColumnOr(ctx context.Context, q QueryRower, table, column, fallback string) string {
	return AliasedColumnOr(ctx, q, table, "", column, fallback)
}

// AliasedColumnOr is ColumnOr for a table referenced through alias in a join.
func AliasedColumnOr(ctx context.Context, q QueryRower, table, alias, column, fallback string) string {
	if !HasColumn(ctx, q, table, column) {
		return fallback + " AS " + column
	}
	ref := column
	if alias != "" {
		ref = alias + "." + column
	}
	return "COALESCE(" + ref + ", " + fallback + ") AS " + column
}

// NullString converts a nullable column into an optional value.
func NullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
