package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasTableAndColumn(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	ctx := context.Background()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("applicants").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("applicants"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("ghosts").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("applicants", "stage").
		WillReturnError(errors.New("bad connection"))

	assert.True(t, HasTable(ctx, conn, "applicants"))
	assert.False(t, HasTable(ctx, conn, "ghosts"))
	assert.False(t, HasColumn(ctx, conn, "applicants", "stage"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnOr(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	ctx := context.Background()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("jobs", "region").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("region"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("jobs", "remote").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	assert.Equal(t, "COALESCE(region, '') AS region", ColumnOr(ctx, conn, "jobs", "region", "''"))
	assert.Equal(t, "0 AS remote", ColumnOr(ctx, conn, "jobs", "remote", "0"))

	mock.ExpectQuery("information_schema\\.columns").WithArgs("applicants", "stage").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("stage"))
	assert.Equal(t, "COALESCE(a.stage, '') AS stage", AliasedColumnOr(ctx, conn, "applicants", "a", "stage", "''"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNullString(t *testing.T) {
	assert.Nil(t, NullString(sql.NullString{}))
	got := NullString(sql.NullString{String: "x", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "x", *got)
}
