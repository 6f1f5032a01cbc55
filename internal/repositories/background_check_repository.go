package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "hrportal/internal/db"
	"hrportal/internal/domain/models"
)

type BackgroundCheckRepository struct {
	DB *sql.DB
}

func (r BackgroundCheckRepository) Fetch(ctx context.Context) ([]models.BackgroundCheck, error) {
	if r.DB == nil {
		return []models.BackgroundCheck{}, nil
	}
	return fetchBackgroundChecks(ctx, r.DB)
}

func fetchBackgroundChecks(ctx context.Context, q querier) ([]models.BackgroundCheck, error) {
	const table = "background_checks"
	// a missing table reads as an empty list so a partially migrated schema still renders
	if !intdb.HasTable(ctx, q, table) {
		return []models.BackgroundCheck{}, nil
	}
	opt := selectList(ctx, q, table, "", []optional{
		{"sensitivity", "''"},
		{"region", "''"},
	})
	query := `
		SELECT
			CAST(id AS CHAR) AS id,
			candidate_name,
			candidate_email,
			COALESCE(package,''),
			COALESCE(status,''),
			` + opt + `,
			requested_at
		FROM background_checks
		ORDER BY id`
	return queryAll(ctx, q, table, query, func(rows *sql.Rows) (models.BackgroundCheck, error) {
		var b models.BackgroundCheck
		var name, email sql.NullString
		var requested sql.NullTime
		err := rows.Scan(
			&b.CheckID, &name, &email, &b.Package, &b.Status,
			&b.Sensitivity, &b.Region,
			&requested,
		)
		// checks requested for existing employees have no candidate
		if name.Valid || email.Valid {
			b.Candidate = &models.Candidate{
				Name:  strings.TrimSpace(name.String),
				Email: strings.TrimSpace(email.String),
			}
		}
		b.RequestedAt = timeOrZero(requested)
		return b, err
	})
}
