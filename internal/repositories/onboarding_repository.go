package repositories

import (
	"context"
	"database/sql"

	intdb "hrportal/internal/db"
	"hrportal/internal/domain/models"
)

type OnboardingRepository struct {
	DB *sql.DB
}

func (r OnboardingRepository) Fetch(ctx context.Context) ([]models.OnboardingCase, error) {
	if r.DB == nil {
		return []models.OnboardingCase{}, nil
	}
	return fetchOnboarding(ctx, r.DB)
}

func fetchOnboarding(ctx context.Context, q querier) ([]models.OnboardingCase, error) {
	const table = "onboarding_cases"
	// a missing table reads as an empty list so a partially migrated schema still renders
	if !intdb.HasTable(ctx, q, table) {
		return []models.OnboardingCase{}, nil
	}
	opt := selectList(ctx, q, table, "", []optional{
		{"manager", "NULL"},
		{"pending_documents", "0"},
	})
	query := `
		SELECT
			CAST(id AS CHAR) AS id,
			COALESCE(employee_name,''),
			COALESCE(position,''),
			COALESCE(department,''),
			COALESCE(employment_type,''),
			COALESCE(status,''),
			` + opt + `,
			start_date
		FROM onboarding_cases
		ORDER BY id`
	return queryAll(ctx, q, table, query, func(rows *sql.Rows) (models.OnboardingCase, error) {
		var o models.OnboardingCase
		var manager sql.NullString
		var start sql.NullTime
		err := rows.Scan(
			&o.CaseID, &o.EmployeeName, &o.Position, &o.Department, &o.EmploymentType, &o.Status,
			&manager, &o.PendingDocuments,
			&start,
		)
		o.Manager = intdb.NullString(manager)
		o.StartDate = timeOrZero(start)
		return o, err
	})
}
