package repositories

import (
	"context"
	"database/sql"

	intdb "hrportal/internal/db"
	"hrportal/internal/domain/models"
)

type JobPostingRepository struct {
	DB *sql.DB
}

func (r JobPostingRepository) Fetch(ctx context.Context) ([]models.JobPosting, error) {
	if r.DB == nil {
		return []models.JobPosting{}, nil
	}
	return fetchJobPostings(ctx, r.DB)
}

func fetchJobPostings(ctx context.Context, q querier) ([]models.JobPosting, error) {
	const table = "job_postings"
	// a missing table reads as an empty list so a partially migrated schema still renders
	if !intdb.HasTable(ctx, q, table) {
		return []models.JobPosting{}, nil
	}
	opt := selectList(ctx, q, table, "p", []optional{
		{"location", "''"},
		{"region", "''"},
		{"remote", "0"},
	})
	countExpr := "0"
	if intdb.HasTable(ctx, q, "applicants") {
		countExpr = "(SELECT COUNT(*) FROM applicants a WHERE a.job_id = p.id)"
	}
	query := `
		SELECT
			CAST(p.id AS CHAR) AS id,
			COALESCE(p.title,''),
			COALESCE(p.department,''),
			COALESCE(p.employment_type,''),
			COALESCE(p.status,''),
			` + opt + `,
			` + countExpr + ` AS applicants_count,
			p.created_at
		FROM job_postings p
		ORDER BY p.id`
	return queryAll(ctx, q, table, query, func(rows *sql.Rows) (models.JobPosting, error) {
		var j models.JobPosting
		var remote int
		var created sql.NullTime
		err := rows.Scan(
			&j.JobID, &j.Title, &j.Department, &j.EmploymentType, &j.Status,
			&j.Location, &j.Region, &remote,
			&j.Applicants,
			&created,
		)
		j.Remote = remote != 0
		j.CreatedAt = timeOrZero(created)
		return j, err
	})
}
