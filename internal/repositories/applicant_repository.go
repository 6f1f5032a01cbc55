package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "hrportal/internal/db"
	"hrportal/internal/domain/models"
)

type ApplicantRepository struct {
	DB *sql.DB
}

// Fetch loads every applicant with its job, when it has one.
func (r ApplicantRepository) Fetch(ctx context.Context) ([]models.Applicant, error) {
	if r.DB == nil {
		return []models.Applicant{}, nil
	}
	return fetchApplicants(ctx, r.DB)
}

func fetchApplicants(ctx context.Context, q querier) ([]models.Applicant, error) {
	const table = "applicants"
	if !intdb.HasTable(ctx, q, table) {
		return []models.Applicant{}, nil
	}
	opt := selectList(ctx, q, table, "a", []optional{
		{"phone", "''"},
		{"stage", "''"},
		{"source", "''"},
		{"has_resume", "0"},
	})
	jobCols := "NULL AS job_id, NULL AS job_title, NULL AS job_department"
	join := ""
	if intdb.HasTable(ctx, q, "job_postings") {
		jobCols = "CAST(j.id AS CHAR) AS job_id, j.title AS job_title, j.department AS job_department"
		join = "LEFT JOIN job_postings j ON j.id = a.job_id"
	}
	query := `
		SELECT
			CAST(a.id AS CHAR) AS id,
			COALESCE(a.name,''),
			COALESCE(a.email,''),
			COALESCE(a.status,''),
			COALESCE(a.country,''),
			` + opt + `,
			` + jobCols + `,
			a.applied_at
		FROM applicants a
		` + join + `
		ORDER BY a.id`
	return queryAll(ctx, q, table, query, func(rows *sql.Rows) (models.Applicant, error) {
		var a models.Applicant
		var jobID, jobTitle, jobDept sql.NullString
		var hasResume int
		var applied sql.NullTime
		err := rows.Scan(
			&a.ApplicantID, &a.Name, &a.Email, &a.Status, &a.Country,
			&a.Phone, &a.Stage, &a.Source, &hasResume,
			&jobID, &jobTitle, &jobDept,
			&applied,
		)
		if err != nil {
			return a, err
		}
		a.HasResume = hasResume != 0
		a.AppliedAt = timeOrZero(applied)
		if jobID.Valid {
			a.Job = &models.JobRef{
				ID:         jobID.String,
				Title:      strings.TrimSpace(jobTitle.String),
				Department: strings.TrimSpace(jobDept.String),
			}
		}
		return a, nil
	})
}
