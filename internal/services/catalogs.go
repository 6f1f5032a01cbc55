package services

import (
	"hrportal/internal/domain/models"
	"hrportal/internal/table"
	"hrportal/internal/utils"
)

// Catalogs expose every field a screen configuration may name. Timestamps are
// rendered so that string order is chronological order.

func ApplicantCatalog() table.Catalog[models.Applicant] {
	return table.Catalog[models.Applicant]{
		Fields: []table.Field[models.Applicant]{
			table.Str("name", func(a models.Applicant) string { return a.Name }),
			table.Str("email", func(a models.Applicant) string { return a.Email }),
			table.Str("phone", func(a models.Applicant) string { return a.Phone }),
			table.Str("status", func(a models.Applicant) string { return a.Status }),
			table.Str("stage", func(a models.Applicant) string { return a.Stage }),
			table.Str("country", func(a models.Applicant) string { return a.Country }),
			table.Str("source", func(a models.Applicant) string { return a.Source }),
			{Name: "job_title", Get: func(a models.Applicant) (string, bool) {
				if a.Job == nil {
					return "", false
				}
				return a.Job.Title, true
			}},
			{Name: "job_department", Get: func(a models.Applicant) (string, bool) {
				if a.Job == nil {
					return "", false
				}
				return a.Job.Department, true
			}},
			table.Str("applied_at", func(a models.Applicant) string { return utils.SortableDateTime(a.AppliedAt) }),
		},
		Toggles: []table.Toggle[models.Applicant]{
			{Name: "has_resume", Test: func(a models.Applicant) bool { return a.HasResume }},
		},
	}
}

func JobPostingCatalog() table.Catalog[models.JobPosting] {
	return table.Catalog[models.JobPosting]{
		Fields: []table.Field[models.JobPosting]{
			table.Str("title", func(j models.JobPosting) string { return j.Title }),
			table.Str("department", func(j models.JobPosting) string { return j.Department }),
			table.Str("location", func(j models.JobPosting) string { return j.Location }),
			table.Str("region", func(j models.JobPosting) string { return j.Region }),
			table.Str("employment_type", func(j models.JobPosting) string { return j.EmploymentType }),
			table.Str("status", func(j models.JobPosting) string { return j.Status }),
			table.Str("created_at", func(j models.JobPosting) string { return utils.SortableDateTime(j.CreatedAt) }),
		},
		Toggles: []table.Toggle[models.JobPosting]{
			{Name: "remote", Test: func(j models.JobPosting) bool { return j.Remote }},
		},
	}
}

func OnboardingCatalog() table.Catalog[models.OnboardingCase] {
	return table.Catalog[models.OnboardingCase]{
		Fields: []table.Field[models.OnboardingCase]{
			table.Str("employee_name", func(o models.OnboardingCase) string { return o.EmployeeName }),
			table.Str("position", func(o models.OnboardingCase) string { return o.Position }),
			table.Str("department", func(o models.OnboardingCase) string { return o.Department }),
			table.Str("employment_type", func(o models.OnboardingCase) string { return o.EmploymentType }),
			table.Str("status", func(o models.OnboardingCase) string { return o.Status }),
			{Name: "manager", Get: func(o models.OnboardingCase) (string, bool) { return utils.Deref(o.Manager) }},
			table.Str("start_date", func(o models.OnboardingCase) string { return utils.SortableDate(o.StartDate) }),
		},
		Toggles: []table.Toggle[models.OnboardingCase]{
			{Name: "pending_documents", Test: func(o models.OnboardingCase) bool { return o.PendingDocuments > 0 }},
		},
	}
}

func BackgroundCheckCatalog() table.Catalog[models.BackgroundCheck] {
	return table.Catalog[models.BackgroundCheck]{
		Fields: []table.Field[models.BackgroundCheck]{
			{Name: "candidate_name", Get: func(b models.BackgroundCheck) (string, bool) {
				if b.Candidate == nil {
					return "", false
				}
				return b.Candidate.Name, true
			}},
			{Name: "candidate_email", Get: func(b models.BackgroundCheck) (string, bool) {
				if b.Candidate == nil {
					return "", false
				}
				return b.Candidate.Email, true
			}},
			table.Str("package", func(b models.BackgroundCheck) string { return b.Package }),
			table.Str("status", func(b models.BackgroundCheck) string { return b.Status }),
			table.Str("sensitivity", func(b models.BackgroundCheck) string { return b.Sensitivity }),
			table.Str("region", func(b models.BackgroundCheck) string { return b.Region }),
			table.Str("requested_at", func(b models.BackgroundCheck) string { return utils.SortableDateTime(b.RequestedAt) }),
		},
	}
}
