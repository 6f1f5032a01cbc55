package models

import "time"

// JobRef is the job summary nested inside an applicant. It is optional: applicants
// coming from the general talent pool have none.
type JobRef struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Department string `json:"department" yaml:"department"`
}

type Applicant struct {
	ApplicantID string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Email       string    `json:"email" yaml:"email"`
	Phone       string    `json:"phone" yaml:"phone"`
	Status      string    `json:"status" yaml:"status"`
	Stage       string    `json:"stage" yaml:"stage"`
	Country     string    `json:"country" yaml:"country"`
	Source      string    `json:"source" yaml:"source"`
	Job         *JobRef   `json:"job,omitempty" yaml:"job,omitempty"`
	HasResume   bool      `json:"has_resume" yaml:"has_resume"`
	AppliedAt   time.Time `json:"applied_at" yaml:"applied_at"`
}

func (a Applicant) ID() string { return a.ApplicantID }
