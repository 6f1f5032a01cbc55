package models

import "time"

// Job posting statuses as shown on the job postings screen.
const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
	JobStatusDraft  = "Draft"
)

var JobStatuses = []string{JobStatusOpen, JobStatusClosed, JobStatusDraft}

type JobPosting struct {
	JobID          string    `json:"id" yaml:"id"`
	Title          string    `json:"title" yaml:"title"`
	Department     string    `json:"department" yaml:"department"`
	Location       string    `json:"location" yaml:"location"`
	Region         string    `json:"region" yaml:"region"`
	EmploymentType string    `json:"employment_type" yaml:"employment_type"`
	Status         string    `json:"status" yaml:"status"`
	Remote         bool      `json:"remote" yaml:"remote"`
	Applicants     int       `json:"applicants_count" yaml:"applicants_count"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

func (j JobPosting) ID() string { return j.JobID }

type JobApplication struct {
	ID            string     `json:"id"`
	JobID         string     `json:"job_id"`
	ApplicantID   string     `json:"applicant_id"`
	ApplicantName string     `json:"applicant_name"`
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	ResumeURL     string     `json:"resume_url,omitempty"`
	CoverLetter   string     `json:"cover_letter,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	AppliedAt     time.Time  `json:"applied_at"`
	Interview     *Interview `json:"interview,omitempty"`
}

type Interview struct {
	ID              string    `json:"id,omitempty"`
	ApplicationID   string    `json:"application_id,omitempty"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Mode            string    `json:"mode"`
	Location        string    `json:"location,omitempty"`
	InterviewerIDs  []string  `json:"interviewer_ids,omitempty"`
}

// InterviewInput is the payload for scheduling an interview on an application.
type InterviewInput struct {
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Mode            string    `json:"mode"`
	Location        string    `json:"location,omitempty"`
	InterviewerIDs  []string  `json:"interviewer_ids,omitempty"`
}

// RejectInput rejects one or many applications at once.
type RejectInput struct {
	ApplicationIDs []string `json:"application_ids" binding:"required"`
	Reason         string   `json:"reason,omitempty"`
}

type JobStatusInput struct {
	Status string `json:"status" binding:"required"`
}
