package models

import "time"

type OnboardingCase struct {
	CaseID           string    `json:"id" yaml:"id"`
	EmployeeName     string    `json:"employee_name" yaml:"employee_name"`
	Position         string    `json:"position" yaml:"position"`
	Department       string    `json:"department" yaml:"department"`
	EmploymentType   string    `json:"employment_type" yaml:"employment_type"`
	Status           string    `json:"status" yaml:"status"`
	Manager          *string   `json:"manager,omitempty" yaml:"manager,omitempty"`
	PendingDocuments int       `json:"pending_documents" yaml:"pending_documents"`
	StartDate        time.Time `json:"start_date" yaml:"start_date"`
}

func (o OnboardingCase) ID() string { return o.CaseID }
