package models

import "time"

// Candidate is optional on a background check: checks requested for an
// existing employee carry no candidate sub-object.
type Candidate struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

type BackgroundCheck struct {
	CheckID     string     `json:"id" yaml:"id"`
	Candidate   *Candidate `json:"candidate,omitempty" yaml:"candidate,omitempty"`
	Package     string     `json:"package" yaml:"package"`
	Sensitivity string     `json:"sensitivity" yaml:"sensitivity"`
	Region      string     `json:"region" yaml:"region"`
	Status      string     `json:"status" yaml:"status"`
	RequestedAt time.Time  `json:"requested_at" yaml:"requested_at"`
}

func (b BackgroundCheck) ID() string { return b.CheckID }

// BackgroundCheckStart is assembled by the background-check wizard.
type BackgroundCheckStart struct {
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	Package        string `json:"package"`
	Region         string `json:"region"`
	Sensitivity    string `json:"sensitivity"`
	ConsentGiven   bool   `json:"consent_given"`
}
