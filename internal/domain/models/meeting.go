package models

import "time"

// MinMeetingMinutes is the shortest meeting the UI lets a user create.
const MinMeetingMinutes = 15

type Attendee struct {
	UserID *int64 `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type Meeting struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes"`
	Location        string     `json:"location,omitempty"`
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Attendees       []Attendee `json:"attendees,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type MeetingInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
}

// MeetingPatch supports PATCH-style updates: nil fields are left untouched.
type MeetingPatch struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Location        *string    `json:"location,omitempty"`
}

// InviteInput invites either an existing user (UserID) or an outside guest (Email).
type InviteInput struct {
	UserID *int64 `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}
