package models

import (
	"errors"
	"regexp"
	"strings"

	"hrportal/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the same loose check the forms use.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func (in MeetingInput) Validate() error {
	var errs []error
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.ValidationError{Field: "title", Msg: "is required"})
	}
	if in.ScheduledAt.IsZero() {
		errs = append(errs, domain.ValidationError{Field: "scheduled_at", Msg: "is required"})
	}
	if in.DurationMinutes < MinMeetingMinutes {
		errs = append(errs, domain.ValidationError{Field: "duration_minutes", Msg: "must be at least 15 minutes"})
	}
	return errors.Join(errs...)
}

func (p MeetingPatch) Validate() error {
	var errs []error
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, domain.ValidationError{Field: "title", Msg: "cannot be empty"})
	}
	if p.DurationMinutes != nil && *p.DurationMinutes < MinMeetingMinutes {
		errs = append(errs, domain.ValidationError{Field: "duration_minutes", Msg: "must be at least 15 minutes"})
	}
	if p.Title == nil && p.Description == nil && p.ScheduledAt == nil && p.DurationMinutes == nil && p.Location == nil {
		errs = append(errs, domain.ValidationError{Msg: "nothing to update"})
	}
	return errors.Join(errs...)
}

func (in InviteInput) Validate() error {
	email := strings.TrimSpace(in.Email)
	switch {
	case in.UserID == nil && email == "":
		return domain.ValidationError{Field: "email", Msg: "user_id or email is required"}
	case in.UserID != nil && *in.UserID <= 0:
		return domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	case email != "" && !ValidEmail(email):
		return domain.ValidationError{Field: "email", Msg: "is not a valid email address"}
	}
	return nil
}

func (in InterviewInput) Validate() error {
	var errs []error
	if in.ScheduledAt.IsZero() {
		errs = append(errs, domain.ValidationError{Field: "scheduled_at", Msg: "is required"})
	}
	if in.DurationMinutes < MinMeetingMinutes {
		errs = append(errs, domain.ValidationError{Field: "duration_minutes", Msg: "must be at least 15 minutes"})
	}
	return errors.Join(errs...)
}

func (in RejectInput) Validate() error {
	if len(in.ApplicationIDs) == 0 {
		return domain.ValidationError{Field: "application_ids", Msg: "select at least one application"}
	}
	for _, id := range in.ApplicationIDs {
		if strings.TrimSpace(id) == "" {
			return domain.ValidationError{Field: "application_ids", Msg: "contains an empty id"}
		}
	}
	return nil
}

func (in JobStatusInput) Validate() error {
	for _, s := range JobStatuses {
		if strings.EqualFold(s, strings.TrimSpace(in.Status)) {
			return nil
		}
	}
	return domain.ValidationError{Field: "status", Msg: "must be one of Open, Closed, Draft"}
}

func (p SickLeavePolicy) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, domain.ValidationError{Field: "name", Msg: "is required"})
	}
	if p.Eligibility.MinServiceDays < 0 {
		errs = append(errs, domain.ValidationError{Field: "eligibility.min_service_days", Msg: "cannot be negative"})
	}
	if p.Entitlement.DaysPerYear <= 0 {
		errs = append(errs, domain.ValidationError{Field: "entitlement.days_per_year", Msg: "must be greater than zero"})
	}
	if p.Entitlement.CertificateRequiredAfterDays < 0 {
		errs = append(errs, domain.ValidationError{Field: "entitlement.certificate_required_after_days", Msg: "cannot be negative"})
	}
	return errors.Join(errs...)
}

func (s BackgroundCheckStart) Validate() error {
	var errs []error
	if strings.TrimSpace(s.CandidateName) == "" {
		errs = append(errs, domain.ValidationError{Field: "candidate_name", Msg: "is required"})
	}
	if !ValidEmail(s.CandidateEmail) {
		errs = append(errs, domain.ValidationError{Field: "candidate_email", Msg: "is not a valid email address"})
	}
	if strings.TrimSpace(s.Package) == "" {
		errs = append(errs, domain.ValidationError{Field: "package", Msg: "is required"})
	}
	if !s.ConsentGiven {
		errs = append(errs, domain.ValidationError{Field: "consent_given", Msg: "candidate consent is required"})
	}
	return errors.Join(errs...)
}
