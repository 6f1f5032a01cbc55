package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"hrportal/internal/config"
	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
)

func day(d int) time.Time { return time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC) }

func sampleApplicants() []models.Applicant {
	return []models.Applicant{
		{ApplicantID: "a1", Name: "Ana Fernandez", Email: "ana@example.com", Status: "new", Country: "Spain", HasResume: true, AppliedAt: day(1),
			Job: &models.JobRef{ID: "j1", Title: "Backend Engineer", Department: "Platform"}},
		{ApplicantID: "a2", Name: "Carlos FERNANDEZ", Email: "carlos@example.com", Status: "Screening", Country: "Mexico", AppliedAt: day(2)},
		{ApplicantID: "a3", Name: "Bo Li", Email: "bo@example.com", Status: "new", Country: "China", HasResume: true, AppliedAt: day(3)},
		{ApplicantID: "a4", Name: "Dana Smith", Email: "dana@example.com", Status: "hired", Country: "Spain", AppliedAt: day(4),
			Job: &models.JobRef{ID: "j2", Title: "Recruiter", Department: "People"}},
	}
}

func sampleJobs() []models.JobPosting {
	return []models.JobPosting{
		{JobID: "j1", Title: "Backend Engineer", Status: "Open", Department: "Platform", CreatedAt: day(1)},
		{JobID: "j2", Title: "Recruiter", Status: "Draft", Department: "People", CreatedAt: day(2)},
		{JobID: "j3", Title: "Accountant", Status: "Closed", Department: "Finance", CreatedAt: day(3)},
	}
}

func newTestScreens(t interface{ Fatalf(string, ...any) }, src Sources, jobs *JobService) *ScreenService {
	svc := NewScreenService(time.Hour, models.ReferenceData{
		Countries: []models.Country{{Code: "DE", Name: "Germany"}},
	})
	if err := ConfigureScreens(svc, config.DefaultScreens(2), "en", src, jobs); err != nil {
		t.Fatalf("configure screens: %v", err)
	}
	return svc
}

type fakeJobs struct {
	mu        sync.Mutex
	rejected  []models.RejectInput
	deleted   []string
	failOn    map[string]bool
	rejectErr error
}

func (f *fakeJobs) ListJobPostings(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.JobPosting], error) {
	return domain.PageEnvelope[models.JobPosting]{Data: sampleJobs(), CurrentPage: p.Page, LastPage: 1, PerPage: p.PerPage, Total: 3}, nil
}

func (f *fakeJobs) JobApplications(ctx context.Context, jobID string, p domain.ListParams) (domain.PageEnvelope[models.JobApplication], error) {
	return domain.PageEnvelope[models.JobApplication]{Data: []models.JobApplication{{ID: "ap1", JobID: jobID}}, CurrentPage: p.Page, LastPage: 1, Total: 1}, nil
}

func (f *fakeJobs) ShowApplication(ctx context.Context, id string) (models.JobApplication, error) {
	if id == "missing" {
		return models.JobApplication{}, domain.NotFoundError{Resource: "application", ID: id}
	}
	return models.JobApplication{ID: id}, nil
}

func (f *fakeJobs) RejectApplications(ctx context.Context, in models.RejectInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rejectErr != nil {
		return f.rejectErr
	}
	f.rejected = append(f.rejected, in)
	return nil
}

func (f *fakeJobs) DeleteJob(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[id] {
		return domain.UpstreamError{Status: 500, Message: "cannot delete " + id}
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeJobs) DuplicateJob(ctx context.Context, id string) (models.JobPosting, error) {
	return models.JobPosting{JobID: id + "-copy", Title: "Copy"}, nil
}

func (f *fakeJobs) ChangeJobStatus(ctx context.Context, id string, in models.JobStatusInput) (models.JobPosting, error) {
	return models.JobPosting{JobID: id, Status: in.Status}, nil
}

func (f *fakeJobs) ScheduleInterview(ctx context.Context, applicationID string, in models.InterviewInput) (models.Interview, error) {
	return models.Interview{ID: "iv1", ApplicationID: applicationID, ScheduledAt: in.ScheduledAt, DurationMinutes: in.DurationMinutes}, nil
}

// fakeMeetings keeps one meeting and enforces start/end idempotency like the
// HR backend does.
type fakeMeetings struct {
	mu      sync.Mutex
	meeting models.Meeting
	shows   int
	clock   func() time.Time
}

func (f *fakeMeetings) CreateMeeting(ctx context.Context, in models.MeetingInput) (models.Meeting, error) {
	return models.Meeting{ID: "m1", Title: in.Title, ScheduledAt: in.ScheduledAt, DurationMinutes: in.DurationMinutes, Status: "scheduled"}, nil
}

func (f *fakeMeetings) UpdateMeeting(ctx context.Context, id string, patch models.MeetingPatch) (models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if patch.Title != nil {
		f.meeting.Title = *patch.Title
	}
	return f.meeting, nil
}

func (f *fakeMeetings) ShowMeeting(ctx context.Context, id string) (models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shows++
	if id != f.meeting.ID {
		return models.Meeting{}, domain.NotFoundError{Resource: "meeting", ID: id}
	}
	return f.meeting, nil
}

func (f *fakeMeetings) StartMeeting(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.meeting.StartedAt != nil {
		return domain.AlreadyDone[models.Meeting]("Meeting has already started"), nil
	}
	now := f.clock()
	f.meeting.StartedAt = &now
	f.meeting.Status = "in_progress"
	return domain.OK(f.meeting), nil
}

func (f *fakeMeetings) EndMeeting(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.meeting.StartedAt == nil {
		return domain.Failed[models.Meeting]("Meeting has not started"), nil
	}
	if f.meeting.EndedAt != nil {
		return domain.AlreadyDone[models.Meeting]("Meeting has already ended"), nil
	}
	now := f.clock()
	f.meeting.EndedAt = &now
	f.meeting.Status = "ended"
	return domain.OK(f.meeting), nil
}

func (f *fakeMeetings) InviteToMeeting(ctx context.Context, id string, in models.InviteInput) (models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meeting.Attendees = append(f.meeting.Attendees, models.Attendee{UserID: in.UserID, Email: in.Email})
	return f.meeting, nil
}

func (f *fakeMeetings) ListMeetings(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.Meeting], error) {
	return domain.PageEnvelope[models.Meeting]{Data: []models.Meeting{f.meeting}, CurrentPage: p.Page, LastPage: 1, Total: 1}, nil
}

type fakeWizardGateway struct {
	policies []models.SickLeavePolicy
	starts   []models.BackgroundCheckStart
	fail     bool
}

func (f *fakeWizardGateway) PublishSickLeavePolicy(ctx context.Context, p models.SickLeavePolicy) error {
	if f.fail {
		return errors.New("backend down")
	}
	f.policies = append(f.policies, p)
	return nil
}

func (f *fakeWizardGateway) StartBackgroundCheck(ctx context.Context, in models.BackgroundCheckStart) (models.BackgroundCheck, error) {
	if f.fail {
		return models.BackgroundCheck{}, errors.New("backend down")
	}
	f.starts = append(f.starts, in)
	return models.BackgroundCheck{CheckID: "bc1", Candidate: &models.Candidate{Name: in.CandidateName, Email: in.CandidateEmail}, Package: in.Package, Status: "pending"}, nil
}
