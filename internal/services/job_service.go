package services

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
	"hrportal/internal/utils"
)

// JobGateway is the slice of the HR backend behind job and application actions.
type JobGateway interface {
	ListJobPostings(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.JobPosting], error)
	JobApplications(ctx context.Context, jobID string, p domain.ListParams) (domain.PageEnvelope[models.JobApplication], error)
	ShowApplication(ctx context.Context, id string) (models.JobApplication, error)
	RejectApplications(ctx context.Context, in models.RejectInput) error
	DeleteJob(ctx context.Context, id string) error
	DuplicateJob(ctx context.Context, id string) (models.JobPosting, error)
	ChangeJobStatus(ctx context.Context, id string, in models.JobStatusInput) (models.JobPosting, error)
	ScheduleInterview(ctx context.Context, applicationID string, in models.InterviewInput) (models.Interview, error)
}

// bulkDeleteWorkers bounds concurrent deletes against the backend.
const bulkDeleteWorkers = 4

type JobService struct {
	Gateway   JobGateway
	RequestID string
}

func (s JobService) ListPostings(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.JobPosting], error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	return s.Gateway.ListJobPostings(ctx, p)
}

func (s JobService) Applications(ctx context.Context, jobID string, p domain.ListParams) (domain.PageEnvelope[models.JobApplication], error) {
	if err := requireID("job_id", jobID); err != nil {
		return domain.PageEnvelope[models.JobApplication]{}, err
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return s.Gateway.JobApplications(ctx, jobID, p)
}

func (s JobService) Application(ctx context.Context, id string) (models.JobApplication, error) {
	if err := requireID("application_id", id); err != nil {
		return models.JobApplication{}, err
	}
	return s.Gateway.ShowApplication(ctx, id)
}

func (s JobService) Reject(ctx context.Context, in models.RejectInput) error {
	in.Reason = strings.TrimSpace(in.Reason)
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.Gateway.RejectApplications(ctx, in); err != nil {
		utils.LogError(s.RequestID, "jobs", "reject", err, zap.Int("count", len(in.ApplicationIDs)))
		return err
	}
	utils.LogEvent(s.RequestID, "jobs", "reject", "applications rejected", zap.Int("count", len(in.ApplicationIDs)))
	return nil
}

func (s JobService) Delete(ctx context.Context, id string) error {
	if err := requireID("job_id", id); err != nil {
		return err
	}
	if err := s.Gateway.DeleteJob(ctx, id); err != nil {
		utils.LogError(s.RequestID, "jobs", "delete", err, zap.String("job_id", id))
		return err
	}
	utils.LogEvent(s.RequestID, "jobs", "delete", "job posting deleted", zap.String("job_id", id))
	return nil
}

func (s JobService) Duplicate(ctx context.Context, id string) (models.JobPosting, error) {
	if err := requireID("job_id", id); err != nil {
		return models.JobPosting{}, err
	}
	j, err := s.Gateway.DuplicateJob(ctx, id)
	if err != nil {
		utils.LogError(s.RequestID, "jobs", "duplicate", err, zap.String("job_id", id))
		return models.JobPosting{}, err
	}
	return j, nil
}

func (s JobService) ChangeStatus(ctx context.Context, id string, in models.JobStatusInput) (models.JobPosting, error) {
	if err := requireID("job_id", id); err != nil {
		return models.JobPosting{}, err
	}
	if err := in.Validate(); err != nil {
		return models.JobPosting{}, err
	}
	// the backend expects the canonical capitalized status
	for _, st := range models.JobStatuses {
		if strings.EqualFold(st, strings.TrimSpace(in.Status)) {
			in.Status = st
		}
	}
	return s.Gateway.ChangeJobStatus(ctx, id, in)
}

func (s JobService) ScheduleInterview(ctx context.Context, applicationID string, in models.InterviewInput) (models.Interview, error) {
	if err := requireID("application_id", applicationID); err != nil {
		return models.Interview{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Interview{}, err
	}
	iv, err := s.Gateway.ScheduleInterview(ctx, applicationID, in)
	if err != nil {
		utils.LogError(s.RequestID, "jobs", "schedule_interview", err, zap.String("application_id", applicationID))
		return models.Interview{}, err
	}
	return iv, nil
}

// RejectBulk is the applicants screen bulk action: one reject call for the
// whole selection.
func (s JobService) RejectBulk(ctx context.Context, ids []string, in BulkInput) ([]string, error) {
	if err := s.Reject(ctx, models.RejectInput{ApplicationIDs: ids, Reason: in.Reason}); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteBulk is the job postings screen bulk action. Deletes run with bounded
// concurrency; the ids that succeeded are reported even when one fails.
func (s JobService) DeleteBulk(ctx context.Context, ids []string, _ BulkInput) ([]string, error) {
	var (
		mu   sync.Mutex
		done = make([]string, 0, len(ids))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkDeleteWorkers)
	for _, id := range ids {
		g.Go(func() error {
			if err := s.Delete(gctx, id); err != nil {
				return err
			}
			mu.Lock()
			done = append(done, id)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	return done, err
}
