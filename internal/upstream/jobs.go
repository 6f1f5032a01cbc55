package upstream

import (
	"context"
	"net/http"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
)

func (c *Client) ListJobPostings(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.JobPosting], error) {
	return listPage[models.JobPosting](ctx, c, "/job-postings", p)
}

// AllJobPostings walks every page; it backs the job postings screen.
func (c *Client) AllJobPostings(ctx context.Context) ([]models.JobPosting, error) {
	return fetchAll[models.JobPosting](ctx, c, "/job-postings")
}

func (c *Client) JobApplications(ctx context.Context, jobID string, p domain.ListParams) (domain.PageEnvelope[models.JobApplication], error) {
	return listPage[models.JobApplication](ctx, c, "/job-postings/"+escape(jobID)+"/applications", p)
}

func (c *Client) ShowApplication(ctx context.Context, id string) (models.JobApplication, error) {
	var a models.JobApplication
	err := c.getJSON(ctx, "/applications/"+escape(id), nil, &a)
	return a, err
}

func (c *Client) RejectApplications(ctx context.Context, in models.RejectInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/applications/reject", in, nil)
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/job-postings/"+escape(id), nil, nil)
}

func (c *Client) DuplicateJob(ctx context.Context, id string) (models.JobPosting, error) {
	var j models.JobPosting
	err := c.sendJSON(ctx, http.MethodPost, "/job-postings/"+escape(id)+"/duplicate", nil, &j)
	return j, err
}

func (c *Client) ChangeJobStatus(ctx context.Context, id string, in models.JobStatusInput) (models.JobPosting, error) {
	var j models.JobPosting
	err := c.sendJSON(ctx, http.MethodPatch, "/job-postings/"+escape(id)+"/status", in, &j)
	return j, err
}

func (c *Client) ScheduleInterview(ctx context.Context, applicationID string, in models.InterviewInput) (models.Interview, error) {
	var iv models.Interview
	err := c.sendJSON(ctx, http.MethodPost, "/applications/"+escape(applicationID)+"/interviews", in, &iv)
	return iv, err
}
