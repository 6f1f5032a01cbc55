package upstream

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"hrportal/internal/domain/models"
)

func (c *Client) AllApplicants(ctx context.Context) ([]models.Applicant, error) {
	return fetchAll[models.Applicant](ctx, c, "/applicants")
}

func (c *Client) AllOnboardingCases(ctx context.Context) ([]models.OnboardingCase, error) {
	return fetchAll[models.OnboardingCase](ctx, c, "/onboarding")
}

func (c *Client) AllBackgroundChecks(ctx context.Context) ([]models.BackgroundCheck, error) {
	return fetchAll[models.BackgroundCheck](ctx, c, "/background-checks")
}

func (c *Client) StartBackgroundCheck(ctx context.Context, in models.BackgroundCheckStart) (models.BackgroundCheck, error) {
	var b models.BackgroundCheck
	err := c.sendJSON(ctx, http.MethodPost, "/background-checks", in, &b)
	return b, err
}

func (c *Client) PublishSickLeavePolicy(ctx context.Context, p models.SickLeavePolicy) error {
	return c.sendJSON(ctx, http.MethodPost, "/leave-policies/sick", p, nil)
}

// ReferenceData loads countries, departments and employment types in parallel.
func (c *Client) ReferenceData(ctx context.Context) (models.ReferenceData, error) {
	var ref models.ReferenceData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.getJSON(gctx, "/countries", nil, &ref.Countries) })
	g.Go(func() error { return c.getJSON(gctx, "/departments", nil, &ref.Departments) })
	g.Go(func() error { return c.getJSON(gctx, "/employment-types", nil, &ref.EmploymentTypes) })
	if err := g.Wait(); err != nil {
		return models.ReferenceData{}, err
	}
	return ref, nil
}
