package services

import (
	"context"
	"fmt"
	"time"

	"hrportal/internal/config"
	"hrportal/internal/domain/models"
	"hrportal/internal/table"
)

// Sources are the record sources of the four list screens. A nil source
// leaves its screen unregistered.
type Sources struct {
	Applicants       Source[models.Applicant]
	JobPostings      Source[models.JobPosting]
	Onboarding       Source[models.OnboardingCase]
	BackgroundChecks Source[models.BackgroundCheck]
}

// ConfigureScreens resolves every screen spec and registers it. Bulk actions
// are only wired when jobs is non-nil, since they need the HR backend.
func ConfigureScreens(svc *ScreenService, specs map[string]table.Spec, locale string, src Sources, jobs *JobService) error {
	var applicantActions, jobActions map[string]BulkAction
	if jobs != nil {
		applicantActions = map[string]BulkAction{"reject": {Run: jobs.RejectBulk}}
		jobActions = map[string]BulkAction{"delete": {Run: jobs.DeleteBulk, Removes: true}}
	}
	if err := register(svc, config.ScreenApplicants, ApplicantCatalog(), specs, locale, src.Applicants, applicantActions); err != nil {
		return err
	}
	if err := register(svc, config.ScreenJobPostings, JobPostingCatalog(), specs, locale, src.JobPostings, jobActions); err != nil {
		return err
	}
	if err := register(svc, config.ScreenOnboarding, OnboardingCatalog(), specs, locale, src.Onboarding, nil); err != nil {
		return err
	}
	return register(svc, config.ScreenBackgroundChecks, BackgroundCheckCatalog(), specs, locale, src.BackgroundChecks, nil)
}

func register[T table.Record](
	svc *ScreenService,
	name string,
	cat table.Catalog[T],
	specs map[string]table.Spec,
	locale string,
	src Source[T],
	actions map[string]BulkAction,
) error {
	if src == nil {
		return nil
	}
	spec, ok := specs[name]
	if !ok {
		return fmt.Errorf("no configuration for screen %s", name)
	}
	cfg, err := table.NewConfig(name, cat, spec, locale)
	if err != nil {
		return err
	}
	RegisterScreen(svc, name, &Screen[T]{Engine: table.NewEngine(cfg), Source: src, Actions: actions})
	return nil
}

// LoadReference loads the lookup lists once, bounded by timeout.
func LoadReference(ctx context.Context, src ReferenceSource, timeout time.Duration) (models.ReferenceData, error) {
	if src == nil {
		return models.ReferenceData{}, nil
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ref, err := src.ReferenceData(ctx)
	if err != nil {
		return models.ReferenceData{}, fmt.Errorf("load reference data: %w", err)
	}
	return ref, nil
}
