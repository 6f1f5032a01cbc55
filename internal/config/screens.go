package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hrportal/internal/domain"
	"hrportal/internal/table"
)

// Screen names, shared by routes, sources and catalogs.
const (
	ScreenApplicants       = "applicants"
	ScreenJobPostings      = "job_postings"
	ScreenOnboarding       = "onboarding"
	ScreenBackgroundChecks = "background_checks"
)

// DefaultScreens is the built-in table configuration for every list screen.
func DefaultScreens(pageSize int) map[string]table.Spec {
	return map[string]table.Spec{
		ScreenApplicants: {
			Search: []string{"name", "email"},
			Facets: []table.FacetSpec{
				{Field: "status", Capitalize: true},
				{Field: "country", Reference: "country"},
				{Field: "job_title"},
				{Field: "source"},
			},
			Toggles:     []string{"has_resume"},
			Sortable:    []string{"name", "email", "status", "job_title", "applied_at"},
			DefaultSort: domain.SortSpec{Field: "applied_at", Direction: domain.Desc},
			PageSize:    pageSize,
		},
		ScreenJobPostings: {
			Search: []string{"title"},
			Facets: []table.FacetSpec{
				{Field: "status", Capitalize: true},
				{Field: "department", Reference: "department"},
				{Field: "employment_type", Reference: "employment_type"},
				{Field: "region"},
			},
			Toggles:     []string{"remote"},
			Sortable:    []string{"title", "department", "status", "created_at"},
			DefaultSort: domain.SortSpec{Field: "created_at", Direction: domain.Desc},
			PageSize:    pageSize,
		},
		ScreenOnboarding: {
			Search: []string{"employee_name", "position"},
			Facets: []table.FacetSpec{
				{Field: "status", Capitalize: true},
				{Field: "department", Reference: "department"},
				{Field: "employment_type", Reference: "employment_type"},
			},
			Toggles:     []string{"pending_documents"},
			Sortable:    []string{"employee_name", "department", "status", "start_date"},
			DefaultSort: domain.SortSpec{Field: "start_date", Direction: domain.Asc},
			PageSize:    pageSize,
		},
		ScreenBackgroundChecks: {
			Search: []string{"candidate_name"},
			Facets: []table.FacetSpec{
				{Field: "status", Capitalize: true},
				{Field: "sensitivity", Capitalize: true},
				{Field: "region"},
			},
			Sortable:    []string{"candidate_name", "package", "status", "requested_at"},
			DefaultSort: domain.SortSpec{Field: "requested_at", Direction: domain.Desc},
			PageSize:    pageSize,
		},
	}
}

// LoadScreens returns the defaults with any screen defined in path replacing
// its default wholesale. An empty path yields the defaults.
func LoadScreens(path string, pageSize int) (map[string]table.Spec, error) {
	screens := DefaultScreens(pageSize)
	if path == "" {
		return screens, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read screens file: %w", err)
	}
	var overlay map[string]table.Spec
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse screens file: %w", err)
	}
	for name, spec := range overlay {
		if _, known := screens[name]; !known {
			return nil, fmt.Errorf("screens file: unknown screen %q", name)
		}
		if spec.PageSize <= 0 {
			spec.PageSize = pageSize
		}
		screens[name] = spec
	}
	return screens, nil
}
