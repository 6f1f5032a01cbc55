// Package fixtures serves list-screen records and reference data from a static
// YAML file, for local development and demos without an HR backend.
package fixtures

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"hrportal/internal/domain/models"
)

// File is the on-disk layout of a fixtures file.
type File struct {
	Applicants       []models.Applicant       `yaml:"applicants"`
	JobPostings      []models.JobPosting      `yaml:"job_postings"`
	Onboarding       []models.OnboardingCase  `yaml:"onboarding"`
	BackgroundChecks []models.BackgroundCheck `yaml:"background_checks"`
	Reference        models.ReferenceData     `yaml:"reference"`
}

// Set is a loaded fixtures file. Every read re-reads the file when it changed
// on disk, so editing fixtures does not need a restart.
type Set struct {
	path string

	mu      sync.Mutex
	modTime int64
	data    File
}

// Load parses path once up front so a broken file fails at startup.
func Load(path string) (*Set, error) {
	s := &Set{path: path}
	if _, err := s.current(); err != nil {
		return nil, err
	}
	return s, nil
}

// Parse decodes fixtures from raw YAML.
func Parse(raw []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse fixtures: %w", err)
	}
	return f, nil
}

func (s *Set) current() (File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		return File{}, fmt.Errorf("stat fixtures: %w", err)
	}
	if mt := info.ModTime().UnixNano(); mt == s.modTime {
		return s.data, nil
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return File{}, fmt.Errorf("read fixtures: %w", err)
	}
	f, err := Parse(raw)
	if err != nil {
		return File{}, err
	}
	s.data = f
	s.modTime = info.ModTime().UnixNano()
	return f, nil
}

func (s *Set) Applicants(ctx context.Context) ([]models.Applicant, error) {
	f, err := s.current()
	return cloneOrEmpty(f.Applicants), err
}

func (s *Set) JobPostings(ctx context.Context) ([]models.JobPosting, error) {
	f, err := s.current()
	return cloneOrEmpty(f.JobPostings), err
}

func (s *Set) OnboardingCases(ctx context.Context) ([]models.OnboardingCase, error) {
	f, err := s.current()
	return cloneOrEmpty(f.Onboarding), err
}

func (s *Set) BackgroundChecks(ctx context.Context) ([]models.BackgroundCheck, error) {
	f, err := s.current()
	return cloneOrEmpty(f.BackgroundChecks), err
}

func (s *Set) ReferenceData(ctx context.Context) (models.ReferenceData, error) {
	f, err := s.current()
	return f.Reference, err
}

// cloneOrEmpty hands out a copy so callers cannot mutate the cached file.
func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
