package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
applicants:
  - id: "a1"
    name: Ana Fernandez
    email: ana@example.com
    status: new
    country: Spain
    has_resume: true
    applied_at: 2026-03-02T09:30:00Z
    job:
      id: "j1"
      title: Backend Engineer
      department: Platform
  - id: "a2"
    name: Bo Li
    status: screening
job_postings:
  - id: "j1"
    title: Backend Engineer
    status: Open
    remote: true
background_checks:
  - id: "b1"
    package: standard
    status: pending
reference:
  countries:
    - {code: ES, name: Spain}
  departments:
    - {id: "1", name: Platform}
`

func writeFixtures(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	set, err := Load(writeFixtures(t, sample))
	require.NoError(t, err)
	ctx := context.Background()

	apps, err := set.Applicants(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.NotNil(t, apps[0].Job)
	assert.Equal(t, "Backend Engineer", apps[0].Job.Title)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), apps[0].AppliedAt.UTC())
	assert.Nil(t, apps[1].Job)

	jobs, err := set.JobPostings(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.True(t, jobs[0].Remote)

	checks, err := set.BackgroundChecks(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Nil(t, checks[0].Candidate)

	onb, err := set.OnboardingCases(ctx)
	require.NoError(t, err)
	assert.NotNil(t, onb)
	assert.Empty(t, onb)

	ref, err := set.ReferenceData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Spain"}, ref.Values("country"))
	assert.Equal(t, []string{"Platform"}, ref.Values("department"))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFixtures(t, "applicants: [this is: not: valid"))
	require.Error(t, err)
}

func TestSet_ReturnsCopies(t *testing.T) {
	set, err := Load(writeFixtures(t, sample))
	require.NoError(t, err)
	ctx := context.Background()

	apps, _ := set.Applicants(ctx)
	apps[0].Name = "changed"
	again, _ := set.Applicants(ctx)
	assert.Equal(t, "Ana Fernandez", again[0].Name)
}

func TestSet_ReloadsOnChange(t *testing.T) {
	path := writeFixtures(t, sample)
	set, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("job_postings:\n  - {id: \"j9\", title: Recruiter}\n"), 0o600))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	jobs, err := set.JobPostings(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "j9", jobs[0].JobID)
}
