package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrportal/internal/domain"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"APP_ADDR", "RECORD_SOURCE", "UPSTREAM_TIMEOUT", "CORS_ALLOWED_ORIGINS", "DEFAULT_PAGE_SIZE"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()
	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, SourceFixtures, env.RecordSource)
	assert.Equal(t, 15*time.Second, env.UpstreamTimeout)
	assert.Equal(t, 10, env.DefaultPageSize)
	assert.Contains(t, env.CORSAllowedOrigins, "http://localhost:5173")
	require.NoError(t, env.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RECORD_SOURCE", "UPSTREAM")
	t.Setenv("UPSTREAM_URL", "https://hr.example.com/api/")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")

	env := LoadEnv()
	assert.Equal(t, SourceUpstream, env.RecordSource)
	assert.Equal(t, "https://hr.example.com/api", env.UpstreamURL)
	assert.Equal(t, 3*time.Second, env.UpstreamTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.CORSAllowedOrigins)
	assert.Equal(t, 25, env.DefaultPageSize)
	require.NoError(t, env.Validate())
}

func TestValidate(t *testing.T) {
	env := Env{RecordSource: SourceUpstream, DefaultPageSize: 10}
	assert.Error(t, env.Validate())
	env.RecordSource = "carrier-pigeon"
	assert.Error(t, env.Validate())
	env = Env{RecordSource: SourceMySQL, DBName: "hr", DefaultPageSize: 0}
	assert.Error(t, env.Validate())
}

func TestDSN(t *testing.T) {
	env := Env{DBUser: "hr", DBPassword: "pw", DBHost: "db:3306", DBName: "hr_app"}
	dsn := env.DSN()
	assert.True(t, strings.HasPrefix(dsn, "hr:pw@tcp(db:3306)/hr_app?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestLoadScreensOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
job_postings:
  search: [title]
  facets:
    - field: status
      capitalize: true
  sortable: [title]
  default_sort:
    field: title
    direction: desc
`), 0o600))

	screens, err := LoadScreens(path, 20)
	require.NoError(t, err)
	jp := screens[ScreenJobPostings]
	assert.Equal(t, []string{"title"}, jp.Sortable)
	assert.Equal(t, domain.Desc, jp.DefaultSort.Direction)
	assert.Equal(t, 20, jp.PageSize)
	assert.Equal(t, 20, screens[ScreenApplicants].PageSize)
}

func TestLoadScreensRejectsUnknownScreen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("payroll:\n  search: [name]\n"), 0o600))
	_, err := LoadScreens(path, 10)
	assert.Error(t, err)
}
