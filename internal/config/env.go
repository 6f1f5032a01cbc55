package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Record sources a deployment can read list screens from.
const (
	SourceUpstream = "upstream"
	SourceMySQL    = "mysql"
	SourceFixtures = "fixtures"
)

type Env struct {
	AppAddr  string
	GinMode  string
	LogLevel string

	RecordSource string

	UpstreamURL     string
	UpstreamToken   string
	UpstreamTimeout time.Duration
	UpstreamRPS     float64

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	CORSAllowedOrigins []string

	ScreensFile  string
	FixturesFile string

	SortLocale      string
	DefaultPageSize int
	SessionTTL      time.Duration
}

// LoadEnv reads the process environment, after an optional .env file in the
// working directory.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:  getenv("APP_ADDR", ":8080"),
		GinMode:  strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel: getenv("LOG_LEVEL", "info"),

		RecordSource: strings.ToLower(getenv("RECORD_SOURCE", SourceFixtures)),

		UpstreamURL:     strings.TrimRight(getenv("UPSTREAM_URL", ""), "/"),
		UpstreamToken:   getenv("UPSTREAM_TOKEN", ""),
		UpstreamTimeout: getenvDuration("UPSTREAM_TIMEOUT", 15*time.Second),
		UpstreamRPS:     getenvFloat("UPSTREAM_RPS", 20),

		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getenv("DB_NAME", "hr_app"),

		CORSAllowedOrigins: getenvList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}),

		ScreensFile:  getenv("SCREENS_FILE", ""),
		FixturesFile: getenv("FIXTURES_FILE", "fixtures.yaml"),

		SortLocale:      getenv("SORT_LOCALE", "en"),
		DefaultPageSize: getenvInt("DEFAULT_PAGE_SIZE", 10),
		SessionTTL:      getenvDuration("SESSION_TTL", 30*time.Minute),
	}
}

// Validate checks the settings the chosen record source depends on.
func (e Env) Validate() error {
	switch e.RecordSource {
	case SourceUpstream:
		if e.UpstreamURL == "" {
			return fmt.Errorf("UPSTREAM_URL is required when RECORD_SOURCE=%s", SourceUpstream)
		}
	case SourceMySQL:
		if e.DBName == "" {
			return fmt.Errorf("DB_NAME is required when RECORD_SOURCE=%s", SourceMySQL)
		}
	case SourceFixtures:
		if e.FixturesFile == "" {
			return fmt.Errorf("FIXTURES_FILE is required when RECORD_SOURCE=%s", SourceFixtures)
		}
	default:
		return fmt.Errorf("unknown RECORD_SOURCE %q", e.RecordSource)
	}
	if e.DefaultPageSize <= 0 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive")
	}
	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
