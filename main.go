package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "hrportal/internal/config"
	"hrportal/internal/domain/models"
	"hrportal/internal/fixtures"
	router "hrportal/internal/http"
	h "hrportal/internal/http/handlers"
	"hrportal/internal/repositories"
	"hrportal/internal/services"
	"hrportal/internal/upstream"
	"hrportal/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()

	logger, err := utils.NewLogger(env.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := env.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screens, err := intconfig.LoadScreens(env.ScreensFile, env.DefaultPageSize)
	if err != nil {
		logger.Fatal("load screen configuration", zap.Error(err))
	}

	var client *upstream.Client
	if env.UpstreamURL != "" {
		client = upstream.New(upstream.Options{
			BaseURL: env.UpstreamURL,
			Token:   env.UpstreamToken,
			Timeout: env.UpstreamTimeout,
			RPS:     env.UpstreamRPS,
		})
	}

	src, refSrc, db, err := recordSources(ctx, env, client)
	if err != nil {
		logger.Fatal("open record source", zap.String("source", env.RecordSource), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}

	ref, err := services.LoadReference(ctx, refSrc, env.UpstreamTimeout)
	if err != nil {
		// filters still work, dropdowns just lack reference values
		logger.Warn("reference data unavailable", zap.Error(err))
	}

	hd := &h.Handler{
		RecordSource: env.RecordSource,
		Screens:      services.NewScreenService(env.SessionTTL, ref),
		DB:           db,
	}
	var jobs *services.JobService
	if client != nil {
		hd.Meetings = client
		hd.Jobs = client
		hd.Wizards = services.NewWizardService(client, env.SessionTTL)
		jobs = &services.JobService{Gateway: client}
	} else {
		hd.Wizards = services.NewWizardService(nil, env.SessionTTL)
		logger.Warn("UPSTREAM_URL not set, actions are disabled")
	}
	if err := services.ConfigureScreens(hd.Screens, screens, env.SortLocale, src, jobs); err != nil {
		logger.Fatal("configure screens", zap.Error(err))
	}

	go runSweepers(ctx, hd.Screens, hd.Wizards)

	// Router (Gin engine)
	r := router.NewRouter(env, hd)
	h.SetRouter(r)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr), zap.String("record_source", env.RecordSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

// recordSources picks where list screens read from. The returned db is only
// set for the mysql source and must be closed by the caller.
func recordSources(ctx context.Context, env intconfig.Env, client *upstream.Client) (services.Sources, services.ReferenceSource, *sql.DB, error) {
	switch env.RecordSource {
	case intconfig.SourceUpstream:
		return services.Sources{
			Applicants:       services.SourceFunc[models.Applicant](client.AllApplicants),
			JobPostings:      services.SourceFunc[models.JobPosting](client.AllJobPostings),
			Onboarding:       services.SourceFunc[models.OnboardingCase](client.AllOnboardingCases),
			BackgroundChecks: services.SourceFunc[models.BackgroundCheck](client.AllBackgroundChecks),
		}, client, nil, nil

	case intconfig.SourceMySQL:
		db, err := intconfig.ConnectDB(ctx, env)
		if err != nil {
			return services.Sources{}, nil, nil, err
		}
		return services.Sources{
			Applicants:       repositories.ApplicantRepository{DB: db},
			JobPostings:      repositories.JobPostingRepository{DB: db},
			Onboarding:       repositories.OnboardingRepository{DB: db},
			BackgroundChecks: repositories.BackgroundCheckRepository{DB: db},
		}, repositories.ReferenceRepository{DB: db}, db, nil

	default:
		set, err := fixtures.Load(env.FixturesFile)
		if err != nil {
			return services.Sources{}, nil, nil, err
		}
		return services.Sources{
			Applicants:       services.SourceFunc[models.Applicant](set.Applicants),
			JobPostings:      services.SourceFunc[models.JobPosting](set.JobPostings),
			Onboarding:       services.SourceFunc[models.OnboardingCase](set.OnboardingCases),
			BackgroundChecks: services.SourceFunc[models.BackgroundCheck](set.BackgroundChecks),
		}, set, nil, nil
	}
}

func runSweepers(ctx context.Context, screens *services.ScreenService, wizards *services.WizardService) {
	go screens.RunSweeper(ctx, time.Minute)

	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := wizards.Sweep(); n > 0 {
				zap.L().Info("expired wizards swept", zap.Int("count", n))
			}
		}
	}
}
