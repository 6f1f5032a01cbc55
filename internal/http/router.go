package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "hrportal/internal/config"
	h "hrportal/internal/http/handlers"
	"hrportal/internal/http/middleware"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		zap.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", h.Routes)
		api.GET("/reference", hd.Reference)

		// List screens and their view sessions
		api.GET("/screens", hd.ListScreens)
		api.POST("/screens/:screen/sessions", hd.OpenSession)
		sessions := api.Group("/sessions/:id")
		mountSession(sessions, hd)

		// Meetings
		meetings := api.Group("/meetings")
		meetings.GET("", hd.ListMeetings)
		meetings.POST("", hd.CreateMeeting)
		meetings.GET("/:id", hd.GetMeeting)
		meetings.PATCH("/:id", hd.UpdateMeeting)
		meetings.POST("/:id/start", hd.StartMeeting)
		meetings.POST("/:id/end", hd.EndMeeting)
		meetings.POST("/:id/invite", hd.InviteToMeeting)

		// Job postings and applications
		jobs := api.Group("/job-postings")
		jobs.GET("", hd.ListJobPostings)
		jobs.GET("/:id/applications", hd.JobApplications)
		jobs.DELETE("/:id", hd.DeleteJob)
		jobs.POST("/:id/duplicate", hd.DuplicateJob)
		jobs.PATCH("/:id/status", hd.ChangeJobStatus)

		applications := api.Group("/applications")
		applications.GET("/:id", hd.GetApplication)
		applications.POST("/:id/interviews", hd.ScheduleInterview)
		api.POST("/application-rejections", hd.RejectApplications)

		// Wizards
		wizards := api.Group("/wizards")
		wizards.GET("", hd.WizardKinds)
		wizards.POST("", hd.CreateWizard)
		wizards.GET("/:id", hd.GetWizard)
		wizards.DELETE("/:id", hd.DiscardWizard)
		wizards.POST("/:id/next", hd.WizardNext)
		wizards.POST("/:id/back", hd.WizardBack)
		wizards.PUT("/:id/data", hd.WizardSetData)
		wizards.POST("/:id/submit", hd.WizardSubmit)
	}

	return r
}

func mountSession(g *gin.RouterGroup, hd *h.Handler) {
	g.GET("", hd.GetSession)
	g.DELETE("", hd.CloseSession)
	g.PUT("/criteria", hd.SetCriteria)
	g.DELETE("/criteria", hd.ClearCriteria)
	g.PUT("/sort", hd.SetSort)
	g.DELETE("/sort", hd.ClearSort)
	g.PUT("/page", hd.SetPage)
	g.POST("/selection/toggle", hd.ToggleSelection)
	g.POST("/selection/all", hd.SelectAll)
	g.DELETE("/selection", hd.ClearSelection)
	g.POST("/refresh", hd.RefreshSession)
	g.GET("/facets", hd.FacetOptions)
	g.POST("/actions/:action", hd.BulkAction)
}
