package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"hrportal/internal/http/middleware"
	"hrportal/internal/services"
)

// Handler carries the services the routes call. Meetings and Jobs are nil
// when no HR backend is configured; their routes then answer 503.
type Handler struct {
	RecordSource string
	Screens      *services.ScreenService
	Wizards      *services.WizardService
	Meetings     services.MeetingGateway
	Jobs         services.JobGateway
	DB           *sql.DB
}

func (h *Handler) meetingService(c *gin.Context) services.MeetingService {
	return services.MeetingService{Gateway: h.Meetings, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) jobService(c *gin.Context) services.JobService {
	return services.JobService{Gateway: h.Jobs, RequestID: middleware.GetRequestID(c)}
}
