package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
)

func (h *Handler) ListMeetings(c *gin.Context) {
	if h.Meetings == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	env, err := h.meetingService(c).List(c.Request.Context(), listParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) CreateMeeting(c *gin.Context) {
	if h.Meetings == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	var in models.MeetingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	m, err := h.meetingService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) GetMeeting(c *gin.Context) {
	if h.Meetings == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	m, err := h.meetingService(c).Show(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateMeeting(c *gin.Context) {
	if h.Meetings == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	var patch models.MeetingPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	m, err := h.meetingService(c).Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) StartMeeting(c *gin.Context) {
	if h.Meetings == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	respondAction(c)(h.meetingService(c).Start(c.Request.Context(), c.Param("id")))
}

func (h *Handler) EndMeeting(c *gin.Context) {
	if h.Meetings == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	respondAction(c)(h.meetingService(c).End(c.Request.Context(), c.Param("id")))
}

func (h *Handler) InviteToMeeting(c *gin.Context) {
	if h.Meetings == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	var in models.InviteInput
	if !BindJSONOrError(c, &in) {
		return
	}
	m, err := h.meetingService(c).Invite(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// respondAction renders ok and already_done as 200; a refused transition is
// a 409 carrying the backend's reason.
func respondAction(c *gin.Context) func(domain.ActionResult[models.Meeting], error) {
	return func(res domain.ActionResult[models.Meeting], err error) {
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if res.Status == domain.ActionError {
			c.JSON(http.StatusConflict, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
