package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrportal/internal/domain/models"
)

func (h *Handler) ListJobPostings(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	env, err := h.jobService(c).ListPostings(c.Request.Context(), listParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) JobApplications(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	env, err := h.jobService(c).Applications(c.Request.Context(), c.Param("id"), listParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	if err := h.jobService(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DuplicateJob(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	j, err := h.jobService(c).Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

func (h *Handler) ChangeJobStatus(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	var in models.JobStatusInput
	if !BindJSONOrError(c, &in) {
		return
	}
	j, err := h.jobService(c).ChangeStatus(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *Handler) GetApplication(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	a, err := h.jobService(c).Application(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) RejectApplications(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	var in models.RejectInput
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := h.jobService(c).Reject(c.Request.Context(), in); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": len(in.ApplicationIDs)})
}

func (h *Handler) ScheduleInterview(c *gin.Context) {
	if h.Jobs == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	var in models.InterviewInput
	if !BindJSONOrError(c, &in) {
		return
	}
	iv, err := h.jobService(c).ScheduleInterview(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, iv)
}
