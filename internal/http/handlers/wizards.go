package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrportal/internal/http/middleware"
	"hrportal/internal/services"
)

type createWizardRequest struct {
	Kind string `json:"kind" binding:"required"`
}

type stepDataRequest struct {
	Step string          `json:"step" binding:"required"`
	Data json.RawMessage `json:"data" binding:"required"`
}

func (h *Handler) WizardKinds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wizards": h.Wizards.Kinds()})
}

func (h *Handler) CreateWizard(c *gin.Context) {
	if h.Wizards.Gateway == nil {
		respondUnavailable(c, "HR backend")
		return
	}
	var req createWizardRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := h.Wizards.Create(middleware.GetRequestID(c), req.Kind)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) GetWizard(c *gin.Context) {
	respondWizard(c)(h.Wizards.Get(c.Param("id")))
}

func (h *Handler) WizardNext(c *gin.Context) {
	respondWizard(c)(h.Wizards.Next(c.Param("id")))
}

func (h *Handler) WizardBack(c *gin.Context) {
	respondWizard(c)(h.Wizards.Back(c.Param("id")))
}

func (h *Handler) WizardSetData(c *gin.Context) {
	var req stepDataRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	respondWizard(c)(h.Wizards.SetData(c.Param("id"), req.Step, req.Data))
}

func (h *Handler) WizardSubmit(c *gin.Context) {
	respondWizard(c)(h.Wizards.Submit(c.Request.Context(), middleware.GetRequestID(c), c.Param("id")))
}

func (h *Handler) DiscardWizard(c *gin.Context) {
	h.Wizards.Discard(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func respondWizard(c *gin.Context) func(services.WizardView, error) {
	return func(v services.WizardView, err error) {
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}
