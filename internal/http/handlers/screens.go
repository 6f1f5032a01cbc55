package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrportal/internal/domain"
	"hrportal/internal/http/middleware"
	"hrportal/internal/services"
	"hrportal/internal/table"
)

type pageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type toggleRequest struct {
	ID string `json:"id" binding:"required"`
}

func (h *Handler) ListScreens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"screens": h.Screens.Screens()})
}

func (h *Handler) OpenSession(c *gin.Context) {
	v, err := h.Screens.Open(c.Request.Context(), middleware.GetRequestID(c), c.Param("screen"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) GetSession(c *gin.Context) {
	respondView(c)(h.Screens.View(c.Param("id")))
}

func (h *Handler) CloseSession(c *gin.Context) {
	h.Screens.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetCriteria(c *gin.Context) {
	var req table.Criteria
	if !BindJSONOrError(c, &req) {
		return
	}
	respondView(c)(h.Screens.SetCriteria(c.Param("id"), req))
}

func (h *Handler) ClearCriteria(c *gin.Context) {
	respondView(c)(h.Screens.ClearCriteria(c.Param("id")))
}

func (h *Handler) SetSort(c *gin.Context) {
	var req domain.SortSpec
	if !BindJSONOrError(c, &req) {
		return
	}
	respondView(c)(h.Screens.SetSort(c.Param("id"), req))
}

func (h *Handler) ClearSort(c *gin.Context) {
	respondView(c)(h.Screens.ClearSort(c.Param("id")))
}

func (h *Handler) SetPage(c *gin.Context) {
	var req pageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	respondView(c)(h.Screens.SetPage(c.Param("id"), req.Page, req.PageSize))
}

func (h *Handler) ToggleSelection(c *gin.Context) {
	var req toggleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	respondView(c)(h.Screens.Toggle(c.Param("id"), req.ID))
}

func (h *Handler) SelectAll(c *gin.Context) {
	respondView(c)(h.Screens.SelectAll(c.Param("id")))
}

func (h *Handler) ClearSelection(c *gin.Context) {
	respondView(c)(h.Screens.ClearSelection(c.Param("id")))
}

func (h *Handler) RefreshSession(c *gin.Context) {
	respondView(c)(h.Screens.Refresh(c.Request.Context(), middleware.GetRequestID(c), c.Param("id")))
}

func (h *Handler) FacetOptions(c *gin.Context) {
	opts, err := h.Screens.FacetOptions(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facets": opts})
}

// BulkAction runs a screen's bulk action over the session selection. The
// body is optional.
func (h *Handler) BulkAction(c *gin.Context) {
	var in services.BulkInput
	if c.Request.ContentLength > 0 && !BindJSONOrError(c, &in) {
		return
	}
	res, err := h.Screens.Bulk(c.Request.Context(), middleware.GetRequestID(c), c.Param("id"), c.Param("action"), in)
	if err != nil {
		if len(res.Affected) > 0 {
			// partial completion: report it alongside the error
			c.JSON(http.StatusMultiStatus, gin.H{"result": res, "error": err.Error()})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func respondView(c *gin.Context) func(services.View, error) {
	return func(v services.View, err error) {
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}
