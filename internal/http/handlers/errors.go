package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrportal/internal/domain"
	"hrportal/internal/http/middleware"
	"hrportal/internal/utils"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. Upstream failures
// surface as 502 carrying the message extracted from the HR backend.
func RespondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsInternal(err):
		utils.LogError(middleware.GetRequestID(c), "http", c.FullPath(), err)
		respondError(c, http.StatusInternalServerError, "internal_error", domain.GenericErrorMessage, nil)
	default:
		if up, ok := domain.AsUpstream(err); ok {
			details := gin.H{}
			if up.Status != 0 {
				details["upstream_status"] = up.Status
			}
			respondError(c, http.StatusBadGateway, "upstream_error", up.Error(), details)
			return
		}
		respondError(c, http.StatusInternalServerError, "internal_error", domain.GenericErrorMessage, nil)
	}
}

func respondUnavailable(c *gin.Context, what string) {
	respondError(c, http.StatusServiceUnavailable, "unavailable", what+" is not configured", nil)
}
