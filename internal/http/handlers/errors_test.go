package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrportal/internal/domain"
)

func TestRespondDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"validation", domain.ValidationError{Field: "title", Msg: "is required"}, http.StatusBadRequest, "validation_error", "title: is required"},
		{"wrapped not found", fmt.Errorf("load: %w", domain.NotFoundError{Resource: "meeting", ID: "m9"}), http.StatusNotFound, "not_found", "load: meeting m9 not found"},
		{"upstream not found", domain.NotFoundError{Msg: "Meeting not found", Err: domain.UpstreamError{Status: 404}}, http.StatusNotFound, "not_found", "Meeting not found"},
		{"conflict", domain.ConflictError{Msg: "wizard already completed"}, http.StatusConflict, "conflict", "wizard already completed"},
		{"upstream", domain.UpstreamError{Status: 500, Message: "Database unavailable"}, http.StatusBadGateway, "upstream_error", "Database unavailable"},
		{"internal", domain.InternalError{Msg: "build request", Err: errors.New("bad url")}, http.StatusInternalServerError, "internal_error", domain.GenericErrorMessage},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error", domain.GenericErrorMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondDomainError(c, tc.err)

			require.Equal(t, tc.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.msg, body.Error)
		})
	}
}

func TestRespondDomainErrorUpstreamDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondDomainError(c, domain.UpstreamError{Status: 503, Message: "Maintenance"})

	var body struct {
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 503, body.Details["upstream_status"])
}
