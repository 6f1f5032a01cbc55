package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, Token: "secret"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestStartMeeting_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/meetings/m-1/start", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"id": "m-1", "title": "Sync", "status": "in_progress", "started_at": "2026-01-05T09:00:00Z"})
	})

	res, err := c.StartMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionOK, res.Status)
	require.NotNil(t, res.Data)
	assert.Equal(t, "m-1", res.Data.ID)
	require.NotNil(t, res.Data.StartedAt)
}

func TestStartMeeting_AlreadyStarted(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"error": "already_started"})
	})

	res, err := c.StartMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionAlreadyDone, res.Status)
	assert.Nil(t, res.Data)
	assert.NotEmpty(t, res.Message)
}

func TestEndMeeting_Sentinels(t *testing.T) {
	ended := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"error": "already_ended"})
	})
	res, err := ended.EndMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionAlreadyDone, res.Status)

	// the start sentinel is not the end sentinel
	started := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"error": "already_started"})
	})
	res, err = started.EndMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionError, res.Status)
	assert.Equal(t, "already_started", res.Message)
}

func TestActionFailureMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"error": "locked", "message": "Meeting is locked"})
	})

	res, err := c.StartMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionError, res.Status)
	assert.Equal(t, "Meeting is locked", res.Message)
}

func TestErrorMessageChain(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message wins", `{"message":"Title taken","error":"conflict"}`, "Title taken"},
		{"error next", `{"error":"Title taken"}`, "Title taken"},
		{"transport text", `{}`, "upstream returned 500"},
		{"not json", `<html>oops</html>`, "upstream returned 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := c.ShowMeeting(context.Background(), "m-1")
			require.Error(t, err)
			up, ok := domain.AsUpstream(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusInternalServerError, up.Status)
			assert.Equal(t, tt.want, up.Message)
		})
	}
}

func TestExtractMessage_Generic(t *testing.T) {
	assert.Equal(t, domain.GenericErrorMessage, ExtractMessage(nil, nil))
	assert.Equal(t, "dial tcp: refused", ExtractMessage([]byte(`{"message":"  "}`), errors.New("dial tcp: refused")))
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusNotFound, domain.IsNotFound},
		{http.StatusUnprocessableEntity, domain.IsValidation},
		{http.StatusBadRequest, domain.IsValidation},
		{http.StatusConflict, domain.IsConflict},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]any{"message": "nope"})
			})
			_, err := c.ShowMeeting(context.Background(), "m-1")
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Equal(t, "nope", err.Error())
			up, ok := domain.AsUpstream(err)
			require.True(t, ok)
			assert.Equal(t, "nope", up.Message)
		})
	}
}

func TestInvalidResponseFormat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "<!doctype html>")
	})

	_, err := c.ShowMeeting(context.Background(), "m-1")
	up, ok := domain.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, domain.InvalidResponseMessage, up.Message)

	_, err = c.StartMeeting(context.Background(), "m-1")
	up, ok = domain.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, domain.InvalidResponseMessage, up.Message)
}

func TestDecodeEntity_Wrapped(t *testing.T) {
	var m models.Meeting
	require.NoError(t, decodeEntity([]byte(`{"data":{"id":"m-9","title":"Retro"}}`), &m))
	assert.Equal(t, "m-9", m.ID)

	var bare models.Meeting
	require.NoError(t, decodeEntity([]byte(`{"id":"m-3","title":"Plan"}`), &bare))
	assert.Equal(t, "Plan", bare.Title)
}

func TestListMeetings_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("per_page"))
		assert.Equal(t, "scheduled_at", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("direction"))
		writeJSON(w, http.StatusOK, map[string]any{
			"data":         []map[string]any{{"id": "m-1"}},
			"current_page": 2, "last_page": 3, "per_page": 25, "total": 51,
		})
	})

	env, err := c.ListMeetings(context.Background(), domain.ListParams{Page: 2, PerPage: 25, Sort: "scheduled_at", Direction: domain.Desc})
	require.NoError(t, err)
	assert.Equal(t, 2, env.CurrentPage)
	assert.Equal(t, 3, env.LastPage)
	assert.Equal(t, 51, env.Total)
	require.Len(t, env.Data, 1)
}

func TestFetchAll_WalksPages(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		writeJSON(w, http.StatusOK, map[string]any{
			"data":         []map[string]any{{"id": "a-" + strconv.Itoa(page), "name": "Applicant"}},
			"current_page": page, "last_page": 3, "per_page": 100, "total": 3,
		})
	})

	got, err := c.AllApplicants(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a-1", got[0].ApplicantID)
	assert.Equal(t, "a-3", got[2].ApplicantID)
	assert.EqualValues(t, 3, calls.Load())
}

func TestFetchAll_StopsOnEmptyPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}, "current_page": 1, "last_page": 9})
	})

	got, err := c.AllJobPostings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRejectApplications_Body(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applications/reject", r.URL.Path)
		var in models.RejectInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{"ap-1", "ap-2"}, in.ApplicationIDs)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.RejectApplications(context.Background(), models.RejectInput{ApplicationIDs: []string{"ap-1", "ap-2"}})
	require.NoError(t, err)
}

func TestReferenceData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/countries":
			writeJSON(w, http.StatusOK, []map[string]any{{"code": "DE", "name": "Germany"}})
		case "/departments":
			writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{{"id": "1", "name": "Finance"}}})
		case "/employment-types":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": "ft", "name": "Full-time"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ref, err := c.ReferenceData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Germany"}, ref.Values("country"))
	assert.Equal(t, []string{"Finance"}, ref.Values("department"))
	assert.Equal(t, []string{"Full-time"}, ref.Values("employment_type"))
}
