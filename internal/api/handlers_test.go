package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	"github.com/brandpulse/brandpulse/internal/jobs"
)

type stubPosts struct {
	posts []domain.Post
	err   error
}

func (s *stubPosts) UpsertPosts(context.Context, []domain.Post) (int, error) { return 0, nil }

func (s *stubPosts) MergeEnrichment(context.Context, map[string]domain.Enrichment) (int, error) {
	return 0, nil
}

func (s *stubPosts) FetchByBrand(context.Context, string, int) ([]domain.Post, error) {
	return s.posts, s.err
}

func newTestServer(posts *stubPosts) *Server {
	logger := zerolog.Nop()
	return NewServer(jobs.NewStore(4), posts, 100, &logger)
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	return rec
}

func TestHandleAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid request",
			body:       `{"brand":"nike","limit":50}`,
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "defaults applied",
			body:       `{"brand":"nike"}`,
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "brand too short",
			body:       `{"brand":"n"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "limit out of range",
			body:       `{"brand":"nike","limit":5000}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no sources",
			body:       `{"brand":"nike","include_twitter":false,"include_reddit":false}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(newTestServer(&stubPosts{}), http.MethodPost, "/analyze", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusAccepted {
				var resp analyzeResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.NotEmpty(t, resp.TaskID)
				require.Equal(t, jobs.StatusQueued, resp.Status)
			}
		})
	}
}

func TestHandleTaskStatus(t *testing.T) {
	s := newTestServer(&stubPosts{})

	job, err := s.jobStore.Enqueue("nike", 100, []domain.Platform{domain.PlatformReddit})
	require.NoError(t, err)

	rec := doRequest(s, http.MethodGet, "/tasks/"+job.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got jobs.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, job.ID, got.ID)
	require.Equal(t, jobs.StatusQueued, got.Status)

	rec = doRequest(s, http.MethodGet, "/tasks/unknown", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleResults(t *testing.T) {
	sentiment := domain.SentimentPositive
	posts := []domain.Post{{
		ID:        "abc",
		Brand:     "nike",
		Platform:  domain.PlatformReddit,
		Text:      "nike shoes are comfy",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Enrichment: domain.Enrichment{
			Sentiment: &sentiment,
			Emotions:  []string{"Joy"},
		},
	}}

	rec := doRequest(newTestServer(&stubPosts{posts: posts}), http.MethodGet, "/results?brand=nike", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []postResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "abc", got[0].ID)
	require.NotNil(t, got[0].Sentiment)
	require.Equal(t, "Positive", *got[0].Sentiment)
	require.Nil(t, got[0].Intent)
}

func TestHandleResults_MissingBrand(t *testing.T) {
	rec := doRequest(newTestServer(&stubPosts{}), http.MethodGet, "/results", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
