package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	coreerrors "github.com/brandpulse/brandpulse/internal/core/errors"
)

const (
	minBrandLength = 2
	minLimit       = 10
	maxLimit       = 500
)

type analyzeRequest struct {
	Brand          string `json:"brand"`
	Limit          int    `json:"limit"`
	IncludeTwitter *bool  `json:"include_twitter"`
	IncludeReddit  *bool  `json:"include_reddit"`
}

type analyzeResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

type postResponse struct {
	ID            string     `json:"id"`
	Brand         string     `json:"brand"`
	Platform      string     `json:"platform"`
	Text          string     `json:"text"`
	Sentiment     *string    `json:"sentiment"`
	Confidence    *int       `json:"confidence"`
	Emotions      []string   `json:"emotion"`
	Topics        []string   `json:"topics"`
	Intent        *string    `json:"intent"`
	Summary       *string    `json:"summary"`
	PolarityScore *float64   `json:"polarity_score"`
	CreatedAt     *time.Time `json:"created_at"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	req.Brand = strings.TrimSpace(req.Brand)
	if len(req.Brand) < minBrandLength {
		writeError(w, http.StatusBadRequest, "brand must be at least 2 characters")

		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}

	if limit < minLimit || limit > maxLimit {
		writeError(w, http.StatusBadRequest, "limit must be between 10 and 500")

		return
	}

	var sources []domain.Platform

	if req.IncludeReddit == nil || *req.IncludeReddit {
		sources = append(sources, domain.PlatformReddit)
	}

	if req.IncludeTwitter == nil || *req.IncludeTwitter {
		sources = append(sources, domain.PlatformTwitter)
	}

	job, err := s.jobStore.Enqueue(req.Brand, limit, sources)
	if err != nil {
		switch {
		case errors.Is(err, coreerrors.ErrNoSources):
			writeError(w, http.StatusBadRequest, "enable at least one source")
		case errors.Is(err, coreerrors.ErrQueueFull):
			writeError(w, http.StatusServiceUnavailable, "job queue full, retry later")
		default:
			s.logger.Error().Err(err).Msg("enqueue failed")
			writeError(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	writeJSON(w, http.StatusAccepted, analyzeResponse{TaskID: job.ID, Status: job.Status})
}

func (s *Server) handleTaskStatus(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobStore.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, coreerrors.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "task not found")

			return
		}

		s.logger.Error().Err(err).Msg("task lookup failed")
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	brand := strings.TrimSpace(r.URL.Query().Get("brand"))
	if brand == "" {
		writeError(w, http.StatusBadRequest, "brand is required")

		return
	}

	limit := s.defaultLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")

			return
		}

		limit = parsed
	}

	posts, err := s.posts.FetchByBrand(r.Context(), brand, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("brand", brand).Msg("fetch results failed")
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	out := make([]postResponse, len(posts))
	for i, p := range posts {
		out[i] = toPostResponse(p)
	}

	writeJSON(w, http.StatusOK, out)
}

func toPostResponse(p domain.Post) postResponse {
	resp := postResponse{
		ID:            p.ID,
		Brand:         p.Brand,
		Platform:      string(p.Platform),
		Text:          p.Text,
		Confidence:    p.Enrichment.Confidence,
		Emotions:      p.Enrichment.Emotions,
		Topics:        p.Enrichment.Topics,
		Summary:       p.Enrichment.Summary,
		PolarityScore: p.Enrichment.PolarityScore,
	}

	if p.Enrichment.Sentiment != nil {
		v := string(*p.Enrichment.Sentiment)
		resp.Sentiment = &v
	}

	if p.Enrichment.Intent != nil {
		v := string(*p.Enrichment.Intent)
		resp.Intent = &v
	}

	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt
		resp.CreatedAt = &created
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
