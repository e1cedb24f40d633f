// Package api exposes the HTTP surface of the service: queueing analysis
// jobs, polling their status, and reading enriched results.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brandpulse/brandpulse/internal/core/ports"
	"github.com/brandpulse/brandpulse/internal/jobs"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type Server struct {
	jobStore     *jobs.Store
	posts        ports.PostStore
	defaultLimit int
	logger       *zerolog.Logger
}

func NewServer(jobStore *jobs.Store, posts ports.PostStore, defaultLimit int, logger *zerolog.Logger) *Server {
	return &Server{
		jobStore:     jobStore,
		posts:        posts,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /tasks/{id}", s.handleTaskStatus)
	mux.HandleFunc("GET /results", s.handleResults)

	return mux
}

// Start serves the API until the context is canceled.
func (s *Server) Start(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info().Int("port", port).Msg("API server starting")

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server error: %w", err)
	}

	return nil
}
