// Package jobs provides the in-process analysis job queue: an enqueue/status
// surface for the HTTP layer and a single background worker executing one
// brand-analysis job at a time.
package jobs

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	coreerrors "github.com/brandpulse/brandpulse/internal/core/errors"
)

// Job statuses.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Result is what a finished analysis job reports back.
type Result struct {
	Scraped  int `json:"scraped"`
	Analyzed int `json:"analyzed"`
}

// Job tracks one brand-analysis request through its lifecycle.
type Job struct {
	ID         string            `json:"id"`
	Brand      string            `json:"brand"`
	Limit      int               `json:"limit"`
	Sources    []domain.Platform `json:"sources"`
	Status     string            `json:"status"`
	Result     *Result           `json:"result,omitempty"`
	Error      string            `json:"error,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	StartedAt  *time.Time        `json:"started_at,omitempty"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
}

// Store keeps jobs in memory. Cross-process durability is intentionally out
// of scope; identity-based idempotent storage makes re-running a lost job
// safe.
type Store struct {
	mu    sync.RWMutex
	jobs  map[string]*Job
	queue chan string
}

func NewStore(queueSize int) *Store {
	return &Store{
		jobs:  make(map[string]*Job),
		queue: make(chan string, queueSize),
	}
}

// Enqueue registers a new job and queues it for the worker.
func (s *Store) Enqueue(brand string, limit int, sources []domain.Platform) (*Job, error) {
	if len(sources) == 0 {
		return nil, coreerrors.ErrNoSources
	}

	job := &Job{
		ID:        uuid.New().String(),
		Brand:     brand,
		Limit:     limit,
		Sources:   sources,
		Status:    StatusQueued,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case s.queue <- job.ID:
	default:
		return nil, coreerrors.ErrQueueFull
	}

	s.jobs[job.ID] = job

	return job, nil
}

// Get returns a snapshot of the job with the given ID.
func (s *Store) Get(id string) (Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return Job{}, coreerrors.ErrJobNotFound
	}

	return *job, nil
}

// next pops a queued job without blocking; ok is false when the queue is
// empty.
func (s *Store) next() (*Job, bool) {
	select {
	case id := <-s.queue:
		s.mu.RLock()
		defer s.mu.RUnlock()

		return s.jobs[id], true
	default:
		return nil, false
	}
}

func (s *Store) markRunning(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	job.Status = StatusRunning
	job.StartedAt = &now
}

func (s *Store) markSucceeded(job *Job, res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	job.Status = StatusSucceeded
	job.Result = &res
	job.FinishedAt = &now
}

func (s *Store) markFailed(job *Job, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	job.Status = StatusFailed
	job.Error = err.Error()
	job.FinishedAt = &now
}
