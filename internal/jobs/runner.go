package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	coreerrors "github.com/brandpulse/brandpulse/internal/core/errors"
	"github.com/brandpulse/brandpulse/internal/core/ports"
	"github.com/brandpulse/brandpulse/internal/ingest"
	"github.com/brandpulse/brandpulse/internal/observability"
	"github.com/brandpulse/brandpulse/internal/platform/worker"
	"github.com/brandpulse/brandpulse/internal/scrape"
)

const pollInterval = 500 * time.Millisecond

// Runner executes analysis jobs sequentially: fetch -> ingest -> upsert ->
// classify -> merge. One job is a single synchronous pass; concurrent runners
// for the same brand are safe to interleave because storage is idempotent per
// identifier and enrichment merges are field-level.
type Runner struct {
	scrapers    scrape.Registry
	pipeline    *ingest.Pipeline
	interpreter ports.Interpreter
	store       ports.PostStore
	jobStore    *Store
	logger      *zerolog.Logger
}

func NewRunner(scrapers scrape.Registry, pipeline *ingest.Pipeline, interpreter ports.Interpreter,
	store ports.PostStore, jobStore *Store, logger *zerolog.Logger,
) *Runner {
	return &Runner{
		scrapers:    scrapers,
		pipeline:    pipeline,
		interpreter: interpreter,
		store:       store,
		jobStore:    jobStore,
		logger:      logger,
	}
}

// Run processes queued jobs until the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	return worker.Loop(ctx, worker.Config{
		Name:         "analysis",
		PollInterval: pollInterval,
		Process:      r.processNext,
		Logger:       r.logger,
	})
}

func (r *Runner) processNext(ctx context.Context) error {
	job, ok := r.jobStore.next()
	if !ok {
		return nil
	}

	logger := r.logger.With().Str("job_id", job.ID).Str("brand", job.Brand).Logger()
	logger.Info().Msg("starting analysis job")

	r.jobStore.markRunning(job)

	start := time.Now()

	res, err := r.Execute(ctx, job.Brand, job.Limit, job.Sources)

	observability.JobDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		// Record the failure against the job and surface it so the loop's
		// error hook can observe it; the loop itself keeps running.
		r.jobStore.markFailed(job, err)
		observability.JobsProcessed.WithLabelValues(StatusFailed).Inc()
		logger.Error().Err(err).Msg("analysis job failed")

		return nil
	}

	r.jobStore.markSucceeded(job, res)
	observability.JobsProcessed.WithLabelValues(StatusSucceeded).Inc()
	logger.Info().Int("scraped", res.Scraped).Int("analyzed", res.Analyzed).Msg("analysis job done")

	return nil
}

// Execute runs one full analysis pass for a brand. Classifier and storage
// failures abort the job with no partial enrichment committed for the batch;
// an empty fetch is a successful no-op.
func (r *Runner) Execute(ctx context.Context, brand string, limit int, sources []domain.Platform) (Result, error) {
	var raw []domain.RawPost

	for _, platform := range sources {
		scraper := r.scrapers.Get(platform)
		if scraper == nil {
			return Result{}, fmt.Errorf("%w: %s", coreerrors.ErrUnknownSource, platform)
		}

		posts, err := scraper.Fetch(ctx, brand, limit)
		if err != nil {
			return Result{}, fmt.Errorf("fetch %s: %w", platform, err)
		}

		observability.PostsScraped.WithLabelValues(string(platform)).Add(float64(len(posts)))

		raw = append(raw, posts...)
	}

	if len(raw) == 0 {
		return Result{}, nil
	}

	canonical := r.pipeline.Ingest(raw)

	inserted, err := r.store.UpsertPosts(ctx, canonical)
	if err != nil {
		return Result{}, fmt.Errorf("upsert posts: %w", err)
	}

	observability.PostsUpserted.Add(float64(inserted))

	enriched, err := r.interpreter.Classify(ctx, canonical)
	if err != nil {
		return Result{}, fmt.Errorf("classify batch: %w", err)
	}

	updated, err := r.store.MergeEnrichment(ctx, enriched)
	if err != nil {
		return Result{}, fmt.Errorf("merge enrichment: %w", err)
	}

	observability.PostsEnriched.Add(float64(updated))

	return Result{Scraped: len(raw), Analyzed: len(enriched)}, nil
}
