package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsScraped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandpulse_posts_scraped_total",
		Help: "The total number of raw posts fetched from scrapers",
	}, []string{"platform"})

	PostsFiltered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandpulse_posts_filtered_total",
		Help: "The total number of posts dropped by the context filter",
	}, []string{"platform"})

	PostsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brandpulse_posts_ingested_total",
		Help: "The total number of canonical posts produced by ingestion",
	})

	PostsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brandpulse_posts_upserted_total",
		Help: "The total number of new rows inserted by the upsert step",
	})

	PostsEnriched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brandpulse_posts_enriched_total",
		Help: "The total number of rows updated with enrichment fields",
	})

	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandpulse_jobs_processed_total",
		Help: "The total number of analysis jobs processed",
	}, []string{"status"})

	JobDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brandpulse_job_duration_seconds",
		Help:    "Duration in seconds of a full analysis job",
		Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
	})

	ClassifierBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brandpulse_classifier_batch_duration_seconds",
		Help:    "Duration of classifier batch invocations",
		Buckets: prometheus.DefBuckets,
	})
)
