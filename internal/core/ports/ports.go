// Package ports provides domain-centric interfaces for external dependencies.
// Business logic depends on these interfaces rather than on concrete
// infrastructure, keeping the pipeline testable without a database, a network,
// or a model runtime.
package ports

import (
	"context"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

// Scraper fetches raw posts mentioning a brand from one platform. Implementations
// may return an empty slice; upstream rate limiting is their own concern.
type Scraper interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, brand string, limit int) ([]domain.RawPost, error)
}

// Classifier is the binary sentiment model collaborator. Predict must preserve
// input order and length; a failure fails the whole batch.
type Classifier interface {
	Predict(ctx context.Context, texts []string) ([]domain.Prediction, error)
}

// PostStore is the persistence surface required by the pipeline.
type PostStore interface {
	// UpsertPosts inserts posts whose ID is not yet stored, leaving existing
	// rows untouched. Atomic per call; returns the number of rows inserted.
	UpsertPosts(ctx context.Context, posts []domain.Post) (int, error)

	// MergeEnrichment updates only the non-nil enrichment fields of existing
	// rows; unknown IDs are skipped. Atomic per call; returns the number of
	// rows updated.
	MergeEnrichment(ctx context.Context, updates map[string]domain.Enrichment) (int, error)

	// FetchByBrand returns stored posts for a brand, newest first.
	FetchByBrand(ctx context.Context, brand string, limit int) ([]domain.Post, error)
}

// Interpreter batch-classifies canonical posts into enrichment records keyed
// by post ID.
type Interpreter interface {
	Classify(ctx context.Context, posts []domain.Post) (map[string]domain.Enrichment, error)
}
