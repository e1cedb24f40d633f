// Package interpret batch-classifies canonical posts into structured signals:
// sentiment with a confidence-driven Mixed override, emotion and topic tags,
// intent, a human-readable summary, and a signed polarity score.
package interpret

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	coreerrors "github.com/brandpulse/brandpulse/internal/core/errors"
	"github.com/brandpulse/brandpulse/internal/core/ports"
	"github.com/brandpulse/brandpulse/internal/observability"
)

// mixedConfidenceThreshold is the confidence below which the classifier's
// binary verdict is overridden to Mixed.
const mixedConfidenceThreshold = 0.7

// Interpreter turns posts into enrichment records using a single classifier
// batch call per invocation. The classifier handle is injected and long-lived;
// initialization is owned by the process lifecycle, not by the Interpreter.
type Interpreter struct {
	classifier ports.Classifier
	derivers   Derivers
	logger     *zerolog.Logger
}

func New(classifier ports.Classifier, derivers Derivers, logger *zerolog.Logger) *Interpreter {
	return &Interpreter{
		classifier: classifier,
		derivers:   derivers,
		logger:     logger,
	}
}

// Classify enriches a batch of posts, keyed by post ID. A classifier failure
// fails the whole batch; no partial results are returned.
func (i *Interpreter) Classify(ctx context.Context, posts []domain.Post) (map[string]domain.Enrichment, error) {
	out := make(map[string]domain.Enrichment, len(posts))
	if len(posts) == 0 {
		return out, nil
	}

	texts := make([]string, len(posts))
	for idx, p := range posts {
		texts[idx] = p.CleanText
	}

	start := time.Now()

	preds, err := i.classifier.Predict(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("predict batch of %d: %w", len(texts), err)
	}

	observability.ClassifierBatchDuration.Observe(time.Since(start).Seconds())

	if len(preds) != len(posts) {
		return nil, fmt.Errorf("%w: got %d predictions for %d posts",
			coreerrors.ErrBatchMismatch, len(preds), len(posts))
	}

	for idx, post := range posts {
		out[post.ID] = i.enrich(post, preds[idx])
	}

	i.logger.Debug().Int("batch", len(posts)).Dur("took", time.Since(start)).Msg("classified batch")

	return out, nil
}

func (i *Interpreter) enrich(post domain.Post, pred domain.Prediction) domain.Enrichment {
	sentiment := pred.Label
	if pred.Score < mixedConfidenceThreshold {
		sentiment = domain.SentimentMixed
	}

	confidence := int(math.Round(pred.Score * 100))

	// Polarity keeps the raw (pre-override) confidence as magnitude; Mixed
	// zeroes it.
	var polarity float64

	switch {
	case sentiment == domain.SentimentMixed:
		polarity = 0
	case pred.Label == domain.SentimentNegative:
		polarity = -pred.Score
	default:
		polarity = pred.Score
	}

	intent := i.derivers.Intent(post.Text)
	summary := i.derivers.Summary(post.Brand, post.Text)

	return domain.Enrichment{
		Sentiment:     &sentiment,
		Confidence:    &confidence,
		Emotions:      i.derivers.Emotions(post.CleanText),
		Topics:        i.derivers.Topics(post.CleanText),
		Intent:        &intent,
		Summary:       &summary,
		PolarityScore: &polarity,
	}
}
