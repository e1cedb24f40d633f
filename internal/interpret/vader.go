package interpret

import (
	"context"
	"math"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	coreerrors "github.com/brandpulse/brandpulse/internal/core/errors"
)

var (
	analyzerOnce sync.Once
	analyzer     *govader.SentimentIntensityAnalyzer
)

// sharedAnalyzer lazily builds the process-wide VADER analyzer exactly once.
// The analyzer is read-only after construction and safe for concurrent use.
func sharedAnalyzer() *govader.SentimentIntensityAnalyzer {
	analyzerOnce.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})

	return analyzer
}

// VADERClassifier adapts the VADER lexicon model to the binary classifier
// contract: a Positive/Negative label with a score in [0,1].
type VADERClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERClassifier() *VADERClassifier {
	return &VADERClassifier{analyzer: sharedAnalyzer()}
}

// Predict scores each text. Output preserves input order and length.
func (c *VADERClassifier) Predict(ctx context.Context, texts []string) ([]domain.Prediction, error) {
	if c.analyzer == nil {
		return nil, coreerrors.ErrClassifierUnavailable
	}

	preds := make([]domain.Prediction, len(texts))

	for i, text := range texts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		compound := c.analyzer.PolarityScores(text).Compound

		label := domain.SentimentPositive
		if compound < 0 {
			label = domain.SentimentNegative
		}

		// Map the compound score from [-1,1] onto a binary-model confidence
		// in [0.5,1], mirroring the softmax output of a two-class model.
		preds[i] = domain.Prediction{
			Label: label,
			Score: 0.5 + math.Abs(compound)/2,
		}
	}

	return preds, nil
}
