package interpret

import (
	"fmt"
	"strings"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

// Derivers bundles the taggers that turn post text into emotion tags, topic
// tags, intent, and a summary. Each must be a deterministic, total function of
// its input, so swapping a heuristic for a learned model never changes the
// pipeline contract.
type Derivers struct {
	Emotions func(text string) []string
	Topics   func(text string) []string
	Intent   func(text string) domain.Intent
	Summary  func(brand, text string) string
}

// DefaultDerivers returns the built-in keyword heuristics.
func DefaultDerivers() Derivers {
	return Derivers{
		Emotions: DeriveEmotions,
		Topics:   DeriveTopics,
		Intent:   DeriveIntent,
		Summary:  DeriveSummary,
	}
}

var (
	joyWords         = []string{"love", "great", "awesome", "amazing", "best", "comfort", "design"}
	frustrationWords = []string{"hate", "worst", "terrible", "issue", "bug", "late", "expensive"}

	pricingWords  = []string{"price", "expensive", "pricing"}
	comfortWords  = []string{"comfort", "fit", "cushion"}
	deliveryWords = []string{"delivery", "shipping", "late"}

	queryWords     = []string{"how to", "please", "help", "where"}
	complaintWords = []string{"hate", "worst", "terrible", "issue", "bug", "complaint"}
	praiseWords    = []string{"love", "awesome", "amazing", "best", "great"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}

	return false
}

// DeriveEmotions always yields at least one tag, falling back to "Neutral".
func DeriveEmotions(text string) []string {
	t := strings.ToLower(text)

	if containsAny(t, joyWords) {
		return []string{"Joy"}
	}

	if containsAny(t, frustrationWords) {
		return []string{"Frustration"}
	}

	return []string{"Neutral"}
}

// DeriveTopics always yields at least one tag, falling back to "General".
func DeriveTopics(text string) []string {
	t := strings.ToLower(text)

	var out []string

	if containsAny(t, pricingWords) {
		out = append(out, "Pricing")
	}

	if containsAny(t, comfortWords) {
		out = append(out, "Comfort")
	}

	if containsAny(t, deliveryWords) {
		out = append(out, "Delivery")
	}

	if len(out) == 0 {
		out = append(out, "General")
	}

	return out
}

func DeriveIntent(text string) domain.Intent {
	t := strings.ToLower(text)

	switch {
	case containsAny(t, queryWords):
		return domain.IntentQuery
	case containsAny(t, complaintWords):
		return domain.IntentComplaint
	case containsAny(t, praiseWords):
		return domain.IntentPraise
	default:
		return domain.IntentFeedback
	}
}

func DeriveSummary(brand, text string) string {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "expensive") || strings.Contains(t, "price"):
		return fmt.Sprintf("Users like %s but find it expensive.", brand)
	case strings.Contains(t, "comfort") || strings.Contains(t, "fit"):
		return fmt.Sprintf("Users praise %s's comfort and fit.", brand)
	default:
		return fmt.Sprintf("General feedback about %s.", brand)
	}
}
