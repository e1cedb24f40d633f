package ingest

import (
	"strings"

	"golang.org/x/text/cases"
)

// defaultKeywordSets are the built-in per-brand context guardrails. A brand
// with a keyword set must have at least one keyword hit next to the brand
// mention; brands without an entry pass on brand mention alone.
var defaultKeywordSets = map[string][]string{
	"nike": {"shoe", "sneaker", "comfort", "design", "fit", "price", "delivery", "customer", "quality"},
}

// ContextFilter decides whether a post is actually about the brand. It is a
// precision guard against homonym mentions, not a recall-maximizing filter.
type ContextFilter struct {
	keywords map[string][]string
	caser    cases.Caser
}

// NewContextFilter builds a filter from the configured keyword sets layered
// over the built-in defaults. Configured sets win per brand.
func NewContextFilter(configured map[string][]string) *ContextFilter {
	caser := cases.Fold()

	keywords := make(map[string][]string, len(defaultKeywordSets)+len(configured))
	for brand, kws := range defaultKeywordSets {
		keywords[caser.String(brand)] = kws
	}

	for brand, kws := range configured {
		keywords[caser.String(brand)] = kws
	}

	return &ContextFilter{keywords: keywords, caser: caser}
}

// IsRelevant reports whether text mentions the brand and, when the brand has a
// configured keyword set, whether at least one keyword also appears.
func (f *ContextFilter) IsRelevant(brand, text string) bool {
	foldedBrand := f.caser.String(brand)
	foldedText := f.caser.String(text)

	if !strings.Contains(foldedText, foldedBrand) {
		return false
	}

	kws, ok := f.keywords[foldedBrand]
	if !ok || len(kws) == 0 {
		return true
	}

	for _, kw := range kws {
		if strings.Contains(foldedText, f.caser.String(kw)) {
			return true
		}
	}

	return false
}
