// Package domain defines the core data model for brand perception analysis:
// raw scraped posts, canonical (normalized, identity-assigned) posts, and the
// ML-derived enrichment attached to them.
package domain

import "time"

// Platform identifies the social network a post was scraped from.
type Platform string

const (
	PlatformTwitter Platform = "twitter"
	PlatformReddit  Platform = "reddit"
)

// Sentiment is the final stored sentiment label.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentMixed    Sentiment = "Mixed"
)

// Intent categorizes what the author wanted from the post.
type Intent string

const (
	IntentQuery     Intent = "Query"
	IntentComplaint Intent = "Complaint"
	IntentPraise    Intent = "Praise"
	IntentFeedback  Intent = "Feedback"
)

// DefaultLanguage is assumed when a source does not report one.
const DefaultLanguage = "en"

// RawPost is a post as handed over by a scraper, before filtering and
// normalization.
type RawPost struct {
	Brand     string
	Platform  Platform
	Text      string
	Author    string
	Language  string
	CreatedAt time.Time
}

// Post is the canonical, storable representation of a social post.
// Raw fields (Brand through CreatedAt) are write-once; Enrichment is
// merge-updated by classification passes.
type Post struct {
	ID        string
	Brand     string
	Platform  Platform
	Text      string
	CleanText string
	Author    string
	Language  string
	CreatedAt time.Time
	ScrapedAt time.Time

	Enrichment Enrichment
}

// Enrichment holds the ML-derived fields of a post. Pointer and nil-slice
// fields distinguish "not classified" from "classified as empty": a nil field
// in a merge update leaves the stored value untouched.
type Enrichment struct {
	Sentiment     *Sentiment
	Confidence    *int // 0-100
	Emotions      []string
	Topics        []string
	Intent        *Intent
	Summary       *string
	PolarityScore *float64 // signed raw confidence; stored as x1000 integer
	Meta          map[string]string
}

// Prediction is a single classifier verdict: a binary label and a score in
// [0,1]. The interpreter applies the confidence threshold policy on top.
type Prediction struct {
	Label Sentiment
	Score float64
}

// PolarityScale is the fixed-point scale applied to PolarityScore at write
// time.
const PolarityScale = 1000
