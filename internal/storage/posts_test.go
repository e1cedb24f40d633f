package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

func TestScaledPolarity(t *testing.T) {
	tests := []struct {
		raw  float64
		want int
	}{
		{0, 0},
		{0.95, 950},
		{-0.88, -880},
		{0.6667, 667},
		{-0.0004, 0},
	}

	for _, tt := range tests {
		if got := ScaledPolarity(tt.raw); got != tt.want {
			t.Errorf("ScaledPolarity(%v) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestMarshalTags_NilMeansAbsent(t *testing.T) {
	if got, err := marshalTags(nil); err != nil || got != nil {
		t.Errorf("marshalTags(nil) = (%v, %v), want (nil, nil)", got, err)
	}

	got, err := marshalTags([]string{})
	if err != nil {
		t.Fatalf("marshalTags([]) error = %v", err)
	}

	if string(got) != "[]" {
		t.Errorf("marshalTags([]) = %q, want %q", got, "[]")
	}
}

func TestScanEnrichment(t *testing.T) {
	e, err := scanEnrichment(
		pgtype.Text{String: "Positive", Valid: true},
		pgtype.Int4{Int32: 95, Valid: true},
		[]byte(`["Joy"]`),
		[]byte(`["Comfort"]`),
		pgtype.Text{String: "Praise", Valid: true},
		pgtype.Text{String: "Users praise nike's comfort and fit.", Valid: true},
		pgtype.Int4{Int32: 950, Valid: true},
		nil,
	)
	if err != nil {
		t.Fatalf("scanEnrichment() error = %v", err)
	}

	if *e.Sentiment != domain.SentimentPositive {
		t.Errorf("Sentiment = %v", *e.Sentiment)
	}

	if *e.Confidence != 95 {
		t.Errorf("Confidence = %d", *e.Confidence)
	}

	if len(e.Emotions) != 1 || e.Emotions[0] != "Joy" {
		t.Errorf("Emotions = %v", e.Emotions)
	}

	if *e.PolarityScore != 0.95 {
		t.Errorf("PolarityScore = %v", *e.PolarityScore)
	}

	if e.Meta != nil {
		t.Errorf("Meta = %v, want nil", e.Meta)
	}
}

func TestScanEnrichment_Unclassified(t *testing.T) {
	e, err := scanEnrichment(
		pgtype.Text{}, pgtype.Int4{}, nil, nil,
		pgtype.Text{}, pgtype.Text{}, pgtype.Int4{}, nil,
	)
	if err != nil {
		t.Fatalf("scanEnrichment() error = %v", err)
	}

	if e.Sentiment != nil || e.Confidence != nil || e.Intent != nil ||
		e.Summary != nil || e.PolarityScore != nil {
		t.Errorf("expected fully unset enrichment, got %+v", e)
	}
}
