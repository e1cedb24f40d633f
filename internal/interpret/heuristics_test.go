package interpret

import (
	"testing"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

func TestDeriveEmotions(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"i love the design", "Joy"},
		{"terrible issue with my order", "Frustration"},
		{"it arrived on tuesday", "Neutral"},
		{"", "Neutral"},
	}

	for _, tt := range tests {
		got := DeriveEmotions(tt.text)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("DeriveEmotions(%q) = %v, want [%s]", tt.text, got, tt.want)
		}
	}
}

func TestDeriveTopics(t *testing.T) {
	got := DeriveTopics("the price is high but the cushion and shipping were fine")

	want := []string{"Pricing", "Comfort", "Delivery"}
	if len(got) != len(want) {
		t.Fatalf("DeriveTopics() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DeriveTopics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if fallback := DeriveTopics("nothing of note"); len(fallback) != 1 || fallback[0] != "General" {
		t.Errorf("fallback = %v, want [General]", fallback)
	}
}

func TestDeriveIntent(t *testing.T) {
	tests := []struct {
		text string
		want domain.Intent
	}{
		{"how to clean these?", domain.IntentQuery},
		{"worst purchase ever", domain.IntentComplaint},
		{"these are awesome", domain.IntentPraise},
		{"they run a bit small", domain.IntentFeedback},
	}

	for _, tt := range tests {
		if got := DeriveIntent(tt.text); got != tt.want {
			t.Errorf("DeriveIntent(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDeriveSummary(t *testing.T) {
	if got := DeriveSummary("nike", "too expensive for me"); got != "Users like nike but find it expensive." {
		t.Errorf("summary = %q", got)
	}

	if got := DeriveSummary("nike", "the fit is perfect"); got != "Users praise nike's comfort and fit." {
		t.Errorf("summary = %q", got)
	}

	if got := DeriveSummary("nike", "meh"); got != "General feedback about nike." {
		t.Errorf("summary = %q", got)
	}
}
