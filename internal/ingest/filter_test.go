package ingest

import "testing"

func TestContextFilter_IsRelevant(t *testing.T) {
	tests := []struct {
		name       string
		configured map[string][]string
		brand      string
		text       string
		want       bool
	}{
		{
			name:  "brand with keyword hit",
			brand: "nike",
			text:  "I love nike shoes, so comfortable",
			want:  true,
		},
		{
			name:  "brand mention without keyword",
			brand: "nike",
			text:  "nike",
			want:  false,
		},
		{
			name:  "no brand mention",
			brand: "nike",
			text:  "these shoes are so comfortable",
			want:  false,
		},
		{
			name:  "case insensitive brand and keyword",
			brand: "Nike",
			text:  "NIKE Sneaker drop today",
			want:  true,
		},
		{
			name:  "unconfigured brand passes on mention alone",
			brand: "acme",
			text:  "acme stuff is fine I guess",
			want:  true,
		},
		{
			name:       "configured brand overrides defaults",
			configured: map[string][]string{"nike": {"marathon"}},
			brand:      "nike",
			text:       "nike shoes are comfy",
			want:       false,
		},
		{
			name:       "configured keyword hit",
			configured: map[string][]string{"acme": {"anvil"}},
			brand:      "acme",
			text:       "the acme anvil broke again",
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewContextFilter(tt.configured)
			if got := f.IsRelevant(tt.brand, tt.text); got != tt.want {
				t.Errorf("IsRelevant(%q, %q) = %v, want %v", tt.brand, tt.text, got, tt.want)
			}
		})
	}
}
