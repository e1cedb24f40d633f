package ingest

import (
	"testing"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

func TestAssignID(t *testing.T) {
	base := AssignID("nike", domain.PlatformReddit, "nike shoes are great", "2026-08-01T12:00:00Z")

	t.Run("deterministic", func(t *testing.T) {
		again := AssignID("nike", domain.PlatformReddit, "nike shoes are great", "2026-08-01T12:00:00Z")
		if again != base {
			t.Errorf("repeated AssignID differs: %q vs %q", again, base)
		}
	})

	t.Run("fixed length hex", func(t *testing.T) {
		if len(base) != 64 {
			t.Errorf("id length = %d, want 64", len(base))
		}
	})

	t.Run("text changes id", func(t *testing.T) {
		other := AssignID("nike", domain.PlatformReddit, "nike shoes are bad", "2026-08-01T12:00:00Z")
		if other == base {
			t.Error("different text produced the same id")
		}
	})

	t.Run("timestamp changes id", func(t *testing.T) {
		other := AssignID("nike", domain.PlatformReddit, "nike shoes are great", "2026-08-01T12:00:01Z")
		if other == base {
			t.Error("different timestamp produced the same id")
		}
	})

	t.Run("platform changes id", func(t *testing.T) {
		other := AssignID("nike", domain.PlatformTwitter, "nike shoes are great", "2026-08-01T12:00:00Z")
		if other == base {
			t.Error("different platform produced the same id")
		}
	})
}
