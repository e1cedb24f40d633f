package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

const idDelimiter = "|"

// AssignID derives the content-addressed storage identifier of a post.
// It is a pure function of (brand, platform, normalized text, creation
// timestamp), so re-ingesting the same post always maps to the same row.
func AssignID(brand string, platform domain.Platform, cleanText, createdAtISO string) string {
	key := strings.Join([]string{brand, string(platform), cleanText, createdAtISO}, idDelimiter)
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}
