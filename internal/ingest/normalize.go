package ingest

import (
	"regexp"
	"strings"
)

var (
	urlRE      = regexp.MustCompile(`http\S+|www\.\S+`)
	mentionRE  = regexp.MustCompile(`@\w+`)
	hashtagRE  = regexp.MustCompile(`#(\w+)`)
	nonASCIIRE = regexp.MustCompile(`[^\x00-\x7F]+`)
	spaceRE    = regexp.MustCompile(`\s+`)
)

// Normalize produces the canonical lowercase form of a post's text: URLs and
// @mentions removed, hashtag markers stripped while keeping the word,
// non-ASCII runes dropped, whitespace collapsed. Total; empty input yields an
// empty string.
func Normalize(raw string) string {
	s := urlRE.ReplaceAllString(raw, " ")
	s = mentionRE.ReplaceAllString(s, " ")
	s = hashtagRE.ReplaceAllString(s, "$1")
	s = nonASCIIRE.ReplaceAllString(s, " ")
	s = spaceRE.ReplaceAllString(s, " ")

	return strings.ToLower(strings.TrimSpace(s))
}
