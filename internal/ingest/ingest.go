// Package ingest turns raw scraped posts into canonical, identity-assigned
// posts ready for storage: context filtering, text normalization, and
// content-addressed deduplication keys.
package ingest

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	"github.com/brandpulse/brandpulse/internal/observability"
)

// Pipeline transforms a fetched batch in memory. No network or storage side
// effects; output order matches filtered input order.
type Pipeline struct {
	filter *ContextFilter
	logger *zerolog.Logger
}

func New(filter *ContextFilter, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{filter: filter, logger: logger}
}

// Ingest filters, normalizes, and identity-assigns raw posts. Posts failing
// the context filter are dropped silently; the caller observes the drop only
// as the difference between input and output lengths.
func (p *Pipeline) Ingest(raw []domain.RawPost) []domain.Post {
	posts := make([]domain.Post, 0, len(raw))

	for _, rp := range raw {
		if !p.filter.IsRelevant(rp.Brand, rp.Text) {
			observability.PostsFiltered.WithLabelValues(string(rp.Platform)).Inc()
			p.logger.Debug().
				Str("brand", rp.Brand).
				Str("platform", string(rp.Platform)).
				Msg("post dropped by context filter")

			continue
		}

		clean := Normalize(rp.Text)

		var createdAtISO string
		if !rp.CreatedAt.IsZero() {
			createdAtISO = rp.CreatedAt.UTC().Format(time.RFC3339)
		}

		lang := rp.Language
		if lang == "" {
			lang = domain.DefaultLanguage
		}

		posts = append(posts, domain.Post{
			ID:        AssignID(rp.Brand, rp.Platform, clean, createdAtISO),
			Brand:     rp.Brand,
			Platform:  rp.Platform,
			Text:      rp.Text,
			CleanText: clean,
			Author:    rp.Author,
			Language:  lang,
			CreatedAt: rp.CreatedAt,
		})
	}

	observability.PostsIngested.Add(float64(len(posts)))

	return posts
}
