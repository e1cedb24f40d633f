// Package scrape provides the social platform collaborators that feed the
// ingestion pipeline with raw posts. Each scraper fetches posts mentioning a
// brand from one platform and hands back a normalized []domain.RawPost; all
// filtering and deduplication happen downstream.
package scrape

import (
	"github.com/brandpulse/brandpulse/internal/core/domain"
	"github.com/brandpulse/brandpulse/internal/core/ports"
)

// Registry maps platform names to their scrapers.
type Registry map[domain.Platform]ports.Scraper

// NewRegistry builds a registry from the given scrapers.
func NewRegistry(scrapers ...ports.Scraper) Registry {
	r := make(Registry, len(scrapers))
	for _, s := range scrapers {
		r[s.Platform()] = s
	}

	return r
}

// Get returns the scraper for a platform, or nil when none is registered.
func (r Registry) Get(platform domain.Platform) ports.Scraper {
	return r[platform]
}
