// Package errors provides centralized error definitions for the application.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Classifier errors.
var (
	// ErrClassifierUnavailable indicates the sentiment classifier could not be
	// reached or initialized. Fatal for the current job; no partial enrichment
	// is committed.
	ErrClassifierUnavailable = errors.New("sentiment classifier unavailable")

	// ErrBatchMismatch indicates the classifier returned a result batch whose
	// length does not match the input batch.
	ErrBatchMismatch = errors.New("classifier batch length mismatch")
)

// Scraper errors.
var (
	// ErrUnknownSource indicates a requested scrape source has no registered
	// scraper.
	ErrUnknownSource = errors.New("unknown scrape source")
)

// Job errors.
var (
	// ErrJobNotFound indicates no job exists with the given ID.
	ErrJobNotFound = errors.New("job not found")

	// ErrQueueFull indicates the job queue cannot accept more work.
	ErrQueueFull = errors.New("job queue full")

	// ErrNoSources indicates an analysis request enabled no scrape sources.
	ErrNoSources = errors.New("no scrape sources enabled")
)
