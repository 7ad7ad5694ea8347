package catalog

import (
	"context"
	"time"

	"concierge/models"
)

// EventQuery scopes one event search. Exactly one of AttractionID, VenueID
// or Keyword is set per call; the server filters on whichever is supplied.
type EventQuery struct {
	AttractionID string
	VenueID      string
	Keyword      string

	// StartingAfter is the server-side time floor; events starting before
	// it are never returned.
	StartingAfter time.Time

	// PageSize caps the result set (the catalog allows at most 50).
	PageSize int
}

// Search is the catalog capability the resolvers depend on. The production
// implementation lives in catalog/ticketmaster; tests supply fakes.
type Search interface {
	// Configured reports whether the capability holds a credential. Callers
	// check it before issuing any call.
	Configured() bool

	// SearchPerformers returns performer suggestions for a keyword, sorted
	// by name ascending and capped at the configured performer limit.
	SearchPerformers(ctx context.Context, keyword string) ([]models.Suggestion, error)

	// SearchVenues is the venue counterpart of SearchPerformers.
	SearchVenues(ctx context.Context, keyword string) ([]models.Suggestion, error)

	// SearchEvents returns upcoming events matching the query, sorted by
	// start time ascending.
	SearchEvents(ctx context.Context, q EventQuery) ([]models.EventRecord, error)
}
