package search

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"concierge/catalog"
	"concierge/models"
	"concierge/utils"
)

// Listing-name terms that mark a row as something other than the event
// itself. Matched case-insensitively as substrings.
var (
	logisticsTerms = []string{"parking", "shuttle", "valet"}
	upsellTerms    = []string{"package", "vip club", "upgrade"}
	testDataTerms  = []string{"test event", "tm internal"}
)

// EventSearch names the single reference driving one resolution call.
// Exactly one field is set.
type EventSearch struct {
	AttractionID string
	VenueID      string
	Keyword      string
}

// EventResolver fetches and filters the bookable event set for one resolved
// reference or free-text keyword. Each call supersedes the previous one:
// a response arriving after a newer search started is discarded.
type EventResolver struct {
	Catalog  catalog.Search
	PageSize int
	Logger   *zap.Logger

	// Clock is overridable in tests; nil means time.Now.
	Clock func() time.Time

	generation atomic.Uint64
}

// Resolve runs the fetch-and-filter pipeline. On success the returned slice
// is the new active result set; every error is one of the SearchError codes
// or ErrSuperseded.
func (r *EventResolver) Resolve(ctx context.Context, req EventSearch) ([]models.EventRecord, error) {
	if r.Catalog == nil || !r.Catalog.Configured() {
		return nil, NewNotConfiguredError()
	}

	gen := r.generation.Add(1)
	log := r.logger().With(zap.String("searchId", uuid.NewString()))
	log.Debug("event search started",
		zap.String("attractionId", req.AttractionID),
		zap.String("venueId", req.VenueID),
		zap.String("keyword", req.Keyword))

	raw, err := r.Catalog.SearchEvents(ctx, catalog.EventQuery{
		AttractionID:  req.AttractionID,
		VenueID:       req.VenueID,
		Keyword:       req.Keyword,
		StartingAfter: r.now(),
		PageSize:      r.pageSize(),
	})

	if r.generation.Load() != gen {
		log.Debug("discarding stale event search response", zap.Uint64("generation", gen))
		return nil, ErrSuperseded
	}
	if err != nil {
		log.Warn("event search failed", zap.Error(err))
		return nil, NewConnectionError(err)
	}
	if len(raw) == 0 {
		return nil, NewNoEventsError()
	}

	valid := FilterBookable(raw)
	log.Debug("event search finished",
		zap.Int("raw", len(raw)), zap.Int("valid", len(valid)))
	if len(valid) == 0 {
		return nil, NewNoMatchesError()
	}
	return valid, nil
}

// FilterBookable removes listings a reseller cannot act on. It is a pure,
// order-preserving subset of its input.
func FilterBookable(events []models.EventRecord) []models.EventRecord {
	valid := make([]models.EventRecord, 0, len(events))
	for _, ev := range events {
		if IsBookable(&ev) {
			valid = append(valid, ev)
		}
	}
	return valid
}

// IsBookable applies the validity rules to a single listing: no logistics
// add-ons (parking passes, shuttles), no bundled upsells, no catalog test
// data, and the event must carry a venue and a usable hero image.
func IsBookable(ev *models.EventRecord) bool {
	name := strings.ToLower(ev.Name)
	if containsAny(name, logisticsTerms) ||
		containsAny(name, upsellTerms) ||
		containsAny(name, testDataTerms) {
		return false
	}
	if ev.Venue == nil {
		return false
	}
	return ev.HasUsableImage()
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func (r *EventResolver) now() time.Time {
	if r.Clock != nil {
		return r.Clock()
	}
	return time.Now()
}

func (r *EventResolver) pageSize() int {
	if r.PageSize > 0 {
		return r.PageSize
	}
	return 50
}

func (r *EventResolver) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return utils.GetLogger()
}
