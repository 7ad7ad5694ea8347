package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"concierge/catalog"
	"concierge/models"
	"concierge/utils"
)

// SuggestionResolver merges the performer and venue feeds into one list.
// Lookup failures degrade to an empty batch and are never surfaced to the
// user: suggestions are low-stakes, event results are not.
type SuggestionResolver struct {
	Catalog catalog.Search
	Logger  *zap.Logger
}

// Resolve looks up both entity kinds concurrently and concatenates
// performers before venues. A failure of either feed empties the whole
// batch so the panel never shows a one-sided list. An unconfigured catalog
// is a silent no-op.
func (r *SuggestionResolver) Resolve(ctx context.Context, query string) []models.Suggestion {
	if r.Catalog == nil || !r.Catalog.Configured() {
		return nil
	}

	var performers, venues []models.Suggestion

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		performers, err = r.Catalog.SearchPerformers(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		venues, err = r.Catalog.SearchVenues(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		r.logger().Warn("suggestion lookup failed",
			zap.String("query", query), zap.Error(err))
		return nil
	}

	merged := make([]models.Suggestion, 0, len(performers)+len(venues))
	merged = append(merged, performers...)
	merged = append(merged, venues...)
	return merged
}

func (r *SuggestionResolver) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return utils.GetLogger()
}
