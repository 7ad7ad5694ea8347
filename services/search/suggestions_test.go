package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"concierge/models"
)

func TestSuggestionResolverMergesPerformersBeforeVenues(t *testing.T) {
	cat := &fakeCatalog{
		configured: true,
		performers: []models.Suggestion{
			{ID: "a1", Name: "Arctic Monkeys", Kind: models.KindPerformer},
			{ID: "a2", Name: "Artful Dodger", Kind: models.KindPerformer},
		},
		venues: []models.Suggestion{
			{ID: "v1", Name: "Apollo Theater", Kind: models.KindVenue, CityName: "New York"},
		},
	}
	r := &SuggestionResolver{Catalog: cat, Logger: zap.NewNop()}

	got := r.Resolve(context.Background(), "a")

	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
	assert.Equal(t, "v1", got[2].ID)
	assert.Equal(t, models.KindVenue, got[2].Kind)
}

func TestSuggestionResolverFailureEmptiesWholeBatch(t *testing.T) {
	tests := []struct {
		name          string
		performersErr error
		venuesErr     error
	}{
		{name: "performer lookup fails", performersErr: errors.New("boom")},
		{name: "venue lookup fails", venuesErr: errors.New("boom")},
		{name: "both fail", performersErr: errors.New("boom"), venuesErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &fakeCatalog{
				configured:    true,
				performers:    []models.Suggestion{{ID: "a1", Name: "Arcade Fire", Kind: models.KindPerformer}},
				venues:        []models.Suggestion{{ID: "v1", Name: "Arena", Kind: models.KindVenue}},
				performersErr: tt.performersErr,
				venuesErr:     tt.venuesErr,
			}
			r := &SuggestionResolver{Catalog: cat, Logger: zap.NewNop()}

			got := r.Resolve(context.Background(), "ar")

			assert.Empty(t, got, "no partial one-sided batches")
		})
	}
}

func TestSuggestionResolverUnconfiguredIsSilentNoop(t *testing.T) {
	cat := &fakeCatalog{configured: false}
	r := &SuggestionResolver{Catalog: cat, Logger: zap.NewNop()}

	got := r.Resolve(context.Background(), "sphere")

	assert.Empty(t, got)
	performers, venues, _ := cat.calls()
	assert.Zero(t, performers, "no lookup may be issued without a credential")
	assert.Zero(t, venues)
}

func TestSuggestionResolverBothFeedsEmpty(t *testing.T) {
	cat := &fakeCatalog{configured: true}
	r := &SuggestionResolver{Catalog: cat, Logger: zap.NewNop()}

	got := r.Resolve(context.Background(), "zz")

	assert.Empty(t, got)
	performers, venues, _ := cat.calls()
	assert.Equal(t, 1, performers)
	assert.Equal(t, 1, venues)
}
