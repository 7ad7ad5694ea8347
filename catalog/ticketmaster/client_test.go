package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"concierge/catalog"
	"concierge/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		TicketmasterAPIKey:       "test-key",
		SuggestionPerformerLimit: 4,
		SuggestionVenueLimit:     3,
	}
	return NewClient(cfg, zap.NewNop(), WithBaseURL(srv.URL))
}

func TestConfigured(t *testing.T) {
	withKey := NewClient(&config.Config{TicketmasterAPIKey: "k"}, zap.NewNop())
	assert.True(t, withKey.Configured())

	withoutKey := NewClient(&config.Config{}, zap.NewNop())
	assert.False(t, withoutKey.Configured())
}

func TestSearchPerformers(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"_embedded": {
				"attractions": [
					{
						"id": "K8vZ917G7x0",
						"name": "Taylor Swift",
						"images": [
							{"url": "https://img/large.jpg", "ratio": "16_9", "width": 1024},
							{"url": "https://img/thumb.jpg", "ratio": "16_9", "width": 205},
							{"url": "https://img/square.jpg", "ratio": "4_3", "width": 305}
						]
					},
					{"id": "K8vZ917G7x1", "name": "Taylor Tomlinson"}
				]
			}
		}`))
	})

	got, err := c.SearchPerformers(context.Background(), "taylor")
	require.NoError(t, err)

	assert.Equal(t, "/attractions.json", gotPath)
	assert.Equal(t, "test-key", gotQuery.Get("apikey"))
	assert.Equal(t, "taylor", gotQuery.Get("keyword"))
	assert.Equal(t, "4", gotQuery.Get("size"))
	assert.Equal(t, "name,asc", gotQuery.Get("sort"))

	require.Len(t, got, 2)
	assert.Equal(t, "K8vZ917G7x0", got[0].ID)
	assert.Equal(t, "Taylor Swift", got[0].Name)
	assert.Equal(t, "https://img/thumb.jpg", got[0].ThumbnailURL, "small 16:9 rendition preferred")
	assert.Equal(t, "", got[1].ThumbnailURL)
}

func TestSearchVenues(t *testing.T) {
	var gotQuery url.Values
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/venues.json", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"_embedded": {
				"venues": [
					{"id": "KovZpZA6kn1A", "name": "Sphere", "city": {"name": "Las Vegas"}}
				]
			}
		}`))
	})

	got, err := c.SearchVenues(context.Background(), "sphere")
	require.NoError(t, err)

	assert.Equal(t, "3", gotQuery.Get("size"))
	assert.Equal(t, "name,asc", gotQuery.Get("sort"))

	require.Len(t, got, 1)
	assert.Equal(t, "Sphere", got[0].Name)
	assert.Equal(t, "Las Vegas", got[0].CityName)
}

func TestSearchEvents(t *testing.T) {
	var gotQuery url.Values
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events.json", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"_embedded": {
				"events": [
					{
						"id": "vvG1iZ9pxcS7Wb",
						"name": "Taylor Swift | The Eras Tour",
						"dates": {"start": {"dateTime": "2026-11-07T00:30:00Z"}},
						"images": [{"url": "https://img/hero.jpg", "ratio": "16_9", "width": 1024}],
						"seatmap": {"staticUrl": "https://maps.tm.com/seatmap.png"},
						"classifications": [{
							"segment": {"name": "Music"},
							"genre": {"name": "Pop"},
							"subGenre": {"name": "Pop"}
						}],
						"_embedded": {"venues": [{"id": "v1", "name": "Soldier Field", "city": {"name": "Chicago"}}]}
					},
					{"id": "bare", "name": "Bare Event"}
				]
			}
		}`))
	})

	startingAfter := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	got, err := c.SearchEvents(context.Background(), catalog.EventQuery{
		AttractionID:  "K8vZ917G7x0",
		StartingAfter: startingAfter,
		PageSize:      50,
	})
	require.NoError(t, err)

	assert.Equal(t, "50", gotQuery.Get("size"))
	assert.Equal(t, "date,asc", gotQuery.Get("sort"))
	assert.Equal(t, "2026-08-31T12:00:00Z", gotQuery.Get("startDateTime"))
	assert.Equal(t, "K8vZ917G7x0", gotQuery.Get("attractionId"))
	assert.Empty(t, gotQuery.Get("venueId"))
	assert.Empty(t, gotQuery.Get("keyword"))

	require.Len(t, got, 2)
	ev := got[0]
	assert.Equal(t, "Taylor Swift | The Eras Tour", ev.Name)
	require.NotNil(t, ev.StartDateTime)
	assert.Equal(t, time.Date(2026, time.November, 7, 0, 30, 0, 0, time.UTC), ev.StartDateTime.UTC())
	require.NotNil(t, ev.Venue)
	assert.Equal(t, "Soldier Field", ev.Venue.Name)
	assert.Equal(t, "Chicago", ev.Venue.City)
	assert.Equal(t, "https://maps.tm.com/seatmap.png", ev.SeatmapURL)
	assert.Equal(t, "Music", ev.Classification.Segment)
	assert.Equal(t, "Pop", ev.Classification.Genre)

	bare := got[1]
	assert.Nil(t, bare.StartDateTime)
	assert.Nil(t, bare.Venue)
	assert.Empty(t, bare.SeatmapURL)
	assert.Empty(t, bare.Classification.Segment)
}

func TestSearchEventsKeywordAndVenueFilters(t *testing.T) {
	var gotQuery url.Values
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := c.SearchEvents(context.Background(), catalog.EventQuery{
		Keyword:       "monster jam",
		StartingAfter: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "monster jam", gotQuery.Get("keyword"))
	assert.Equal(t, "50", gotQuery.Get("size"), "page size defaults to the catalog maximum")

	_, err = c.SearchEvents(context.Background(), catalog.EventQuery{
		VenueID:       "KovZpZA6kn1A",
		StartingAfter: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "KovZpZA6kn1A", gotQuery.Get("venueId"))
}

func TestSearchEventsEmptyEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": {"totalElements": 0}}`))
	})

	got, err := c.SearchEvents(context.Background(), catalog.EventQuery{Keyword: "nothing", StartingAfter: time.Now()})
	require.NoError(t, err)
	assert.Empty(t, got, "missing _embedded means an empty result, not an error")
}

func TestNon200Status(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.SearchPerformers(context.Background(), "taylor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")
}

func TestMalformedBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_embedded": `))
	})

	_, err := c.SearchVenues(context.Background(), "sphere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
