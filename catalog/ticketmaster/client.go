package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"concierge/catalog"
	"concierge/config"
	"concierge/models"
	"concierge/utils"
)

const defaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

const (
	defaultPerformerLimit = 4
	defaultVenueLimit     = 3
	defaultEventPageSize  = 50
	maxEventPageSize      = 50
)

// Client talks to the Ticketmaster Discovery v2 API. It implements
// catalog.Search.
type Client struct {
	apiKey         string
	baseURL        string
	httpClient     *http.Client
	performerLimit int
	venueLimit     int
	logger         *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests point it at a local server).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a Discovery API client from the given configuration. A
// missing credential is allowed: the client reports it via Configured and
// callers decide how to degrade.
func NewClient(cfg *config.Config, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:         cfg.TicketmasterAPIKey,
		baseURL:        defaultBaseURL,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		performerLimit: cfg.SuggestionPerformerLimit,
		venueLimit:     cfg.SuggestionVenueLimit,
		logger:         logger,
	}
	if c.performerLimit <= 0 {
		c.performerLimit = defaultPerformerLimit
	}
	if c.venueLimit <= 0 {
		c.venueLimit = defaultVenueLimit
	}
	if c.logger == nil {
		c.logger = utils.GetLogger()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SearchPerformers looks up attractions by keyword, sorted by name
// ascending and capped at the performer limit.
func (c *Client) SearchPerformers(ctx context.Context, keyword string) ([]models.Suggestion, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("keyword", keyword)
	q.Set("size", strconv.Itoa(c.performerLimit))
	q.Set("sort", "name,asc")

	var env attractionsEnvelope
	if err := c.get(ctx, "/attractions.json", q, &env); err != nil {
		return nil, fmt.Errorf("ticketmaster: attraction search: %w", err)
	}

	out := make([]models.Suggestion, 0, len(env.Embedded.Attractions))
	for _, a := range env.Embedded.Attractions {
		out = append(out, models.Suggestion{
			ID:           a.ID,
			Name:         a.Name,
			Kind:         models.KindPerformer,
			ThumbnailURL: pickThumbnail(a.Images),
		})
	}
	return out, nil
}

// SearchVenues looks up venues by keyword, sorted by name ascending and
// capped at the venue limit.
func (c *Client) SearchVenues(ctx context.Context, keyword string) ([]models.Suggestion, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("keyword", keyword)
	q.Set("size", strconv.Itoa(c.venueLimit))
	q.Set("sort", "name,asc")

	var env venuesEnvelope
	if err := c.get(ctx, "/venues.json", q, &env); err != nil {
		return nil, fmt.Errorf("ticketmaster: venue search: %w", err)
	}

	out := make([]models.Suggestion, 0, len(env.Embedded.Venues))
	for _, v := range env.Embedded.Venues {
		out = append(out, models.Suggestion{
			ID:           v.ID,
			Name:         v.Name,
			Kind:         models.KindVenue,
			CityName:     v.City.Name,
			ThumbnailURL: pickThumbnail(v.Images),
		})
	}
	return out, nil
}

// SearchEvents fetches upcoming events for the query, sorted by start time
// ascending. The time floor is applied server-side via startDateTime.
func (c *Client) SearchEvents(ctx context.Context, query catalog.EventQuery) ([]models.EventRecord, error) {
	size := query.PageSize
	if size <= 0 || size > maxEventPageSize {
		size = defaultEventPageSize
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("size", strconv.Itoa(size))
	q.Set("sort", "date,asc")
	// The Discovery API rejects fractional seconds in startDateTime.
	q.Set("startDateTime", query.StartingAfter.UTC().Format("2006-01-02T15:04:05Z"))
	if query.AttractionID != "" {
		q.Set("attractionId", query.AttractionID)
	}
	if query.VenueID != "" {
		q.Set("venueId", query.VenueID)
	}
	if query.Keyword != "" {
		q.Set("keyword", query.Keyword)
	}

	var env eventsEnvelope
	if err := c.get(ctx, "/events.json", q, &env); err != nil {
		return nil, fmt.Errorf("ticketmaster: event search: %w", err)
	}

	out := make([]models.EventRecord, 0, len(env.Embedded.Events))
	for _, ev := range env.Embedded.Events {
		out = append(out, mapEvent(ev))
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("discovery API returned non-200",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
