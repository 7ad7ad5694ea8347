package search

import (
	"context"
	"sync"

	"concierge/catalog"
	"concierge/models"
)

// fakeCatalog is an in-memory catalog.Search for resolver tests.
type fakeCatalog struct {
	configured bool

	performers    []models.Suggestion
	venues        []models.Suggestion
	events        []models.EventRecord
	performersErr error
	venuesErr     error
	eventsErr     error

	// When set, the first SearchEvents call signals entered and then waits
	// for release, letting tests interleave a second search.
	entered chan struct{}
	release chan struct{}

	mu             sync.Mutex
	performerCalls int
	venueCalls     int
	eventCalls     int
	lastEventQuery catalog.EventQuery
}

func (f *fakeCatalog) Configured() bool { return f.configured }

func (f *fakeCatalog) SearchPerformers(ctx context.Context, keyword string) ([]models.Suggestion, error) {
	f.mu.Lock()
	f.performerCalls++
	f.mu.Unlock()
	return f.performers, f.performersErr
}

func (f *fakeCatalog) SearchVenues(ctx context.Context, keyword string) ([]models.Suggestion, error) {
	f.mu.Lock()
	f.venueCalls++
	f.mu.Unlock()
	return f.venues, f.venuesErr
}

func (f *fakeCatalog) SearchEvents(ctx context.Context, q catalog.EventQuery) ([]models.EventRecord, error) {
	f.mu.Lock()
	f.eventCalls++
	call := f.eventCalls
	f.lastEventQuery = q
	f.mu.Unlock()

	if f.entered != nil && call == 1 {
		f.entered <- struct{}{}
		<-f.release
	}
	return f.events, f.eventsErr
}

func (f *fakeCatalog) calls() (performers, venues, events int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.performerCalls, f.venueCalls, f.eventCalls
}

func (f *fakeCatalog) lastQuery() catalog.EventQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastEventQuery
}
