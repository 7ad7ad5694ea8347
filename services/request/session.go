package request

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"concierge/catalog"
	"concierge/config"
	"concierge/models"
	"concierge/services/search"
	"concierge/services/sections"
	"concierge/services/share"
	"concierge/utils"
)

// Session owns the single source of truth the pipeline stages read: the
// query, the active suggestion and event sets, the current selection and
// the request form. Every state change is a named transition; only the
// stage owning a transition writes its state.
type Session struct {
	cfg    *config.Config
	logger *zap.Logger

	suggestions *search.SuggestionResolver
	events      *search.EventResolver
	debouncer   *search.Debouncer
	sender      share.MessageSender

	mu             sync.Mutex
	searchGen      uint64
	query          string
	suggestionList []models.Suggestion
	panelOpen      bool
	eventList      []models.EventRecord
	selected       *models.EventRecord
	seatMapOpen    bool
	form           models.RequestForm
	searchErr      error
	loading        bool
}

// NewSession assembles the pipeline around one catalog capability and one
// outbound transport.
func NewSession(cfg *config.Config, cat catalog.Search, sender share.MessageSender, logger *zap.Logger) *Session {
	if logger == nil {
		logger = utils.GetLogger()
	}
	s := &Session{
		cfg:    cfg,
		logger: logger,
		sender: sender,
		form:   models.RequestForm{Quantity: "2", Section: sections.BestAvailable},
	}
	s.suggestions = &search.SuggestionResolver{Catalog: cat, Logger: logger}
	s.events = &search.EventResolver{Catalog: cat, PageSize: cfg.EventPageSize, Logger: logger}
	s.debouncer = search.NewDebouncer(cfg.SearchDebounce, s.refreshSuggestions, s.clearSuggestions)
	return s
}

// SetQuery records a keystroke. Queries below the length gate clear the
// suggestion panel immediately; anything else arms the debounced lookup.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
	s.debouncer.Observe(query)
}

func (s *Session) refreshSuggestions(query string) {
	list := s.suggestions.Resolve(context.Background(), query)
	s.mu.Lock()
	s.suggestionList = list
	if len(list) > 0 {
		s.panelOpen = true
	}
	s.mu.Unlock()
}

func (s *Session) clearSuggestions() {
	s.mu.Lock()
	s.suggestionList = nil
	s.panelOpen = false
	s.mu.Unlock()
}

// SelectSuggestion resolves a picked suggestion into an event search,
// routed by entity kind. The query text becomes the suggestion's name.
func (s *Session) SelectSuggestion(ctx context.Context, item models.Suggestion) error {
	s.mu.Lock()
	s.query = item.Name
	s.mu.Unlock()
	s.debouncer.Cancel()

	req := search.EventSearch{}
	if item.Kind == models.KindPerformer {
		req.AttractionID = item.ID
	} else {
		req.VenueID = item.ID
	}
	return s.runEventSearch(ctx, req)
}

// SearchKeyword runs a free-text event search with the current query.
func (s *Session) SearchKeyword(ctx context.Context) error {
	s.mu.Lock()
	keyword := s.query
	s.mu.Unlock()
	s.debouncer.Cancel()
	return s.runEventSearch(ctx, search.EventSearch{Keyword: keyword})
}

func (s *Session) runEventSearch(ctx context.Context, req search.EventSearch) error {
	s.mu.Lock()
	s.searchGen++
	gen := s.searchGen
	s.loading = true
	s.searchErr = nil
	s.eventList = nil
	s.panelOpen = false
	s.mu.Unlock()

	list, err := s.events.Resolve(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check under the lock that holds the state: the result only applies
	// if no newer search started while this one was in flight.
	if s.searchGen != gen || errors.Is(err, search.ErrSuperseded) {
		return nil
	}
	s.loading = false
	if err != nil {
		s.searchErr = err
		return err
	}
	s.eventList = list
	return nil
}

// SelectEvent makes one fetched event the active selection. The seat-map
// view closes and the section field is re-seeded from the event's seat-map
// availability; the other form fields carry over.
func (s *Session) SelectEvent(event *models.EventRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = event
	s.seatMapOpen = false
	if event != nil {
		s.form.Section = sections.InitialSection(event)
	}
}

// ClearSelection dismisses the request modal.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.seatMapOpen = false
}

// OutsideClick closes the suggestion panel without discarding its contents.
func (s *Session) OutsideClick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panelOpen = false
}

// ReopenSuggestions shows the panel again on focus if a batch is held.
func (s *Session) ReopenSuggestions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.suggestionList) > 0 {
		s.panelOpen = true
	}
}

// ToggleSeatMap flips the inline seat-map viewer. It only opens when the
// selected event actually carries a seat map.
func (s *Session) ToggleSeatMap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != nil && s.selected.SeatmapURL != "" {
		s.seatMapOpen = !s.seatMapOpen
	}
}

// SectionOptions lists the seating choices for the current selection.
func (s *Session) SectionOptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sections.Options(s.selected)
}

// Form field transitions.

func (s *Session) SetQuantity(v string) { s.setForm(func(f *models.RequestForm) { f.Quantity = v }) }
func (s *Session) SetSection(v string)  { s.setForm(func(f *models.RequestForm) { f.Section = v }) }
func (s *Session) SetBudget(v string)   { s.setForm(func(f *models.RequestForm) { f.Budget = v }) }
func (s *Session) SetNotes(v string)    { s.setForm(func(f *models.RequestForm) { f.Notes = v }) }

func (s *Session) setForm(mutate func(*models.RequestForm)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.form)
}

// Compose renders the outbound message for the current selection.
func (s *Session) Compose() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return "", errors.New("no event selected")
	}
	return Compile(s.selected, s.form), nil
}

// Send compiles the request and hands it to the outbound transport.
func (s *Session) Send(ctx context.Context) error {
	msg, err := s.Compose()
	if err != nil {
		return err
	}
	if s.cfg.ResellerPhone == "" {
		return errors.New("reseller contact not configured")
	}
	if s.sender == nil {
		return errors.New("no outbound transport configured")
	}
	return s.sender.Send(ctx, s.cfg.ResellerPhone, msg)
}

// Read-only accessors for the presentation shell.

func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Session) Suggestions() ([]models.Suggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestionList, s.panelOpen
}

func (s *Session) Events() []models.EventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventList
}

func (s *Session) Selected() *models.EventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Session) SeatMapOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seatMapOpen
}

func (s *Session) Form() models.RequestForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchErr
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
