package models

// SuggestionKind distinguishes the two entity feeds merged into one
// suggestion list.
type SuggestionKind string

const (
	KindPerformer SuggestionKind = "performer"
	KindVenue     SuggestionKind = "venue"
)

// Suggestion is a lightweight candidate shown while the user types. It only
// exists to resolve an attraction or venue reference for the event search;
// a fresh batch replaces the previous one on every lookup.
type Suggestion struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Kind         SuggestionKind `json:"kind"`
	CityName     string         `json:"cityName,omitempty"`
	ThumbnailURL string         `json:"thumbnailUrl,omitempty"`
}
