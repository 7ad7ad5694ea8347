package models

import "time"

// EventImage is one candidate hero image for an event, as provided by the
// catalog in descending usefulness order.
type EventImage struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
	Ratio string `json:"ratio,omitempty"`
}

// EventVenue is the venue record embedded in an event listing.
type EventVenue struct {
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// Classification is the catalog's three-level taxonomy for an event. Any
// level may be absent.
type Classification struct {
	Segment  string `json:"segment,omitempty"`
	Genre    string `json:"genre,omitempty"`
	SubGenre string `json:"subGenre,omitempty"`
}

// EventRecord is a single bookable occurrence fetched from the catalog.
// Records are immutable once fetched; the active set is replaced wholesale
// on each new search.
type EventRecord struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	StartDateTime  *time.Time     `json:"startDateTime,omitempty"`
	Venue          *EventVenue    `json:"venue,omitempty"`
	Images         []EventImage   `json:"images,omitempty"`
	SeatmapURL     string         `json:"seatmapUrl,omitempty"`
	Classification Classification `json:"classification"`
}

// Images narrower than this are too small to serve as a hero image.
const heroImageMinWidth = 600

// HeroImage picks the image shown on a result card: a 16:9 image wider than
// 600px when available, otherwise any image wider than 600px.
func (e *EventRecord) HeroImage() *EventImage {
	for i := range e.Images {
		if e.Images[i].Ratio == "16_9" && e.Images[i].Width > heroImageMinWidth {
			return &e.Images[i]
		}
	}
	for i := range e.Images {
		if e.Images[i].Width > heroImageMinWidth {
			return &e.Images[i]
		}
	}
	return nil
}

// HasUsableImage reports whether any image is wide enough to render.
func (e *EventRecord) HasUsableImage() bool {
	for _, img := range e.Images {
		if img.Width > heroImageMinWidth {
			return true
		}
	}
	return false
}
