package sections

import (
	"strings"

	"concierge/models"
)

// BestAvailable is the dropdown default when no seat map is available.
const BestAvailable = "Best Available"

// The three fixed seating vocabularies. The first entry is always the
// best-available default; the last is the free-form escape hatch pointing
// the reseller at the notes field.
var (
	motorsportsSections = []string{
		"Any / Best Available",
		"Paddock Club / VIP Hospitality",
		"Main Grandstand (Start/Finish)",
		"Turn / Corner Grandstand",
		"General Admission (GA)",
		"Team Garage / Suite",
		"Specific Section (See Notes)",
	}

	musicSections = []string{
		"Any / Best Available",
		"Floor / GA Pit",
		"Lower Bowl (100 Level)",
		"Club Level / VIP",
		"Upper Bowl (300+ Level)",
		"Aisle Seats Only",
		"Specific Section (See Notes)",
	}

	// Standard stadium/arena sports (NBA, NFL, MLB and the like).
	defaultSections = []string{
		"Any / Best Available",
		"Floor / Field / Courtside",
		"Lower Bowl (100 Level)",
		"Club Level / Mezzanine",
		"Upper Bowl (300+ Level)",
		"Aisle Seats Only",
		"Specific Section (See Notes)",
	}
)

// Options maps an event's taxonomy to the seating vocabulary its request
// form offers. Rules apply in priority order: motorsports beats music beats
// the sports default, and an absent taxonomy falls through to the default.
// A fresh copy is returned so callers cannot mutate the fixed lists.
func Options(event *models.EventRecord) []string {
	if event == nil {
		return []string{BestAvailable}
	}

	segment := strings.ToLower(event.Classification.Segment)
	genre := strings.ToLower(event.Classification.Genre)
	subGenre := strings.ToLower(event.Classification.SubGenre)

	switch {
	case strings.Contains(genre, "motorsports"),
		strings.Contains(genre, "racing"),
		strings.Contains(subGenre, "auto"):
		return clone(motorsportsSections)
	case strings.Contains(segment, "music"):
		return clone(musicSections)
	default:
		return clone(defaultSections)
	}
}

// InitialSection is the form's starting section value for a newly selected
// event: empty for free-text entry when a seat map is available, the
// dropdown default otherwise.
func InitialSection(event *models.EventRecord) string {
	if event != nil && event.SeatmapURL != "" {
		return ""
	}
	return BestAvailable
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
