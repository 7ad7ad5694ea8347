package request

import (
	"fmt"
	"strings"
	"time"

	"concierge/models"
)

// Start times render the way US ticket listings read them.
const dateLayout = "Mon, Jan 2, 3:04 PM"

// FormatStartDate renders an event's start time for cards and messages, or
// "TBD" when the catalog supplied none. The catalog reports times in UTC;
// the reseller reads them in the device's local zone.
func FormatStartDate(t *time.Time) string {
	if t == nil {
		return "TBD"
	}
	return t.Local().Format(dateLayout)
}

// VenueLocation composes "venueName, cityName", dropping absent parts and
// falling back to "Venue TBD" when nothing is known.
func VenueLocation(event *models.EventRecord) string {
	if event == nil || event.Venue == nil {
		return "Venue TBD"
	}
	parts := make([]string, 0, 2)
	if event.Venue.Name != "" {
		parts = append(parts, event.Venue.Name)
	}
	if event.Venue.City != "" {
		parts = append(parts, event.Venue.City)
	}
	if len(parts) == 0 {
		return "Venue TBD"
	}
	return strings.Join(parts, ", ")
}

// Compile renders the outbound request message. The line order and wording
// are a contract with the human reseller reading it; do not change them.
func Compile(event *models.EventRecord, form models.RequestForm) string {
	if event == nil {
		return ""
	}

	section := form.Section
	if section == "" {
		section = "Any"
	}
	budget := "Open"
	if form.Budget != "" {
		budget = "$" + form.Budget
	}
	notes := form.Notes
	if notes == "" {
		notes = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hey! Looking for tickets to:\n%s\n\n", event.Name)
	fmt.Fprintf(&b, "📅 %s\n", FormatStartDate(event.StartDateTime))
	fmt.Fprintf(&b, "📍 %s\n\n", VenueLocation(event))
	b.WriteString("Request Details:\n")
	fmt.Fprintf(&b, "🎟️ Qty: %s\n", form.Quantity)
	fmt.Fprintf(&b, "💺 Section: %s\n", section)
	fmt.Fprintf(&b, "💰 Budget: %s\n", budget)
	fmt.Fprintf(&b, "📝 Notes: %s\n\n", notes)
	b.WriteString("Let me know what you have!")
	return b.String()
}
