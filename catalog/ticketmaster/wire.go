package ticketmaster

import (
	"time"

	"concierge/models"
)

// Wire shapes for the Discovery v2 API. Result collections arrive inside an
// "_embedded" envelope; absent collections mean an empty result, not an
// error.

type wireImage struct {
	URL   string `json:"url"`
	Ratio string `json:"ratio"`
	Width int    `json:"width"`
}

type wireCity struct {
	Name string `json:"name"`
}

type wireAttraction struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Images []wireImage `json:"images"`
}

type wireVenue struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	City   wireCity    `json:"city"`
	Images []wireImage `json:"images"`
}

type wireNamed struct {
	Name string `json:"name"`
}

type wireClassification struct {
	Segment  wireNamed `json:"segment"`
	Genre    wireNamed `json:"genre"`
	SubGenre wireNamed `json:"subGenre"`
}

type wireEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Dates struct {
		Start struct {
			DateTime string `json:"dateTime"`
		} `json:"start"`
	} `json:"dates"`
	Images  []wireImage `json:"images"`
	Seatmap struct {
		StaticURL string `json:"staticUrl"`
	} `json:"seatmap"`
	Classifications []wireClassification `json:"classifications"`
	Embedded        struct {
		Venues []wireVenue `json:"venues"`
	} `json:"_embedded"`
}

type attractionsEnvelope struct {
	Embedded struct {
		Attractions []wireAttraction `json:"attractions"`
	} `json:"_embedded"`
}

type venuesEnvelope struct {
	Embedded struct {
		Venues []wireVenue `json:"venues"`
	} `json:"_embedded"`
}

type eventsEnvelope struct {
	Embedded struct {
		Events []wireEvent `json:"events"`
	} `json:"_embedded"`
}

// Suggestion thumbnails prefer a small 16:9 rendition; large hero images
// are wasteful in a dropdown row.
func pickThumbnail(images []wireImage) string {
	for _, img := range images {
		if img.Ratio == "16_9" && img.Width < 400 {
			return img.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}

func mapImages(images []wireImage) []models.EventImage {
	if len(images) == 0 {
		return nil
	}
	out := make([]models.EventImage, 0, len(images))
	for _, img := range images {
		out = append(out, models.EventImage{URL: img.URL, Width: img.Width, Ratio: img.Ratio})
	}
	return out
}

func mapEvent(ev wireEvent) models.EventRecord {
	rec := models.EventRecord{
		ID:         ev.ID,
		Name:       ev.Name,
		Images:     mapImages(ev.Images),
		SeatmapURL: ev.Seatmap.StaticURL,
	}

	if ev.Dates.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.Dates.Start.DateTime); err == nil {
			rec.StartDateTime = &t
		}
	}

	if len(ev.Embedded.Venues) > 0 {
		v := ev.Embedded.Venues[0]
		rec.Venue = &models.EventVenue{Name: v.Name, City: v.City.Name}
	}

	if len(ev.Classifications) > 0 {
		c := ev.Classifications[0]
		rec.Classification = models.Classification{
			Segment:  c.Segment.Name,
			Genre:    c.Genre.Name,
			SubGenre: c.SubGenre.Name,
		}
	}

	return rec
}
