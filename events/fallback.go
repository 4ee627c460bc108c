package events

import (
	"time"

	"wayfare/models"
)

// SyntheticEvents is the deterministic fallback dataset returned whenever
// the live provider is unavailable: three representative events spanning
// the requested range, tagged with the synthetic provenance so downstream
// consumers can tell them apart.
func SyntheticEvents(location string, start, end models.Date) []models.CanonicalEvent {
	return []models.CanonicalEvent{
		{
			EventID:     "synthetic-1",
			Name:        "Summer Music Festival",
			Description: "Annual celebration of local and international music",
			Category:    models.CategoryFestival,
			Date:        start.Time().Add(18 * time.Hour),
			EndDate:     start.Time().Add(23 * time.Hour),
			Venue: models.Venue{
				Name:    "City Park",
				Address: location,
			},
			URL:    "#",
			IsFree: false,
			Source: models.SourceSynthetic,
		},
		{
			EventID:     "synthetic-2",
			Name:        "Food Market Weekend",
			Description: "Try local cuisines and street food",
			Category:    models.CategoryFood,
			Date:        start.Time().Add(10 * time.Hour),
			EndDate:     end.Time().Add(20 * time.Hour),
			Venue: models.Venue{
				Name:    "Downtown Square",
				Address: location,
			},
			URL:    "#",
			IsFree: true,
			Source: models.SourceSynthetic,
		},
		{
			EventID:     "synthetic-3",
			Name:        "Art Gallery Opening",
			Description: "Contemporary art exhibition opening night",
			Category:    models.CategoryCultural,
			Date:        start.AddDays(2).Time().Add(19 * time.Hour),
			EndDate:     start.AddDays(2).Time().Add(22 * time.Hour),
			Venue: models.Venue{
				Name:    "Modern Art Museum",
				Address: location,
			},
			URL:    "#",
			IsFree: true,
			Source: models.SourceSynthetic,
		},
	}
}
