package disruptions

import (
	"context"
	"strings"
	"time"

	"wayfare/models"
)

// AttractionStatus reports whether a named attraction is open, with a
// small rotating chance of temporary closure driven by the service's
// generator.
func (s *Service) AttractionStatus(ctx context.Context, name string) (models.AttractionStatus, error) {
	if err := ctx.Err(); err != nil {
		return models.AttractionStatus{}, err
	}

	status := models.AttractionStatus{
		Name:        name,
		Status:      "open",
		LastChecked: time.Now(),
	}

	if s.rng.Float64() > 0.85 {
		status.Status = "closed"
		status.Notes = "Temporarily closed for unscheduled maintenance"
	}
	return status, nil
}

// AlternativeAttractions proposes replacements of a similar kind when an
// attraction is unavailable.
func (s *Service) AlternativeAttractions(ctx context.Context, name string) ([]models.AlternativeAttraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := "landmark"
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "museum") || strings.Contains(lower, "gallery"):
		kind = "museum"
	case strings.Contains(lower, "park") || strings.Contains(lower, "garden"):
		kind = "park"
	}

	byKind := map[string][]models.AlternativeAttraction{
		"museum": {
			{Name: "City History Museum", Type: "museum", Reason: "Similar cultural experience nearby", Distance: "1.2 km", Rating: 4.4},
			{Name: "Modern Art Pavilion", Type: "museum", Reason: "Comparable collection, shorter queues", Distance: "2.0 km", Rating: 4.2},
		},
		"park": {
			{Name: "Riverside Gardens", Type: "park", Reason: "Open green space within walking distance", Distance: "0.8 km", Rating: 4.5},
			{Name: "Botanical Conservatory", Type: "park", Reason: "Covered alternative in bad weather", Distance: "2.5 km", Rating: 4.3},
		},
		"landmark": {
			{Name: "Old Town Walking Route", Type: "landmark", Reason: "Self-guided alternative, no entry needed", Distance: "0.5 km", Rating: 4.6},
			{Name: "Observation Deck", Type: "landmark", Reason: "Comparable views of the city", Distance: "3.1 km", Rating: 4.1},
		},
	}
	return byKind[kind], nil
}
