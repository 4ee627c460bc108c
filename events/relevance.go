package events

import (
	"strings"

	"wayfare/models"
)

// CalculateRelevanceScore rates an event against the traveler's interests.
// Base 50; +30 when any interest keyword appears in the category or name;
// +10 for free events; +15 for festivals and cultural events; capped at 100.
// The score is itinerary-scoped and recomputed on every analysis.
func CalculateRelevanceScore(ev models.CanonicalEvent, interests []string) int {
	score := 50

	if len(interests) > 0 {
		category := strings.ToLower(ev.Category)
		name := strings.ToLower(ev.Name)

		for _, interest := range interests {
			kw := strings.ToLower(interest)
			if strings.Contains(category, kw) || strings.Contains(name, kw) {
				score += 30
				break
			}
		}
	}

	if ev.IsFree {
		score += 10
	}

	if ev.Category == models.CategoryFestival || ev.Category == models.CategoryCultural {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ApplyRelevance stamps each event with its score against the given
// interests.
func ApplyRelevance(evs []models.CanonicalEvent, interests []string) {
	for i := range evs {
		evs[i].RelevanceScore = CalculateRelevanceScore(evs[i], interests)
	}
}
