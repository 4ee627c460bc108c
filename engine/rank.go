package engine

import (
	"sort"

	"wayfare/models"
)

// Rank orders suggestions by score, highest first. The sort is stable so
// equal scores keep their generation order: events, then weather, then
// disruptions.
func Rank(suggestions []models.Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
}
