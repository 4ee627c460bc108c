package events

import (
	"strings"

	"wayfare/models"
)

// Categorize collapses a provider's free-text category name into the
// fixed taxonomy via keyword matching.
func Categorize(providerCategory string) string {
	name := strings.ToLower(providerCategory)

	switch {
	case strings.Contains(name, "music"), strings.Contains(name, "concert"):
		return models.CategoryMusic
	case strings.Contains(name, "food"), strings.Contains(name, "drink"):
		return models.CategoryFood
	case strings.Contains(name, "art"), strings.Contains(name, "culture"):
		return models.CategoryCultural
	case strings.Contains(name, "festival"):
		return models.CategoryFestival
	case strings.Contains(name, "sport"):
		return models.CategorySports
	case strings.Contains(name, "business"), strings.Contains(name, "professional"):
		return models.CategoryBusiness
	case strings.Contains(name, "community"):
		return models.CategoryCommunity
	}
	return models.CategoryOther
}
