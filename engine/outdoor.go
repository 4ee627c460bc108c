package engine

import (
	"wayfare/models"
	"wayfare/utils"
)

var outdoorKeywords = []string{
	"park", "beach", "hiking", "walk", "outdoor", "garden",
	"mountain", "nature", "trek", "tour", "sightseeing",
}

// HasOutdoorActivities reports whether any activity in the list reads as
// an outdoor plan. Matching is a case-insensitive substring check over
// the activity name and category.
func HasOutdoorActivities(activities []models.Activity) bool {
	for _, a := range activities {
		text := a.Name + " " + a.Category
		for _, kw := range outdoorKeywords {
			if utils.ContainsIgnoreCase(text, kw) {
				return true
			}
		}
	}
	return false
}
