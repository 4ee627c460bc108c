package weather

import (
	"strings"

	"wayfare/models"
)

// SuggestIndoorAlternatives proposes substitutions for a day whose
// forecast rules out outdoor plans. Rain and storms gate one set, extreme
// heat another; a calm day yields nothing.
func SuggestIndoorAlternatives(day models.DailyForecast) []models.Alternative {
	var alternatives []models.Alternative

	stormy := strings.Contains(strings.ToLower(day.Condition), "thunderstorm")
	if day.Precipitation > 60 || stormy {
		alternatives = append(alternatives,
			models.Alternative{
				Type:       "indoor",
				Suggestion: "Visit museums or art galleries",
				Reason:     "Rain expected",
			},
			models.Alternative{
				Type:       "indoor",
				Suggestion: "Explore shopping centers or local markets",
				Reason:     "Rain expected",
			},
			models.Alternative{
				Type:       "indoor",
				Suggestion: "Try local restaurants and cafes",
				Reason:     "Rain expected",
			},
		)
	}

	if day.Temp.Max > 35 {
		alternatives = append(alternatives,
			models.Alternative{
				Type:       "timing",
				Suggestion: "Schedule outdoor activities before 10 AM or after 6 PM",
				Reason:     "Extreme heat during midday",
			},
			models.Alternative{
				Type:       "indoor",
				Suggestion: "Visit air-conditioned attractions during peak heat",
				Reason:     "Extreme heat expected",
			},
		)
	}

	return alternatives
}
