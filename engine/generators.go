package engine

import (
	"fmt"

	"wayfare/disruptions"
	"wayfare/events"
	"wayfare/models"
	"wayfare/weather"
)

// GenerateEventSuggestions proposes adding relevant events to the days
// they fall on. Only events scoring above 60 make the cut.
func GenerateEventSuggestions(it *models.Itinerary, found []models.CanonicalEvent) []models.Suggestion {
	var suggestions []models.Suggestion

	for _, ev := range found {
		score := events.CalculateRelevanceScore(ev, it.Interests)
		if score <= 60 {
			continue
		}

		day := it.DayByDate(models.DateOf(ev.Date))
		if day == nil {
			continue
		}

		priority := models.PriorityMedium
		if score > 80 {
			priority = models.PriorityHigh
		}

		bucket := models.Evening
		switch hour := ev.Date.Hour(); {
		case hour < 12:
			bucket = models.Morning
		case hour < 17:
			bucket = models.Afternoon
		}

		suggestions = append(suggestions, models.Suggestion{
			Day:         day.Day,
			Type:        models.SuggestionEvent,
			Priority:    priority,
			Title:       fmt.Sprintf("Add Event: %s", ev.Name),
			Description: fmt.Sprintf("%s is happening near your location on day %d", ev.Name, day.Day),
			Changes: models.SuggestionChanges{
				Original: day.Activities,
				Event: &models.EventChange{
					Time:     bucket,
					Activity: ev.Name,
					Location: ev.Venue.Name,
				},
				Reasoning: fmt.Sprintf("This %s event matches your interests", ev.Category),
			},
			EventDetails: &models.EventContext{
				EventID:  ev.EventID,
				Name:     ev.Name,
				Date:     ev.Date,
				Location: ev.Venue.Name,
				Category: ev.Category,
				URL:      ev.URL,
				IsFree:   ev.IsFree,
			},
			Score: score,
		})
	}
	return suggestions
}

// GenerateWeatherSuggestions proposes indoor alternatives for days whose
// planned activities are outdoors and whose forecast raises issues. Days
// with no outdoor plans raise nothing regardless of the weather.
func GenerateWeatherSuggestions(it *models.Itinerary, forecast []models.DailyForecast) []models.Suggestion {
	var suggestions []models.Suggestion

	for _, disrupted := range weather.DetectDisruptions(forecast) {
		day := it.DayByDate(disrupted.Date)
		if day == nil || !HasOutdoorActivities(day.Activities) {
			continue
		}

		alternatives := weather.SuggestIndoorAlternatives(disrupted.Forecast)
		for _, issue := range disrupted.Issues {
			priority := models.PriorityMedium
			score := 65
			if issue.Severity == models.SeverityHigh {
				priority = models.PriorityHigh
				score = 85
			}

			forecastCopy := disrupted.Forecast
			suggestions = append(suggestions, models.Suggestion{
				Day:         day.Day,
				Type:        models.SuggestionWeather,
				Priority:    priority,
				Title:       fmt.Sprintf("Weather Alert: %s on day %d", issue.Type, day.Day),
				Description: issue.Message,
				Changes: models.SuggestionChanges{
					Original:  day.Activities,
					Weather:   &models.WeatherChange{Alternatives: alternatives},
					Reasoning: issue.Message,
				},
				WeatherContext: &forecastCopy,
				Score:          score,
			})
		}
	}
	return suggestions
}

// GenerateDisruptionSuggestions proposes mitigations for each day a
// disruption touches.
func GenerateDisruptionSuggestions(it *models.Itinerary, records []models.DisruptionRecord) []models.Suggestion {
	var suggestions []models.Suggestion

	for _, rec := range records {
		policy := disruptions.CategorizeSeverity(rec.Severity)

		priority := models.PriorityMedium
		score := 70
		if policy.Priority == 1 {
			priority = models.PriorityHigh
			score = 90
		}

		for _, affected := range rec.AffectedDates {
			day := it.DayByDate(affected)
			if day == nil {
				continue
			}

			suggestions = append(suggestions, models.Suggestion{
				Day:         day.Day,
				Type:        models.SuggestionDisruption,
				Priority:    priority,
				Title:       fmt.Sprintf("Disruption: %s", rec.Title),
				Description: rec.Description,
				Changes: models.SuggestionChanges{
					Original:   day.Activities,
					Disruption: &models.DisruptionChange{Mitigation: rec.Mitigation},
					Reasoning:  rec.Description,
				},
				DisruptionContext: &models.DisruptionContext{
					Type:     rec.Type,
					Severity: rec.Severity,
				},
				Score: score,
			})
		}
	}
	return suggestions
}
