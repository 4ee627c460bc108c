package weather

import (
	"strings"

	"wayfare/models"
)

// DetectDisruptions scans a forecast for conditions that should alter an
// itinerary. A single day can raise several issues.
func DetectDisruptions(forecast []models.DailyForecast) []models.WeatherDisruptionDay {
	var disrupted []models.WeatherDisruptionDay

	for _, day := range forecast {
		var issues []models.WeatherIssue

		if day.Precipitation > 70 {
			issues = append(issues, models.WeatherIssue{
				Type:     models.IssueHeavyRain,
				Severity: models.SeverityModerate,
				Message:  "High chance of rain. Consider indoor activities.",
			})
		}
		if day.Temp.Max > 38 {
			issues = append(issues, models.WeatherIssue{
				Type:     models.IssueExtremeHeat,
				Severity: models.SeverityHigh,
				Message:  "Extreme heat expected. Plan activities for early morning or evening.",
			})
		}
		if day.Temp.Min < 5 {
			issues = append(issues, models.WeatherIssue{
				Type:     models.IssueCold,
				Severity: models.SeverityModerate,
				Message:  "Very cold weather. Dress warmly and limit outdoor exposure.",
			})
		}
		if strings.Contains(strings.ToLower(day.Condition), "thunderstorm") {
			issues = append(issues, models.WeatherIssue{
				Type:     models.IssueStorm,
				Severity: models.SeverityHigh,
				Message:  "Thunderstorms expected. Avoid outdoor activities.",
			})
		}
		if day.WindSpeed > 30 {
			issues = append(issues, models.WeatherIssue{
				Type:     models.IssueWind,
				Severity: models.SeverityModerate,
				Message:  "Strong winds expected. Outdoor activities may be affected.",
			})
		}

		if len(issues) > 0 {
			disrupted = append(disrupted, models.WeatherDisruptionDay{
				Date:     day.Date,
				Forecast: day,
				Issues:   issues,
			})
		}
	}
	return disrupted
}
