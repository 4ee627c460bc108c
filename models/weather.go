package models

// Temperatures are Celsius, rounded to whole degrees.
type TempRange struct {
	Min int `json:"min" bson:"min"`
	Max int `json:"max" bson:"max"`
	Avg int `json:"avg" bson:"avg"`
}

// DailyForecast is one day's reduced forecast: sub-daily readings bucketed
// by calendar date and collapsed into a single summary.
type DailyForecast struct {
	Date          Date      `json:"date" bson:"date"`
	Temp          TempRange `json:"temp" bson:"temp"`
	Condition     string    `json:"condition" bson:"condition"` // mode of sub-readings
	Precipitation int       `json:"precipitation" bson:"precipitation"` // 0-100 percent
	Description   string    `json:"description" bson:"description"`
	Icon          string    `json:"icon" bson:"icon"`
	WindSpeed     int       `json:"wind_speed" bson:"wind_speed"`
	Humidity      int       `json:"humidity" bson:"humidity"`
}

// Weather issue type tags.
const (
	IssueHeavyRain   = "heavy_rain"
	IssueExtremeHeat = "extreme_heat"
	IssueCold        = "cold"
	IssueStorm       = "storm"
	IssueWind        = "wind"
)

// Issue severities. Weather issues only ever use moderate and high.
const (
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
)

type WeatherIssue struct {
	Type     string `json:"type" bson:"type"`
	Severity string `json:"severity" bson:"severity"`
	Message  string `json:"message" bson:"message"`
}

// WeatherDisruptionDay bundles a date with its non-empty issue list and
// the forecast that raised it.
type WeatherDisruptionDay struct {
	Date     Date           `json:"date" bson:"date"`
	Forecast DailyForecast  `json:"forecast" bson:"forecast"`
	Issues   []WeatherIssue `json:"issues" bson:"issues"`
}

// Alternative is one entry from the indoor/heat-avoidance menu offered for
// a flagged day.
type Alternative struct {
	Type       string `json:"type" bson:"type"`
	Suggestion string `json:"suggestion" bson:"suggestion"`
	Reason     string `json:"reason" bson:"reason"`
}
