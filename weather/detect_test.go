package weather

import (
	"testing"

	"wayfare/models"
)

func calmDay(date models.Date) models.DailyForecast {
	return models.DailyForecast{
		Date:          date,
		Temp:          models.TempRange{Min: 15, Max: 25, Avg: 20},
		Condition:     "Clear",
		Precipitation: 20,
		WindSpeed:     10,
	}
}

func TestDetectQuietForecastRaisesNothing(t *testing.T) {
	forecast := []models.DailyForecast{
		calmDay(models.NewDate(2026, 7, 14)),
		calmDay(models.NewDate(2026, 7, 15)),
	}

	if got := DetectDisruptions(forecast); len(got) != 0 {
		t.Fatalf("expected no disruptions, got %d", len(got))
	}
}

func TestDetectHeavyRain(t *testing.T) {
	day := calmDay(models.NewDate(2026, 7, 14))
	day.Precipitation = 71

	disrupted := DetectDisruptions([]models.DailyForecast{day})
	if len(disrupted) != 1 || len(disrupted[0].Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %+v", disrupted)
	}
	issue := disrupted[0].Issues[0]
	if issue.Type != models.IssueHeavyRain || issue.Severity != models.SeverityModerate {
		t.Fatalf("unexpected issue: %+v", issue)
	}

	// threshold is strictly greater than 70
	day.Precipitation = 70
	if got := DetectDisruptions([]models.DailyForecast{day}); len(got) != 0 {
		t.Fatal("precipitation of exactly 70 must not trigger")
	}
}

func TestDetectTemperatureExtremes(t *testing.T) {
	hot := calmDay(models.NewDate(2026, 7, 14))
	hot.Temp.Max = 39

	disrupted := DetectDisruptions([]models.DailyForecast{hot})
	if len(disrupted) != 1 {
		t.Fatal("expected heat disruption")
	}
	if disrupted[0].Issues[0].Type != models.IssueExtremeHeat || disrupted[0].Issues[0].Severity != models.SeverityHigh {
		t.Fatalf("unexpected issue: %+v", disrupted[0].Issues[0])
	}

	cold := calmDay(models.NewDate(2026, 7, 15))
	cold.Temp.Min = 4

	disrupted = DetectDisruptions([]models.DailyForecast{cold})
	if len(disrupted) != 1 || disrupted[0].Issues[0].Type != models.IssueCold {
		t.Fatalf("expected cold issue, got %+v", disrupted)
	}
}

func TestDetectStormAndWind(t *testing.T) {
	day := calmDay(models.NewDate(2026, 7, 14))
	day.Condition = "Thunderstorm"
	day.WindSpeed = 31

	disrupted := DetectDisruptions([]models.DailyForecast{day})
	if len(disrupted) != 1 || len(disrupted[0].Issues) != 2 {
		t.Fatalf("expected storm and wind issues on one day, got %+v", disrupted)
	}

	types := map[string]string{}
	for _, issue := range disrupted[0].Issues {
		types[issue.Type] = issue.Severity
	}
	if types[models.IssueStorm] != models.SeverityHigh {
		t.Fatal("storm must be high severity")
	}
	if types[models.IssueWind] != models.SeverityModerate {
		t.Fatal("wind must be moderate severity")
	}
}

func TestIndoorAlternativesGates(t *testing.T) {
	calm := calmDay(models.NewDate(2026, 7, 14))
	if got := SuggestIndoorAlternatives(calm); len(got) != 0 {
		t.Fatalf("calm day should yield no alternatives, got %d", len(got))
	}

	rainy := calm
	rainy.Precipitation = 61
	if got := SuggestIndoorAlternatives(rainy); len(got) != 3 {
		t.Fatalf("expected 3 indoor alternatives for rain, got %d", len(got))
	}

	stormy := calm
	stormy.Condition = "Thunderstorm"
	if got := SuggestIndoorAlternatives(stormy); len(got) != 3 {
		t.Fatalf("storms gate the indoor set regardless of precipitation, got %d", len(got))
	}

	scorching := calm
	scorching.Temp.Max = 36
	got := SuggestIndoorAlternatives(scorching)
	if len(got) != 2 {
		t.Fatalf("expected 2 heat alternatives, got %d", len(got))
	}
	if got[0].Type != "timing" {
		t.Fatalf("expected timing alternative first, got %q", got[0].Type)
	}
}

func TestReduceForecastBucketsByDay(t *testing.T) {
	// two readings on the 14th, one on the 15th (UTC)
	readings := []Reading{
		reading(1784016000, 18, 40, "Clouds"), // 2026-07-14 08:00 UTC
		reading(1784044800, 26, 80, "Rain"),   // 2026-07-14 16:00 UTC
		reading(1784102400, 22, 10, "Clear"),  // 2026-07-15 08:00 UTC
	}

	daily := ReduceForecast(readings)
	if len(daily) != 2 {
		t.Fatalf("expected 2 days, got %d", len(daily))
	}

	first := daily[0]
	if first.Temp.Min != 18 || first.Temp.Max != 26 || first.Temp.Avg != 22 {
		t.Fatalf("unexpected temps: %+v", first.Temp)
	}
	if first.Precipitation != 80 {
		t.Fatalf("expected max precipitation 80, got %d", first.Precipitation)
	}
	if first.Date.After(daily[1].Date) {
		t.Fatal("days must be in chronological order")
	}
}

func TestReduceForecastModalCondition(t *testing.T) {
	readings := []Reading{
		reading(1784016000, 20, 0, "Clouds"),
		reading(1784019600, 20, 0, "Rain"),
		reading(1784023200, 20, 0, "Rain"),
	}

	daily := ReduceForecast(readings)
	if len(daily) != 1 || daily[0].Condition != "Rain" {
		t.Fatalf("expected modal condition Rain, got %+v", daily)
	}

	// tie keeps the first encountered
	tied := []Reading{
		reading(1784016000, 20, 0, "Clouds"),
		reading(1784019600, 20, 0, "Rain"),
	}
	daily = ReduceForecast(tied)
	if daily[0].Condition != "Clouds" {
		t.Fatalf("tie must keep first label, got %q", daily[0].Condition)
	}
}

func TestSyntheticForecastShape(t *testing.T) {
	start := models.NewDate(2026, 7, 14)
	forecast := SyntheticForecast(start)

	if len(forecast) != 5 {
		t.Fatalf("expected 5 days, got %d", len(forecast))
	}
	for i, day := range forecast {
		if day.Date != start.AddDays(i) {
			t.Fatalf("day %d has date %v", i, day.Date)
		}
	}
	if forecast[2].Condition != "Rain" || forecast[2].Precipitation != 80 {
		t.Fatalf("third day should be rainy, got %+v", forecast[2])
	}
}

func reading(dt int64, temp float64, popPercent int, condition string) Reading {
	var r Reading
	r.Dt = dt
	r.Main.Temp = temp
	r.Pop = float64(popPercent) / 100
	r.Weather = []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{{Main: condition}}
	return r
}
