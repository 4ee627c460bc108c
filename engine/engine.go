package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wayfare/models"
	"wayfare/utils"
)

// EventSource supplies events near a destination over a date range.
type EventSource interface {
	NearbyEvents(ctx context.Context, location string, start, end models.Date, radiusKm int) ([]models.CanonicalEvent, error)
}

// ForecastSource supplies a reduced daily forecast for a destination.
type ForecastSource interface {
	Forecast(ctx context.Context, location string, start, end models.Date) ([]models.DailyForecast, error)
}

// DisruptionSource supplies transport and closure disruptions.
type DisruptionSource interface {
	CurrentDisruptions(ctx context.Context, destination string, start, end models.Date) ([]models.DisruptionRecord, error)
}

// Engine runs the analysis pass for an itinerary: fetch all three sources
// concurrently, generate suggestions, rank them.
type Engine struct {
	events      EventSource
	weather     ForecastSource
	disruptions DisruptionSource
}

func New(events EventSource, weather ForecastSource, disruptions DisruptionSource) *Engine {
	return &Engine{events: events, weather: weather, disruptions: disruptions}
}

// Analysis is the full result of one engine pass.
type Analysis struct {
	Suggestions []models.Suggestion       `json:"suggestions"`
	Summary     Summary                   `json:"summary"`
	Events      []models.CanonicalEvent   `json:"events"`
	Forecast    []models.DailyForecast    `json:"forecast"`
	Disruptions []models.DisruptionRecord `json:"disruptions"`
}

type Summary struct {
	TotalSuggestions int `json:"total_suggestions"`
	HighPriority     int `json:"high_priority"`
	EventsFound      int `json:"events_found"`
	WeatherAlerts    int `json:"weather_alerts"`
	Disruptions      int `json:"disruptions"`
}

// Analyze fans out to the three sources, joins their results, and builds
// the ranked suggestion list. Any source failure fails the whole pass;
// partial results are never returned.
func (e *Engine) Analyze(ctx context.Context, it *models.Itinerary) (*Analysis, error) {
	var (
		wg sync.WaitGroup

		events    []models.CanonicalEvent
		eventsErr error

		forecast    []models.DailyForecast
		forecastErr error

		records    []models.DisruptionRecord
		recordsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		events, eventsErr = e.events.NearbyEvents(ctx, it.Destination, it.StartDate, it.EndDate, 0)
	}()
	go func() {
		defer wg.Done()
		forecast, forecastErr = e.weather.Forecast(ctx, it.Destination, it.StartDate, it.EndDate)
	}()
	go func() {
		defer wg.Done()
		records, recordsErr = e.disruptions.CurrentDisruptions(ctx, it.Destination, it.StartDate, it.EndDate)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range []error{eventsErr, forecastErr, recordsErr} {
		if err != nil {
			return nil, fmt.Errorf("itinerary analysis failed: %w", err)
		}
	}

	var suggestions []models.Suggestion
	suggestions = append(suggestions, GenerateEventSuggestions(it, events)...)
	suggestions = append(suggestions, GenerateWeatherSuggestions(it, forecast)...)
	suggestions = append(suggestions, GenerateDisruptionSuggestions(it, records)...)

	Rank(suggestions)

	now := time.Now()
	// Suggestions expire with the trip; the extra day covers responses
	// sent during the final evening, since EndDate marks its midnight.
	expiry := it.EndDate.Time().Add(24 * time.Hour)
	high := 0
	for i := range suggestions {
		suggestions[i].SuggestionID = utils.GetUUID()
		suggestions[i].ItineraryID = it.ItineraryID
		suggestions[i].Status = models.StatusPending
		suggestions[i].CreatedAt = now
		suggestions[i].ExpiresAt = expiry
		if suggestions[i].Priority == models.PriorityHigh {
			high++
		}
	}

	alerts := 0
	for _, s := range suggestions {
		if s.Type == models.SuggestionWeather {
			alerts++
		}
	}

	return &Analysis{
		Suggestions: suggestions,
		Summary: Summary{
			TotalSuggestions: len(suggestions),
			HighPriority:     high,
			EventsFound:      len(events),
			WeatherAlerts:    alerts,
			Disruptions:      len(records),
		},
		Events:      events,
		Forecast:    forecast,
		Disruptions: records,
	}, nil
}
