package models

import (
	"fmt"
	"time"
)

// Time-of-day buckets used by the day schedule.
type TimeBucket string

const (
	Morning   TimeBucket = "morning"
	Afternoon TimeBucket = "afternoon"
	Evening   TimeBucket = "evening"
)

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Itinerary represents the travel itinerary
type Itinerary struct {
	ItineraryID   string   `json:"itineraryid" bson:"itineraryid,omitempty"`
	UserID        string   `json:"user_id" bson:"user_id"`
	Destination   string   `json:"destination" bson:"destination"`
	StartDate     Date     `json:"start_date" bson:"start_date"`
	EndDate       Date     `json:"end_date" bson:"end_date"`
	Travelers     int      `json:"travelers" bson:"travelers"`
	Budget        string   `json:"budget" bson:"budget"` // budget/moderate/luxury
	Accommodation string   `json:"accommodation" bson:"accommodation"`
	Interests     []string `json:"interests" bson:"interests"`

	// the day-by-day schedule
	Days []DaySchedule `json:"days" bson:"days"`

	// Suggestion ids that were applied to this itinerary
	AppliedSuggestions []string `json:"applied_suggestions" bson:"applied_suggestions"`

	DynamicMonitoring bool   `json:"dynamic_monitoring" bson:"dynamic_monitoring"`
	OriginalPlan      string `json:"original_plan,omitempty" bson:"original_plan,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	Deleted   bool      `json:"-" bson:"deleted,omitempty"` // Internal use only
}

type DaySchedule struct {
	Day        int        `json:"day" bson:"day"` // 1-based, contiguous
	Date       Date       `json:"date" bson:"date"`
	Activities []Activity `json:"activities" bson:"activities"`

	// display flags set when suggestions are applied
	EventEnhanced bool `json:"event_enhanced" bson:"event_enhanced"`
	WeatherAlert  bool `json:"weather_alert" bson:"weather_alert"`
}

type Activity struct {
	Time     TimeBucket   `json:"time" bson:"time"`
	Name     string       `json:"activity" bson:"activity"`
	Location string       `json:"location" bson:"location"`
	Coords   *Coordinates `json:"coords,omitempty" bson:"coords,omitempty"`
	Category string       `json:"type" bson:"type"` // sightseeing/dining/event/...
	Notes    string       `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Validate checks the fields required before any analysis can run.
func (it *Itinerary) Validate() error {
	if it.Destination == "" {
		return fmt.Errorf("missing required field: destination")
	}
	if it.StartDate.IsZero() {
		return fmt.Errorf("missing required field: start_date")
	}
	if it.EndDate.IsZero() {
		return fmt.Errorf("missing required field: end_date")
	}
	if it.EndDate.Before(it.StartDate) {
		return fmt.Errorf("end_date precedes start_date")
	}
	return nil
}

// DayByDate returns the schedule entry for the given calendar date, or nil.
func (it *Itinerary) DayByDate(d Date) *DaySchedule {
	for i := range it.Days {
		if it.Days[i].Date == d {
			return &it.Days[i]
		}
	}
	return nil
}

// DayByIndex returns the schedule entry with the given 1-based day number, or nil.
func (it *Itinerary) DayByIndex(day int) *DaySchedule {
	for i := range it.Days {
		if it.Days[i].Day == day {
			return &it.Days[i]
		}
	}
	return nil
}

// Duration is the trip length in days, inclusive of both endpoints.
func (it *Itinerary) Duration() int {
	return it.StartDate.DaysUntil(it.EndDate) + 1
}

func (it *Itinerary) IsActive(now time.Time) bool {
	today := DateOf(now)
	return !today.Before(it.StartDate) && !today.After(it.EndDate)
}

func (it *Itinerary) IsUpcoming(now time.Time) bool {
	return DateOf(now).Before(it.StartDate)
}
