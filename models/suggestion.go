package models

import "time"

type SuggestionType string

const (
	SuggestionEvent      SuggestionType = "event"
	SuggestionWeather    SuggestionType = "weather"
	SuggestionDisruption SuggestionType = "disruption"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for sorting: high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

type SuggestionStatus string

const (
	StatusPending  SuggestionStatus = "pending"
	StatusAccepted SuggestionStatus = "accepted"
	StatusRejected SuggestionStatus = "rejected"
	StatusModified SuggestionStatus = "modified"
)

// EventChange proposes adding an event to a day's schedule.
type EventChange struct {
	Time     TimeBucket `json:"time" bson:"time"`
	Activity string     `json:"activity" bson:"activity"`
	Location string     `json:"location" bson:"location"`
}

// WeatherChange proposes swapping outdoor plans for alternatives.
type WeatherChange struct {
	Alternatives []Alternative `json:"alternatives" bson:"alternatives"`
}

// DisruptionChange carries the mitigation for an external disruption.
type DisruptionChange struct {
	Mitigation string `json:"mitigation" bson:"mitigation"`
}

// SuggestionChanges is a tagged union: exactly one of Event, Weather or
// Disruption is set, keyed by the suggestion's Type.
type SuggestionChanges struct {
	Original   []Activity        `json:"original,omitempty" bson:"original,omitempty"`
	Event      *EventChange      `json:"event,omitempty" bson:"event,omitempty"`
	Weather    *WeatherChange    `json:"weather,omitempty" bson:"weather,omitempty"`
	Disruption *DisruptionChange `json:"disruption,omitempty" bson:"disruption,omitempty"`
	Reasoning  string            `json:"reasoning" bson:"reasoning"`
}

// EventContext is the per-type context attached to event suggestions.
type EventContext struct {
	EventID  string    `json:"eventid" bson:"eventid"`
	Name     string    `json:"name" bson:"name"`
	Date     time.Time `json:"date" bson:"date"`
	Location string    `json:"location" bson:"location"`
	Category string    `json:"category" bson:"category"`
	URL      string    `json:"url,omitempty" bson:"url,omitempty"`
	IsFree   bool      `json:"is_free" bson:"is_free"`
}

type DisruptionContext struct {
	Type     string `json:"type" bson:"type"`
	Severity string `json:"severity" bson:"severity"`
}

// UserResponse records how the traveler answered a suggestion.
type UserResponse struct {
	Action       string     `json:"action" bson:"action"`
	ModifiedPlan []Activity `json:"modified_plan,omitempty" bson:"modified_plan,omitempty"`
	Feedback     string     `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Timestamp    time.Time  `json:"timestamp" bson:"timestamp"`
}

// Suggestion is a proposed itinerary change produced by one analysis pass.
type Suggestion struct {
	SuggestionID string         `json:"suggestionid" bson:"suggestionid"`
	ItineraryID  string         `json:"itineraryid" bson:"itineraryid"`
	Day          int            `json:"day" bson:"day"`
	Type         SuggestionType `json:"suggestion_type" bson:"suggestion_type"`
	Priority     Priority       `json:"priority" bson:"priority"`
	Title        string         `json:"title" bson:"title"`
	Description  string         `json:"description" bson:"description"`

	Changes SuggestionChanges `json:"changes" bson:"changes"`

	EventDetails      *EventContext      `json:"event_details,omitempty" bson:"event_details,omitempty"`
	WeatherContext    *DailyForecast     `json:"weather_context,omitempty" bson:"weather_context,omitempty"`
	DisruptionContext *DisruptionContext `json:"disruption_context,omitempty" bson:"disruption_context,omitempty"`

	Score  int              `json:"score" bson:"score"` // 0-100, ordering only
	Status SuggestionStatus `json:"status" bson:"status"`

	UserResponse *UserResponse `json:"user_response,omitempty" bson:"user_response,omitempty"`

	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (s *Suggestion) IsPending() bool {
	return s.Status == StatusPending
}

func (s *Suggestion) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
