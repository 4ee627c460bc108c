package models

import "time"

// Disruption record types.
const (
	DisruptionTransport = "public_transport"
	DisruptionClosure   = "closure"
)

type DisruptionRecord struct {
	Type          string `json:"type" bson:"type"`
	Title         string `json:"title" bson:"title"`
	Description   string `json:"description" bson:"description"`
	Severity      string `json:"severity" bson:"severity"` // low/moderate/high
	AffectedDates []Date `json:"affected_dates" bson:"affected_dates"`
	Mitigation    string `json:"mitigation" bson:"mitigation"`
}

// SeverityPolicy is the action policy derived from a disruption's severity.
type SeverityPolicy struct {
	Priority          int  `json:"priority"` // 1 most urgent, 3 least
	RequiresAction    bool `json:"requires_action"`
	SuggestReplanning bool `json:"suggest_replanning"`
}

type AttractionStatus struct {
	Name        string    `json:"name"`
	Status      string    `json:"status"` // open/closed/limited
	LastChecked time.Time `json:"last_checked"`
	Notes       string    `json:"notes,omitempty"`
}

type AlternativeAttraction struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Reason   string  `json:"reason"`
	Distance string  `json:"distance"`
	Rating   float64 `json:"rating"`
}

type SafetyAlert struct {
	Level       string    `json:"level"`
	Category    string    `json:"category"`
	Message     string    `json:"message"`
	LastUpdated time.Time `json:"last_updated"`
}
