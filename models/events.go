package models

import (
	"strings"
	"time"
)

// Event categories form a fixed taxonomy; provider category names are
// collapsed into one of these.
const (
	CategoryMusic     = "music"
	CategoryFood      = "food"
	CategoryCultural  = "cultural"
	CategoryFestival  = "festival"
	CategorySports    = "sports"
	CategoryBusiness  = "business"
	CategoryCommunity = "community"
	CategoryOther     = "other"
)

// Provenance tags for event records.
const (
	SourceLiveProvider = "live-provider"
	SourceSynthetic    = "synthetic"
)

type Venue struct {
	Name    string      `json:"name" bson:"name"`
	Address string      `json:"address" bson:"address"`
	Coords  Coordinates `json:"coordinates" bson:"coordinates"`
}

// CanonicalEvent is the provider-agnostic normalized event record.
type CanonicalEvent struct {
	EventID     string    `json:"eventid" bson:"eventid"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Date        time.Time `json:"date" bson:"date"`
	EndDate     time.Time `json:"end_date" bson:"end_date"`
	Venue       Venue     `json:"location" bson:"location"`
	URL         string    `json:"url" bson:"url"`
	IsFree      bool      `json:"is_free" bson:"is_free"`
	Source      string    `json:"source" bson:"source"`

	// Recomputed per itinerary; never a fixed attribute of the event.
	RelevanceScore int `json:"relevance_score" bson:"relevance_score"`
}

type CacheDateRange struct {
	Start Date `json:"start" bson:"start"`
	End   Date `json:"end" bson:"end"`
}

// EventCacheRecord is one cached batch of events for a location and date
// range. Records are append-only; overlapping stale batches expire on
// their own rather than being updated in place.
type EventCacheRecord struct {
	Location     string           `json:"location" bson:"location"`
	SearchRadius int              `json:"search_radius" bson:"search_radius"`
	DateRange    CacheDateRange   `json:"date_range" bson:"date_range"`
	Events       []CanonicalEvent `json:"events" bson:"events"`
	CachedAt     time.Time        `json:"cached_at" bson:"cached_at"`
	ExpiresAt    time.Time        `json:"expires_at" bson:"expires_at"`
}

// Covers reports whether this record can answer a lookup: location matches
// case-insensitively (substring-tolerant), the stored range fully covers
// the requested one, and the TTL has not elapsed.
func (r *EventCacheRecord) Covers(location string, start, end Date, now time.Time) bool {
	if !strings.Contains(strings.ToLower(r.Location), strings.ToLower(location)) {
		return false
	}
	if r.DateRange.Start.After(start) || r.DateRange.End.Before(end) {
		return false
	}
	return r.ExpiresAt.After(now)
}
