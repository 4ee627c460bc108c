package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"wayfare/models"
)

const (
	defaultBaseURL = "https://www.eventbriteapi.com/v3"
	providerTimeout = 10 * time.Second

	// DefaultRadiusKm bounds the nearby-event search.
	DefaultRadiusKm = 25
)

// Service fetches events from the live provider and falls back to the
// synthetic dataset when the provider is unavailable. Construct one at
// process start and inject it wherever events are needed.
type Service struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewService() *Service {
	return &Service{
		token:   os.Getenv("EVENTBRITE_API_KEY"),
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: providerTimeout},
	}
}

// Batch provenance reported by NearbyEventsWithSource.
const (
	SourceCache = "cache"
	SourceAPI   = "api"
)

// Indirection points for the cache, swapped out in tests.
var (
	lookupCache = LookupCache
	storeCache  = StoreCache
)

// NearbyEvents returns events near a location during the date range,
// consulting the cache before the provider. A provider failure degrades
// to the synthetic dataset rather than failing the call.
func (s *Service) NearbyEvents(ctx context.Context, location string, start, end models.Date, radiusKm int) ([]models.CanonicalEvent, error) {
	evs, _, err := s.NearbyEventsWithSource(ctx, location, start, end, radiusKm)
	return evs, err
}

// NearbyEventsWithSource is NearbyEvents plus the batch's provenance, so
// handlers can report where the data came from without a second cache
// lookup.
func (s *Service) NearbyEventsWithSource(ctx context.Context, location string, start, end models.Date, radiusKm int) ([]models.CanonicalEvent, string, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	if cached, err := lookupCache(ctx, location, start, end); err != nil {
		log.Printf("Event cache lookup error: %v", err)
	} else if cached != nil {
		return cached.Events, SourceCache, nil
	}

	evs := s.fetchLive(ctx, location, start, end, radiusKm)

	if err := storeCache(ctx, location, radiusKm, start, end, evs); err != nil {
		log.Printf("Event cache store error: %v", err)
	}
	return evs, SourceAPI, nil
}

// EventsByType filters the nearby-event list by category; "all" or empty
// returns everything.
func (s *Service) EventsByType(ctx context.Context, location, eventType string, start, end models.Date) ([]models.CanonicalEvent, error) {
	all, err := s.NearbyEvents(ctx, location, start, end, DefaultRadiusKm)
	if err != nil {
		return nil, err
	}
	if eventType == "" || eventType == "all" {
		return all, nil
	}

	filtered := []models.CanonicalEvent{}
	for _, ev := range all {
		if strings.EqualFold(ev.Category, eventType) {
			filtered = append(filtered, ev)
		}
	}
	return filtered, nil
}

func (s *Service) fetchLive(ctx context.Context, location string, start, end models.Date, radiusKm int) []models.CanonicalEvent {
	if s.token == "" || s.token == "your_eventbrite_api_key" {
		log.Println("No Eventbrite API key found, using synthetic events")
		return SyntheticEvents(location, start, end)
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("location.address", location)
	params.Set("location.within", strconv.Itoa(radiusKm)+"km")
	params.Set("start_date.range_start", start.Time().Format(time.RFC3339))
	params.Set("start_date.range_end", end.AddDays(1).Time().Format(time.RFC3339))
	params.Set("expand", "venue,category")
	params.Set("sort_by", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/events/search/?"+params.Encode(), nil)
	if err != nil {
		log.Printf("Error building event request: %v", err)
		return SyntheticEvents(location, start, end)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		return SyntheticEvents(location, start, end)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Event provider returned status %d", resp.StatusCode)
		return SyntheticEvents(location, start, end)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error decoding event response: %v", err)
		return SyntheticEvents(location, start, end)
	}

	evs := make([]models.CanonicalEvent, 0, len(payload.Events))
	for _, raw := range payload.Events {
		evs = append(evs, transformEvent(raw))
	}
	return evs
}

// searchResponse mirrors the slice of the provider payload we consume.
type searchResponse struct {
	Events []providerEvent `json:"events"`
}

type providerEvent struct {
	ID   string `json:"id"`
	Name struct {
		Text string `json:"text"`
	} `json:"name"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	Category struct {
		Name string `json:"name"`
	} `json:"category"`
	Start struct {
		Local string `json:"local"`
	} `json:"start"`
	End struct {
		Local string `json:"local"`
	} `json:"end"`
	Venue struct {
		Name    string `json:"name"`
		Address struct {
			Display string `json:"localized_address_display"`
		} `json:"address"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"venue"`
	URL    string `json:"url"`
	IsFree bool   `json:"is_free"`
}

const providerTimeLayout = "2006-01-02T15:04:05"

func transformEvent(raw providerEvent) models.CanonicalEvent {
	startAt, _ := time.Parse(providerTimeLayout, raw.Start.Local)
	endAt, _ := time.Parse(providerTimeLayout, raw.End.Local)

	lat, _ := strconv.ParseFloat(raw.Venue.Latitude, 64)
	lng, _ := strconv.ParseFloat(raw.Venue.Longitude, 64)

	venueName := raw.Venue.Name
	if venueName == "" {
		venueName = "TBA"
	}

	return models.CanonicalEvent{
		EventID:     raw.ID,
		Name:        raw.Name.Text,
		Description: raw.Description.Text,
		Category:    Categorize(raw.Category.Name),
		Date:        startAt,
		EndDate:     endAt,
		Venue: models.Venue{
			Name:    venueName,
			Address: raw.Venue.Address.Display,
			Coords:  models.Coordinates{Lat: lat, Lng: lng},
		},
		URL:    raw.URL,
		IsFree: raw.IsFree,
		Source: models.SourceLiveProvider,
	}
}

