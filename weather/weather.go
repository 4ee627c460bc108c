package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"wayfare/models"
	"wayfare/rdx"
)

const (
	defaultBaseURL  = "https://api.openweathermap.org"
	providerTimeout = 10 * time.Second

	// forecastCacheTTL bounds the Redis memoization of reduced forecasts.
	forecastCacheTTL = 3 * time.Hour
)

// Service fetches and reduces multi-day forecasts. Provider failures and
// missing credentials degrade to the synthetic dataset.
type Service struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewService() *Service {
	return &Service{
		apiKey:  os.Getenv("OPENWEATHER_API_KEY"),
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: providerTimeout},
	}
}

// Forecast returns one DailyForecast per calendar day for the location.
// Reduced forecasts are memoized in Redis so repeated analysis passes for
// the same trip do not hammer the provider.
func (s *Service) Forecast(ctx context.Context, location string, start, end models.Date) ([]models.DailyForecast, error) {
	cacheKey := fmt.Sprintf("forecast:%s:%s:%s", location, start, end)

	var cached []models.DailyForecast
	if hit, err := rdx.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	forecast := s.fetchLive(ctx, location, start, end)

	if err := rdx.SetJSON(ctx, cacheKey, forecast, forecastCacheTTL); err != nil {
		log.Printf("Forecast cache store error: %v", err)
	}
	return forecast, nil
}

func (s *Service) fetchLive(ctx context.Context, location string, start, end models.Date) []models.DailyForecast {
	if s.apiKey == "" || s.apiKey == "your_openweather_api_key" {
		log.Println("No OpenWeather API key, returning synthetic forecast")
		return SyntheticForecast(start)
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	lat, lon := s.geocode(ctx, location)

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/data/2.5/forecast?"+params.Encode(), nil)
	if err != nil {
		log.Printf("Error building forecast request: %v", err)
		return SyntheticForecast(start)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Weather API error: %v", err)
		return SyntheticForecast(start)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather provider returned status %d", resp.StatusCode)
		return SyntheticForecast(start)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error decoding forecast response: %v", err)
		return SyntheticForecast(start)
	}

	return ReduceForecast(payload.List)
}

// geocode resolves a location name to coordinates, best-effort: any
// failure substitutes (0,0) rather than failing the forecast call.
func (s *Service) geocode(ctx context.Context, location string) (float64, float64) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("limit", "1")
	params.Set("appid", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/geo/1.0/direct?"+params.Encode(), nil)
	if err != nil {
		return 0, 0
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Geocoding error for %q: %v", location, err)
		return 0, 0
	}
	defer resp.Body.Close()

	var results []geoResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return 0, 0
	}
	return results[0].Lat, results[0].Lon
}

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type forecastResponse struct {
	List []Reading `json:"list"`
}

// Reading is one sub-daily forecast entry from the provider.
type Reading struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Pop float64 `json:"pop"` // precipitation probability, 0-1
}

// ReduceForecast buckets raw readings by calendar date and collapses each
// bucket into one DailyForecast: min/max/avg temperature, the modal
// condition (ties keep the first encountered), the day's max precipitation
// probability, and the first reading's wind/humidity/description.
func ReduceForecast(readings []Reading) []models.DailyForecast {
	byDay := make(map[models.Date][]Reading)
	var order []models.Date

	for _, item := range readings {
		day := models.DateOf(time.Unix(item.Dt, 0).UTC())
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] = append(byDay[day], item)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	daily := make([]models.DailyForecast, 0, len(order))
	for _, day := range order {
		bucket := byDay[day]

		minTemp, maxTemp, sum := math.MaxFloat64, -math.MaxFloat64, 0.0
		maxPop := 0.0
		conditions := make([]string, 0, len(bucket))
		for _, item := range bucket {
			t := item.Main.Temp
			if t < minTemp {
				minTemp = t
			}
			if t > maxTemp {
				maxTemp = t
			}
			sum += t
			if item.Pop > maxPop {
				maxPop = item.Pop
			}
			if len(item.Weather) > 0 {
				conditions = append(conditions, item.Weather[0].Main)
			}
		}

		first := bucket[0]
		df := models.DailyForecast{
			Date: day,
			Temp: models.TempRange{
				Min: int(math.Round(minTemp)),
				Max: int(math.Round(maxTemp)),
				Avg: int(math.Round(sum / float64(len(bucket)))),
			},
			Condition:     mostCommonCondition(conditions),
			Precipitation: int(math.Round(maxPop * 100)),
			WindSpeed:     int(math.Round(first.Wind.Speed)),
			Humidity:      first.Main.Humidity,
		}
		if len(first.Weather) > 0 {
			df.Description = first.Weather[0].Description
			df.Icon = first.Weather[0].Icon
		}
		daily = append(daily, df)
	}
	return daily
}

// mostCommonCondition picks the modal label; ties break toward the label
// encountered first.
func mostCommonCondition(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}

	counts := make(map[string]int, len(conditions))
	for _, c := range conditions {
		counts[c]++
	}

	best := conditions[0]
	for _, c := range conditions {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// SyntheticForecast is the deterministic five-day fallback, with the
// third day flagged rainy.
func SyntheticForecast(start models.Date) []models.DailyForecast {
	forecasts := make([]models.DailyForecast, 0, 5)

	for i := 0; i < 5; i++ {
		df := models.DailyForecast{
			Date:          start.AddDays(i),
			Temp:          models.TempRange{Min: 18, Max: 27, Avg: 22},
			Condition:     "Clear",
			Precipitation: 10,
			Description:   "clear sky",
			Icon:          "01d",
			WindSpeed:     12,
			Humidity:      65,
		}
		if i == 2 {
			df.Condition = "Rain"
			df.Precipitation = 80
			df.Description = "moderate rain"
			df.Icon = "10d"
		}
		forecasts = append(forecasts, df)
	}
	return forecasts
}
