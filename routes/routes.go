package routes

import (
	"wayfare/disruptions"
	"wayfare/events"
	"wayfare/export"
	"wayfare/itinerary"
	"wayfare/live"
	"wayfare/middleware"
	"wayfare/ratelim"
	"wayfare/suggestions"
	"wayfare/trips"
	"wayfare/weather"

	"github.com/julienschmidt/httprouter"
)

func AddItineraryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *itinerary.Handler) {
	router.POST("/api/itineraries", rl.Limit(middleware.Authenticate(h.CreateItinerary)))
	router.GET("/api/itineraries", rl.Limit(middleware.Authenticate(h.GetUserItineraries)))
	router.GET("/api/itineraries/:itineraryid", rl.Limit(middleware.OptionalAuth(h.GetItinerary)))
	router.DELETE("/api/itineraries/:itineraryid", rl.Limit(middleware.Authenticate(h.DeleteItinerary)))

	router.POST("/api/itineraries/analyze", rl.Limit(middleware.Authenticate(h.AnalyzeItinerary)))

	router.GET("/api/itineraries/:itineraryid/export", rl.Limit(middleware.OptionalAuth(export.ExportItineraryPDF)))
}

func AddSuggestionRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *suggestions.Handler) {
	router.GET("/api/itineraries/:itineraryid/suggestions", rl.Limit(middleware.OptionalAuth(h.GetSuggestions)))
	router.PATCH("/api/suggestions/:suggestionid/apply", rl.Limit(middleware.Authenticate(h.ApplySuggestion)))
	router.PATCH("/api/suggestions/:suggestionid/reject", rl.Limit(middleware.Authenticate(h.RejectSuggestion)))
}

func AddEventRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *events.Handler) {
	router.GET("/api/events/nearby", rl.Limit(h.GetNearbyEvents))
	router.GET("/api/events/category/:type", rl.Limit(h.GetEventsByCategory))
	router.GET("/api/events/event/:id", rl.Limit(h.GetEventDetails))
}

func AddWeatherRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *weather.Handler) {
	router.GET("/api/weather/forecast", rl.Limit(h.GetForecast))
	router.GET("/api/weather/disruptions", rl.Limit(h.GetWeatherDisruptions))
}

func AddDisruptionRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *disruptions.Handler) {
	router.GET("/api/disruptions", rl.Limit(h.GetDisruptions))
	router.GET("/api/disruptions/attractions/:name", rl.Limit(h.GetAttractionStatus))
	router.GET("/api/disruptions/safety", rl.Limit(h.GetSafetyAlerts))
}

func AddTripRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *trips.Handler) {
	router.POST("/api/trips/generate", rl.Limit(middleware.Authenticate(h.GenerateTrip)))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/itineraries/:itineraryid", live.WebSocketHandler(hub))
}
