package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare/db"
	"wayfare/disruptions"
	"wayfare/engine"
	"wayfare/events"
	"wayfare/itinerary"
	"wayfare/live"
	"wayfare/mq"
	"wayfare/ratelim"
	"wayfare/routes"
	"wayfare/suggestions"
	"wayfare/trips"
	"wayfare/weather"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		// Referrer and permissions
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		// Prevent caching
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// setupRouter builds the router. Live routes are added in main so the hub
// is not passed around globally.
func setupRouter(rateLimiter *ratelim.RateLimiter, eng *engine.Engine, eventSvc *events.Service, weatherSvc *weather.Service, disruptionSvc *disruptions.Service) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddItineraryRoutes(router, rateLimiter, itinerary.NewHandler(eng))
	routes.AddSuggestionRoutes(router, rateLimiter, suggestions.NewHandler())
	routes.AddEventRoutes(router, rateLimiter, events.NewHandler(eventSvc))
	routes.AddWeatherRoutes(router, rateLimiter, weather.NewHandler(weatherSvc))
	routes.AddDisruptionRoutes(router, rateLimiter, disruptions.NewHandler(disruptionSvc))
	routes.AddTripRoutes(router, rateLimiter, trips.NewHandler(trips.NewGenerator()))

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":4000"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Printf("Index creation failed: %v", err)
	}
	cancel()

	// initialize rate limiter
	rateLimiter := ratelim.NewRateLimiter()

	// initialize live hub and the Redis relay feeding it
	hub := live.NewHub()
	go hub.Run()
	go mq.StartSuggestionWorker(hub)

	eventSvc := events.NewService()
	weatherSvc := weather.NewService()
	disruptionSvc := disruptions.NewService(0)
	eng := engine.New(eventSvc, weatherSvc, disruptionSvc)

	// build router and add live routes with hub
	router := setupRouter(rateLimiter, eng, eventSvc, weatherSvc, disruptionSvc)
	routes.AddLiveRoutes(router, hub)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	// create HTTP server
	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// on shutdown: stop live hub, close DB connections
	server.RegisterOnShutdown(func() {
		log.Println("Shutting down live hub...")
		hub.Stop()
		db.Disconnect()
	})

	// start server
	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	// initiate graceful shutdown
	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
