package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wayfare/globals"
	"wayfare/live"
	"wayfare/rdx"
)

const suggestionChannel = "suggestion-events"

// SuggestionEvent announces that an analysis pass produced suggestions
// for an itinerary.
type SuggestionEvent struct {
	ItineraryID  string    `json:"itineraryid"`
	Total        int       `json:"total"`
	HighPriority int       `json:"high_priority"`
	EmittedAt    time.Time `json:"emitted_at"`
}

// Emit publishes a suggestion event to Redis. Failures are logged and
// swallowed; the analysis result is already persisted by the caller.
func Emit(ctx context.Context, event SuggestionEvent) {
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal suggestion event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, suggestionChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish suggestion event: %v", err)
	}
}

// StartSuggestionWorker relays published suggestion events to the live
// hub so websocket subscribers see analysis results as they land.
func StartSuggestionWorker(hub *live.Hub) {
	sub := rdx.Conn.Subscribe(globals.Ctx, suggestionChannel)
	ch := sub.Channel()

	log.Println("[SuggestionWorker] Listening for suggestion events...")

	for msg := range ch {
		var event SuggestionEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[SuggestionWorker] Failed to parse event: %v", err)
			continue
		}
		hub.Broadcast(event.ItineraryID, []byte(msg.Payload))
	}
}
