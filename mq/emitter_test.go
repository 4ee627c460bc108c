package mq

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"wayfare/rdx"
)

func TestEmitHonorsCallerContext(t *testing.T) {
	// Point at a blackhole address so only the cancelled context can
	// make the publish return before the dial timeout.
	prev := rdx.Conn
	rdx.Conn = redis.NewClient(&redis.Options{Addr: "203.0.113.1:6379"})
	t.Cleanup(func() { rdx.Conn = prev })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Emit(ctx, SuggestionEvent{ItineraryID: "i1", Total: 2, HighPriority: 1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish did not observe the cancelled context")
	}
}
