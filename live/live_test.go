package live

import (
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "i123",
	}

	hub.register <- client

	data := []byte(`{"itineraryid":"i123","total":2}`)
	hub.Broadcast("i123", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubRoomsAreIsolated(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 10), Room: "iA"}
	b := &Client{Send: make(chan []byte, 10), Room: "iB"}
	hub.register <- a
	hub.register <- b

	hub.Broadcast("iA", []byte("for A only"))

	select {
	case <-a.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for room A message")
	}

	select {
	case msg := <-b.Send:
		t.Fatalf("room B should not receive: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubStopClosesSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 10), Room: "i123"}
	hub.register <- client

	hub.Stop()

	select {
	case _, open := <-client.Send:
		if open {
			t.Fatal("expected closed channel after Stop")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}

	// Broadcast after Stop must not block
	done := make(chan struct{})
	go func() {
		hub.Broadcast("i123", []byte("late"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Broadcast blocked after Stop")
	}
}
