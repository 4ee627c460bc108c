package events

import (
	"context"
	"testing"

	"wayfare/models"
)

func swapCacheFuncs(t *testing.T, lookup func(context.Context, string, models.Date, models.Date) (*models.EventCacheRecord, error), store func(context.Context, string, int, models.Date, models.Date, []models.CanonicalEvent) error) {
	t.Helper()
	origLookup, origStore := lookupCache, storeCache
	lookupCache, storeCache = lookup, store
	t.Cleanup(func() { lookupCache, storeCache = origLookup, origStore })
}

func TestNearbyEventsCacheHitSkipsProviderAndStore(t *testing.T) {
	start := models.NewDate(2026, 7, 14)
	end := models.NewDate(2026, 7, 16)
	cached := &models.EventCacheRecord{
		Events: []models.CanonicalEvent{{EventID: "c1", Name: "Cached Gig"}},
	}

	stored := false
	swapCacheFuncs(t,
		func(ctx context.Context, loc string, s, e models.Date) (*models.EventCacheRecord, error) {
			return cached, nil
		},
		func(ctx context.Context, loc string, radius int, s, e models.Date, evs []models.CanonicalEvent) error {
			stored = true
			return nil
		},
	)

	svc := &Service{}
	evs, source, err := svc.NearbyEventsWithSource(context.Background(), "Paris", start, end, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceCache {
		t.Fatalf("expected source %q, got %q", SourceCache, source)
	}
	if len(evs) != 1 || evs[0].EventID != "c1" {
		t.Fatalf("expected the cached batch, got %+v", evs)
	}
	if stored {
		t.Fatal("a cache hit must not write a new batch")
	}
}

func TestNearbyEventsMissFetchesAndStores(t *testing.T) {
	start := models.NewDate(2026, 7, 14)
	end := models.NewDate(2026, 7, 16)

	var storedBatch []models.CanonicalEvent
	swapCacheFuncs(t,
		func(ctx context.Context, loc string, s, e models.Date) (*models.EventCacheRecord, error) {
			return nil, nil
		},
		func(ctx context.Context, loc string, radius int, s, e models.Date, evs []models.CanonicalEvent) error {
			storedBatch = evs
			return nil
		},
	)

	// no provider token, so the miss path yields the synthetic dataset
	svc := &Service{}
	evs, source, err := svc.NearbyEventsWithSource(context.Background(), "Paris", start, end, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceAPI {
		t.Fatalf("expected source %q, got %q", SourceAPI, source)
	}
	if len(evs) != 3 {
		t.Fatalf("expected the synthetic dataset, got %d events", len(evs))
	}
	if len(storedBatch) != 3 {
		t.Fatal("every miss must store the fetched batch")
	}
}
