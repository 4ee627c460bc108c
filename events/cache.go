package events

import (
	"context"
	"regexp"
	"time"

	"wayfare/db"
	"wayfare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CacheTTL bounds how stale a cached event batch may get.
const CacheTTL = 24 * time.Hour

// LookupCache returns a cached batch whose location matches
// case-insensitively, whose stored range fully covers the requested one,
// and whose TTL has not elapsed. Expired rows are filtered in the query
// itself so they can never resurface before the TTL index purges them.
func LookupCache(ctx context.Context, location string, start, end models.Date) (*models.EventCacheRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location":         primitive.Regex{Pattern: regexp.QuoteMeta(location), Options: "i"},
		"date_range.start": bson.M{"$lte": start},
		"date_range.end":   bson.M{"$gte": end},
		"expires_at":       bson.M{"$gt": time.Now()},
	}

	var record models.EventCacheRecord
	err := db.EventCacheCollection.FindOne(ctx, filter).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// StoreCache inserts a fresh batch. Misses never update in place; an
// overlapping stale record simply expires on its own.
func StoreCache(ctx context.Context, location string, radiusKm int, start, end models.Date, evs []models.CanonicalEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	record := models.EventCacheRecord{
		Location:     location,
		SearchRadius: radiusKm,
		DateRange:    models.CacheDateRange{Start: start, End: end},
		Events:       evs,
		CachedAt:     now,
		ExpiresAt:    now.Add(CacheTTL),
	}

	_, err := db.EventCacheCollection.InsertOne(ctx, record)
	return err
}

// FindCachedEvent scans cached batches for a single event by id.
func FindCachedEvent(ctx context.Context, eventID string) (*models.CanonicalEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"events.eventid": eventID,
		"expires_at":     bson.M{"$gt": time.Now()},
	}

	var record models.EventCacheRecord
	err := db.EventCacheCollection.FindOne(ctx, filter).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	for i := range record.Events {
		if record.Events[i].EventID == eventID {
			return &record.Events[i], nil
		}
	}
	return nil, nil
}
