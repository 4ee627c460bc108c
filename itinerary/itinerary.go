package itinerary

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wayfare/db"
	"wayfare/models"
	"wayfare/utils"
)

// Create inserts a new itinerary with a fresh identifier and timestamps.
func Create(ctx context.Context, it *models.Itinerary) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	it.ItineraryID = "i" + utils.GenerateRandomString(12)
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	if it.AppliedSuggestions == nil {
		it.AppliedSuggestions = []string{}
	}

	_, err := db.ItineraryCollection.InsertOne(ctx, it)
	return err
}

// FindByID fetches one itinerary, skipping soft-deleted records.
func FindByID(ctx context.Context, itineraryID string) (*models.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{
		"itineraryid": itineraryID,
		"deleted":     bson.M{"$ne": true},
	}).Decode(&it)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListForUser fetches a page of a user's itineraries, newest first.
func ListForUser(ctx context.Context, userID string, opts utils.QueryOptions) ([]models.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"deleted": bson.M{"$ne": true},
	}
	if opts.Search != "" {
		filter["destination"] = bson.M{"$regex": opts.Search, "$options": "i"}
	}

	findOpts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	return utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter, findOpts)
}

// SoftDelete marks an itinerary deleted without removing its record.
func SoftDelete(ctx context.Context, itineraryID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := db.ItineraryCollection.UpdateOne(ctx,
		bson.M{"itineraryid": itineraryID},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
