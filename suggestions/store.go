package suggestions

import (
	"context"
	"log"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"wayfare/db"
	"wayfare/models"
	"wayfare/utils"
)

// SaveBatch persists a run's suggestions. An empty batch is a no-op.
func SaveBatch(ctx context.Context, batch []models.Suggestion) error {
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, len(batch))
	for i := range batch {
		docs[i] = batch[i]
	}

	_, err := db.SuggestionsCollection.InsertMany(ctx, docs)
	if err != nil {
		log.Printf("Error saving suggestions: %v", err)
	}
	return err
}

// ListForItinerary fetches an itinerary's suggestions, optionally
// filtered by status, ordered by priority (high first) and score.
func ListForItinerary(ctx context.Context, itineraryID string, status string) ([]models.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"itineraryid": itineraryID}
	if status != "" {
		filter["status"] = status
	}

	list, err := utils.FindAndDecode[models.Suggestion](ctx, db.SuggestionsCollection, filter)
	if err != nil {
		return nil, err
	}

	// Priority labels do not sort lexicographically, so order in memory.
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Priority.Rank() != list[j].Priority.Rank() {
			return list[i].Priority.Rank() < list[j].Priority.Rank()
		}
		return list[i].Score > list[j].Score
	})
	return list, nil
}

// FindByID fetches one suggestion by its identifier.
func FindByID(ctx context.Context, suggestionID string) (*models.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Suggestion
	err := db.SuggestionsCollection.FindOne(ctx, bson.M{"suggestionid": suggestionID}).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update persists a resolved suggestion's status and user response.
func Update(ctx context.Context, s *models.Suggestion) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := db.SuggestionsCollection.UpdateOne(ctx,
		bson.M{"suggestionid": s.SuggestionID},
		bson.M{"$set": bson.M{
			"status":        s.Status,
			"user_response": s.UserResponse,
		}},
	)
	return err
}
