package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ItineraryCollection   *mongo.Collection
	SuggestionsCollection *mongo.Collection
	EventCacheCollection  *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := os.Getenv("MONGODB_DB")
	if database == "" {
		database = "tripdb"
	}

	ItineraryCollection = Client.Database(database).Collection("itineraries")
	SuggestionsCollection = Client.Database(database).Collection("suggestions")
	EventCacheCollection = Client.Database(database).Collection("eventcache")
}

// EnsureIndexes creates the TTL and query indexes the engine relies on.
// TTL indexes make expired cache rows and suggestions unreadable without
// manual deletion.
func EnsureIndexes(ctx context.Context) error {
	zero := int32(0)

	_, err := EventCacheCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: &options.IndexOptions{ExpireAfterSeconds: &zero},
		},
		{
			Keys: bson.D{
				{Key: "location", Value: 1},
				{Key: "date_range.start", Value: 1},
				{Key: "date_range.end", Value: 1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = SuggestionsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: &options.IndexOptions{ExpireAfterSeconds: &zero},
		},
		{
			Keys: bson.D{
				{Key: "itineraryid", Value: 1},
				{Key: "status", Value: 1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = ItineraryCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "itineraryid", Value: 1}},
	})
	return err
}

// Disconnect closes the Mongo client during shutdown.
func Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("Mongo disconnect error: %v", err)
	}
}
