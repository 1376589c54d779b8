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
	UserCollection        *mongo.Collection
	CollectionsCollection *mongo.Collection
	RecipesCollection     *mongo.Collection
	MembershipsCollection *mongo.Collection
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
	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(3 * time.Second)
	Client, err = mongo.Connect(context.TODO(), opts)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("dishcovery")
	UserCollection = database.Collection("users")
	CollectionsCollection = database.Collection("collections")
	RecipesCollection = database.Collection("recipes")
	MembershipsCollection = database.Collection("collection_recipes")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	EnsureIndexes(ctx)
}

// EnsureIndexes creates the indexes the store semantics depend on: the unique
// (collection_id, recipe_id) join index makes duplicate adds fail fast so the
// store can treat them as idempotent successes.
func EnsureIndexes(ctx context.Context) {
	_, err := MembershipsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "collection_id", Value: 1}, {Key: "recipe_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Failed to create membership index: %v", err)
	}

	_, err = CollectionsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		log.Printf("Failed to create collections index: %v", err)
	}
}
