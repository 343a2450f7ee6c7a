package database

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultDatabaseName = "racetrack-licensing"

// Connect opens the process-wide MongoDB client. Callers own the client and
// must Disconnect it at shutdown; components receive the database handle by
// injection rather than through a package global.
func Connect(ctx context.Context) (*mongo.Client, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("MongoDB connected successfully")
	return client, nil
}

// DatabaseName returns the configured database name.
func DatabaseName() string {
	if name := os.Getenv("MONGO_DATABASE"); name != "" {
		return name
	}
	return defaultDatabaseName
}

// EnsureIndexes creates the forms collection indexes. Runs after migrations
// at every startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	forms := db.Collection("forms")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "formName", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "updatedAt", Value: 1}}},
	}

	_, err := forms.Indexes().CreateMany(ctx, indexes)
	return err
}
