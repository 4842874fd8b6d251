package repositories

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syedsartaj/travel-adventure/config"
	"github.com/syedsartaj/travel-adventure/db"
)

// testDatabase connects to the configured Mongo instance, or skips the test
// when no connection string is available.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	if config.MongoURI() == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}
	if err := db.Init(context.Background()); err != nil {
		t.Fatalf("failed to initialize MongoDB: %v", err)
	}
	return db.Database()
}

func cleanupBySlug(t *testing.T, d *mongo.Database, collection, slug string) {
	t.Helper()
	t.Cleanup(func() {
		d.Collection(collection).DeleteMany(context.Background(), bson.M{"slug": slug})
	})
}

func cleanupByEmail(t *testing.T, d *mongo.Database, email string) {
	t.Helper()
	t.Cleanup(func() {
		d.Collection("newsletter_subscribers").DeleteMany(context.Background(), bson.M{"email": email})
	})
}
