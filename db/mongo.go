package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/syedsartaj/travel-adventure/config"
	"github.com/syedsartaj/travel-adventure/logger"
)

// ErrMissingURI is returned when no Mongo connection string is configured.
// This is an operator error and the process must not start without it.
var ErrMissingURI = errors.New("db: MONGODB_URI (or MongoDB_URL) is not set")

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
	smakslyDB  *mongo.Database
)

// Init initializes the global Mongo client and database handles using config
// values. Repeated calls share the single underlying client.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		uri := config.MongoURI()
		if uri == "" {
			initErr = ErrMissingURI
			return
		}
		cfg := config.GetConfig()

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Mongo.Database)
		smakslyDB = client.Database(cfg.Mongo.SmakslyDatabase)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client { return client }

// Database returns the handle for the stories/destinations/newsletter keyspace.
func Database() *mongo.Database { return db }

// SmakslyDatabase returns the handle for the shared multi-tenant keyspace
// holding the clients collection. Read-only from this service's point of view.
func SmakslyDatabase() *mongo.Database { return smakslyDB }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// stories: slug lookup, public listing, admin listing
	{
		if _, err := d.Collection("stories").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("idx_slug"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("stories").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "published", Value: 1}, {Key: "published_at", Value: -1}},
			Options: options.Index().SetName("idx_published_published_at_desc"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("stories").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		}); err != nil {
			return err
		}
	}

	// destinations: slug lookup, featured ordering
	{
		if _, err := d.Collection("destinations").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("idx_slug"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("destinations").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "rating", Value: -1}, {Key: "visitors_count", Value: -1}},
			Options: options.Index().SetName("idx_rating_visitors_desc"),
		}); err != nil {
			return err
		}
	}

	// newsletter_subscribers: unique email
	{
		if _, err := d.Collection("newsletter_subscribers").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}); err != nil {
			return err
		}
	}
	return nil
}
