package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syedsartaj/travel-adventure/models"
)

const searchResultLimit = 20

type DestinationRepository struct {
	col *mongo.Collection
}

func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{col: db.Collection("destinations")}
}

// Insert inserts a new destination document.
func (r *DestinationRepository) Insert(ctx context.Context, d *models.Destination) (primitive.ObjectID, error) {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByID returns a destination regardless of published state.
func (r *DestinationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	var d models.Destination
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindBySlug returns a published destination by slug.
func (r *DestinationRepository) FindBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	var d models.Destination
	if err := r.col.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateFields merges the given fields and refreshes updated_at.
func (r *DestinationRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (int64, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete hard-deletes a destination.
func (r *DestinationRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListAll returns every destination regardless of published state,
// newest-created first.
func (r *DestinationRepository) ListAll(ctx context.Context) ([]models.Destination, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	return r.find(ctx, bson.M{}, findOpts)
}

// ListPublished returns published destinations, newest-created first,
// capped at limit.
func (r *DestinationRepository) ListPublished(ctx context.Context, limit int64) ([]models.Destination, error) {
	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	return r.find(ctx, bson.M{"published": true}, findOpts)
}

// ListFeatured returns published destinations ordered by rating then
// visitor count, both descending.
func (r *DestinationRepository) ListFeatured(ctx context.Context, limit int64) ([]models.Destination, error) {
	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "rating", Value: -1},
		{Key: "visitors_count", Value: -1},
		{Key: "_id", Value: -1},
	})
	return r.find(ctx, bson.M{"published": true}, findOpts)
}

// Search performs a case-insensitive substring match across title, country,
// description and tags of published destinations, capped at 20 results.
func (r *DestinationRepository) Search(ctx context.Context, query string) ([]models.Destination, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"published": true,
		"$or": []bson.M{
			{"title": re},
			{"country": re},
			{"description": re},
			{"tags": bson.M{"$in": []interface{}{re}}},
		},
	}
	findOpts := options.Find().SetLimit(searchResultLimit)
	return r.find(ctx, filter, findOpts)
}

// UpsertBySlug upserts a destination identified by its slug.
func (r *DestinationRepository) UpsertBySlug(ctx context.Context, d *models.Destination) (*mongo.UpdateResult, error) {
	now := time.Now()

	filter := bson.M{"slug": d.Slug}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": now,
		},
		"$set": bson.M{
			"updated_at":         now,
			"title":              d.Title,
			"country":            d.Country,
			"country_code":       d.CountryCode,
			"flag":               d.Flag,
			"description":        d.Description,
			"long_description":   d.LongDescription,
			"images":             d.Images,
			"featured_image":     d.FeaturedImage,
			"category":           d.Category,
			"continent":          d.Continent,
			"coordinates":        d.Coordinates,
			"visitors_count":     d.VisitorsCount,
			"rating":             d.Rating,
			"reviews_count":      d.ReviewsCount,
			"best_time_to_visit": d.BestTimeToVisit,
			"budget":             d.Budget,
			"highlights":         d.Highlights,
			"activities":         d.Activities,
			"transportation":     d.Transportation,
			"climate":            d.Climate,
			"language":           d.Language,
			"currency":           d.Currency,
			"timezone":           d.Timezone,
			"visa_required":      d.VisaRequired,
			"tags":               d.Tags,
			"published":          d.Published,
			"slug":               d.Slug,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

func (r *DestinationRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Destination, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Destination
	for cur.Next(ctx) {
		var d models.Destination
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		results = append(results, d)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
