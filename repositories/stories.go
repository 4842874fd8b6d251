package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syedsartaj/travel-adventure/models"
)

type StoryRepository struct {
	col *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{col: db.Collection("stories")}
}

// Insert inserts a new story document. Counters start at zero, the comment
// list starts empty and created_at equals updated_at. Slug uniqueness is the
// caller's responsibility.
func (r *StoryRepository) Insert(ctx context.Context, s *models.Story) (primitive.ObjectID, error) {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	s.Views = 0
	s.Likes = 0
	s.Comments = []models.Comment{}
	if s.Images == nil {
		s.Images = []string{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByID returns a story regardless of published state. Used by the admin
// edit flow.
func (r *StoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Story, error) {
	var s models.Story
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindBySlug returns a published story by slug and increments its view
// counter as a side effect. The increment is unguarded and not atomic with
// the read; views are not billing-relevant so the race is accepted.
func (r *StoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Story, error) {
	if _, err := r.col.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		return nil, err
	}

	var s models.Story
	if err := r.col.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateFields merges the given fields into a story and refreshes updated_at.
// A modified count of 0 means no-op or not found, not an error.
func (r *StoryRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (int64, error) {
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

// Delete hard-deletes a story. A deleted count of 0 means not found.
func (r *StoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListAll returns every story regardless of published state, newest-created
// first. Admin-only view.
func (r *StoryRepository) ListAll(ctx context.Context) ([]models.Story, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	return r.find(ctx, bson.M{}, findOpts)
}

type StoryFilter struct {
	Featured *bool
	Category string
}

// ListPublished returns published stories matching the optional filter,
// newest-published first, capped at limit.
func (r *StoryRepository) ListPublished(ctx context.Context, filter StoryFilter, limit int64) ([]models.Story, error) {
	q := bson.M{"published": true}
	if filter.Featured != nil {
		q["featured"] = *filter.Featured
	}
	if filter.Category != "" {
		q["category"] = filter.Category
	}

	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "published_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	return r.find(ctx, q, findOpts)
}

// AddComment appends an unapproved comment to the story with the given slug.
// $push keeps the append atomic under concurrent commenting.
func (r *StoryRepository) AddComment(ctx context.Context, slug string, author models.CommentAuthor, content string) (*models.Comment, error) {
	c := models.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
		Approved:  false,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$push": bson.M{"comments": c}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

// UpsertBySlug upserts a story identified by its slug. Counters and the
// comment list are only set on first insert so reseeding never resets them.
func (r *StoryRepository) UpsertBySlug(ctx context.Context, s *models.Story) (*mongo.UpdateResult, error) {
	now := time.Now()

	filter := bson.M{"slug": s.Slug}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": now,
			"views":      int64(0),
			"likes":      int64(0),
			"comments":   []models.Comment{},
		},
		"$set": bson.M{
			"updated_at":   now,
			"title":        s.Title,
			"slug":         s.Slug,
			"excerpt":      s.Excerpt,
			"content":      s.Content,
			"author":       s.Author,
			"destination":  s.Destination,
			"cover_image":  s.CoverImage,
			"images":       s.Images,
			"category":     s.Category,
			"tags":         s.Tags,
			"read_time":    s.ReadTime,
			"published_at": s.PublishedAt,
			"published":    s.Published,
			"featured":     s.Featured,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

func (r *StoryRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Story, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Story
	for cur.Next(ctx) {
		var s models.Story
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
