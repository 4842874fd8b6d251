package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syedsartaj/travel-adventure/dto"
	"github.com/syedsartaj/travel-adventure/models"
	"github.com/syedsartaj/travel-adventure/repositories"
)

const publicListLimit = 100
const defaultReadTime = 5

// StoryService encapsulates story business rules and DTO mapping.
type StoryService struct {
	repo *repositories.StoryRepository
}

func NewStoryService(repo *repositories.StoryRepository) *StoryService {
	return &StoryService{repo: repo}
}

type ListStoriesInput struct {
	All      bool
	Featured *bool
	Category string
}

// List returns the admin view (every story) when All is set, otherwise the
// published public view filtered by the optional criteria.
func (s *StoryService) List(ctx context.Context, in ListStoriesInput) ([]dto.StoryDTO, error) {
	var (
		items []models.Story
		err   error
	)
	if in.All {
		items, err = s.repo.ListAll(ctx)
	} else {
		items, err = s.repo.ListPublished(ctx, repositories.StoryFilter{
			Featured: in.Featured,
			Category: in.Category,
		}, publicListLimit)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.StoryDTO, 0, len(items))
	for _, st := range items {
		out = append(out, dto.NewStoryDTO(st))
	}
	return out, nil
}

// GetByID loads a story by hex id regardless of published state.
func (s *StoryService) GetByID(ctx context.Context, hexID string) (*dto.StoryDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrNotFound
	}
	st, err := s.repo.FindByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d := dto.NewStoryDTO(*st)
	return &d, nil
}

// GetBySlug loads a published story by slug, incrementing its view counter.
func (s *StoryService) GetBySlug(ctx context.Context, slug string) (*dto.StoryDTO, error) {
	st, err := s.repo.FindBySlug(ctx, slug)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d := dto.NewStoryDTO(*st)
	return &d, nil
}

// requiredStoryFields in the order they are validated. The names are the
// wire names, echoed verbatim in the 400 error.
var requiredStoryFields = []string{
	"title", "slug", "excerpt", "content", "author", "destination", "coverImage", "category",
}

// ValidateCreateStoryRequest returns a ValidationError naming the first
// missing required field, or nil.
func ValidateCreateStoryRequest(req dto.CreateStoryRequest) error {
	present := map[string]bool{
		"title":       req.Title != "",
		"slug":        req.Slug != "",
		"excerpt":     req.Excerpt != "",
		"content":     req.Content != "",
		"author":      req.Author != nil && req.Author.Name != "",
		"destination": req.Destination != "",
		"coverImage":  req.CoverImage != "",
		"category":    req.Category != "",
	}
	for _, f := range requiredStoryFields {
		if !present[f] {
			return &ValidationError{Field: f}
		}
	}
	return nil
}

// Create validates the request, applies server-side defaults and inserts the
// story. Returns the new identity as a hex string.
func (s *StoryService) Create(ctx context.Context, req dto.CreateStoryRequest) (string, error) {
	if err := ValidateCreateStoryRequest(req); err != nil {
		return "", err
	}

	st := models.Story{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      models.Author{Name: req.Author.Name, Avatar: req.Author.Avatar, Bio: req.Author.Bio},
		Destination: req.Destination,
		CoverImage:  req.CoverImage,
		Images:      req.Images,
		Category:    req.Category,
		Tags:        req.Tags,
		ReadTime:    req.ReadTime,
		Published:   true,
		Featured:    false,
	}
	if req.DestinationID != "" {
		if destID, err := primitive.ObjectIDFromHex(req.DestinationID); err == nil {
			st.DestinationID = &destID
		}
	}
	if st.ReadTime <= 0 {
		st.ReadTime = defaultReadTime
	}
	st.PublishedAt = time.Now()
	if req.PublishedAt != "" {
		if t, err := parseDate(req.PublishedAt); err == nil {
			st.PublishedAt = t
		}
	}
	if req.Published != nil {
		st.Published = *req.Published
	}
	if req.Featured != nil {
		st.Featured = *req.Featured
	}

	id, err := s.repo.Insert(ctx, &st)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Update applies a partial update from the wire body. Returns the modified
// count (0 means no-op) or ErrNotFound if the id does not resolve.
func (s *StoryService) Update(ctx context.Context, hexID string, body map[string]interface{}) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, ErrNotFound
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, ErrNotFound
		}
		return 0, err
	}
	updates := CoerceStoryUpdates(body)
	return s.repo.UpdateFields(ctx, id, updates)
}

// Delete removes a story. Returns the deleted count or ErrNotFound if the id
// does not resolve.
func (s *StoryService) Delete(ctx context.Context, hexID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, ErrNotFound
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return s.repo.Delete(ctx, id)
}

// AddComment appends an unapproved comment to the story with the given slug.
func (s *StoryService) AddComment(ctx context.Context, slug string, req dto.AddCommentRequest) error {
	if req.Author == "" {
		return &ValidationError{Field: "author"}
	}
	if req.Email == "" {
		return &ValidationError{Field: "email"}
	}
	if req.Content == "" {
		return &ValidationError{Field: "content"}
	}
	author := models.CommentAuthor{Name: req.Author, Email: req.Email, Avatar: req.Avatar}
	_, err := s.repo.AddComment(ctx, slug, author, req.Content)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// storyUpdateFields maps allowed wire keys to store field names. Keys outside
// this map (counters, comments, timestamps) are never client-writable.
var storyUpdateFields = map[string]string{
	"title":         "title",
	"slug":          "slug",
	"excerpt":       "excerpt",
	"content":       "content",
	"author":        "author",
	"destination":   "destination",
	"destinationId": "destination_id",
	"coverImage":    "cover_image",
	"images":        "images",
	"category":      "category",
	"tags":          "tags",
	"readTime":      "read_time",
	"publishedAt":   "published_at",
	"published":     "published",
	"featured":      "featured",
}

// CoerceStoryUpdates translates a partial wire body into store updates,
// coercing publishedAt strings to dates, readTime to an int and
// destinationId to an ObjectID.
func CoerceStoryUpdates(body map[string]interface{}) map[string]interface{} {
	updates := make(map[string]interface{}, len(body))
	for key, val := range body {
		field, ok := storyUpdateFields[key]
		if !ok {
			continue
		}
		switch key {
		case "publishedAt":
			if s, ok := val.(string); ok {
				if t, err := parseDate(s); err == nil {
					updates[field] = t
				}
				continue
			}
			updates[field] = val
		case "readTime":
			if f, ok := val.(float64); ok {
				updates[field] = int(f)
				continue
			}
			updates[field] = val
		case "destinationId":
			if s, ok := val.(string); ok {
				if id, err := primitive.ObjectIDFromHex(s); err == nil {
					updates[field] = id
				}
				continue
			}
		default:
			updates[field] = val
		}
	}
	return updates
}

// parseDate accepts RFC 3339 and plain date forms used by the admin console.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, s)
}
