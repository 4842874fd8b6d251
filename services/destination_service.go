package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syedsartaj/travel-adventure/dto"
	"github.com/syedsartaj/travel-adventure/models"
	"github.com/syedsartaj/travel-adventure/repositories"
)

// DestinationService encapsulates destination business rules and DTO mapping.
type DestinationService struct {
	repo *repositories.DestinationRepository
}

func NewDestinationService(repo *repositories.DestinationRepository) *DestinationService {
	return &DestinationService{repo: repo}
}

type ListDestinationsInput struct {
	All      bool
	Featured bool
	Limit    int64
}

func (s *DestinationService) List(ctx context.Context, in ListDestinationsInput) ([]dto.DestinationDTO, error) {
	if in.Limit <= 0 {
		in.Limit = publicListLimit
	}

	var (
		items []models.Destination
		err   error
	)
	switch {
	case in.All:
		items, err = s.repo.ListAll(ctx)
	case in.Featured:
		items, err = s.repo.ListFeatured(ctx, in.Limit)
	default:
		items, err = s.repo.ListPublished(ctx, in.Limit)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.DestinationDTO, 0, len(items))
	for _, d := range items {
		out = append(out, dto.NewDestinationDTO(d))
	}
	return out, nil
}

func (s *DestinationService) GetByID(ctx context.Context, hexID string) (*dto.DestinationDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrNotFound
	}
	d, err := s.repo.FindByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := dto.NewDestinationDTO(*d)
	return &out, nil
}

func (s *DestinationService) GetBySlug(ctx context.Context, slug string) (*dto.DestinationDTO, error) {
	d, err := s.repo.FindBySlug(ctx, slug)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := dto.NewDestinationDTO(*d)
	return &out, nil
}

// Search matches the query case-insensitively across title, country,
// description and tags. Blank queries return an empty result.
func (s *DestinationService) Search(ctx context.Context, query string) ([]dto.DestinationDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dto.DestinationDTO{}, nil
	}
	items, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DestinationDTO, 0, len(items))
	for _, d := range items {
		out = append(out, dto.NewDestinationDTO(d))
	}
	return out, nil
}

// requiredDestinationFields mirrors the story creation contract for the
// parallel entity.
var requiredDestinationFields = []string{"title", "slug", "country", "description", "category"}

// ValidateCreateDestination returns a ValidationError naming the first
// missing required field, or nil.
func ValidateCreateDestination(d models.Destination) error {
	present := map[string]bool{
		"title":       d.Title != "",
		"slug":        d.Slug != "",
		"country":     d.Country != "",
		"description": d.Description != "",
		"category":    d.Category != "",
	}
	for _, f := range requiredDestinationFields {
		if !present[f] {
			return &ValidationError{Field: f}
		}
	}
	return nil
}

func (s *DestinationService) Create(ctx context.Context, d models.Destination) (string, error) {
	if err := ValidateCreateDestination(d); err != nil {
		return "", err
	}
	if d.Budget.Level == "" {
		d.Budget.Level = models.BudgetLevelModerate
	}
	id, err := s.repo.Insert(ctx, &d)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// destinationUpdateFields maps allowed wire keys to store field names.
var destinationUpdateFields = map[string]string{
	"title":           "title",
	"country":         "country",
	"countryCode":     "country_code",
	"flag":            "flag",
	"description":     "description",
	"longDescription": "long_description",
	"images":          "images",
	"featuredImage":   "featured_image",
	"category":        "category",
	"continent":       "continent",
	"coordinates":     "coordinates",
	"visitorsCount":   "visitors_count",
	"rating":          "rating",
	"reviewsCount":    "reviews_count",
	"bestTimeToVisit": "best_time_to_visit",
	"budget":          "budget",
	"highlights":      "highlights",
	"activities":      "activities",
	"transportation":  "transportation",
	"climate":         "climate",
	"language":        "language",
	"currency":        "currency",
	"timezone":        "timezone",
	"visaRequired":    "visa_required",
	"tags":            "tags",
	"published":       "published",
	"slug":            "slug",
}

func (s *DestinationService) Update(ctx context.Context, hexID string, body map[string]interface{}) (int64, error) {
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

	updates := make(map[string]interface{}, len(body))
	for key, val := range body {
		if field, ok := destinationUpdateFields[key]; ok {
			updates[field] = val
		}
	}
	return s.repo.UpdateFields(ctx, id, updates)
}

func (s *DestinationService) Delete(ctx context.Context, hexID string) (int64, error) {
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
