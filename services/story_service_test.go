package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syedsartaj/travel-adventure/dto"
)

func validCreateRequest() dto.CreateStoryRequest {
	return dto.CreateStoryRequest{
		Title:       "A Week in Lisbon",
		Slug:        "a-week-in-lisbon",
		Excerpt:     "Seven days of trams, tiles and pasteis de nata.",
		Content:     "<p>We arrived on a Sunday...</p>",
		Author:      &dto.AuthorDTO{Name: "Sartaj Syed"},
		Destination: "Portugal",
		CoverImage:  "https://example.com/lisbon.jpg",
		Category:    "city",
	}
}

func TestValidateCreateStoryRequest(t *testing.T) {
	assert.NoError(t, ValidateCreateStoryRequest(validCreateRequest()))

	tests := []struct {
		field  string
		mutate func(*dto.CreateStoryRequest)
	}{
		{"title", func(r *dto.CreateStoryRequest) { r.Title = "" }},
		{"slug", func(r *dto.CreateStoryRequest) { r.Slug = "" }},
		{"excerpt", func(r *dto.CreateStoryRequest) { r.Excerpt = "" }},
		{"content", func(r *dto.CreateStoryRequest) { r.Content = "" }},
		{"author", func(r *dto.CreateStoryRequest) { r.Author = nil }},
		{"author", func(r *dto.CreateStoryRequest) { r.Author = &dto.AuthorDTO{} }},
		{"destination", func(r *dto.CreateStoryRequest) { r.Destination = "" }},
		{"coverImage", func(r *dto.CreateStoryRequest) { r.CoverImage = "" }},
		{"category", func(r *dto.CreateStoryRequest) { r.Category = "" }},
	}

	for _, tt := range tests {
		t.Run("missing "+tt.field, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := ValidateCreateStoryRequest(req)
			require.Error(t, err)

			ve, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	req := validCreateRequest()
	req.Title = ""
	req.Category = ""

	err := ValidateCreateStoryRequest(req)
	require.Error(t, err)
	assert.Equal(t, "title", err.(*ValidationError).Field)
}

func TestCoerceStoryUpdates(t *testing.T) {
	destID := primitive.NewObjectID()

	updates := CoerceStoryUpdates(map[string]interface{}{
		"title":         "New Title",
		"coverImage":    "https://example.com/new.jpg",
		"readTime":      float64(8),
		"publishedAt":   "2024-06-01T00:00:00Z",
		"destinationId": destID.Hex(),
		"published":     false,
		// client-writable surface excludes counters and comments
		"views":    999,
		"likes":    999,
		"comments": []string{"spam"},
		"bogus":    "ignored",
	})

	assert.Equal(t, "New Title", updates["title"])
	assert.Equal(t, "https://example.com/new.jpg", updates["cover_image"])
	assert.Equal(t, 8, updates["read_time"])
	assert.Equal(t, false, updates["published"])
	assert.Equal(t, destID, updates["destination_id"])

	publishedAt, ok := updates["published_at"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), publishedAt.UTC())

	assert.NotContains(t, updates, "views")
	assert.NotContains(t, updates, "likes")
	assert.NotContains(t, updates, "comments")
	assert.NotContains(t, updates, "bogus")
}

func TestCoerceStoryUpdatesPlainDate(t *testing.T) {
	updates := CoerceStoryUpdates(map[string]interface{}{"publishedAt": "2024-06-01"})

	publishedAt, ok := updates["published_at"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, publishedAt.Year())
	assert.Equal(t, time.June, publishedAt.Month())
}

func TestCoerceStoryUpdatesEmptyBody(t *testing.T) {
	assert.Empty(t, CoerceStoryUpdates(map[string]interface{}{}))
}
