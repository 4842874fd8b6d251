package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syedsartaj/travel-adventure/models"
)

func newTestDestination(slug, title string) *models.Destination {
	return &models.Destination{
		Title:       title,
		Country:     "Testland",
		Description: "A place that exists only in tests",
		Category:    "testing",
		Rating:      4.5,
		Published:   true,
		Slug:        slug,
	}
}

func TestDestinationSearchIsCaseInsensitive(t *testing.T) {
	d := testDatabase(t)
	repo := NewDestinationRepository(d)

	marker := strings.ReplaceAll(uuid.NewString(), "-", "")
	slug := "search-" + marker
	cleanupBySlug(t, d, "destinations", slug)

	ctx := context.Background()
	_, err := repo.Insert(ctx, newTestDestination(slug, "Hidden Valley "+strings.ToUpper(marker)))
	require.NoError(t, err)

	results, err := repo.Search(ctx, strings.ToLower(marker))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, slug, results[0].Slug)
}

func TestDestinationSearchExcludesUnpublished(t *testing.T) {
	d := testDatabase(t)
	repo := NewDestinationRepository(d)

	marker := strings.ReplaceAll(uuid.NewString(), "-", "")
	slug := "draftsearch-" + marker
	cleanupBySlug(t, d, "destinations", slug)

	ctx := context.Background()
	dest := newTestDestination(slug, "Draft Valley "+marker)
	dest.Published = false
	_, err := repo.Insert(ctx, dest)
	require.NoError(t, err)

	results, err := repo.Search(ctx, marker)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDestinationUpsertBySlugIsIdempotent(t *testing.T) {
	d := testDatabase(t)
	repo := NewDestinationRepository(d)
	slug := "upsert-" + uuid.NewString()
	cleanupBySlug(t, d, "destinations", slug)

	ctx := context.Background()
	dest := newTestDestination(slug, "Upsert Valley")

	_, err := repo.UpsertBySlug(ctx, dest)
	require.NoError(t, err)
	dest.Title = "Upsert Valley Renamed"
	_, err = repo.UpsertBySlug(ctx, dest)
	require.NoError(t, err)

	got, err := repo.FindBySlug(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, "Upsert Valley Renamed", got.Title)

	count, err := d.Collection("destinations").CountDocuments(ctx, map[string]interface{}{"slug": slug})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDestinationDeleteMissingReturnsZero(t *testing.T) {
	d := testDatabase(t)
	repo := NewDestinationRepository(d)

	deleted, err := repo.Delete(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
