package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syedsartaj/travel-adventure/models"
)

func newTestStory(slug string, published bool) *models.Story {
	return &models.Story{
		Title:       "Test Story " + slug,
		Slug:        slug,
		Excerpt:     "excerpt",
		Content:     "<p>content</p>",
		Author:      models.Author{Name: "Tester"},
		Destination: "Testland",
		CoverImage:  "https://example.com/cover.jpg",
		Category:    "testing",
		ReadTime:    5,
		PublishedAt: time.Now(),
		Published:   published,
	}
}

func TestStoryInsertInitializesCountersAndTimestamps(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)
	slug := "insert-" + uuid.NewString()
	cleanupBySlug(t, d, "stories", slug)

	ctx := context.Background()
	id, err := repo.Insert(ctx, newTestStory(slug, true))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Views)
	assert.Equal(t, int64(0), got.Likes)
	assert.NotNil(t, got.Comments)
	assert.Empty(t, got.Comments)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestStoryFindBySlugIncrementsViews(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)
	slug := "views-" + uuid.NewString()
	cleanupBySlug(t, d, "stories", slug)

	ctx := context.Background()
	_, err := repo.Insert(ctx, newTestStory(slug, true))
	require.NoError(t, err)

	first, err := repo.FindBySlug(ctx, slug)
	require.NoError(t, err)
	second, err := repo.FindBySlug(ctx, slug)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, second.Views, first.Views+1)
}

func TestStoryFindBySlugExcludesUnpublished(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)
	slug := "draft-" + uuid.NewString()
	cleanupBySlug(t, d, "stories", slug)

	ctx := context.Background()
	_, err := repo.Insert(ctx, newTestStory(slug, false))
	require.NoError(t, err)

	_, err = repo.FindBySlug(ctx, slug)
	assert.Equal(t, mongo.ErrNoDocuments, err)
}

func TestStoryListAllIncludesUnpublished(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)
	slug := "listall-" + uuid.NewString()
	cleanupBySlug(t, d, "stories", slug)

	ctx := context.Background()
	_, err := repo.Insert(ctx, newTestStory(slug, false))
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	found := false
	for _, s := range all {
		if s.Slug == slug {
			found = true
		}
	}
	assert.True(t, found)

	public, err := repo.ListPublished(ctx, StoryFilter{}, 1000)
	require.NoError(t, err)
	for _, s := range public {
		assert.NotEqual(t, slug, s.Slug)
		assert.True(t, s.Published)
	}
}

func TestStoryListPublishedFeaturedFilter(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)
	plainSlug := "plain-" + uuid.NewString()
	featuredSlug := "featured-" + uuid.NewString()
	cleanupBySlug(t, d, "stories", plainSlug)
	cleanupBySlug(t, d, "stories", featuredSlug)

	ctx := context.Background()
	_, err := repo.Insert(ctx, newTestStory(plainSlug, true))
	require.NoError(t, err)
	featuredStory := newTestStory(featuredSlug, true)
	featuredStory.Featured = true
	_, err = repo.Insert(ctx, featuredStory)
	require.NoError(t, err)

	featured := true
	results, err := repo.ListPublished(ctx, StoryFilter{Featured: &featured}, 1000)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, s := range results {
		assert.True(t, s.Featured)
		seen[s.Slug] = true
	}
	assert.True(t, seen[featuredSlug])
	assert.False(t, seen[plainSlug])
}

func TestStoryEmptyUpdateOnlyTouchesUpdatedAt(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)
	slug := "emptypatch-" + uuid.NewString()
	cleanupBySlug(t, d, "stories", slug)

	ctx := context.Background()
	id, err := repo.Insert(ctx, newTestStory(slug, true))
	require.NoError(t, err)
	before, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	_, err = repo.UpdateFields(ctx, id, map[string]interface{}{})
	require.NoError(t, err)

	after, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Slug, after.Slug)
	assert.Equal(t, before.Views, after.Views)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestStoryDeleteMissingReturnsZero(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)

	deleted, err := repo.Delete(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestStoryAddComment(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)
	slug := "comment-" + uuid.NewString()
	cleanupBySlug(t, d, "stories", slug)

	ctx := context.Background()
	id, err := repo.Insert(ctx, newTestStory(slug, true))
	require.NoError(t, err)

	c, err := repo.AddComment(ctx, slug, models.CommentAuthor{Name: "Reader", Email: "reader@example.com"}, "Lovely trip!")
	require.NoError(t, err)
	assert.False(t, c.Approved)
	assert.NotEmpty(t, c.ID)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Lovely trip!", got.Comments[0].Content)
	assert.False(t, got.Comments[0].Approved)
}

func TestStoryAddCommentUnknownSlug(t *testing.T) {
	d := testDatabase(t)
	repo := NewStoryRepository(d)

	_, err := repo.AddComment(context.Background(), "missing-"+uuid.NewString(), models.CommentAuthor{Name: "x", Email: "x@example.com"}, "hi")
	assert.Equal(t, mongo.ErrNoDocuments, err)
}
