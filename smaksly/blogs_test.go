package smaksly

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlogs(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	doc := clientDoc{
		Deployments: []deployment{
			{VercelID: "other-tenant", Data: []deploymentData{{Blogs: []Blog{{ID: "x"}}}}},
			{VercelID: "tenant-1", Data: []deploymentData{{Blogs: []Blog{
				{ID: "a", Slug: "first", PublishDate: jan},
				{ID: "b", Slug: "second", PublishDate: jun},
			}}}},
		},
	}

	blogs := extractBlogs(doc, "tenant-1")
	require.Len(t, blogs, 2)
	assert.Equal(t, "a", blogs[0].ID)

	// wrong tenant yields empty, not an error
	assert.Empty(t, extractBlogs(doc, "tenant-2"))

	// deployment without data yields empty
	empty := clientDoc{Deployments: []deployment{{VercelID: "tenant-3"}}}
	assert.Empty(t, extractBlogs(empty, "tenant-3"))

	// deployment with empty first data element yields empty
	noBlogs := clientDoc{Deployments: []deployment{{VercelID: "tenant-4", Data: []deploymentData{{}}}}}
	assert.Empty(t, extractBlogs(noBlogs, "tenant-4"))
}

func TestSortByPublishDateDesc(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	blogs := []Blog{
		{ID: "january", PublishDate: jan},
		{ID: "june", PublishDate: jun},
	}
	sortByPublishDateDesc(blogs)

	assert.Equal(t, "june", blogs[0].ID)
	assert.Equal(t, "january", blogs[1].ID)
}

func TestFirstBySlugNewestWinsUnderDuplicates(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	blogs := []Blog{
		{ID: "old", Slug: "trip-report", PublishDate: jan},
		{ID: "new", Slug: "trip-report", PublishDate: jun},
		{ID: "other", Slug: "packing-list", PublishDate: jan},
	}
	sortByPublishDateDesc(blogs)

	got := firstBySlug(blogs, "trip-report")
	require.NotNil(t, got)
	assert.Equal(t, "new", got.ID)

	assert.Nil(t, firstBySlug(blogs, "missing"))
}

func TestFirstByID(t *testing.T) {
	blogs := []Blog{
		{ID: "a", Slug: "first"},
		{ID: "b", Slug: "second"},
	}

	got := firstByID(blogs, "b")
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Slug)

	assert.Nil(t, firstByID(blogs, "missing"))
}

func TestGetBlogsWithoutTenantIDReturnsEmpty(t *testing.T) {
	t.Setenv("SMAKSLY_ID", "")

	svc := &Service{}
	blogs := svc.GetBlogs(context.Background())

	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)

	assert.Nil(t, svc.GetBlogBySlug(context.Background(), "any"))
	assert.Nil(t, svc.GetBlogByID(context.Background(), "any"))
}

func TestSortByPublishDateDescStableUnderTies(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	blogs := []Blog{
		{ID: "a", PublishDate: d},
		{ID: "b", PublishDate: d},
	}
	sortByPublishDateDesc(blogs)

	assert.Equal(t, "a", blogs[0].ID)
	assert.Equal(t, "b", blogs[1].ID)
}
