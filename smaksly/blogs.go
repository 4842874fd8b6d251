// Package smaksly reads tenant blog content out of the shared Smaksly
// clients collection. The integration is read-only and every failure mode
// (missing tenant id, unknown tenant, missing embedded path, store errors)
// degrades to an empty result so pages can render their empty state.
package smaksly

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syedsartaj/travel-adventure/config"
	"github.com/syedsartaj/travel-adventure/logger"
)

// Blog mirrors Smaksly's external blog schema. Field names are owned by the
// foreign system and must not be renamed.
type Blog struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	PublishDate time.Time `bson:"publish_date" json:"publish_date"`
	ModifyDate  time.Time `bson:"modify_date" json:"modify_date"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Body        string    `bson:"body" json:"body"`
	Slug        string    `bson:"slug" json:"slug"`
}

type deploymentData struct {
	Blogs []Blog `bson:"blogs"`
}

type deployment struct {
	VercelID string           `bson:"vercel_id"`
	Data     []deploymentData `bson:"Data"`
}

type clientDoc struct {
	Deployments []deployment `bson:"Deployments"`
}

type Service struct {
	col *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{col: db.Collection("clients")}
}

// GetBlogs returns the tenant's blogs, newest publish_date first. An empty
// list is the normal answer for an unprovisioned tenant, never an error;
// store failures are logged and also degrade to empty so pages render.
func (s *Service) GetBlogs(ctx context.Context) []Blog {
	blogs, err := s.Blogs(ctx)
	if err != nil {
		logger.Log.Errorf("fetching smaksly blogs: %v", err)
		return []Blog{}
	}
	return blogs
}

// Blogs is the error-surfacing variant used by the debug endpoint. Missing
// tenant id, unknown tenant and missing embedded paths are still empty
// results, not errors; only store failures come back as errors.
func (s *Service) Blogs(ctx context.Context) ([]Blog, error) {
	smakslyID := config.SmakslyID()
	if smakslyID == "" {
		logger.Log.Warn("SMAKSLY_ID not set, returning empty blogs")
		return []Blog{}, nil
	}
	if s.col == nil {
		logger.Log.Warn("smaksly database not available, returning empty blogs")
		return []Blog{}, nil
	}

	var client clientDoc
	err := s.col.FindOne(ctx, bson.M{"Deployments.vercel_id": smakslyID}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		logger.Log.Warnf("no deployment found for SMAKSLY_ID %s", smakslyID)
		return []Blog{}, nil
	}
	if err != nil {
		return nil, err
	}

	blogs := extractBlogs(client, smakslyID)
	sortByPublishDateDesc(blogs)
	return blogs, nil
}

// GetBlogBySlug returns the first blog with the given slug, or nil.
func (s *Service) GetBlogBySlug(ctx context.Context, slug string) *Blog {
	return firstBySlug(s.GetBlogs(ctx), slug)
}

// GetBlogByID returns the first blog with the given id, or nil.
func (s *Service) GetBlogByID(ctx context.Context, id string) *Blog {
	return firstByID(s.GetBlogs(ctx), id)
}

// firstBySlug scans the publish_date-descending list for the given slug.
// The list is small, so a linear scan is fine; under duplicate slugs the
// newest copy wins because it sorts first.
func firstBySlug(blogs []Blog, slug string) *Blog {
	for i := range blogs {
		if blogs[i].Slug == slug {
			return &blogs[i]
		}
	}
	return nil
}

func firstByID(blogs []Blog, id string) *Blog {
	for i := range blogs {
		if blogs[i].ID == id {
			return &blogs[i]
		}
	}
	return nil
}

// extractBlogs descends Deployments -> (vercel_id match) -> Data[0].blogs.
// A missing level anywhere yields an empty list.
func extractBlogs(client clientDoc, smakslyID string) []Blog {
	for _, d := range client.Deployments {
		if d.VercelID != smakslyID {
			continue
		}
		if len(d.Data) == 0 || len(d.Data[0].Blogs) == 0 {
			return []Blog{}
		}
		return d.Data[0].Blogs
	}
	return []Blog{}
}

func sortByPublishDateDesc(blogs []Blog) {
	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].PublishDate.After(blogs[j].PublishDate)
	})
}
