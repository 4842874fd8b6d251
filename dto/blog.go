package dto

import (
	"time"

	"github.com/syedsartaj/travel-adventure/smaksly"
)

// BlogDTO is the wire representation of a Smaksly tenant blog post,
// enriched with the display helpers pages need.
type BlogDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishDate time.Time `json:"publishDate"`
	DisplayDate string    `json:"displayDate"`
	Category    string    `json:"category,omitempty"`
	Slug        string    `json:"slug"`
	ReadTime    string    `json:"readTime"`
	Body        string    `json:"body,omitempty"`
}

// NewBlogDTO maps a tenant blog. The body is heavy, so list views pass
// includeBody=false and only the detail view carries it.
func NewBlogDTO(b smaksly.Blog, includeBody bool) BlogDTO {
	d := BlogDTO{
		ID:          b.ID,
		Title:       b.Title,
		ImageURL:    b.ImageURL,
		PublishDate: b.PublishDate,
		DisplayDate: smaksly.FormatBlogDate(b.PublishDate),
		Category:    b.Category,
		Slug:        b.Slug,
		ReadTime:    smaksly.EstimateReadTime(b.Body),
	}
	if includeBody {
		d.Body = b.Body
	}
	return d
}
