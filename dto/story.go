package dto

import (
	"time"

	"github.com/syedsartaj/travel-adventure/models"
)

// StoryDTO is the wire representation of a story. The admin console and the
// public site speak camelCase; the store speaks snake_case bson. IDs travel
// as hex strings.
type StoryDTO struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	Content       string       `json:"content"`
	Author        AuthorDTO    `json:"author"`
	Destination   string       `json:"destination"`
	DestinationID string       `json:"destinationId,omitempty"`
	CoverImage    string       `json:"coverImage"`
	Images        []string     `json:"images"`
	Category      string       `json:"category"`
	Tags          []string     `json:"tags"`
	ReadTime      int          `json:"readTime"`
	PublishedAt   time.Time    `json:"publishedAt"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Published     bool         `json:"published"`
	Featured      bool         `json:"featured"`
	Views         int64        `json:"views"`
	Likes         int64        `json:"likes"`
	Comments      []CommentDTO `json:"comments"`
}

type AuthorDTO struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Approved  bool      `json:"approved"`
}

// NewStoryDTO maps a story document to its wire shape.
func NewStoryDTO(s models.Story) StoryDTO {
	d := StoryDTO{
		ID:          s.ID.Hex(),
		Title:       s.Title,
		Slug:        s.Slug,
		Excerpt:     s.Excerpt,
		Content:     s.Content,
		Author:      AuthorDTO{Name: s.Author.Name, Avatar: s.Author.Avatar, Bio: s.Author.Bio},
		Destination: s.Destination,
		CoverImage:  s.CoverImage,
		Images:      s.Images,
		Category:    s.Category,
		Tags:        s.Tags,
		ReadTime:    s.ReadTime,
		PublishedAt: s.PublishedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Published:   s.Published,
		Featured:    s.Featured,
		Views:       s.Views,
		Likes:       s.Likes,
		Comments:    make([]CommentDTO, 0, len(s.Comments)),
	}
	if s.DestinationID != nil {
		d.DestinationID = s.DestinationID.Hex()
	}
	if d.Images == nil {
		d.Images = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	for _, c := range s.Comments {
		d.Comments = append(d.Comments, CommentDTO{
			ID:        c.ID,
			Author:    c.Author.Name,
			Email:     c.Author.Email,
			Avatar:    c.Author.Avatar,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Approved:  c.Approved,
		})
	}
	return d
}

// CreateStoryRequest is the POST /api/stories body. Optional editorial flags
// are pointers so "omitted" and "false" stay distinguishable.
type CreateStoryRequest struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Author        *AuthorDTO `json:"author"`
	Destination   string     `json:"destination"`
	DestinationID string     `json:"destinationId"`
	CoverImage    string     `json:"coverImage"`
	Images        []string   `json:"images"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	ReadTime      int        `json:"readTime"`
	PublishedAt   string     `json:"publishedAt"`
	Published     *bool      `json:"published"`
	Featured      *bool      `json:"featured"`
}

// AddCommentRequest is the POST /api/stories/:slug/comments body.
type AddCommentRequest struct {
	Author  string `json:"author"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
}

// SubscribeRequest is the POST /api/newsletter body.
type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
