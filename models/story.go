package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the embedded attribution record on a story.
type Author struct {
	Name   string `bson:"name" json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
	Bio    string `bson:"bio" json:"bio"`
}

// Comment is embedded inside a story. Comments are created unapproved and
// there is no delete path; the list only grows.
type Comment struct {
	ID        string        `bson:"id" json:"id"`
	Author    CommentAuthor `bson:"author" json:"author"`
	Content   string        `bson:"content" json:"content"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	Approved  bool          `bson:"approved" json:"approved"`
}

type CommentAuthor struct {
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// Story represents a travel story document.
// Collection: stories
type Story struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title         string              `bson:"title" json:"title"`
	Slug          string              `bson:"slug" json:"slug"`
	Excerpt       string              `bson:"excerpt" json:"excerpt"`
	Content       string              `bson:"content" json:"content"`
	Author        Author              `bson:"author" json:"author"`
	Destination   string              `bson:"destination" json:"destination"`
	DestinationID *primitive.ObjectID `bson:"destination_id,omitempty" json:"destination_id,omitempty"`
	CoverImage    string              `bson:"cover_image" json:"cover_image"`
	Images        []string            `bson:"images" json:"images"`
	Category      string              `bson:"category" json:"category"`
	Tags          []string            `bson:"tags" json:"tags"`
	ReadTime      int                 `bson:"read_time" json:"read_time"`
	PublishedAt   time.Time           `bson:"published_at" json:"published_at"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
	Published     bool                `bson:"published" json:"published"`
	Featured      bool                `bson:"featured" json:"featured"`
	Views         int64               `bson:"views" json:"views"`
	Likes         int64               `bson:"likes" json:"likes"`
	Comments      []Comment           `bson:"comments" json:"comments"`
}
