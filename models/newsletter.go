package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsletterSubscriber represents a newsletter subscription.
// Collection: newsletter_subscribers, unique on email.
type NewsletterSubscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	SubscribedAt time.Time          `bson:"subscribed_at" json:"subscribed_at"`
	Active       bool               `bson:"active" json:"active"`
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
}

type Preferences struct {
	Destinations []string `bson:"destinations" json:"destinations"`
	Categories   []string `bson:"categories" json:"categories"`
}
