package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syedsartaj/travel-adventure/models"
)

// SubscribeOutcome describes what happened to a subscription request.
type SubscribeOutcome string

const (
	SubscribeOutcomeCreated           SubscribeOutcome = "subscribed"
	SubscribeOutcomeReactivated       SubscribeOutcome = "reactivated"
	SubscribeOutcomeAlreadySubscribed SubscribeOutcome = "already_subscribed"
)

type NewsletterRepository struct {
	col *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{col: db.Collection("newsletter_subscribers")}
}

// Subscribe creates a new active subscription, reactivates an inactive one,
// or reports that an active one already exists. At most one record per email.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email, name string) (SubscribeOutcome, error) {
	var existing models.NewsletterSubscriber
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	switch {
	case err == nil:
		if existing.Active {
			return SubscribeOutcomeAlreadySubscribed, nil
		}
		_, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{
			"$set": bson.M{"active": true, "subscribed_at": time.Now()},
		})
		if err != nil {
			return "", err
		}
		return SubscribeOutcomeReactivated, nil
	case err == mongo.ErrNoDocuments:
		sub := models.NewsletterSubscriber{
			Email:        email,
			Name:         name,
			SubscribedAt: time.Now(),
			Active:       true,
			Preferences: models.Preferences{
				Destinations: []string{},
				Categories:   []string{},
			},
		}
		if _, err := r.col.InsertOne(ctx, sub); err != nil {
			return "", err
		}
		return SubscribeOutcomeCreated, nil
	default:
		return "", err
	}
}

// Unsubscribe flips a subscription inactive. The record is kept so a later
// re-subscribe reactivates instead of duplicating.
func (r *NewsletterRepository) Unsubscribe(ctx context.Context, email string) (int64, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"active": false},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
