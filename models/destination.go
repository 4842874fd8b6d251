package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Budget levels for a destination.
const (
	BudgetLevelBudget   = "budget"
	BudgetLevelModerate = "moderate"
	BudgetLevelLuxury   = "luxury"
)

type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type BestTimeToVisit struct {
	Months      []string `bson:"months" json:"months"`
	Description string   `bson:"description" json:"description"`
}

type Budget struct {
	Level        string  `bson:"level" json:"level"`
	DailyAverage float64 `bson:"daily_average" json:"daily_average"`
	Currency     string  `bson:"currency" json:"currency"`
}

// Destination represents a destination document.
// Collection: destinations
type Destination struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Country         string             `bson:"country" json:"country"`
	CountryCode     string             `bson:"country_code" json:"country_code"`
	Flag            string             `bson:"flag" json:"flag"`
	Description     string             `bson:"description" json:"description"`
	LongDescription string             `bson:"long_description" json:"long_description"`
	Images          []string           `bson:"images" json:"images"`
	FeaturedImage   string             `bson:"featured_image" json:"featured_image"`
	Category        string             `bson:"category" json:"category"`
	Continent       string             `bson:"continent" json:"continent"`
	Coordinates     Coordinates        `bson:"coordinates" json:"coordinates"`
	VisitorsCount   int64              `bson:"visitors_count" json:"visitors_count"`
	Rating          float64            `bson:"rating" json:"rating"`
	ReviewsCount    int64              `bson:"reviews_count" json:"reviews_count"`
	BestTimeToVisit BestTimeToVisit    `bson:"best_time_to_visit" json:"best_time_to_visit"`
	Budget          Budget             `bson:"budget" json:"budget"`
	Highlights      []string           `bson:"highlights" json:"highlights"`
	Activities      []string           `bson:"activities" json:"activities"`
	Transportation  []string           `bson:"transportation" json:"transportation"`
	Climate         string             `bson:"climate" json:"climate"`
	Language        string             `bson:"language" json:"language"`
	Currency        string             `bson:"currency" json:"currency"`
	Timezone        string             `bson:"timezone" json:"timezone"`
	VisaRequired    bool               `bson:"visa_required" json:"visa_required"`
	Tags            []string           `bson:"tags" json:"tags"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	Published       bool               `bson:"published" json:"published"`
	Slug            string             `bson:"slug" json:"slug"`
}
