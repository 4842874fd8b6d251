package dto

import (
	"time"

	"github.com/syedsartaj/travel-adventure/models"
)

// DestinationDTO is the wire representation of a destination.
type DestinationDTO struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Country         string             `json:"country"`
	CountryCode     string             `json:"countryCode"`
	Flag            string             `json:"flag"`
	Description     string             `json:"description"`
	LongDescription string             `json:"longDescription"`
	Images          []string           `json:"images"`
	FeaturedImage   string             `json:"featuredImage"`
	Category        string             `json:"category"`
	Continent       string             `json:"continent"`
	Coordinates     CoordinatesDTO     `json:"coordinates"`
	VisitorsCount   int64              `json:"visitorsCount"`
	Rating          float64            `json:"rating"`
	ReviewsCount    int64              `json:"reviewsCount"`
	BestTimeToVisit BestTimeToVisitDTO `json:"bestTimeToVisit"`
	Budget          BudgetDTO          `json:"budget"`
	Highlights      []string           `json:"highlights"`
	Activities      []string           `json:"activities"`
	Transportation  []string           `json:"transportation"`
	Climate         string             `json:"climate"`
	Language        string             `json:"language"`
	Currency        string             `json:"currency"`
	Timezone        string             `json:"timezone"`
	VisaRequired    bool               `json:"visaRequired"`
	Tags            []string           `json:"tags"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Published       bool               `json:"published"`
	Slug            string             `json:"slug"`
}

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BestTimeToVisitDTO struct {
	Months      []string `json:"months"`
	Description string   `json:"description"`
}

type BudgetDTO struct {
	Level        string  `json:"level"`
	DailyAverage float64 `json:"dailyAverage"`
	Currency     string  `json:"currency"`
}

// ToModel maps the wire shape back to a destination document. Identity and
// timestamps are server-assigned and ignored here.
func (d DestinationDTO) ToModel() models.Destination {
	return models.Destination{
		Title:           d.Title,
		Country:         d.Country,
		CountryCode:     d.CountryCode,
		Flag:            d.Flag,
		Description:     d.Description,
		LongDescription: d.LongDescription,
		Images:          d.Images,
		FeaturedImage:   d.FeaturedImage,
		Category:        d.Category,
		Continent:       d.Continent,
		Coordinates:     models.Coordinates{Latitude: d.Coordinates.Latitude, Longitude: d.Coordinates.Longitude},
		VisitorsCount:   d.VisitorsCount,
		Rating:          d.Rating,
		ReviewsCount:    d.ReviewsCount,
		BestTimeToVisit: models.BestTimeToVisit{Months: d.BestTimeToVisit.Months, Description: d.BestTimeToVisit.Description},
		Budget:          models.Budget{Level: d.Budget.Level, DailyAverage: d.Budget.DailyAverage, Currency: d.Budget.Currency},
		Highlights:      d.Highlights,
		Activities:      d.Activities,
		Transportation:  d.Transportation,
		Climate:         d.Climate,
		Language:        d.Language,
		Currency:        d.Currency,
		Timezone:        d.Timezone,
		VisaRequired:    d.VisaRequired,
		Tags:            d.Tags,
		Published:       d.Published,
		Slug:            d.Slug,
	}
}

func NewDestinationDTO(d models.Destination) DestinationDTO {
	out := DestinationDTO{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Country:         d.Country,
		CountryCode:     d.CountryCode,
		Flag:            d.Flag,
		Description:     d.Description,
		LongDescription: d.LongDescription,
		Images:          d.Images,
		FeaturedImage:   d.FeaturedImage,
		Category:        d.Category,
		Continent:       d.Continent,
		Coordinates:     CoordinatesDTO{Latitude: d.Coordinates.Latitude, Longitude: d.Coordinates.Longitude},
		VisitorsCount:   d.VisitorsCount,
		Rating:          d.Rating,
		ReviewsCount:    d.ReviewsCount,
		BestTimeToVisit: BestTimeToVisitDTO{Months: d.BestTimeToVisit.Months, Description: d.BestTimeToVisit.Description},
		Budget:          BudgetDTO{Level: d.Budget.Level, DailyAverage: d.Budget.DailyAverage, Currency: d.Budget.Currency},
		Highlights:      d.Highlights,
		Activities:      d.Activities,
		Transportation:  d.Transportation,
		Climate:         d.Climate,
		Language:        d.Language,
		Currency:        d.Currency,
		Timezone:        d.Timezone,
		VisaRequired:    d.VisaRequired,
		Tags:            d.Tags,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Published:       d.Published,
		Slug:            d.Slug,
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}
