package main

import (
	"context"
	"time"

	"github.com/syedsartaj/travel-adventure/config"
	"github.com/syedsartaj/travel-adventure/db"
	"github.com/syedsartaj/travel-adventure/logger"
	"github.com/syedsartaj/travel-adventure/models"
	"github.com/syedsartaj/travel-adventure/repositories"
)

// Seeds the starter catalog. Upserts by slug, so rerunning is safe and never
// resets view or like counters.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		panic(err)
	}

	destRepo := repositories.NewDestinationRepository(db.Database())
	for _, d := range seedDestinations {
		d := d
		if _, err := destRepo.UpsertBySlug(ctx, &d); err != nil {
			logger.Log.Errorf("failed to upsert destination %s: %v", d.Slug, err)
			continue
		}
		logger.Log.Infof("upserted destination %s", d.Slug)
	}

	storyRepo := repositories.NewStoryRepository(db.Database())
	for _, s := range seedStories {
		s := s
		if _, err := storyRepo.UpsertBySlug(ctx, &s); err != nil {
			logger.Log.Errorf("failed to upsert story %s: %v", s.Slug, err)
			continue
		}
		logger.Log.Infof("upserted story %s", s.Slug)
	}
}

var seedDestinations = []models.Destination{
	{
		Title:           "Iceland",
		Country:         "Iceland",
		CountryCode:     "IS",
		Flag:            "🇮🇸",
		Description:     "Witness nature's most spectacular light show dance across Arctic skies",
		LongDescription: "Volcanoes, glaciers, black sand beaches and the northern lights make Iceland a year-round destination for nature lovers.",
		Images:          []string{"https://images.unsplash.com/photo-1483347756197-71ef80e95f73?w=1200&h=800&fit=crop"},
		FeaturedImage:   "https://images.unsplash.com/photo-1483347756197-71ef80e95f73?w=1200&h=800&fit=crop",
		Category:        "nature",
		Continent:       "Europe",
		Coordinates:     models.Coordinates{Latitude: 64.9631, Longitude: -19.0208},
		VisitorsCount:   2300000,
		Rating:          4.8,
		ReviewsCount:    1845,
		BestTimeToVisit: models.BestTimeToVisit{
			Months:      []string{"September", "October", "February", "March"},
			Description: "Aurora season, with long dark nights and frequent clear skies",
		},
		Budget:         models.Budget{Level: models.BudgetLevelLuxury, DailyAverage: 220, Currency: "ISK"},
		Highlights:     []string{"Northern Lights", "Golden Circle", "Blue Lagoon", "Glacier hiking"},
		Activities:     []string{"Aurora hunting", "Ice caving", "Whale watching"},
		Transportation: []string{"Rental car", "Guided tours"},
		Climate:        "Subarctic",
		Language:       "Icelandic",
		Currency:       "ISK",
		Timezone:       "GMT",
		VisaRequired:   false,
		Tags:           []string{"northern lights", "nature", "adventure"},
		Published:      true,
		Slug:           "iceland",
	},
	{
		Title:           "Cambodia",
		Country:         "Cambodia",
		CountryCode:     "KH",
		Flag:            "🇰🇭",
		Description:     "Journey through mystical ruins where history comes alive",
		LongDescription: "The temples of Angkor are the heart of a country rich in ancient tradition, floating villages and warm hospitality.",
		Images:          []string{"https://images.unsplash.com/photo-1563492065599-3520f775eeed?w=1200&h=800&fit=crop"},
		FeaturedImage:   "https://images.unsplash.com/photo-1563492065599-3520f775eeed?w=1200&h=800&fit=crop",
		Category:        "culture",
		Continent:       "Asia",
		Coordinates:     models.Coordinates{Latitude: 12.5657, Longitude: 104.991},
		VisitorsCount:   6600000,
		Rating:          4.6,
		ReviewsCount:    2931,
		BestTimeToVisit: models.BestTimeToVisit{
			Months:      []string{"November", "December", "January", "February"},
			Description: "Dry season with cooler temperatures",
		},
		Budget:         models.Budget{Level: models.BudgetLevelBudget, DailyAverage: 35, Currency: "USD"},
		Highlights:     []string{"Angkor Wat", "Bayon Temple", "Tonle Sap Lake"},
		Activities:     []string{"Temple tours", "Cycling", "Street food"},
		Transportation: []string{"Tuk-tuk", "Bicycle", "Bus"},
		Climate:        "Tropical",
		Language:       "Khmer",
		Currency:       "KHR",
		Timezone:       "GMT+7",
		VisaRequired:   true,
		Tags:           []string{"temples", "culture", "budget"},
		Published:      true,
		Slug:           "cambodia",
	},
	{
		Title:           "Tanzania",
		Country:         "Tanzania",
		CountryCode:     "TZ",
		Flag:            "🇹🇿",
		Description:     "Experience the raw beauty of African wildlife",
		LongDescription: "From the Serengeti migration to the crater floor of Ngorongoro, Tanzania is safari country without equal.",
		Images:          []string{"https://images.unsplash.com/photo-1516026672322-bc52d61a55d5?w=1200&h=800&fit=crop"},
		FeaturedImage:   "https://images.unsplash.com/photo-1516026672322-bc52d61a55d5?w=1200&h=800&fit=crop",
		Category:        "wildlife",
		Continent:       "Africa",
		Coordinates:     models.Coordinates{Latitude: -6.369, Longitude: 34.8888},
		VisitorsCount:   1500000,
		Rating:          4.9,
		ReviewsCount:    1203,
		BestTimeToVisit: models.BestTimeToVisit{
			Months:      []string{"June", "July", "August", "September"},
			Description: "Dry season and the great migration river crossings",
		},
		Budget:         models.Budget{Level: models.BudgetLevelModerate, DailyAverage: 150, Currency: "USD"},
		Highlights:     []string{"Serengeti", "Ngorongoro Crater", "Mount Kilimanjaro", "Zanzibar"},
		Activities:     []string{"Safari", "Trekking", "Diving"},
		Transportation: []string{"Safari vehicle", "Domestic flights"},
		Climate:        "Tropical savanna",
		Language:       "Swahili",
		Currency:       "TZS",
		Timezone:       "GMT+3",
		VisaRequired:   true,
		Tags:           []string{"safari", "wildlife", "adventure"},
		Published:      true,
		Slug:           "tanzania",
	},
}

var seedStories = []models.Story{
	{
		Title:       "Chasing the Northern Lights Across Iceland",
		Slug:        "chasing-northern-lights-iceland",
		Excerpt:     "Three nights of aurora hunting along Iceland's south coast, from Vik to Jokulsarlon.",
		Content:     "<p>We landed in Keflavik under a grey sky and drove east, chasing a forecast...</p>",
		Author:      models.Author{Name: "Sartaj Syed", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop", Bio: "Travel writer and photographer"},
		Destination: "Iceland",
		CoverImage:  "https://images.unsplash.com/photo-1483347756197-71ef80e95f73?w=1200&h=800&fit=crop",
		Images:      []string{},
		Category:    "adventure",
		Tags:        []string{"northern lights", "iceland", "roadtrip"},
		ReadTime:    7,
		PublishedAt: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
		Published:   true,
		Featured:    true,
	},
	{
		Title:       "Sunrise at Angkor Wat: A Practical Guide",
		Slug:        "sunrise-angkor-wat-guide",
		Excerpt:     "How to beat the crowds, which gate to use, and where to stand for the reflection shot.",
		Content:     "<p>The tuk-tuk picked us up at 4:30am, headlights cutting through the Siem Reap dark...</p>",
		Author:      models.Author{Name: "Sartaj Syed", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop", Bio: "Travel writer and photographer"},
		Destination: "Cambodia",
		CoverImage:  "https://images.unsplash.com/photo-1563492065599-3520f775eeed?w=1200&h=800&fit=crop",
		Images:      []string{},
		Category:    "culture",
		Tags:        []string{"temples", "cambodia", "photography"},
		ReadTime:    5,
		PublishedAt: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Published:   true,
		Featured:    false,
	},
}
