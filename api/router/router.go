package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/syedsartaj/travel-adventure/api/handlers"
	"github.com/syedsartaj/travel-adventure/db"
	_ "github.com/syedsartaj/travel-adventure/docs"
	"github.com/syedsartaj/travel-adventure/middleware"
	"github.com/syedsartaj/travel-adventure/repositories"
	"github.com/syedsartaj/travel-adventure/services"
	"github.com/syedsartaj/travel-adventure/smaksly"
)

func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		storySvc := services.NewStoryService(repositories.NewStoryRepository(db.Database()))
		api.GET("/stories", handlers.ListStoriesHandler(storySvc))
		api.POST("/stories", handlers.CreateStoryHandler(storySvc))
		api.GET("/stories/slug/:slug", handlers.GetStoryBySlugHandler(storySvc))
		api.GET("/stories/:id", handlers.GetStoryHandler(storySvc))
		api.PUT("/stories/:id", handlers.UpdateStoryHandler(storySvc))
		api.DELETE("/stories/:id", handlers.DeleteStoryHandler(storySvc))
		api.POST("/stories/:slug/comments", handlers.AddCommentHandler(storySvc))

		destSvc := services.NewDestinationService(repositories.NewDestinationRepository(db.Database()))
		api.GET("/destinations", handlers.ListDestinationsHandler(destSvc))
		api.POST("/destinations", handlers.CreateDestinationHandler(destSvc))
		api.GET("/destinations/search", handlers.SearchDestinationsHandler(destSvc))
		api.GET("/destinations/slug/:slug", handlers.GetDestinationBySlugHandler(destSvc))
		api.GET("/destinations/:id", handlers.GetDestinationHandler(destSvc))
		api.PUT("/destinations/:id", handlers.UpdateDestinationHandler(destSvc))
		api.DELETE("/destinations/:id", handlers.DeleteDestinationHandler(destSvc))

		newsletterSvc := services.NewNewsletterService(repositories.NewNewsletterRepository(db.Database()))
		api.POST("/newsletter", handlers.SubscribeHandler(newsletterSvc))

		blogSvc := smaksly.NewService(db.SmakslyDatabase())
		api.GET("/blogs", handlers.ListBlogsHandler(blogSvc))
		api.GET("/blogs/slug/:slug", handlers.GetBlogBySlugHandler(blogSvc))
		api.GET("/blogs/id/:id", handlers.GetBlogByIDHandler(blogSvc))
		api.GET("/debug", handlers.DebugHandler(blogSvc))
	}

	return r
}
