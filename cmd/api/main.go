package main

import (
	"context"
	"net/http"

	"github.com/rs/cors"

	"github.com/syedsartaj/travel-adventure/api/router"
	"github.com/syedsartaj/travel-adventure/config"
	"github.com/syedsartaj/travel-adventure/db"
	_ "github.com/syedsartaj/travel-adventure/docs"
	"github.com/syedsartaj/travel-adventure/logger"
)

// @title           Travel Adventure API
// @version         1.0
// @description     Content API for the travel blog: stories, destinations, newsletter and tenant blogs
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	// Missing store configuration is an operator error; refuse to start.
	if err := db.Init(context.Background()); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		panic(err)
	}

	r := router.New()

	corsOpts := cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:         86400,
	}
	if len(corsOpts.AllowedOrigins) == 0 {
		corsOpts.AllowedOrigins = []string{"*"}
	}

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, cors.New(corsOpts).Handler(r)); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		panic(err)
	}
}
