package main

import (
	"fmt"
	"os"

	"github.com/Samitho456/prepper-frontend/config"
	httpDelivery "github.com/Samitho456/prepper-frontend/internal/delivery/http"
	"github.com/Samitho456/prepper-frontend/internal/infrastructure/catalog"
	"github.com/Samitho456/prepper-frontend/internal/infrastructure/logging"
	"github.com/Samitho456/prepper-frontend/internal/usecase"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		logrus.Fatalf("Failed to initialise logger: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"version":     httpDelivery.Version,
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
	}).Info("Starting prepper frontend")

	// Initialize infrastructure dependencies
	client := catalog.NewClient(catalog.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		Burst:     cfg.API.Burst,
	}, logger)

	logger.WithFields(logrus.Fields{
		"base_url":   cfg.API.BaseURL,
		"timeout":    cfg.API.Timeout,
		"rate_limit": cfg.API.RateLimit,
		"cache_ttl":  cfg.Cache.TTL,
	}).Info("Catalog API configured")

	// Stores are owned here and handed to the views explicitly
	storeConfig := usecase.StoreConfig{CacheTTL: cfg.Cache.TTL}
	recipes := usecase.NewRecipeStore(client, logger, storeConfig)
	ingredients := usecase.NewIngredientStore(client, logger, storeConfig)

	handler := httpDelivery.NewHandler(recipes, ingredients, logger)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logger.WithError(err).Error("Failed to start server")
		os.Exit(1)
	}
}
