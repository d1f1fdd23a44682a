package main

import (
	"os"

	"github.com/emzola/bookscout/clients"
	"github.com/emzola/bookscout/config"
	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/handler"
	"github.com/emzola/bookscout/internal/jsonlog"
	"github.com/emzola/bookscout/provider"
	"github.com/emzola/bookscout/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/joho/godotenv"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration. A .env file, if present, feeds the
	// environment before decoding.
	_ = godotenv.Load()
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Shared resources: upstream HTTP client and in-memory search cache
	httpClient := clients.NewHTTPClient(cfg.Providers.Timeout)
	var cache *ttlcache.Cache[string, *data.SearchResult]
	if cfg.Cache.Enabled {
		cache = ttlcache.New(
			ttlcache.WithTTL[string, *data.SearchResult](cfg.Cache.TTL),
			ttlcache.WithCapacity[string, *data.SearchResult](cfg.Cache.Capacity),
		)
		go cache.Start()
	}

	// Application layers
	books := provider.NewOpenLibrary(httpClient, cfg.Providers.OpenLibrary.BaseURL)
	offers := provider.NewGoogleBooks(httpClient, cfg.Providers.GoogleBooks.BaseURL, logger)
	fallback := provider.NewFallbackGenerator()
	service := service.New(cfg, logger, books, offers, fallback)
	handler := handler.New(cfg, logger, cache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
