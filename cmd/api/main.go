// ABOUTME: Main entry point for the DLE API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dle-app-api/api"
	"dle-app-api/api/handlers"
	"dle-app-api/core/interfaces"
	"dle-app-api/core/lookup"
	"dle-app-api/core/wordofday"
	collyhttp "dle-app-api/infrastructure/http/colly"
	stdhttp "dle-app-api/infrastructure/http/standard"
	logruslogger "dle-app-api/infrastructure/logger/logrus"
	"dle-app-api/pkg/config"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(logruslogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting DLE API", map[string]interface{}{
		"port":     cfg.Server.Port,
		"fetcher":  cfg.Dictionary.FetcherType,
		"base_url": cfg.Dictionary.BaseURL,
	})

	// Create HTTP client
	var httpClient interfaces.HTTPClient
	switch cfg.Dictionary.FetcherType {
	case "colly":
		httpClient = collyhttp.NewCollyHTTPClient(cfg.Dictionary.HTTPTimeout(), cfg.Dictionary.UserAgent)
		logger.Info("Using colly fetcher", nil)
	default:
		httpClient = stdhttp.NewStandardHTTPClient(cfg.Dictionary.HTTPTimeout(), cfg.Dictionary.UserAgent)
		logger.Info("Using standard fetcher", nil)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	lookupService := lookup.NewLookupService(deps, lookup.Config{
		BaseURL: cfg.Dictionary.BaseURL,
	})
	wordOfDayService := wordofday.NewWordOfDayService(deps, wordofday.Config{
		FeedURL: cfg.Dictionary.WordOfDayFeedURL,
	})

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger: logger,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	lookupHandler := handlers.NewLookupHandler(lookupService)
	lookupHandler.RegisterRoutes(humaAPI)

	wordOfDayHandler := handlers.NewWordOfDayHandler(wordOfDayService, lookupService)
	wordOfDayHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(version)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    ____  __    ______   ___    ____  ____
   / __ \/ /   / ____/  /   |  / __ \/  _/
  / / / / /   / __/    / /| | / /_/ // /
 / /_/ / /___/ /___   / ___ |/ ____// /
/_____/_____/_____/  /_/  |_/_/   /___/
	`)
}
