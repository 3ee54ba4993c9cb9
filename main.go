package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"m3u-channel-curator/config"
	"m3u-channel-curator/handlers"
	"m3u-channel-curator/logger"
	"m3u-channel-curator/updater"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err == nil {
		logger.Default.Debug("Loaded environment from .env")
	}

	// manually set time zone
	if tz := os.Getenv("TZ"); tz != "" {
		var err error
		time.Local, err = time.LoadLocation(tz)
		if err != nil {
			logger.Default.Errorf("error loading location '%s': %v", tz, err)
		}
	}

	if _, err := config.Load(); err != nil {
		logger.Default.Fatalf("Configuration error: %v", err)
	}

	if os.Getenv("SERVE") != "true" {
		// One-shot batch run: fetch, transform, write both outputs, exit.
		instance := updater.New(ctx)
		if err := instance.RunOnce(ctx); err != nil {
			logger.Default.Fatalf("Pipeline error: %v", err)
		}
		return
	}

	if _, err := updater.Initialize(ctx); err != nil {
		logger.Default.Fatalf("Error initializing background processes: %v", err)
	}

	http.Handle("/playlist.m3u", handlers.NewM3UHTTPHandler(logger.Default, config.GetPlaylistPath()))
	http.Handle("/channels.json", handlers.NewCatalogHTTPHandler(logger.Default, config.GetCatalogPath()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Default.Logf("Server is running on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Default.Fatalf("HTTP server error: %v", err)
	}
}
