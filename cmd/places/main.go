package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"gmaps_reviews/internal/adapters/browser"
	"gmaps_reviews/internal/adapters/gmaps"
	"gmaps_reviews/internal/adapters/observability"
	"gmaps_reviews/internal/app"
	"gmaps_reviews/internal/shared"
	"gmaps_reviews/internal/storage/files"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.Serve(cfg.MetricsAddr)

	log.Info().
		Str("query", cfg.SearchQuery).
		Int("max_places", cfg.MaxPlaces).
		Bool("headless", cfg.Headless).
		Msg("place discovery starting")

	tab, cleanup, err := browser.New(ctx, browser.Options{Headless: cfg.Headless, Locale: cfg.Locale})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to launch browser")
	}
	defer cleanup()

	feed := gmaps.NewSearchFeed(tab, gmaps.SiteConfig{
		LoadTO:     cfg.LoadTO,
		SelectorTO: cfg.SelectorTO,
		FallbackTO: cfg.FallbackTO,
		TabSwitch:  cfg.TabSwitch,
	})
	store := files.New(cfg.PlacesFile, cfg.ReviewsDir, cfg.DatasetFile)

	svc := app.NewDiscoverService(feed, store, app.DiscoverConfig{
		Query:         cfg.SearchQuery,
		MaxPlaces:     cfg.MaxPlaces,
		EscalateAfter: cfg.EscalateAfter,
		GiveUpAfter:   cfg.FeedGiveUp,
		ScrollSettle:  cfg.ScrollSettle,
	})

	n, err := svc.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("place discovery failed")
	}
	log.Info().Int("places", n).Str("file", cfg.PlacesFile).Msg("place discovery completed")
}
