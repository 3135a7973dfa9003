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

	store := files.New(cfg.PlacesFile, cfg.ReviewsDir, cfg.DatasetFile)
	places, err := store.LoadPlaces()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the places manifest")
	}
	if len(places) > cfg.MaxPlaces {
		places = places[:cfg.MaxPlaces]
	}

	log.Info().
		Int("places", len(places)).
		Int("max_reviews", cfg.MaxReviews).
		Bool("headless", cfg.Headless).
		Msg("review scraper starting")

	tab, cleanup, err := browser.New(ctx, browser.Options{Headless: cfg.Headless, Locale: cfg.Locale})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to launch browser")
	}
	defer cleanup()

	site := gmaps.NewSite(tab, gmaps.SiteConfig{
		LoadTO:     cfg.LoadTO,
		SelectorTO: cfg.SelectorTO,
		FallbackTO: cfg.FallbackTO,
		TabSwitch:  cfg.TabSwitch,
	})

	svc := app.NewScrapeService(site, store, app.ScrapeConfig{
		MaxReviews:    cfg.MaxReviews,
		ScrollBuffer:  cfg.ScrollBuffer,
		EscalateAfter: cfg.EscalateAfter,
		GiveUpAfter:   cfg.GiveUpAfter,
		ScrollSettle:  cfg.ScrollSettle,
		NavPerSec:     cfg.NavPerSec,
	})

	// one tab, one place at a time; a failed place never stops the batch
	for i, src := range places {
		log.Info().Int("index", i+1).Int("total", len(places)).Str("place", src.Name).Msg("processing place")
		if err := svc.ScrapePlace(ctx, src); err != nil {
			log.Warn().Str("place", src.Name).Err(err).Msg("place failed, continuing")
		}
	}
	log.Info().Msg("review scraping completed")
}
