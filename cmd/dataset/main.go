package main

import (
	"context"

	"github.com/rs/zerolog/log"

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
		Str("reviews_dir", cfg.ReviewsDir).
		Int("sample_size", cfg.SampleSize).
		Int("workers", cfg.Workers).
		Msg("dataset build starting")

	store := files.New(cfg.PlacesFile, cfg.ReviewsDir, cfg.DatasetFile)
	svc := app.NewProcessService(store, cfg.SampleSize, cfg.Workers)

	n, err := svc.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset build failed")
	}
	log.Info().Int("rows", n).Str("file", cfg.DatasetFile).Msg("dataset build completed")
}
