package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gmaps_reviews/internal/domain"
)

type DiscoverConfig struct {
	Query         string
	MaxPlaces     int
	EscalateAfter int
	GiveUpAfter   int
	ScrollSettle  time.Duration
}

// DiscoverService searches for places and writes the manifest the
// reviews stage consumes.
type DiscoverService struct {
	feed      domain.PlaceFeed
	store     domain.ManifestStore
	harvester *Harvester
	cfg       DiscoverConfig
}

func NewDiscoverService(feed domain.PlaceFeed, store domain.ManifestStore, cfg DiscoverConfig) *DiscoverService {
	return &DiscoverService{
		feed:      feed,
		store:     store,
		harvester: NewHarvester(feed.Results(), cfg.EscalateAfter, cfg.GiveUpAfter, cfg.ScrollSettle),
		cfg:       cfg,
	}
}

// Run performs the search, scrolls the feed until it stops producing or
// the cap is hit, and persists the manifest.
func (s *DiscoverService) Run(ctx context.Context) (int, error) {
	if err := s.feed.Open(ctx); err != nil {
		return 0, err
	}
	if err := s.feed.Search(ctx, s.cfg.Query); err != nil {
		return 0, err
	}

	loaded, err := s.harvester.Harvest(ctx, s.cfg.MaxPlaces, 0)
	if err != nil {
		return 0, err
	}
	log.Info().Str("query", s.cfg.Query).Int("loaded", loaded).Msg("feed scrolled")

	places, err := s.feed.ExtractPlaces(ctx, s.cfg.MaxPlaces)
	if err != nil {
		return 0, err
	}
	if len(places) == 0 {
		return 0, fmt.Errorf("no places found for %q", s.cfg.Query)
	}

	if err := s.store.SavePlaces(places); err != nil {
		return 0, err
	}
	log.Info().Int("places", len(places)).Msg("manifest saved")
	return len(places), nil
}
