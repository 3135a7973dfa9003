package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"gmaps_reviews/internal/adapters/observability"
	"gmaps_reviews/internal/domain"
)

type ScrapeConfig struct {
	MaxReviews    int // target reviews with text, per place
	ScrollBuffer  int // extra cards loaded to survive empty-review filtering
	EscalateAfter int
	GiveUpAfter   int
	ScrollSettle  time.Duration
	NavPerSec     float64 // politeness cap on navigations, 0 disables
}

// ScrapeService runs one place at a time against a single browser page.
// The page is owned exclusively for the whole of a place's processing.
type ScrapeService struct {
	site      domain.PlaceSite
	store     domain.ArtifactStore
	harvester *Harvester
	limiter   *rate.Limiter
	cfg       ScrapeConfig
}

func NewScrapeService(site domain.PlaceSite, store domain.ArtifactStore, cfg ScrapeConfig) *ScrapeService {
	var rl *rate.Limiter
	if cfg.NavPerSec > 0 {
		rl = rate.NewLimiter(rate.Limit(cfg.NavPerSec), 1)
	}
	return &ScrapeService{
		site:      site,
		store:     store,
		harvester: NewHarvester(site.Reviews(), cfg.EscalateAfter, cfg.GiveUpAfter, cfg.ScrollSettle),
		limiter:   rl,
		cfg:       cfg,
	}
}

// ScrapePlace collects one place's metadata and reviews and persists its
// artifact. Re-runs are idempotent: an existing artifact skips the place.
// Sub-step failures past navigation degrade to partial data.
func (s *ScrapeService) ScrapePlace(ctx context.Context, src domain.PlaceSource) error {
	if s.store.HasPlace(src.Name) {
		log.Info().Str("place", src.Name).Msg("artifact exists, skipping")
		observability.ObservePlace("skipped")
		return nil
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if err := s.site.Open(ctx, src.URL); err != nil {
		observability.ObservePlace("failed")
		return err
	}

	info := s.site.Metadata(ctx)
	info.Name = src.Name // the manifest name wins over the page header
	s.site.AboutInfo(ctx, &info)
	log.Info().
		Str("place", src.Name).
		Str("category", info.Category).
		Str("rating", info.AvgRating).
		Msg("metadata extracted")

	var reviews []domain.RawReview
	if err := s.site.OpenReviews(ctx); err != nil {
		log.Warn().Str("place", src.Name).Err(err).Msg("reviews tab unavailable, keeping metadata only")
	} else {
		started := time.Now()
		loaded, err := s.harvester.Harvest(ctx, s.cfg.MaxReviews, s.cfg.ScrollBuffer)
		observability.ObserveHarvest(time.Since(started))
		if err != nil {
			log.Warn().Str("place", src.Name).Int("loaded", loaded).Err(err).Msg("harvest interrupted, extracting partial list")
		}

		reviews, err = s.site.ExtractReviews(ctx, s.cfg.MaxReviews)
		if err != nil {
			log.Warn().Str("place", src.Name).Err(err).Msg("review extraction failed")
			reviews = nil
		}
		observability.ObserveReviews(len(reviews))
		log.Info().Str("place", src.Name).Int("loaded", loaded).Int("with_text", len(reviews)).Msg("reviews collected")
	}

	if err := s.store.SavePlace(src.Name, domain.PlaceDocument{PlaceInfo: info, Reviews: reviews}); err != nil {
		observability.ObservePlace("failed")
		return err
	}
	observability.ObservePlace("ok")
	return nil
}
