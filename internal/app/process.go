package app

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"gmaps_reviews/internal/adapters/observability"
	"gmaps_reviews/internal/domain"
)

// ProcessService turns persisted place artifacts into the final dataset:
// per place, clean -> dedupe -> stratified sample -> flatten, then union
// everything in manifest order. Artifacts are independent files, so the
// fan-out here is safe; the browser stages stay strictly serial.
type ProcessService struct {
	store      domain.ArtifactStore
	sampleSize int
	workers    int

	// newRand is swappable in tests for deterministic sampling.
	newRand func() *rand.Rand
}

func NewProcessService(store domain.ArtifactStore, sampleSize, workers int) *ProcessService {
	if sampleSize <= 0 {
		sampleSize = 150
	}
	if workers <= 0 {
		workers = 1
	}
	return &ProcessService{
		store:      store,
		sampleSize: sampleSize,
		workers:    workers,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Run processes every artifact and writes the dataset, returning the row
// count. A failing artifact is logged and skipped; only an empty input
// set or a failing write is fatal.
func (s *ProcessService) Run(ctx context.Context) (int, error) {
	paths, err := s.store.ListPlaces()
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, errors.New("no place artifacts found")
	}
	log.Info().Int("places", len(paths)).Msg("processing artifacts")

	now := time.Now()
	results := make([][]domain.DatasetRow, len(paths))
	sem := semaphore.NewWeighted(int64(s.workers))
	var wg sync.WaitGroup

	for i, p := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			return 0, err
		}
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			defer sem.Release(1)

			rows, err := s.processArtifact(path, now)
			if err != nil {
				log.Warn().Str("artifact", path).Err(err).Msg("artifact skipped")
				return
			}
			results[idx] = rows
		}(i, p)
	}
	wg.Wait()

	var all []domain.DatasetRow
	for _, rows := range results {
		all = append(all, rows...)
	}
	if len(all) == 0 {
		return 0, errors.New("no reviews survived processing")
	}

	if err := s.store.SaveDataset(all); err != nil {
		return 0, err
	}
	observability.ObserveDatasetRows(len(all))
	log.Info().Int("rows", len(all)).Interface("rating_distribution", ratingDistribution(all)).Msg("dataset written")
	return len(all), nil
}

func (s *ProcessService) processArtifact(path string, now time.Time) ([]domain.DatasetRow, error) {
	doc, err := s.store.LoadPlace(path)
	if err != nil {
		return nil, err
	}
	unique := DedupeAndEnrich(doc.Reviews, now)
	sampled := StratifiedSample(unique, s.sampleSize, s.newRand())
	return flattenPlace(doc.PlaceInfo, sampled), nil
}

func ratingDistribution(rows []domain.DatasetRow) map[int]int {
	dist := make(map[int]int, 6)
	for _, r := range rows {
		dist[r.UserRating]++
	}
	return dist
}
