package app

import (
	"math/rand"

	"gmaps_reviews/internal/domain"
)

// StratifiedSample bounds a review pool to maxCount with a balanced
// rating distribution. When the pool already fits it is returned as-is.
// Otherwise reviews are bucketed by star rating (anything outside 0..5
// counts as unrated, bucket 0), each rated bucket 1..5 contributes up to
// maxCount/5 randomly chosen reviews, and the shortage is backfilled from
// the shuffled overflow pool, which also holds every unrated review. The
// result is shuffled so rows are not grouped by rating.
//
// rng is injected so callers (and tests) control the shuffle.
func StratifiedSample(reviews []domain.EnrichedReview, maxCount int, rng *rand.Rand) []domain.EnrichedReview {
	if len(reviews) <= maxCount {
		return reviews
	}

	buckets := make(map[int][]domain.EnrichedReview, 6)
	for _, rv := range reviews {
		b := rv.Rating
		if b < 0 || b > 5 {
			b = 0
		}
		buckets[b] = append(buckets[b], rv)
	}

	// bucket 0 never takes part in the primary allocation
	targetPerStar := maxCount / 5

	sampled := make([]domain.EnrichedReview, 0, maxCount)
	var overflow []domain.EnrichedReview

	for star := 1; star <= 5; star++ {
		in := buckets[star]
		rng.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })

		take := targetPerStar
		if take > len(in) {
			take = len(in)
		}
		sampled = append(sampled, in[:take]...)
		overflow = append(overflow, in[take:]...)
	}
	overflow = append(overflow, buckets[0]...)

	if shortage := maxCount - len(sampled); shortage > 0 && len(overflow) > 0 {
		rng.Shuffle(len(overflow), func(i, j int) { overflow[i], overflow[j] = overflow[j], overflow[i] })
		if shortage > len(overflow) {
			shortage = len(overflow)
		}
		sampled = append(sampled, overflow[:shortage]...)
	}

	rng.Shuffle(len(sampled), func(i, j int) { sampled[i], sampled[j] = sampled[j], sampled[i] })
	return sampled
}
