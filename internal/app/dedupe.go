package app

import (
	"time"

	"gmaps_reviews/internal/domain"
)

// signature identifies a unique review: same author plus same text is a
// duplicate; identical text from different authors is not.
type signature struct {
	author string
	text   string
}

// DedupeAndEnrich drops repeated reviews keyed on (cleaned author,
// cleaned text), keeping the first occurrence in input order, and
// attaches the derived fields. Reviews whose cleaned text is empty are
// excluded before the key is computed.
func DedupeAndEnrich(raw []domain.RawReview, now time.Time) []domain.EnrichedReview {
	seen := make(map[signature]struct{}, len(raw))
	out := make([]domain.EnrichedReview, 0, len(raw))

	for _, r := range raw {
		author := CleanText(r.Author)
		text := CleanText(r.Text)
		if text == "" {
			continue
		}

		sig := signature{author: author, text: text}
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}

		out = append(out, domain.EnrichedReview{
			RawReview: r,
			UserID:    AnonymizeUser(author),
			CleanText: text,
			TimeISO:   ResolveRelativeTime(CleanText(r.Time), now),
		})
	}
	return out
}
