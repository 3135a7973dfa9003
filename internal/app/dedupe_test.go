package app_test

import (
	"testing"
	"time"

	"gmaps_reviews/internal/app"
	"gmaps_reviews/internal/domain"
)

func TestDedupeAndEnrich(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	raw := []domain.RawReview{
		{Author: "Budi", Rating: 5, Text: "Tempat  bagus", Time: "3 hari yang lalu"},
		{Author: "budi ", Rating: 5, Text: "Tempat bagus"}, // distinct: the dedup key keeps author case
		{Author: "Budi", Rating: 4, Text: "Tempat bagus", Time: "2 jam yang lalu"}, // duplicate of the first
		{Author: "Sari", Rating: 3, Text: "Tempat bagus"},                          // same text, different author
		{Author: "Anon", Rating: 2, Text: "   "},                                   // blank text, dropped
		{Author: "", Rating: 1, Text: "Sepi"},
	}

	out := app.DedupeAndEnrich(raw, now)
	if len(out) != 4 {
		t.Fatalf("got %d reviews, want 4: %+v", len(out), out)
	}

	// first occurrence wins, order preserved
	if out[0].Author != "Budi" || out[0].Rating != 5 {
		t.Fatalf("first survivor should be the original Budi review, got %+v", out[0])
	}
	if out[0].CleanText != "Tempat bagus" {
		t.Fatalf("CleanText = %q", out[0].CleanText)
	}
	if out[0].TimeISO != "2024-01-07" {
		t.Fatalf("TimeISO = %q, want 2024-01-07", out[0].TimeISO)
	}
	if out[0].UserID != app.AnonymizeUser("Budi") {
		t.Fatalf("UserID mismatch")
	}

	// empty author falls back to the anonymous id
	last := out[len(out)-1]
	if last.UserID != "anonymous" {
		t.Fatalf("empty author UserID = %q, want anonymous", last.UserID)
	}

	// key invariant: no two outputs share (author, text)
	type key struct{ a, b string }
	seen := map[key]bool{}
	for _, rv := range out {
		k := key{app.CleanText(rv.Author), rv.CleanText}
		if seen[k] {
			t.Fatalf("duplicate key in output: %+v", k)
		}
		seen[k] = true
	}
}

func TestDedupeAndEnrichIdempotent(t *testing.T) {
	now := time.Now()
	raw := []domain.RawReview{
		{Author: "A", Rating: 5, Text: "satu"},
		{Author: "B", Rating: 4, Text: "dua"},
		{Author: "A", Rating: 5, Text: "satu"},
	}
	once := app.DedupeAndEnrich(raw, now)

	again := make([]domain.RawReview, 0, len(once))
	for _, rv := range once {
		again = append(again, rv.RawReview)
	}
	twice := app.DedupeAndEnrich(again, now)

	if len(once) != len(twice) {
		t.Fatalf("second pass reduced further: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].CleanText != twice[i].CleanText || once[i].UserID != twice[i].UserID {
			t.Fatalf("second pass changed record %d", i)
		}
	}
}
