package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNavigation means the browser never reached the target URL.
	ErrNavigation = errors.New("navigation failed")
	// ErrNotLoaded means the place page never showed its expected
	// structure within the timeout. The place is skipped, not the batch.
	ErrNotLoaded = errors.New("place page did not load")
)

// Page is the browser capability surface. Everything the scraper does to
// a page goes through it; the only concrete implementation drives a
// Chrome tab, tests substitute fakes.
type Page interface {
	Navigate(ctx context.Context, url string, timeout time.Duration) error
	// WaitForAny returns once the first of the selectors appears.
	WaitForAny(ctx context.Context, selectors []string, timeout time.Duration) error
	Count(ctx context.Context, selector string) (int, error)
	Text(ctx context.Context, selector string) (string, error)
	Texts(ctx context.Context, selector string) ([]string, error)
	Attribute(ctx context.Context, selector, name string) (string, bool, error)
	Click(ctx context.Context, selector string) error
	SendKey(ctx context.Context, key string) error
	ScrollBy(ctx context.Context, deltaY int) error
	Evaluate(ctx context.Context, expr string, out any) error
	// HTML returns the rendered outer HTML of the first match.
	HTML(ctx context.Context, selector string) (string, error)
}

// ItemSource is a lazily rendered list the harvester drives: a reviews
// panel or a search-results feed.
type ItemSource interface {
	// Count reports how many items are currently loaded.
	Count(ctx context.Context) (int, error)
	// Nudge issues the low-effort pagination signal (move-to-end).
	Nudge(ctx context.Context) error
	// Escalate issues the high-effort signal (large scroll delta).
	Escalate(ctx context.Context) error
}

// PlaceSite reads one place's page. Metadata is best-effort: unreadable
// fields stay at their zero values.
type PlaceSite interface {
	// Open navigates to the place URL and waits for the page structure.
	Open(ctx context.Context, url string) error
	Metadata(ctx context.Context) PlaceMetadata
	// AboutInfo fills description and attributes from the about tab.
	AboutInfo(ctx context.Context, info *PlaceMetadata)
	OpenReviews(ctx context.Context) error
	Reviews() ItemSource
	ExtractReviews(ctx context.Context, maxItems int) ([]RawReview, error)
}

// PlaceFeed is a search-results listing that yields place sources.
type PlaceFeed interface {
	Open(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Results() ItemSource
	ExtractPlaces(ctx context.Context, maxItems int) ([]PlaceSource, error)
}

// ManifestStore persists the place manifest the reviews stage consumes.
type ManifestStore interface {
	SavePlaces(places []PlaceSource) error
	LoadPlaces() ([]PlaceSource, error)
}

// ArtifactStore persists per-place documents and the final dataset.
type ArtifactStore interface {
	HasPlace(name string) bool
	SavePlace(name string, doc PlaceDocument) error
	ListPlaces() ([]string, error)
	LoadPlace(path string) (PlaceDocument, error)
	SaveDataset(rows []DatasetRow) error
}
