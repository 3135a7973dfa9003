package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gmaps_reviews/internal/app"
	"gmaps_reviews/internal/domain"
)

type fakeFeed struct {
	openErr   error
	searchErr error

	query  string
	source *fakeSource
	places []domain.PlaceSource
}

func (f *fakeFeed) Open(ctx context.Context) error { return f.openErr }

func (f *fakeFeed) Search(ctx context.Context, query string) error {
	f.query = query
	return f.searchErr
}

func (f *fakeFeed) Results() domain.ItemSource {
	if f.source == nil {
		f.source = &fakeSource{count: 500, growth: 50, ceiling: 500}
	}
	return f.source
}

func (f *fakeFeed) ExtractPlaces(ctx context.Context, maxItems int) ([]domain.PlaceSource, error) {
	if len(f.places) > maxItems {
		return f.places[:maxItems], nil
	}
	return f.places, nil
}

type fakeManifest struct {
	saved  []domain.PlaceSource
	loaded []domain.PlaceSource
}

func (f *fakeManifest) SavePlaces(places []domain.PlaceSource) error {
	f.saved = places
	return nil
}

func (f *fakeManifest) LoadPlaces() ([]domain.PlaceSource, error) { return f.loaded, nil }

func discoverCfg() app.DiscoverConfig {
	return app.DiscoverConfig{
		Query:         "Tempat Wisata di Karawang",
		MaxPlaces:     100,
		EscalateAfter: 3,
		GiveUpAfter:   10,
		ScrollSettle:  time.Millisecond,
	}
}

func TestDiscoverRunSavesManifest(t *testing.T) {
	feed := &fakeFeed{places: []domain.PlaceSource{
		{Name: "Pantai Samudra", URL: "https://maps.example/a"},
		{Name: "Curug Cigentis", URL: "https://maps.example/b"},
	}}
	store := &fakeManifest{}
	svc := app.NewDiscoverService(feed, store, discoverCfg())

	n, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 2 || len(store.saved) != 2 {
		t.Fatalf("places = %d (saved %d), want 2", n, len(store.saved))
	}
	if feed.query != "Tempat Wisata di Karawang" {
		t.Fatalf("searched %q", feed.query)
	}
}

func TestDiscoverRunCapsAtMaxPlaces(t *testing.T) {
	var many []domain.PlaceSource
	for i := 0; i < 150; i++ {
		many = append(many, domain.PlaceSource{Name: "p", URL: "u"})
	}
	feed := &fakeFeed{places: many}
	store := &fakeManifest{}
	svc := app.NewDiscoverService(feed, store, discoverCfg())

	n, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 100 {
		t.Fatalf("places = %d, want the 100-place cap", n)
	}
}

func TestDiscoverRunEmptyResults(t *testing.T) {
	feed := &fakeFeed{}
	svc := app.NewDiscoverService(feed, &fakeManifest{}, discoverCfg())

	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatalf("empty search results must be an error")
	}
}

func TestDiscoverRunSearchFailure(t *testing.T) {
	feed := &fakeFeed{searchErr: errors.New("feed never appeared")}
	store := &fakeManifest{}
	svc := app.NewDiscoverService(feed, store, discoverCfg())

	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatalf("search failure must surface")
	}
	if store.saved != nil {
		t.Fatalf("nothing should be saved on failure")
	}
}
