package gmaps

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gmaps_reviews/internal/domain"
)

// SearchFeed drives a Google Maps search and its infinite-scroll
// results panel.
type SearchFeed struct {
	page domain.Page
	cfg  SiteConfig
}

func NewSearchFeed(page domain.Page, cfg SiteConfig) *SearchFeed {
	return &SearchFeed{page: page, cfg: cfg}
}

func (f *SearchFeed) Open(ctx context.Context) error {
	if err := f.page.Navigate(ctx, "https://www.google.com/maps", f.cfg.LoadTO); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNavigation, err)
	}
	if err := f.page.WaitForAny(ctx, []string{selSearchBox}, f.cfg.SelectorTO); err != nil {
		return fmt.Errorf("search box never appeared: %w", err)
	}
	return nil
}

// Search fills the query, submits it and waits for the results feed.
func (f *SearchFeed) Search(ctx context.Context, query string) error {
	fill := fmt.Sprintf(
		`(() => { const box = document.querySelector(%q); if (!box) return false; box.value = %q; box.dispatchEvent(new Event("input", {bubbles: true})); box.focus(); return true; })()`,
		selSearchBox, query)
	var filled bool
	if err := f.page.Evaluate(ctx, fill, &filled); err != nil {
		return err
	}
	if !filled {
		return fmt.Errorf("search box not found")
	}
	if err := f.page.SendKey(ctx, "Enter"); err != nil {
		return err
	}
	if err := f.page.WaitForAny(ctx, []string{selFeed}, f.cfg.SelectorTO); err != nil {
		return fmt.Errorf("results feed never appeared: %w", err)
	}
	return nil
}

func (f *SearchFeed) Results() domain.ItemSource {
	return &feedPanel{page: f.page}
}

// ExtractPlaces snapshots the feed and parses the loaded result links.
func (f *SearchFeed) ExtractPlaces(ctx context.Context, maxItems int) ([]domain.PlaceSource, error) {
	html, err := f.page.HTML(ctx, selFeed)
	if err != nil {
		return nil, fmt.Errorf("snapshot results feed: %w", err)
	}
	return ParsePlaces(html, maxItems)
}

// ParsePlaces extracts place names and URLs from a rendered feed
// snapshot. Links missing either field are skipped.
func ParsePlaces(html string, maxItems int) ([]domain.PlaceSource, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var out []domain.PlaceSource
	doc.Find(selPlaceLink).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if len(out) >= maxItems {
			return false
		}
		name := strings.TrimSpace(link.AttrOr("aria-label", ""))
		url, _ := link.Attr("href")
		if name == "" || url == "" {
			return true
		}
		out = append(out, domain.PlaceSource{Name: name, URL: url})
		return true
	})
	return out, nil
}

// feedPanel feeds the harvester while the search results load in.
type feedPanel struct {
	page domain.Page
}

func (p *feedPanel) Count(ctx context.Context) (int, error) {
	return p.page.Count(ctx, selPlaceLink)
}

// Nudge scrolls the feed container itself; the feed does not react to
// keyboard scrolling the way the reviews panel does.
func (p *feedPanel) Nudge(ctx context.Context) error {
	expr := fmt.Sprintf(
		`(() => { const feed = document.querySelector(%q); if (feed) { feed.scrollTop = feed.scrollHeight; } return true; })()`,
		selFeed)
	return p.page.Evaluate(ctx, expr, nil)
}

func (p *feedPanel) Escalate(ctx context.Context) error {
	return p.page.ScrollBy(ctx, 5000)
}
