package gmaps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"gmaps_reviews/internal/domain"
)

type SiteConfig struct {
	LoadTO     time.Duration // full page navigation
	SelectorTO time.Duration // primary structure selector
	FallbackTO time.Duration // fallback header selector
	TabSwitch  time.Duration // settle after switching tabs
}

// Site reads one place page at a time. All field extraction is
// best-effort: an unreadable field stays at its zero value and the place
// still produces an artifact.
type Site struct {
	page domain.Page
	cfg  SiteConfig
}

func NewSite(page domain.Page, cfg SiteConfig) *Site {
	return &Site{page: page, cfg: cfg}
}

func (s *Site) Open(ctx context.Context, url string) error {
	if err := s.page.Navigate(ctx, url, s.cfg.LoadTO); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNavigation, err)
	}
	if err := s.page.WaitForAny(ctx, []string{selPlaceName}, s.cfg.SelectorTO); err != nil {
		if err := s.page.WaitForAny(ctx, []string{selHeader}, s.cfg.FallbackTO); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrNotLoaded, err)
		}
	}
	// allow full rendering before reading fields
	wait(ctx, 1500*time.Millisecond)
	return nil
}

func (s *Site) Metadata(ctx context.Context) domain.PlaceMetadata {
	info := domain.PlaceMetadata{AvgRating: "0"}

	if v, err := s.page.Text(ctx, selPlaceName); err == nil {
		info.Name = v
	}
	if v, err := s.page.Text(ctx, selAvgRating); err == nil && v != "" {
		info.AvgRating = strings.ReplaceAll(v, ",", ".")
	}
	if v, ok, err := s.page.Attribute(ctx, selTotalRev, "aria-label"); err == nil && ok {
		info.TotalReviewsText = v
	}
	if v, err := s.page.Text(ctx, selCategory); err == nil {
		info.Category = v
	}
	if vs, err := s.page.Texts(ctx, selAddress); err == nil && len(vs) > 0 {
		info.Address = vs[0]
	}
	return info
}

// AboutInfo switches to the about tab and fills description and
// attributes. Places without an about tab are left untouched.
func (s *Site) AboutInfo(ctx context.Context, info *domain.PlaceMetadata) {
	clicked, err := s.clickTab(ctx, "Tentang|About")
	if err != nil || !clicked {
		return
	}
	wait(ctx, time.Second)

	if v, err := s.page.Text(ctx, selAboutDesc); err == nil {
		info.Description = v
	}
	if vs, err := s.page.Texts(ctx, selAboutAttr); err == nil {
		for _, attr := range vs {
			// a group heading and its item render as two lines
			info.Attributes = append(info.Attributes, strings.ReplaceAll(attr, "\n", ": "))
		}
	}
}

func (s *Site) OpenReviews(ctx context.Context) error {
	clicked, err := s.clickTab(ctx, "Ulasan|Reviews")
	if err != nil {
		return err
	}
	if !clicked {
		return fmt.Errorf("reviews tab not found")
	}
	wait(ctx, s.cfg.TabSwitch)

	// focus the panel so keyboard scrolling lands on it
	if err := s.page.Click(ctx, selReviewCard); err != nil {
		log.Debug().Err(err).Msg("no review card to focus")
	}
	return nil
}

func (s *Site) Reviews() domain.ItemSource {
	return &reviewsPanel{page: s.page}
}

// ExtractReviews expands every truncated review, snapshots the rendered
// panel and parses it offline. Blank reviews are dropped without
// counting against maxItems.
func (s *Site) ExtractReviews(ctx context.Context, maxItems int) ([]domain.RawReview, error) {
	expand := fmt.Sprintf(
		`(() => { let n = 0; document.querySelectorAll(%q).forEach(b => { b.click(); n++; }); return n; })()`,
		selShowMore)
	var expanded int
	if err := s.page.Evaluate(ctx, expand, &expanded); err != nil {
		return nil, fmt.Errorf("expand reviews: %w", err)
	}
	if expanded > 0 {
		wait(ctx, 300*time.Millisecond)
	}

	html, err := s.page.HTML(ctx, selMainPane)
	if err != nil {
		return nil, fmt.Errorf("snapshot reviews panel: %w", err)
	}
	return ParseReviews(html, maxItems)
}

// clickTab clicks the first tab whose label matches the pattern.
func (s *Site) clickTab(ctx context.Context, pattern string) (bool, error) {
	expr := fmt.Sprintf(
		`(() => { const re = new RegExp(%q, "i"); for (const el of document.querySelectorAll(%q)) { if (re.test(el.textContent)) { el.click(); return true; } } return false; })()`,
		pattern, selTab)
	var clicked bool
	if err := s.page.Evaluate(ctx, expr, &clicked); err != nil {
		return false, err
	}
	return clicked, nil
}

// reviewsPanel feeds the harvester: the card count grows as the panel
// is scrolled.
type reviewsPanel struct {
	page domain.Page
}

func (p *reviewsPanel) Count(ctx context.Context) (int, error) {
	return p.page.Count(ctx, selReviewCard)
}

func (p *reviewsPanel) Nudge(ctx context.Context) error {
	return p.page.SendKey(ctx, "End")
}

func (p *reviewsPanel) Escalate(ctx context.Context) error {
	return p.page.ScrollBy(ctx, 5000)
}

func wait(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
