package gmaps

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gmaps_reviews/internal/domain"
)

// ParseReviews extracts up to maxItems reviews with text from a rendered
// reviews-panel snapshot. Cards without review text are skipped and do
// not count against maxItems.
func ParseReviews(html string, maxItems int) ([]domain.RawReview, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var out []domain.RawReview
	doc.Find(selReviewCard).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(out) >= maxItems {
			return false
		}

		text := strings.TrimSpace(card.Find(selReviewText).First().Text())
		if text == "" {
			return true
		}

		author := "Anonymous"
		if raw := strings.TrimSpace(card.Find(selReviewUser).First().Text()); raw != "" {
			// the first line is the display name; badges follow
			author = strings.TrimSpace(strings.SplitN(raw, "\n", 2)[0])
		}

		out = append(out, domain.RawReview{
			Author: author,
			Rating: card.Find(selReviewStar).Length(),
			Text:   text,
			Time:   strings.TrimSpace(card.Find(selReviewTime).First().Text()),
		})
		return true
	})
	return out, nil
}
