package gmaps

import "testing"

const reviewsPanelHTML = `
<div role="main">
  <div data-review-id="r1">
    <div class="d4r55 fontTitleMedium">Budi Santoso
Local Guide · 12 ulasan</div>
    <div class="DU9Pgb">
      <span class="hCCjke"></span><span class="hCCjke"></span><span class="hCCjke"></span>
      <span class="hCCjke"></span><span class="hCCjke"></span>
    </div>
    <span class="rsqaWe">2 bulan lalu</span>
    <span class="wiI7pd">Pantainya bersih dan indah.</span>
  </div>
  <div data-review-id="r2">
    <div class="d4r55 fontTitleMedium">Sari</div>
    <div class="DU9Pgb"><span class="hCCjke"></span></div>
    <span class="rsqaWe">setahun lalu</span>
    <span class="wiI7pd">   </span>
  </div>
  <div data-review-id="r3">
    <div class="DU9Pgb">
      <span class="hCCjke"></span><span class="hCCjke"></span><span class="hCCjke"></span>
    </div>
    <span class="rsqaWe">3 hari yang lalu</span>
    <span class="wiI7pd">Ramai saat akhir pekan.</span>
  </div>
  <div data-review-id="r4">
    <div class="d4r55 fontTitleMedium">Dewi</div>
    <div class="DU9Pgb"><span class="hCCjke"></span><span class="hCCjke"></span></div>
    <span class="rsqaWe">seminggu lalu</span>
    <span class="wiI7pd">Parkir luas, tiket murah.</span>
  </div>
</div>`

func TestParseReviews(t *testing.T) {
	got, err := ParseReviews(reviewsPanelHTML, 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("reviews = %d, want 3 (blank one dropped)", len(got))
	}

	first := got[0]
	if first.Author != "Budi Santoso" {
		t.Fatalf("author = %q, want the first line only", first.Author)
	}
	if first.Rating != 5 {
		t.Fatalf("rating = %d, want 5 filled stars", first.Rating)
	}
	if first.Text != "Pantainya bersih dan indah." {
		t.Fatalf("text = %q", first.Text)
	}
	if first.Time != "2 bulan lalu" {
		t.Fatalf("time = %q", first.Time)
	}

	if got[1].Author != "Anonymous" {
		t.Fatalf("missing author must fall back, got %q", got[1].Author)
	}
	if got[1].Rating != 3 {
		t.Fatalf("rating = %d, want 3", got[1].Rating)
	}
}

func TestParseReviewsBlankCardsDoNotConsumeLimit(t *testing.T) {
	// maxItems 3 with one blank card in between still yields all three
	// reviews with text
	got, err := ParseReviews(reviewsPanelHTML, 3)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("reviews = %d, want 3", len(got))
	}
}

func TestParseReviewsCap(t *testing.T) {
	got, err := ParseReviews(reviewsPanelHTML, 2)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("reviews = %d, want the cap 2", len(got))
	}
}

func TestParseReviewsEmptyPanel(t *testing.T) {
	got, err := ParseReviews(`<div role="main"></div>`, 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("reviews = %d, want none", len(got))
	}
}
