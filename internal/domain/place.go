package domain

// PlaceSource is one row of the places manifest produced by cmd/places.
type PlaceSource struct {
	Name string
	URL  string
}

// PlaceMetadata is read once from the place's main and about views.
// Fields hold display text as-is; parsing happens at flatten time.
type PlaceMetadata struct {
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	AvgRating        string   `json:"avg_rating"`         // may use a comma decimal separator
	TotalReviewsText string   `json:"total_reviews_text"` // e.g. "1.234 ulasan"
	Address          string   `json:"address"`
	Description      string   `json:"description"`
	Attributes       []string `json:"attributes"` // "key: value" fragments
}

// PlaceDocument is the per-place artifact persisted by the scraper and
// consumed by the dataset processor. Its existence on disk marks the
// place as already scraped.
type PlaceDocument struct {
	PlaceInfo PlaceMetadata `json:"place_info"`
	Reviews   []RawReview   `json:"reviews"`
}
