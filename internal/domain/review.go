package domain

// RawReview is one review card as read from the page. Unreadable fields
// degrade to their zero-ish fallbacks (author "Anonymous", rating 0,
// empty time text) instead of failing the card.
type RawReview struct {
	Author string `json:"user_name"`
	Rating int    `json:"rating"` // 0..5, 0 = unrated/unparseable
	Text   string `json:"text"`
	Time   string `json:"time"` // relative, e.g. "3 hari yang lalu"
}

// EnrichedReview is a unique raw review plus derived fields. CleanText is
// never empty: blank reviews are dropped before enrichment.
type EnrichedReview struct {
	RawReview
	UserID    string // md5-prefix of the normalized author name
	CleanText string
	TimeISO   string // YYYY-MM-DD, empty when unparseable
}

// DatasetRow is the flattened join of a sampled review with its place's
// scalar metadata. The final CSV writes columns in field order.
type DatasetRow struct {
	UserID            string
	UserRating        int
	ReviewText        string
	ReviewTime        string
	PlaceName         string
	PlaceDescription  string
	PlaceCategory     string
	PlaceAttributes   string
	PlaceAddress      string
	PlaceTotalReviews int
	PlaceAvgRating    float64
}
