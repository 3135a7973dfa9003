package app

import (
	"gmaps_reviews/internal/domain"
)

// flattenPlace joins every sampled review with its place's scalar
// metadata into denormalized dataset rows. Numeric place fields are
// parsed here, once per place, from their display text.
func flattenPlace(info domain.PlaceMetadata, reviews []domain.EnrichedReview) []domain.DatasetRow {
	name := CleanText(info.Name)
	category := CleanText(info.Category)
	address := CleanText(info.Address)
	description := CleanText(info.Description)
	attributes := CleanAttributes(info.Attributes)
	avgRating := ParseDecimal(info.AvgRating)
	totalReviews := ParseIntFromText(info.TotalReviewsText)

	rows := make([]domain.DatasetRow, 0, len(reviews))
	for _, rv := range reviews {
		rows = append(rows, domain.DatasetRow{
			UserID:            rv.UserID,
			UserRating:        rv.Rating,
			ReviewText:        rv.CleanText,
			ReviewTime:        rv.TimeISO,
			PlaceName:         name,
			PlaceDescription:  description,
			PlaceCategory:     category,
			PlaceAttributes:   attributes,
			PlaceAddress:      address,
			PlaceTotalReviews: totalReviews,
			PlaceAvgRating:    avgRating,
		})
	}
	return rows
}
