// Package stats computes dataset-wide summary figures.
package stats

import (
	"bestsellers/internal/book"
	"bestsellers/internal/dataset"

	"github.com/shopspring/decimal"
)

const (
	// RatingPlaces is the number of decimals kept for the average rating.
	RatingPlaces = 1
	// PricePlaces is the number of decimals kept for the average price.
	PricePlaces = 2
	// PercentPlaces is the number of decimals kept for genre shares.
	PercentPlaces = 1
)

type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type RatingRange struct {
	Min book.Rating `json:"min"`
	Max book.Rating `json:"max"`
}

// GenreCount is one row of the genre distribution.
type GenreCount struct {
	Genre   string          `json:"genre"`
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

// Stats summarises a dataset. Averages are rounded half up.
type Stats struct {
	TotalBooks        int             `json:"total_books"`
	UniqueAuthorCount int             `json:"unique_author_count"`
	YearRange         IntRange        `json:"year_range"`
	AverageRating     decimal.Decimal `json:"average_rating"`
	RatingRange       RatingRange     `json:"rating_range"`
	AveragePrice      decimal.Decimal `json:"average_price"`
	PriceRange        IntRange        `json:"price_range"`
	// GenreDistribution is ordered by first occurrence in the dataset.
	GenreDistribution []GenreCount `json:"genre_distribution"`
}

// Compute walks the dataset once and returns its statistics.
func Compute(ds *dataset.Dataset) Stats {
	books := ds.All()
	s := Stats{
		TotalBooks:        len(books),
		UniqueAuthorCount: len(ds.UniqueAuthors()),
	}

	ratingSum := decimal.Zero
	priceSum := int64(0)
	genreIndex := make(map[string]int)

	for i, b := range books {
		if i == 0 {
			s.YearRange = IntRange{Min: b.Year, Max: b.Year}
			s.PriceRange = IntRange{Min: b.Price, Max: b.Price}
			s.RatingRange = RatingRange{Min: b.UserRating, Max: b.UserRating}
		}
		s.YearRange.Min = min(s.YearRange.Min, b.Year)
		s.YearRange.Max = max(s.YearRange.Max, b.Year)
		s.PriceRange.Min = min(s.PriceRange.Min, b.Price)
		s.PriceRange.Max = max(s.PriceRange.Max, b.Price)
		if b.UserRating.LessThan(s.RatingRange.Min) {
			s.RatingRange.Min = b.UserRating
		}
		if s.RatingRange.Max.LessThan(b.UserRating) {
			s.RatingRange.Max = b.UserRating
		}

		ratingSum = ratingSum.Add(b.UserRating.Decimal())
		priceSum += int64(b.Price)

		idx, ok := genreIndex[b.Genre]
		if !ok {
			idx = len(s.GenreDistribution)
			genreIndex[b.Genre] = idx
			s.GenreDistribution = append(s.GenreDistribution, GenreCount{Genre: b.Genre})
		}
		s.GenreDistribution[idx].Count++
	}

	if s.TotalBooks == 0 {
		return s
	}

	total := decimal.NewFromInt(int64(s.TotalBooks))
	s.AverageRating = Mean(ratingSum, total, RatingPlaces)
	s.AveragePrice = Mean(decimal.NewFromInt(priceSum), total, PricePlaces)
	hundred := decimal.NewFromInt(100)
	for i := range s.GenreDistribution {
		count := decimal.NewFromInt(int64(s.GenreDistribution[i].Count))
		s.GenreDistribution[i].Percent = Mean(count.Mul(hundred), total, PercentPlaces)
	}
	return s
}

// Mean divides sum by n and rounds half up to places decimals.
// Both operands are expected to be non-negative.
func Mean(sum, n decimal.Decimal, places int32) decimal.Decimal {
	if n.IsZero() {
		return decimal.Zero
	}
	q, r := sum.QuoRem(n, places)
	if r.Mul(two).GreaterThanOrEqual(n.Shift(-places)) {
		q = q.Add(decimal.New(1, -places))
	}
	return q
}

var two = decimal.NewFromInt(2)
