package catalog

import (
	"bestsellers/internal/book"

	"github.com/shopspring/decimal"
)

// AuthorList is the set of distinct authors in the dataset.
type AuthorList struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// RatingClass holds the books sharing one exact user rating.
type RatingClass struct {
	Rating book.Rating `json:"rating"`
	Books  []book.Book `json:"books"`
	Count  int         `json:"count"`
}

// TitlePrice pairs a title with its price in USD.
type TitlePrice struct {
	Title string `json:"title"`
	Price int    `json:"price"`
}

// PriceSummary totals a list of prices.
type PriceSummary struct {
	Items   []TitlePrice    `json:"items"`
	Total   int             `json:"total"`
	Average decimal.Decimal `json:"average"`
}
