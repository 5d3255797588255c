package catalog

import (
	"bestsellers/internal/book"
	"bestsellers/internal/stats"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_queries.go -package=mocks

// Queries is the read-only query surface driven by the menu and the self-check.
type Queries interface {
	CountBooksByAuthor(name string) int
	ListAuthors() AuthorList
	BooksByAuthor(name string) []book.Book
	ClassifyByRating(input string) (RatingClass, error)
	PricesByAuthor(name string) []TitlePrice
	Statistics() stats.Stats
}

var _ Queries = (*Service)(nil)
