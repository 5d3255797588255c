package catalog

import (
	"bestsellers/internal/book"
	"bestsellers/internal/dataset"
	"bestsellers/internal/stats"

	"github.com/shopspring/decimal"
)

// Service answers read-only questions about one loaded dataset.
type Service struct {
	ds *dataset.Dataset
}

// NewService creates a new catalog service over ds.
func NewService(ds *dataset.Dataset) *Service {
	return &Service{ds: ds}
}

// CountBooksByAuthor returns how many books the author has. Unknown authors yield 0.
func (s *Service) CountBooksByAuthor(name string) int {
	return len(s.ds.FilterByAuthor(name))
}

// ListAuthors returns the distinct authors and their number.
func (s *Service) ListAuthors() AuthorList {
	names := s.ds.UniqueAuthors()
	return AuthorList{Names: names, Count: len(names)}
}

// BooksByAuthor returns the author's books in file order.
func (s *Service) BooksByAuthor(name string) []book.Book {
	return s.ds.FilterByAuthor(name)
}

// ClassifyByRating returns the books whose rating equals the given decimal exactly.
// Input that is not a decimal number fails with book.ErrInvalidRatingFormat.
func (s *Service) ClassifyByRating(input string) (RatingClass, error) {
	rating, err := book.ParseRating(input)
	if err != nil {
		return RatingClass{}, err
	}

	matched := []book.Book{}
	for _, b := range s.ds.All() {
		if b.UserRating.Equal(rating) {
			matched = append(matched, b)
		}
	}
	return RatingClass{Rating: rating, Books: matched, Count: len(matched)}, nil
}

// PricesByAuthor returns the title and price of each of the author's books.
func (s *Service) PricesByAuthor(name string) []TitlePrice {
	books := s.ds.FilterByAuthor(name)
	out := make([]TitlePrice, 0, len(books))
	for _, b := range books {
		out = append(out, TitlePrice{Title: b.Title, Price: b.Price})
	}
	return out
}

// Statistics returns the dataset summary.
func (s *Service) Statistics() stats.Stats {
	return stats.Compute(s.ds)
}

// SummarizePrices adds up items and averages them to cents.
func SummarizePrices(items []TitlePrice) PriceSummary {
	total := 0
	for _, it := range items {
		total += it.Price
	}
	return PriceSummary{
		Items:   items,
		Total:   total,
		Average: stats.Mean(decimal.NewFromInt(int64(total)), decimal.NewFromInt(int64(len(items))), stats.PricePlaces),
	}
}
