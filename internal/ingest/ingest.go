// Package ingest reads bestseller records from CSV.
//
// Columns are bound by header name. Rows that fail to parse or validate are
// skipped and reported rather than aborting the load.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"bestsellers/internal/book"
)

// Row is one CSV record before conversion. Every column is kept as text so a
// bad value only rejects its own row.
type Row struct {
	Title      string `csv:"Name"`
	Author     string `csv:"Author"`
	UserRating string `csv:"User Rating"`
	Reviews    string `csv:"Reviews"`
	Price      string `csv:"Price"`
	Year       string `csv:"Year"`
	Genre      string `csv:"Genre"`
}

// Columns lists the header names a dataset file must carry.
var Columns = []string{"Name", "Author", "User Rating", "Reviews", "Price", "Year", "Genre"}

// RowError describes a skipped row.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Report summarises one load.
type Report struct {
	RowsRead    int
	BooksLoaded int
	RowsSkipped int
	Skipped     []RowError
}

// Book converts the row, trimming every field.
func (r Row) Book() (book.Book, error) {
	rating, err := book.ParseRating(r.UserRating)
	if err != nil {
		return book.Book{}, fmt.Errorf("user rating: %w", err)
	}
	reviews, err := atoi("reviews", r.Reviews)
	if err != nil {
		return book.Book{}, err
	}
	price, err := atoi("price", r.Price)
	if err != nil {
		return book.Book{}, err
	}
	year, err := atoi("year", r.Year)
	if err != nil {
		return book.Book{}, err
	}

	return book.Book{
		Title:      strings.TrimSpace(r.Title),
		Author:     strings.TrimSpace(r.Author),
		UserRating: rating,
		Reviews:    reviews,
		Price:      price,
		Year:       year,
		Genre:      strings.TrimSpace(r.Genre),
	}, nil
}

// RowFromBook is the inverse of Row.Book.
func RowFromBook(b book.Book) Row {
	return Row{
		Title:      b.Title,
		Author:     b.Author,
		UserRating: b.UserRating.String(),
		Reviews:    strconv.Itoa(b.Reviews),
		Price:      strconv.Itoa(b.Price),
		Year:       strconv.Itoa(b.Year),
		Genre:      b.Genre,
	}
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", field, s)
	}
	return n, nil
}
