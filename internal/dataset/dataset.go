// Package dataset holds the in-memory collection of bestseller records for one run.
//
// A Dataset is built once by Load and is read-only afterwards; callers receive
// copies of the records so the loaded order and values never change.
package dataset

import (
	"errors"
	"sort"

	"bestsellers/internal/book"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptyDataset is returned when Load is given no records.
var ErrEmptyDataset = errors.New("dataset is empty")

// AuthorKey returns the case-insensitive identity of an author name: its lowercase form.
// Lowercasing never expands letters, so "Strauß" and "STRAUSS" stay distinct.
// Casers carry state, so a fresh one is used per call.
func AuthorKey(name string) string {
	return cases.Lower(language.Und).String(name)
}

// Dataset is an ordered, immutable sequence of books in file order.
type Dataset struct {
	books []book.Book
	keys  []string
}

// Load copies records into a new Dataset.
func Load(records []book.Book) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	books := make([]book.Book, len(records))
	copy(books, records)

	keys := make([]string, len(books))
	for i, b := range books {
		keys[i] = AuthorKey(b.Author)
	}
	return &Dataset{books: books, keys: keys}, nil
}

func (d *Dataset) Len() int {
	return len(d.books)
}

// All returns every book in file order.
func (d *Dataset) All() []book.Book {
	out := make([]book.Book, len(d.books))
	copy(out, d.books)
	return out
}

// FilterByAuthor returns the books whose full author name equals name, ignoring case.
// The result is empty, never nil, when nothing matches.
func (d *Dataset) FilterByAuthor(name string) []book.Book {
	key := AuthorKey(name)
	out := []book.Book{}
	for i, k := range d.keys {
		if k == key {
			out = append(out, d.books[i])
		}
	}
	return out
}

// UniqueAuthors returns one name per author identity, using the first-seen casing,
// sorted alphabetically without regard to case.
func (d *Dataset) UniqueAuthors() []string {
	type author struct{ name, key string }

	seen := make(map[string]struct{}, len(d.books))
	authors := make([]author, 0, len(d.books))
	for i, k := range d.keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		authors = append(authors, author{name: d.books[i].Author, key: k})
	}

	sort.Slice(authors, func(i, j int) bool {
		if authors[i].key != authors[j].key {
			return authors[i].key < authors[j].key
		}
		return authors[i].name < authors[j].name
	})

	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.name
	}
	return names
}
