package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"bestsellers/internal/book"
)

// Bestsellers is a small dataset with the authors the self-check looks for.
func Bestsellers() []book.Book {
	r := book.MustParseRating
	return []book.Book{
		{Title: "A Game of Thrones", Author: "George R. R. Martin", UserRating: r("4.7"), Reviews: 5594, Price: 30, Year: 2012, Genre: "Fiction"},
		{Title: "A Dance with Dragons", Author: "George R. R. Martin", UserRating: r("4.4"), Reviews: 12643, Price: 11, Year: 2011, Genre: "Fiction"},
		{Title: "Harry Potter and the Cursed Child", Author: "J.K. Rowling", UserRating: r("4.0"), Reviews: 23973, Price: 12, Year: 2016, Genre: "Fiction"},
		{Title: "Becoming", Author: "Michelle Obama", UserRating: r("4.8"), Reviews: 61133, Price: 11, Year: 2018, Genre: "Non Fiction"},
		{Title: "The Four Agreements", Author: "Don Miguel Ruiz", UserRating: r("4.7"), Reviews: 23308, Price: 6, Year: 2012, Genre: "Non Fiction"},
	}
}

// BestsellersCSV is Bestsellers in the on-disk layout.
const BestsellersCSV = `Name,Author,User Rating,Reviews,Price,Year,Genre
A Game of Thrones,George R. R. Martin,4.7,5594,30,2012,Fiction
A Dance with Dragons,George R. R. Martin,4.4,12643,11,2011,Fiction
Harry Potter and the Cursed Child,J.K. Rowling,4.0,23973,12,2016,Fiction
Becoming,Michelle Obama,4.8,61133,11,2018,Non Fiction
The Four Agreements,Don Miguel Ruiz,4.7,23308,6,2012,Non Fiction
`

// DiscardLogger drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WriteFile stores content as data.csv in a fresh temp dir and returns its path.
func WriteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
