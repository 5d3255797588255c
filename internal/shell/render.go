package shell

import (
	"fmt"
	"io"
	"strings"

	"bestsellers/internal/book"
	"bestsellers/internal/catalog"
	"bestsellers/internal/stats"
)

const (
	wideRule   = 60
	screenRule = 50
	titleWidth = 40
)

func rule(w io.Writer, ch string, n int) {
	fmt.Fprintln(w, strings.Repeat(ch, n))
}

// Heading prints a centred title between two rules of the given width.
func Heading(w io.Writer, title string, width int) {
	rule(w, "=", width)
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), title)
	rule(w, "=", width)
}

// Banner greets the user once the dataset is in memory.
func Banner(w io.Writer, totalBooks int) {
	Heading(w, "AMAZON BESTSELLING BOOKS ANALYSIS SYSTEM", wideRule)
	fmt.Fprintf(w, "Dataset loaded successfully! Total books: %d\n\n", totalBooks)
}

func RenderCount(w io.Writer, author string, count int) {
	fmt.Fprintln(w, "\nResult:")
	fmt.Fprintf(w, "Author: %s\n", author)
	fmt.Fprintf(w, "Total books: %d\n", count)
	if count == 0 {
		fmt.Fprintln(w, "No books found for this author. Please check the spelling.")
	}
}

func RenderAuthors(w io.Writer, list catalog.AuthorList) {
	fmt.Fprintf(w, "\nTotal unique authors: %d\n", list.Count)
	fmt.Fprintln(w, "\nAuthors list:")
	rule(w, "-", titleWidth)
	for i, name := range list.Names {
		fmt.Fprintf(w, "%3d. %s\n", i+1, name)
	}
}

func RenderBooks(w io.Writer, author string, books []book.Book) {
	fmt.Fprintln(w, "\nResult:")
	fmt.Fprintf(w, "Author: %s\n", author)
	fmt.Fprintf(w, "Total books: %d\n", len(books))
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found for this author. Please check the spelling.")
		return
	}
	fmt.Fprintln(w, "\nBooks:")
	rule(w, "-", titleWidth)
	for i, b := range books {
		fmt.Fprintf(w, "%3d. %s (%d)\n", i+1, b.Title, b.Year)
	}
}

func RenderRatingClass(w io.Writer, rc catalog.RatingClass) {
	fmt.Fprintln(w, "\nResult:")
	fmt.Fprintf(w, "Rating: %s\n", rc.Rating)
	fmt.Fprintf(w, "Total books with this rating: %d\n", rc.Count)
	if rc.Count == 0 {
		fmt.Fprintf(w, "No books found with rating %s\n", rc.Rating)
		return
	}
	fmt.Fprintf(w, "\nBooks with rating %s:\n", rc.Rating)
	rule(w, "-", wideRule)
	for i, b := range rc.Books {
		fmt.Fprintf(w, "%3d. %s by %s (%d)\n", i+1, b.Title, b.Author, b.Year)
	}
}

func RenderPrices(w io.Writer, author string, summary catalog.PriceSummary) {
	fmt.Fprintln(w, "\nResult:")
	fmt.Fprintf(w, "Author: %s\n", author)
	fmt.Fprintf(w, "Total books: %d\n", len(summary.Items))
	if len(summary.Items) == 0 {
		fmt.Fprintln(w, "No books found for this author. Please check the spelling.")
		return
	}
	fmt.Fprintln(w, "\nBooks and Prices:")
	rule(w, "-", wideRule)
	fmt.Fprintf(w, "%-40s %s\n", "Book Title", "Price")
	rule(w, "-", wideRule)
	for _, it := range summary.Items {
		fmt.Fprintf(w, "%-40s $%d\n", Truncate(it.Title, titleWidth), it.Price)
	}
	rule(w, "-", wideRule)
	fmt.Fprintf(w, "%-40s $%d.00\n", "TOTAL PRICE:", summary.Total)
	fmt.Fprintf(w, "%-40s $%s\n", "AVERAGE PRICE:", summary.Average.StringFixed(stats.PricePlaces))
}

func RenderStats(w io.Writer, s stats.Stats) {
	fmt.Fprintln(w, "Dataset Overview:")
	rule(w, "-", 30)
	fmt.Fprintf(w, "Total books: %d\n", s.TotalBooks)
	fmt.Fprintf(w, "Unique authors: %d\n", s.UniqueAuthorCount)
	fmt.Fprintf(w, "Year range: %d - %d\n", s.YearRange.Min, s.YearRange.Max)
	fmt.Fprintf(w, "Average rating: %s\n", s.AverageRating.StringFixed(stats.RatingPlaces))
	fmt.Fprintf(w, "Rating range: %s - %s\n", s.RatingRange.Min, s.RatingRange.Max)
	fmt.Fprintf(w, "Average price: $%s\n", s.AveragePrice.StringFixed(stats.PricePlaces))
	fmt.Fprintf(w, "Price range: $%d - $%d\n", s.PriceRange.Min, s.PriceRange.Max)

	fmt.Fprintln(w, "\nGenre Distribution:")
	rule(w, "-", 30)
	for _, g := range s.GenreDistribution {
		fmt.Fprintf(w, "%-15s: %d books (%s%%)\n", g.Genre, g.Count, g.Percent.StringFixed(stats.PercentPlaces))
	}
}

// Truncate shortens s to limit runes, ending in "..." when cut.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
