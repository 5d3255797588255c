// Package selfcheck runs a fixed set of queries against a loaded dataset and
// reports the answers, failing any check whose result is inconsistent.
package selfcheck

import (
	"fmt"
	"io"
	"strings"

	"bestsellers/internal/catalog"
	"bestsellers/internal/stats"
)

// Scenario names the inputs of each check.
type Scenario struct {
	CountAuthor  string
	BooksAuthor  string
	Rating       string
	PricesAuthor string
	AuthorLimit  int
	RatingLimit  int
}

func DefaultScenario() Scenario {
	return Scenario{
		CountAuthor:  "George R. R. Martin",
		BooksAuthor:  "J.K. Rowling",
		Rating:       "4.7",
		PricesAuthor: "Michelle Obama",
		AuthorLimit:  10,
		RatingLimit:  5,
	}
}

// Check is the outcome of one query.
type Check struct {
	Name    string   `json:"name"`
	Lines   []string `json:"lines"`
	Failed  bool     `json:"failed"`
	Message string   `json:"error,omitempty"`
	Err     error    `json:"-"`
}

func (c *Check) fail(err error) {
	c.Failed = true
	c.Err = err
	c.Message = err.Error()
}

type Result struct {
	TotalBooks int     `json:"total_books"`
	Checks     []Check `json:"checks"`
}

func (r Result) Passed() bool {
	for _, c := range r.Checks {
		if c.Failed {
			return false
		}
	}
	return true
}

type Driver struct {
	queries  catalog.Queries
	scenario Scenario
}

func NewDriver(queries catalog.Queries, scenario Scenario) *Driver {
	return &Driver{queries: queries, scenario: scenario}
}

// Run executes every check in order.
func (d *Driver) Run() Result {
	st := d.queries.Statistics()
	return Result{
		TotalBooks: st.TotalBooks,
		Checks: []Check{
			d.countByAuthor(),
			d.listAuthors(),
			d.booksByAuthor(),
			d.classifyByRating(),
			d.pricesByAuthor(),
			statistics(st),
		},
	}
}

func (d *Driver) countByAuthor() Check {
	name := d.scenario.CountAuthor
	c := Check{Name: "Count books by " + name}
	count := d.queries.CountBooksByAuthor(name)
	c.Lines = append(c.Lines, fmt.Sprintf("Result: %d books", count))
	if listed := len(d.queries.BooksByAuthor(name)); listed != count {
		c.fail(fmt.Errorf("count %d disagrees with %d listed books", count, listed))
	}
	return c
}

func (d *Driver) listAuthors() Check {
	list := d.queries.ListAuthors()
	c := Check{Name: fmt.Sprintf("List first %d authors", d.scenario.AuthorLimit)}
	c.Lines = append(c.Lines, fmt.Sprintf("Total unique authors: %d", list.Count))
	for _, name := range head(list.Names, d.scenario.AuthorLimit) {
		c.Lines = append(c.Lines, "- "+name)
	}
	if list.Count != len(list.Names) {
		c.fail(fmt.Errorf("author count %d disagrees with %d names", list.Count, len(list.Names)))
	}
	return c
}

func (d *Driver) booksByAuthor() Check {
	name := d.scenario.BooksAuthor
	books := d.queries.BooksByAuthor(name)
	c := Check{Name: "Books by " + name}
	c.Lines = append(c.Lines, fmt.Sprintf("Found %d books:", len(books)))
	for _, b := range books {
		c.Lines = append(c.Lines, "- "+b.Title)
	}
	return c
}

func (d *Driver) classifyByRating() Check {
	c := Check{Name: "Books with rating " + d.scenario.Rating}
	rc, err := d.queries.ClassifyByRating(d.scenario.Rating)
	if err != nil {
		c.fail(err)
		return c
	}
	c.Lines = append(c.Lines, fmt.Sprintf("Found %d books with rating %s:", rc.Count, rc.Rating))
	for _, b := range head(rc.Books, d.scenario.RatingLimit) {
		c.Lines = append(c.Lines, fmt.Sprintf("- %s by %s", b.Title, b.Author))
	}
	for _, b := range rc.Books {
		if !b.UserRating.Equal(rc.Rating) {
			c.fail(fmt.Errorf("%q is rated %s", b.Title, b.UserRating))
			break
		}
	}
	return c
}

func (d *Driver) pricesByAuthor() Check {
	name := d.scenario.PricesAuthor
	c := Check{Name: "Price of books by " + name}
	summary := catalog.SummarizePrices(d.queries.PricesByAuthor(name))
	if len(summary.Items) == 0 {
		c.Lines = append(c.Lines, "No books found for this author.")
		return c
	}
	c.Lines = append(c.Lines, fmt.Sprintf("Found %d books:", len(summary.Items)))
	for _, it := range summary.Items {
		c.Lines = append(c.Lines, fmt.Sprintf("- %s - $%d", it.Title, it.Price))
	}
	c.Lines = append(c.Lines, fmt.Sprintf("Total price: $%d", summary.Total))
	return c
}

func statistics(st stats.Stats) Check {
	c := Check{Name: "Dataset statistics"}
	c.Lines = append(c.Lines,
		fmt.Sprintf("Total books: %d", st.TotalBooks),
		fmt.Sprintf("Unique authors: %d", st.UniqueAuthorCount),
		fmt.Sprintf("Year range: %d - %d", st.YearRange.Min, st.YearRange.Max),
		fmt.Sprintf("Average rating: %s (%s - %s)", st.AverageRating.StringFixed(stats.RatingPlaces), st.RatingRange.Min, st.RatingRange.Max),
		fmt.Sprintf("Average price: $%s ($%d - $%d)", st.AveragePrice.StringFixed(stats.PricePlaces), st.PriceRange.Min, st.PriceRange.Max),
		"Genre distribution:",
	)
	sum := 0
	for _, g := range st.GenreDistribution {
		sum += g.Count
		c.Lines = append(c.Lines, fmt.Sprintf("- %-15s: %d books (%s%%)", g.Genre, g.Count, g.Percent.StringFixed(stats.PercentPlaces)))
	}
	if sum != st.TotalBooks {
		c.fail(fmt.Errorf("genre counts add up to %d, want %d", sum, st.TotalBooks))
	}
	return c
}

// Render writes the report in the order the checks ran.
func (r Result) Render(w io.Writer) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "    TESTING AMAZON BESTSELLING BOOKS SYSTEM    ")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Dataset loaded successfully! Total books: %d\n\n", r.TotalBooks)

	for i, c := range r.Checks {
		fmt.Fprintf(w, "TEST %d: %s\n", i+1, c.Name)
		for _, l := range c.Lines {
			fmt.Fprintln(w, l)
		}
		if c.Failed {
			fmt.Fprintf(w, "FAILED: %v\n", c.Err)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, line)
	if r.Passed() {
		fmt.Fprintln(w, "ALL TESTS COMPLETED SUCCESSFULLY!")
	} else {
		fmt.Fprintln(w, "SOME TESTS FAILED")
	}
	fmt.Fprintln(w, line)
}

func head[T any](items []T, n int) []T {
	if n < 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
