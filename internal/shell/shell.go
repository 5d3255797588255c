// Package shell is the interactive text menu over the bestseller queries.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bestsellers/internal/book"
	"bestsellers/internal/catalog"
)

const (
	choiceCount = iota + 1
	choiceAuthors
	choiceBooks
	choiceRating
	choicePrices
	choiceStats
	choiceExit
)

const invalidChoice = "Invalid choice. Please select a number from 1-7."

// Shell reads menu choices from in and writes screens to out.
type Shell struct {
	queries catalog.Queries
	in      *bufio.Scanner
	out     io.Writer
}

func New(queries catalog.Queries, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		queries: queries,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the exit option is chosen, input ends, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.menu()
		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		switch parseChoice(line) {
		case choiceCount:
			s.countBooksByAuthor()
		case choiceAuthors:
			s.listAuthors()
		case choiceBooks:
			s.booksByAuthor()
		case choiceRating:
			s.classifyByRating()
		case choicePrices:
			s.pricesByAuthor()
		case choiceStats:
			s.statistics()
		case choiceExit:
			fmt.Fprintln(s.out, "Thank you for using Amazon Bestselling Books Analysis System!")
			return nil
		default:
			fmt.Fprintln(s.out, invalidChoice)
		}

		fmt.Fprintln(s.out, "\nPress Enter to continue...")
		if _, ok := s.readLine(); !ok {
			return s.in.Err()
		}
	}
}

func (s *Shell) menu() {
	fmt.Fprintln(s.out)
	Heading(s.out, "MAIN MENU", wideRule)
	fmt.Fprintln(s.out, "1. Count total books by an author")
	fmt.Fprintln(s.out, "2. List all authors in the dataset")
	fmt.Fprintln(s.out, "3. List all books by a specific author")
	fmt.Fprintln(s.out, "4. Classify books by user rating")
	fmt.Fprintln(s.out, "5. Get prices of all books by an author")
	fmt.Fprintln(s.out, "6. Display dataset statistics")
	fmt.Fprintln(s.out, "7. Exit")
	rule(s.out, "=", wideRule)
	fmt.Fprint(s.out, "Enter your choice (1-7): ")
}

func (s *Shell) screen(title string) {
	fmt.Fprintln(s.out)
	Heading(s.out, title, screenRule)
}

func (s *Shell) prompt(text string) string {
	fmt.Fprint(s.out, text)
	line, _ := s.readLine()
	return strings.TrimSpace(line)
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) countBooksByAuthor() {
	s.screen("COUNT BOOKS BY AUTHOR")
	name := s.prompt("Enter author name: ")
	RenderCount(s.out, name, s.queries.CountBooksByAuthor(name))
}

func (s *Shell) listAuthors() {
	s.screen("ALL AUTHORS IN DATASET")
	RenderAuthors(s.out, s.queries.ListAuthors())
}

func (s *Shell) booksByAuthor() {
	s.screen("BOOKS BY AUTHOR")
	name := s.prompt("Enter author name: ")
	RenderBooks(s.out, name, s.queries.BooksByAuthor(name))
}

func (s *Shell) classifyByRating() {
	s.screen("CLASSIFY BY USER RATING")
	input := s.prompt("Enter user rating (e.g., 4.5): ")
	rc, err := s.queries.ClassifyByRating(input)
	if errors.Is(err, book.ErrInvalidRatingFormat) {
		fmt.Fprintln(s.out, "Invalid rating format. Please enter a decimal number (e.g., 4.5).")
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	RenderRatingClass(s.out, rc)
}

func (s *Shell) pricesByAuthor() {
	s.screen("BOOK PRICES BY AUTHOR")
	name := s.prompt("Enter author name: ")
	RenderPrices(s.out, name, catalog.SummarizePrices(s.queries.PricesByAuthor(name)))
}

func (s *Shell) statistics() {
	s.screen("DATASET STATISTICS")
	RenderStats(s.out, s.queries.Statistics())
}

func parseChoice(line string) int {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1
	}
	return n
}
