package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"bestsellers/internal/book"
	"bestsellers/internal/ingest"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "write a synthetic bestsellers dataset",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 550, Usage: "number of books"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "data.csv", Usage: "output CSV path"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed"},
		},
		Action: func(c *cli.Context) error {
			count := c.Int("count")
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			defer f.Close()

			log.Printf("Generating %d books...", count)
			books := generate(rand.New(rand.NewSource(c.Int64("seed"))), count)
			if err := ingest.Write(f, books); err != nil {
				return fmt.Errorf("write dataset: %w", err)
			}
			log.Printf("Successfully wrote %d books to %s", count, c.String("out"))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

var (
	genres  = []string{"Fiction", "Non Fiction"}
	authors = []string{
		"George R. R. Martin", "J.K. Rowling", "Michelle Obama", "Suzanne Collins", "Rick Riordan",
		"Dr. Seuss", "John Green", "Stephenie Meyer", "Gallup", "Jeff Kinney",
		"Bill O'Reilly", "Stephen King", "Dav Pilkey", "Eric Carle", "Gary Chapman",
	}
	words = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Nature", "History", "Future", "Wisdom", "Light",
		"Darkness", "World", "Time", "Mind", "Soul",
	}
)

func generate(rng *rand.Rand, count int) []book.Book {
	books := make([]book.Book, count)
	for i := range books {
		// ratings between 3.3 and 4.9 in tenths
		rating := decimal.New(int64(33+rng.Intn(17)), -1)
		books[i] = book.Book{
			Title:      fmt.Sprintf("The %s of %s, Vol. %d", words[rng.Intn(len(words))], words[rng.Intn(len(words))], i+1),
			Author:     authors[rng.Intn(len(authors))],
			UserRating: book.RatingFromDecimal(rating),
			Reviews:    rng.Intn(90000),
			Price:      rng.Intn(60),
			Year:       2009 + rng.Intn(11),
			Genre:      genres[rng.Intn(len(genres))],
		}
	}
	return books
}
