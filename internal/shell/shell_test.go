package shell

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"bestsellers/internal/book"
	"bestsellers/internal/catalog"
	"bestsellers/internal/catalog/mocks"
	"bestsellers/internal/dataset"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	r := book.MustParseRating
	ds, err := dataset.Load([]book.Book{
		{Title: "A Game of Thrones", Author: "George R. R. Martin", UserRating: r("4.7"), Reviews: 5594, Price: 30, Year: 2012, Genre: "Fiction"},
		{Title: "Becoming", Author: "Michelle Obama", UserRating: r("4.8"), Reviews: 61133, Price: 11, Year: 2018, Genre: "Non Fiction"},
		{Title: "A Dance with Dragons (A Song of Ice and Fire)", Author: "George R. R. Martin", UserRating: r("4.4"), Reviews: 12643, Price: 11, Year: 2011, Genre: "Fiction"},
	})
	require.NoError(t, err)
	return catalog.NewService(ds)
}

func run(t *testing.T, q catalog.Queries, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := New(q, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestShell_Run(t *testing.T) {
	t.Run("count by author ignores case", func(t *testing.T) {
		out := run(t, newCatalog(t), "1\ngeorge r. r. martin\n\n7\n")
		assert.Contains(t, out, "COUNT BOOKS BY AUTHOR")
		assert.Contains(t, out, "Author: george r. r. martin")
		assert.Contains(t, out, "Total books: 2")
		assert.Contains(t, out, "Thank you for using Amazon Bestselling Books Analysis System!")
	})

	t.Run("list authors", func(t *testing.T) {
		out := run(t, newCatalog(t), "2\n\n7\n")
		assert.Contains(t, out, "Total unique authors: 2")
		assert.Contains(t, out, "  1. George R. R. Martin")
		assert.Contains(t, out, "  2. Michelle Obama")
	})

	t.Run("books by author", func(t *testing.T) {
		out := run(t, newCatalog(t), "3\nGEORGE R. R. MARTIN\n\n7\n")
		assert.Contains(t, out, "  1. A Game of Thrones (2012)")
		assert.Contains(t, out, "  2. A Dance with Dragons (A Song of Ice and Fire) (2011)")
	})

	t.Run("unknown author", func(t *testing.T) {
		out := run(t, newCatalog(t), "3\nNobody\n\n7\n")
		assert.Contains(t, out, "Total books: 0")
		assert.Contains(t, out, "No books found for this author. Please check the spelling.")
	})

	t.Run("classify by rating", func(t *testing.T) {
		out := run(t, newCatalog(t), "4\n4.7\n\n7\n")
		assert.Contains(t, out, "Total books with this rating: 1")
		assert.Contains(t, out, "  1. A Game of Thrones by George R. R. Martin (2012)")
	})

	t.Run("classify by rating prints normalized value", func(t *testing.T) {
		out := run(t, newCatalog(t), "4\n4.70\n\n7\n")
		assert.Contains(t, out, "Rating: 4.7\n")
		assert.NotContains(t, out, "4.70")
		assert.Contains(t, out, "Total books with this rating: 1")
	})

	t.Run("invalid rating keeps looping", func(t *testing.T) {
		out := run(t, newCatalog(t), "4\nexcellent\n\n6\n\n7\n")
		assert.Contains(t, out, "Invalid rating format. Please enter a decimal number (e.g., 4.5).")
		assert.Contains(t, out, "DATASET STATISTICS")
	})

	t.Run("prices by author", func(t *testing.T) {
		out := run(t, newCatalog(t), "5\nMichelle Obama\n\n7\n")
		assert.Contains(t, out, fmt.Sprintf("%-40s $%d", "Becoming", 11))
		assert.Contains(t, out, "TOTAL PRICE:")
		assert.Contains(t, out, "$11.00")
	})

	t.Run("long titles are truncated", func(t *testing.T) {
		out := run(t, newCatalog(t), "5\ngeorge r. r. martin\n\n7\n")
		assert.Contains(t, out, "A Dance with Dragons (A Song of Ice a...")
		assert.Contains(t, out, "$20.50")
	})

	t.Run("statistics", func(t *testing.T) {
		out := run(t, newCatalog(t), "6\n\n7\n")
		assert.Contains(t, out, "Total books: 3")
		assert.Contains(t, out, "Unique authors: 2")
		assert.Contains(t, out, "Year range: 2011 - 2018")
		assert.Contains(t, out, "Average rating: 4.6")
		assert.Contains(t, out, "Average price: $17.33")
		assert.Contains(t, out, "Fiction        : 2 books (66.7%)")
		assert.Contains(t, out, "Non Fiction    : 1 books (33.3%)")
	})

	t.Run("invalid choices do not exit", func(t *testing.T) {
		out := run(t, newCatalog(t), "9\n\nabc\n\n\n\n7\n")
		assert.Equal(t, 3, strings.Count(out, invalidChoice))
		assert.Contains(t, out, "Thank you for using")
	})

	t.Run("end of input stops cleanly", func(t *testing.T) {
		out := run(t, newCatalog(t), "1\nMichelle Obama\n")
		assert.Contains(t, out, "Total books: 1")
		assert.NotContains(t, out, "Thank you for using")
	})
}

func TestShell_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(newCatalog(t), strings.NewReader("7\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestShell_Run_WithMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQueries := mocks.NewMockQueries(ctrl)

	t.Run("author name is trimmed", func(t *testing.T) {
		mockQueries.EXPECT().CountBooksByAuthor("J.K. Rowling").Return(1)

		out := run(t, mockQueries, "1\n   J.K. Rowling  \n\n7\n")
		assert.Contains(t, out, "Total books: 1")
	})

	t.Run("rating error is reported", func(t *testing.T) {
		mockQueries.EXPECT().ClassifyByRating("x").Return(catalog.RatingClass{}, fmt.Errorf("%w: %q", book.ErrInvalidRatingFormat, "x"))

		out := run(t, mockQueries, "4\nx\n\n7\n")
		assert.Contains(t, out, "Invalid rating format.")
	})

	t.Run("invalid choice never reaches queries", func(t *testing.T) {
		out := run(t, mockQueries, "0\n\n8\n\n7\n")
		assert.Equal(t, 2, strings.Count(out, invalidChoice))
	})

	t.Run("no match renders empty result", func(t *testing.T) {
		mockQueries.EXPECT().PricesByAuthor("Nobody").Return([]catalog.TitlePrice{})

		out := run(t, mockQueries, "5\nNobody\n\n7\n")
		assert.Contains(t, out, "No books found for this author.")
		assert.NotContains(t, out, "TOTAL PRICE:")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 40))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, strings.Repeat("é", 40), Truncate(strings.Repeat("é", 40), 40))
}
