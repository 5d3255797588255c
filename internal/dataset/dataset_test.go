package dataset

import (
	"errors"
	"strings"
	"testing"

	"bestsellers/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []book.Book {
	return []book.Book{
		{Title: "A Game of Thrones", Author: "George R. R. Martin", UserRating: book.MustParseRating("4.5"), Reviews: 100, Price: 9, Year: 2011, Genre: "Fiction"},
		{Title: "Becoming", Author: "Michelle Obama", UserRating: book.MustParseRating("4.8"), Reviews: 61133, Price: 11, Year: 2018, Genre: "Non Fiction"},
		{Title: "A Dance with Dragons", Author: "george r. r. martin", UserRating: book.MustParseRating("4.4"), Reviews: 200, Price: 12, Year: 2012, Genre: "Fiction"},
		{Title: "Becoming", Author: "Michelle Obama", UserRating: book.MustParseRating("4.8"), Reviews: 61133, Price: 11, Year: 2019, Genre: "Non Fiction"},
		{Title: "Adult Coloring Book", Author: "Blue Star Coloring", UserRating: book.MustParseRating("4.6"), Reviews: 2925, Price: 6, Year: 2015, Genre: "Non Fiction"},
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ds, err := Load(nil)
		assert.Nil(t, ds)
		assert.True(t, errors.Is(err, ErrEmptyDataset))
	})

	t.Run("keeps length and order", func(t *testing.T) {
		records := fixture()
		ds, err := Load(records)
		require.NoError(t, err)
		assert.Equal(t, len(records), ds.Len())
		assert.Equal(t, records, ds.All())
	})

	t.Run("copies input", func(t *testing.T) {
		records := fixture()
		ds, err := Load(records)
		require.NoError(t, err)

		records[0].Title = "changed"
		assert.Equal(t, "A Game of Thrones", ds.All()[0].Title)

		all := ds.All()
		all[1].Price = 999
		assert.Equal(t, 11, ds.All()[1].Price)
	})
}

func TestDataset_FilterByAuthor(t *testing.T) {
	ds, err := Load(fixture())
	require.NoError(t, err)

	t.Run("ignores case", func(t *testing.T) {
		for _, name := range []string{"George R. R. Martin", "george r. r. martin", "GEORGE R. R. MARTIN"} {
			got := ds.FilterByAuthor(name)
			require.Len(t, got, 2, name)
			assert.Equal(t, "A Game of Thrones", got[0].Title)
			assert.Equal(t, "A Dance with Dragons", got[1].Title)
		}
	})

	t.Run("full name only", func(t *testing.T) {
		assert.Empty(t, ds.FilterByAuthor("Martin"))
		assert.Empty(t, ds.FilterByAuthor("Michelle"))
	})

	t.Run("blank is a literal search", func(t *testing.T) {
		got := ds.FilterByAuthor("   ")
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Empty(t, ds.FilterByAuthor(""))
	})
}

func TestDataset_UniqueAuthors(t *testing.T) {
	ds, err := Load(fixture())
	require.NoError(t, err)

	got := ds.UniqueAuthors()
	assert.Equal(t, []string{"Blue Star Coloring", "George R. R. Martin", "Michelle Obama"}, got)
}

func TestAuthorKey(t *testing.T) {
	assert.Equal(t, AuthorKey("J.K. Rowling"), AuthorKey("j.k. rowling"))
	assert.Equal(t, AuthorKey(strings.ToUpper("Dr. Seuss")), AuthorKey("dr. seuss"))
	assert.NotEqual(t, AuthorKey("Dr. Seuss"), AuthorKey("Dr Seuss"))
	assert.Equal(t, "johann strauß", AuthorKey("Johann Strauß"))
	assert.Equal(t, "johann strauss", AuthorKey("JOHANN STRAUSS"))
}

func TestDataset_LowercaseIdentity(t *testing.T) {
	ds, err := Load([]book.Book{
		{Title: "Blue Danube", Author: "Johann Strauß", UserRating: book.MustParseRating("4.5"), Reviews: 10, Price: 5, Year: 2015, Genre: "Non Fiction"},
		{Title: "Radetzky March", Author: "JOHANN STRAUSS", UserRating: book.MustParseRating("4.6"), Reviews: 20, Price: 6, Year: 2016, Genre: "Non Fiction"},
	})
	require.NoError(t, err)

	got := ds.FilterByAuthor("Johann Strauß")
	require.Len(t, got, 1)
	assert.Equal(t, "Blue Danube", got[0].Title)

	got = ds.FilterByAuthor("johann strauss")
	require.Len(t, got, 1)
	assert.Equal(t, "Radetzky March", got[0].Title)

	assert.Equal(t, []string{"JOHANN STRAUSS", "Johann Strauß"}, ds.UniqueAuthors())
}
