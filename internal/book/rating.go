package book

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Rating is a fixed-point user rating such as 4.7.
// Two ratings are equal when their decimal values are equal, so 4.7 and 4.70 match.
type Rating struct {
	d decimal.Decimal
}

// ParseRating reads a rating from its decimal text form. Surrounding whitespace is ignored.
func ParseRating(s string) (Rating, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rating{}, fmt.Errorf("%w: %q", ErrInvalidRatingFormat, s)
	}
	return Rating{d: d}, nil
}

// MustParseRating is like ParseRating but panics on malformed input.
// It is intended for literals in tests and fixtures.
func MustParseRating(s string) Rating {
	r, err := ParseRating(s)
	if err != nil {
		panic(err)
	}
	return r
}

// RatingFromDecimal wraps an existing decimal value.
func RatingFromDecimal(d decimal.Decimal) Rating {
	return Rating{d: d}
}

func (r Rating) Decimal() decimal.Decimal {
	return r.d
}

func (r Rating) Equal(other Rating) bool {
	return r.d.Equal(other.d)
}

func (r Rating) LessThan(other Rating) bool {
	return r.d.LessThan(other.d)
}

// String renders the value with at least one decimal place and no trailing zeros,
// e.g. "4.0", "4.7" (also for input "4.70") or "4.75".
func (r Rating) String() string {
	places := int32(1)
	for places < -r.d.Exponent() && !r.d.Round(places).Equal(r.d) {
		places++
	}
	return r.d.StringFixed(places)
}

// MarshalJSON writes the rating as a bare JSON number.
func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(r.String()), nil
}
