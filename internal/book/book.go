package book

import "errors"

// ErrInvalidRatingFormat is returned when a rating cannot be read as a decimal number.
var ErrInvalidRatingFormat = errors.New("invalid rating format")

// Book represents one bestseller record.
type Book struct {
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	UserRating Rating `json:"user_rating" validate:"gte=0,lte=5"`
	Reviews    int    `json:"reviews" validate:"gte=0"`
	Price      int    `json:"price" validate:"gte=0"`
	Year       int    `json:"year" validate:"gte=1000,lte=9999"`
	Genre      string `json:"genre" validate:"required"`
}
