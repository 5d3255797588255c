package ingest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bestsellers/internal/book"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// ratings are compared as numbers for range checks
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		r, ok := v.Interface().(book.Rating)
		if !ok {
			return nil
		}
		f, _ := r.Decimal().Float64()
		return f
	}, book.Rating{})
}

// validateBook returns nil when b is acceptable, otherwise one error naming every bad field.
func validateBook(b book.Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "lte":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
