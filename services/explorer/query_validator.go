package explorer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type SuggestionsQuery struct {
	TermFragment       string `query:"term_fragment" validate:"required"`
	MaxSuggestionItems string `query:"max_suggestion_items" validate:"required,numeric"`
}

type EgonetQuery struct {
	Direction string `query:"direction" validate:"omitempty,direction"`
	Limit     string `query:"limit" validate:"omitempty,numeric,limit"`
}

type SearchQuery struct {
	Query    string `query:"query" validate:"required"`
	Currency string `query:"currency"`
}

const maxEgonetLimit = 5000

func msgForTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "numeric":
		return "is not a number"
	case "direction":
		return "incorrect direction (can be in, out or all)"
	case "limit":
		return fmt.Sprintf("incorrect limit (between 1 and %d)", maxEgonetLimit)
	}
	return ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "in", "out", "all":
			return true
		}
		return false
	})

	_ = v.RegisterValidation("limit", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Field().String())
		if err != nil {
			return false
		}
		return n >= 1 && n <= maxEgonetLimit
	})

	return v
}

func Validate(data interface{}) error {
	if err := validate.Struct(data); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return errors.New("invalid request query")
		}

		var out []string
		for _, err := range err.(validator.ValidationErrors) {
			out = append(out, fmt.Sprintf("%s - %s", err.Field(), msgForTag(err.Tag())))
		}

		return errors.New(strings.Join(out, ", "))
	}

	return nil
}
