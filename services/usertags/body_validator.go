package usertags

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// base58, bech32 and cashaddr alphabets all fit here
var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9:]{20,100}$`)

type AddUserTagBody struct {
	Address  string `json:"address" validate:"required,address"`
	Label    string `json:"label" validate:"required,max=256"`
	Source   string `json:"source" validate:"omitempty,url"`
	Category string `json:"category" validate:"omitempty,max=64"`
	Abuse    string `json:"abuse" validate:"omitempty,max=64"`
}

type ListQuery struct {
	Address string `query:"address" validate:"omitempty,address"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
}

func msgForTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "address":
		return "incorrect address"
	case "url":
		return "incorrect url"
	case "max":
		return "is too long"
	case "min":
		return "must be at least 1"
	}
	return ""
}

func Validate(data interface{}) error {
	validate := validator.New()

	_ = validate.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return addressPattern.MatchString(fl.Field().String())
	})

	if err := validate.Struct(data); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return errors.New("invalid request body")
		}

		var out []string
		for _, err := range err.(validator.ValidationErrors) {
			out = append(out, fmt.Sprintf("%s - %s", err.Field(), msgForTag(err.Tag())))
		}

		return errors.New(strings.Join(out, ", "))
	}

	return nil
}
