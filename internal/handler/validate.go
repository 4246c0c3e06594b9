package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// fieldError is one validation failure in a 400 response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// newValidator builds the request validator with the password-strength rule:
// at least 8 characters containing an upper-case letter, a lower-case letter
// and a digit.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		if len(pw) < 8 {
			return false
		}
		var upper, lower, digit bool
		for _, r := range pw {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return upper && lower && digit
	})

	return v
}

// validationErrors flattens a validator error into field/message pairs.
func validationErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "", Message: "invalid input"}}
	}

	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "email":
			msg = "email must be a valid email address"
		case "password":
			msg = "password must include uppercase, lowercase, number, and be 8+ chars"
		default:
			msg = fmt.Sprintf("%s is invalid", field)
		}
		out = append(out, fieldError{Field: field, Message: msg})
	}

	return out
}
