// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/brightstone/gemgate/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string contains non-whitespace characters.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
})

// NonNegative validates that a numeric value is zero or greater.
var NonNegative = validation.By(func(value interface{}) error {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return validation.NewError("validation_non_negative", "must be zero or greater")
		}
	case int64:
		if v < 0 {
			return validation.NewError("validation_non_negative", "must be zero or greater")
		}
	case float64:
		if v < 0 {
			return validation.NewError("validation_non_negative", "must be zero or greater")
		}
	}
	return nil
})
