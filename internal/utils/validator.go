// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("money", validateMoney)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateSlug accepts lowercase kebab-case identifiers such as "ai-email-assistant".
func validateSlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	if len(slug) == 0 || len(slug) > 120 {
		return false
	}
	return slugPattern.MatchString(slug)
}

// validateMoney accepts a non-negative decimal string with at most two
// fraction digits.
func validateMoney(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if d.IsNegative() {
		return false
	}
	return d.Equal(d.Round(2))
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "slug":
		return e.Field() + " must be lowercase letters, digits and single hyphens"
	case "money":
		return e.Field() + " must be a non-negative amount with at most 2 decimals"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
