package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register custom validation for non-negative decimals
	validate.RegisterValidation("dgte0", func(fl validator.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
			return !d.IsNegative()
		}
		return false
	})
}

// ValidateStruct runs tag-based validation on a request struct and converts
// the first failure into a ValidationError the caller can display.
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	return NewValidationError(
		strings.ToLower(first.StructNamespace()),
		reasonForTag(first.Tag()),
		first.Value(),
	)
}

func reasonForTag(tag string) string {
	switch tag {
	case "required":
		return "cannot be empty"
	case "gte", "dgte0":
		return "must be non-negative"
	case "min":
		return "requires at least one element"
	case "email":
		return "must be a valid email address"
	default:
		return "failed on " + tag
	}
}
