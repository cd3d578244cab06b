package validators

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("rating_value", validateRatingValue)
	validate.RegisterValidation("model_year", validateModelYear)
}

// validateRatingValue keeps ratings inside the 0..5 scale.
func validateRatingValue(fl validator.FieldLevel) bool {
	rating := fl.Field().Float()
	return rating >= 0 && rating <= 5
}

// validateModelYear accepts years from the dawn of motorcycling up to
// next year's models.
func validateModelYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year >= 1885 && year <= int64(time.Now().Year()+1)
}

// ValidateStruct runs the registered rules and flattens failures into a
// field-to-message map suitable for the error envelope.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}

	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())
		errors[field] = messageForTag(fieldError)
	}

	return errors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "url":
		return "Invalid URL format"
	case "rating_value":
		return "Rating must be between 0 and 5"
	case "model_year":
		return "Model year is out of range"
	default:
		return fmt.Sprintf("Failed validation: %s", fe.Tag())
	}
}
