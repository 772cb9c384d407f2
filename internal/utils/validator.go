// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/producttracker/backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("priority", validatePriority)
	validate.RegisterValidation("product_status", validateProductStatus)
	validate.RegisterValidation("find_status", validateFindStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePriority(fl validator.FieldLevel) bool {
	return models.Priority(fl.Field().String()).IsValid()
}

func validateProductStatus(fl validator.FieldLevel) bool {
	return models.ProductStatus(fl.Field().String()).IsValid()
}

func validateFindStatus(fl validator.FieldLevel) bool {
	return models.FindStatus(fl.Field().String()).IsValid()
}

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
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "priority":
		return "Priority must be one of: high, medium, low"
	case "product_status":
		return "Status must be one of: searching, found, purchased, skipped"
	case "find_status":
		return "Status must be one of: new, viewed, interested, contacted, bought, skip"
	default:
		return e.Field() + " is invalid"
	}
}
