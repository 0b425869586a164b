package domain

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailShape is a shape check only: something before the @, something
// between @ and the last dot, something after. No DNS lookups, no full RFC
// compliance.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s matches the storefront's email shape rule.
func IsValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("email_shape", validateEmailShape)
	v.RegisterValidation("card_number", validateCardNumber)
	return &Validation{validator: v}
}

func validateEmailShape(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// validateCardNumber checks the digit count after stripping separators
func validateCardNumber(fl validator.FieldLevel) bool {
	return len(DigitsOnly(fl.Field().String())) >= MinCardDigits
}

// ValidationError describes one failed field check
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errs ValidationErrors

	err := v.validator.Struct(i)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		for _, ve := range validationErrors {
			errs = append(errs, ValidationError{
				Field:   ve.Field(),
				Tag:     ve.Tag(),
				Message: fmt.Sprintf("failed on the '%s' tag", ve.Tag()),
			})
		}
	}

	return errs
}

// Var validates a single value against a tag expression, reporting only
// pass/fail.
func (v *Validation) Var(value string, tag string) bool {
	return v.validator.Var(value, tag) == nil
}
