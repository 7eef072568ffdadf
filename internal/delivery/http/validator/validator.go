// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator validates request structs via their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator backed by a shared validator instance.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
