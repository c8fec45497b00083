// Package validator adapts the domain validator to echo's Validator interface.
package validator

import (
	"storefront/internal/domain/validation"
)

// EchoValidator validates bound request structs.
type EchoValidator struct {
	validator *validation.Validator
}

// New wraps v for use as echo.Echo.Validator.
func New(v *validation.Validator) *EchoValidator {
	return &EchoValidator{validator: v}
}

// Validate returns validation.Violations, or nil when i passes.
func (ev *EchoValidator) Validate(i any) error {
	return ev.validator.Struct(i).Err()
}
