// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "prwatch/internal/domain/errors"

	goplayground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *goplayground.Validate
}

// New builds the request validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: goplayground.New(goplayground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
