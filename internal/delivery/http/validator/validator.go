// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	govalidator "github.com/go-playground/validator/v10"

	domainerrors "tienda/internal/domain/errors"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *govalidator.Validate
}

// New creates the validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: govalidator.New()}
}

// Validate checks struct tags and converts failures into the domain's
// validation error so the error middleware maps them to 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
