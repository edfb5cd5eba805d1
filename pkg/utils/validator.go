package utils

import (
	"net/http"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return apperrors.NewHttpError(
				http.StatusBadRequest,
				"validation failed: "+verrs.Error(),
				err,
				nil,
			)
		}
		return err
	}
	return nil
}
