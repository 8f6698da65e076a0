package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type RequestValidator struct {
	v *validator.Validate
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

func NewRequestValidator() (*RequestValidator, error) {
	const op = "validation.NewRequestValidator"

	v := validator.New()

	if err := v.RegisterValidation("stdbase64", stdBase64); err != nil {
		return nil, fmt.Errorf(`%s: error registering "stdbase64" validator: %w`, op, err)
	}

	return &RequestValidator{
		v: v,
	}, nil
}
