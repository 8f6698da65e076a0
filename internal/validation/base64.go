package validation

import (
	"encoding/base64"

	"github.com/go-playground/validator/v10"
)

// stdBase64 accepts padded standard base64, including the empty string.
func stdBase64(fl validator.FieldLevel) bool {
	_, err := base64.StdEncoding.DecodeString(fl.Field().String())
	return err == nil
}
