package myvalidation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates the `validate` tags of the given struct.
func Check(s any) error {
	return validate.Struct(s)
}
