package config

import (
	"fmt"
	"reflect"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a validator for boolean flags that cannot be set together.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} cannot be combined with {1}",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	return nil
}

// validateExclusive fails when both the field and the one named by the tag parameter are true.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	if field.Kind() != reflect.Bool || other.Kind() != reflect.Bool {
		return true
	}

	return !(field.Bool() && other.Bool())
}
