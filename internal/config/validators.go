package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/gocbc/pkg/encryption"
)

// registerCipher adds a custom validator ensuring a field names a registered suite.
// It registers both the validation logic and a human-readable error message.
func registerCipher(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"cipher",
		validateCipher,
		fmt.Sprintf("{0} must name a supported cipher (%s)", strings.Join(encryption.SuiteNames(), ", ")),
	); err != nil {
		return fmt.Errorf("registering cipher validation: %w", err)
	}

	return nil
}

// validateCipher checks that the field resolves through encryption.LookupSuite,
// which accepts aliases such as "AES256" in any case.
func validateCipher(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	_, err := encryption.LookupSuite(field.String())

	return err == nil
}
