package dto

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var operatorNameRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("operator_name", validateOperatorName)
	return v
}

// validateOperatorName allows alphanumeric, underscore, dash, dot and @.
func validateOperatorName(fl validator.FieldLevel) bool {
	return operatorNameRe.MatchString(fl.Field().String())
}

// ValidateOperatorName checks a name before it is used as a token subject.
func ValidateOperatorName(name string) error {
	if err := validate.Var(name, "required,max=64,operator_name"); err != nil {
		return fmt.Errorf("invalid operator name %q: %w", name, err)
	}
	return nil
}
