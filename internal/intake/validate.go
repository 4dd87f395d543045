package intake

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailPattern: local-part@domain.tld with ASCII letters, digits and ._%+- in
// the local part, dot-separated domain labels and a TLD of two or more
// letters. Case-insensitive.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// NewValidator returns a validator with the intake_email rule registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("intake_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return v
}
