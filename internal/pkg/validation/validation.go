// Package validation wires the shared input validator.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// indianMobileRe matches the phone rule enforced on the login form:
// a 10-digit number starting with 7, 8 or 9.
var indianMobileRe = regexp.MustCompile(`^[7-9]\d{9}$`)

// New returns a validator with the custom tags used by input structs
// registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("indianmobile", func(fl validator.FieldLevel) bool {
		return indianMobileRe.MatchString(fl.Field().String())
	})
	return v
}
