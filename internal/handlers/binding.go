package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// currencycode validates a 3-letter currency code. Case is normalized by the
// services, so lowercase input is accepted here.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return currencyCodePattern.MatchString(fl.Field().String())
		})
	}
}
