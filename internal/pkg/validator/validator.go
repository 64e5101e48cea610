package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fieldbook/internal/slot"
)

// RegisterBindingValidations installs the shared date and time formats on
// gin's binding engine so request DTOs can declare them as tags instead of
// re-checking in every handler.
func RegisterBindingValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return slot.ValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return slot.ValidTime(fl.Field().String())
	})
}
