package request

import (
	"sync"

	"hiko_buyforme/pkg/phone"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("kr_phone", validateKRPhone)
		}
	})
}

// validateKRPhone accepts numbers phonenumbers can parse with KR as the
// default region, e.g. "010-1234-5678" or "+82 10 1234 5678".
func validateKRPhone(fl validator.FieldLevel) bool {
	return phone.IsValid(fl.Field().String())
}
