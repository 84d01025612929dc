package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "helpdesk/internal/domain/user/valueobjects"
)

// RegisterValidators adds the custom binding validators the request structs
// use. The senha rule delegates to the domain password policy so the two
// never drift apart.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("senha", func(fl validator.FieldLevel) bool {
		_, err := vo.NewPassword(fl.Field().String())
		return err == nil
	})
}
