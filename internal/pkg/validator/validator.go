package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags on a request DTO.
func Validate(s interface{}) error {
	return validate.Struct(s)
}
