// File: internal/api/validator.go
package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Field names in validation errors come from json tags so they match the
// wire format callers actually sent.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate returns validator.ValidationErrors unchanged; the central error
// handler renders them as a 422 with per-field details.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
