package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type FieldError struct {
	FailedField string
	Tag         string
	Param       string
}

var validate = validator.New()

func init() {
	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

func ValidateStruct(data interface{}) []FieldError {
	var errs []FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errs = append(errs, FieldError{
				FailedField: err.StructNamespace(),
				Tag:         err.Tag(),
				Param:       err.Param(),
			})
		}
	}
	return errs
}
