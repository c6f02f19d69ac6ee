package model

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the domain's custom binding validators on the
// engine used by gin's request binding.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("bloodtype", validateBloodType); err != nil {
		return err
	}
	return v.RegisterValidation("agerange", validateAgeRange)
}

func validateBloodType(fl validator.FieldLevel) bool {
	return BloodType(fl.Field().String()).IsValid()
}

func validateAgeRange(fl validator.FieldLevel) bool {
	_, err := ParseAgeRange(fl.Field().String())
	return err == nil
}
