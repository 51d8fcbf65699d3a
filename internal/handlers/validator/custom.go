package validator

import (
	"math"

	"github.com/go-playground/validator/v10"
)

func functionKindValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch val {
	case "polynomial":
		fallthrough
	case "sinusoid":
		return true
	default:
		return false
	}
}

func ruleNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch val {
	case "rectangle":
		fallthrough
	case "trapezoid":
		return true
	default:
		return false
	}
}

func finiteValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
