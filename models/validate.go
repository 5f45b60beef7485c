package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validate checks the form structs of every package. Field names in its
// errors are the json names.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "menu_price", func(fl validator.FieldLevel) bool {
		return ValidPrice(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// MaxPrice is the exclusive upper bound on a menu price.
var MaxPrice = decimal.NewFromInt(100_000)

// maxPriceLen bounds the typed text before it is parsed, so no form value
// can smuggle in a huge exponent or digit string.
const maxPriceLen = 12

// ValidPrice reports whether s is a plain decimal above zero and below
// MaxPrice with at most two decimal places. Exponent notation is refused.
func ValidPrice(s string) bool {
	if s == "" || len(s) > maxPriceLen || strings.ContainsAny(s, "eE") {
		return false
	}
	p, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return p.IsPositive() && p.Exponent() >= -2 && p.LessThan(MaxPrice)
}

// FieldErrors unpacks a Validate.Struct error. ok is false when err is not
// a field-level validation failure.
func FieldErrors(err error) (fields []validator.FieldError, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	return verrs, true
}
