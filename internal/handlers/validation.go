package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidationsOnce sync.Once

// RegisterValidations adds the custom binding tags used by the request DTOs to
// gin's validator. It is safe to call more than once.
func RegisterValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// Lets "required" see a zero decimal as empty.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("decimal_gt0", decimalGreaterThanZero)
		_ = v.RegisterValidation("pixkeytype", pixKeyType)
	})
}

// decimalGreaterThanZero accepts positive amounts with at most two decimal places.
func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	var d decimal.Decimal
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		d = v
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return false
		}
		d = parsed
	default:
		return false
	}
	return d.IsPositive() && d.Equal(d.Round(2))
}

func pixKeyType(fl validator.FieldLevel) bool {
	_, err := domain.ParsePixKeyType(fl.Field().String())
	return err == nil
}
