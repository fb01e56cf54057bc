package handlers

import (
	"errors"
	"reflect"
	"sync"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the decimal and category binding rules to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// Validate decimals by their string form so the rules below see a comparable value.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("decimal_gt0", func(fl validator.FieldLevel) bool {
			d, ok := decimalFromField(fl)
			return ok && d.IsPositive()
		})
		_ = v.RegisterValidation("decimal_gte0", func(fl validator.FieldLevel) bool {
			d, ok := decimalFromField(fl)
			return ok && !d.IsNegative()
		})
		_ = v.RegisterValidation("asset_category", func(fl validator.FieldLevel) bool {
			return domain.AssetCategory(fl.Field().String()).IsValid()
		})
	})
}

func decimalFromField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v, true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

// validationErrorFields maps each failing field to the rule it broke.
// It returns nil when err is not a validation failure (e.g. malformed JSON).
func validationErrorFields(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		fields[ve.Field()] = ve.Tag()
	}
	return fields
}
