package service

import (
	"errors"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("tip_method", func(fl validator.FieldLevel) bool {
			return entity.TipMethod(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("rounding", func(fl validator.FieldLevel) bool {
			switch entity.Rounding(fl.Field().String()) {
			case entity.RoundingNone, entity.RoundingOne, entity.RoundingFive:
				return true
			}
			return false
		})
		// NaN fails every comparison but Inf passes gt=0
		validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			v := fl.Field().Float()
			return !math.IsInf(v, 0) && !math.IsNaN(v)
		})
	})
}

// validateStruct returns nil or an error matching ErrValidation that carries
// every failed field.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
