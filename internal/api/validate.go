package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON name.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct checks the validate tags of a request DTO and returns a
// *types.ValidationError describing the first failing field.
func ValidateStruct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return types.NewValidationError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return types.NewValidationError(fmt.Sprintf("field %s is required", fe.Field()))
	case "email":
		return types.NewValidationError(fmt.Sprintf("field %s must be a valid email address", fe.Field()))
	case "max":
		if isNumeric(fe.Kind()) {
			return types.NewValidationError(fmt.Sprintf("field %s must be at most %s", fe.Field(), fe.Param()))
		}
		return types.NewValidationError(fmt.Sprintf("field %s must be at most %s long", fe.Field(), fe.Param()))
	case "min":
		return types.NewValidationError(fmt.Sprintf("field %s must be at least %s", fe.Field(), fe.Param()))
	default:
		return types.NewValidationError(fmt.Sprintf("field %s is invalid (%s)", fe.Field(), fe.Tag()))
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
