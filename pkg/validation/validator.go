package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

// newValidator builds the shared validator instance.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	val.RegisterAlias("pwd", "min=8") // password minimum length
	val.RegisterAlias("nonzero", "required")
	return val
}

// Struct validates a tagged struct with the shared instance.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// ToDetails converts validation errors into a map[field]message suitable for
// presenting alongside a failed mutation.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}
	return map[string]string{"input": "invalid input"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min", "pwd":
		if param == "" {
			param = "8"
		}
		return "must be at least " + param + " characters long"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", param)
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be at least " + param
	default:
		return "is invalid"
	}
}
