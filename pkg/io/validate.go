package io

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("sitename", validSiteName); err != nil {
		panic(fmt.Sprintf("io: register sitename validation: %v", err))
	}
}

func validSiteName(fl validator.FieldLevel) bool {
	return apperr.ValidateSiteName(fl.Field().String()) == nil
}

func validateDocument(doc *document) error {
	if err := validate.Struct(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failed field as an INVALID_INPUT
// error, e.g. "routes[2].capacity: must be greater than 0".
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "invalid network description")
	}
	fe := verrs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "min":
		msg = fmt.Sprintf("must have at least %s entries", fe.Param())
	case "max":
		msg = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		msg = fmt.Sprintf("must be greater than %s", fe.Param())
	case "unique":
		msg = "must not contain duplicates"
	case "sitename":
		msg = fmt.Sprintf("invalid site name %q", fe.Value())
	default:
		msg = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return apperr.New(apperr.ErrCodeInvalidInput, "%s: %s", field, msg)
}
