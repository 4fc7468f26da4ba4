// Package validation adapts go-playground/validator struct tags to the
// result error model.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mvaleed/kernel/result"
)

// CodeInvalidValidation tags the error reported when the value given to
// Struct cannot be validated at all, such as a nil pointer.
const CodeInvalidValidation = "InvalidValidation"

// validate is shared; validator caches struct metadata per type.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return v
}

// Validator returns the shared validator so callers can register custom
// tags before first use.
func Validator() *validator.Validate {
	return validate
}

// Struct validates v against its struct tags.
func Struct(v any) *result.ValidationResult {
	vr := result.NewValidationResult()

	err := validate.Struct(v)
	if err == nil {
		return vr
	}

	if errs, ok := Errors(err); ok {
		vr.AddErrors(errs...)
		return vr
	}
	vr.Add(err.Error(), CodeInvalidValidation)
	return vr
}

// Errors extracts the field errors carried by err. It understands
// *result.FailureError and validator.ValidationErrors. A FailureError without
// errors reports false.
func Errors(err error) ([]result.Error, bool) {
	if fe, ok := result.AsFailure(err); ok {
		return fe.Errors, len(fe.Errors) > 0
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make([]result.Error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, result.NewError(message(fe), code(fe)))
	}
	return out, true
}

// code is the field namespace without its root struct name, e.g.
// "address.city" for RegisterInput.address.city.
func code(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "uuid", "uuid4":
		return field + " must be a valid UUID"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have length %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	}
	return fmt.Sprintf("%s failed on '%s'", field, fe.Tag())
}
