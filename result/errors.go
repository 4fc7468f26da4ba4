package result

import (
	"errors"
	"strings"
)

// Errors reported when the package is used incorrectly.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

// FailureError carries the errors of a failed Result or an invalid
// ValidationResult through code paths that speak the error interface, such as
// HTTP handlers and pipeline behaviors. Errors must not be empty; an empty
// FailureError is not treated as a validation failure by the adapters.
type FailureError struct {
	Errors []Error
}

func (e *FailureError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "failure without errors"
	case 1:
		return e.Errors[0].String()
	}
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = err.String()
	}
	return strings.Join(parts, "; ")
}

// AsFailure reports whether err is, or wraps, a *FailureError and returns it.
func AsFailure(err error) (*FailureError, bool) {
	var fe *FailureError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
