package result

import (
	"fmt"
	"slices"
)

// Result is the outcome of an operation that produces no value.
//
// A successful Result never has errors and a failed Result always has at
// least one. The zero value is a success.
type Result struct {
	errors  []Error
	success bool
}

// NewResult builds a Result after checking the success/errors invariant.
// It returns an error wrapping ErrInvalidState when the invariant is broken.
func NewResult(success bool, errs []Error) (Result, error) {
	switch {
	case success && len(errs) > 0:
		return Result{}, fmt.Errorf("%w: a successful result cannot have errors", ErrInvalidState)
	case !success && len(errs) == 0:
		return Result{}, fmt.Errorf("%w: a failed result must have at least one error", ErrInvalidState)
	}
	return Result{success: success, errors: slices.Clone(errs)}, nil
}

// Success returns a successful Result.
func Success() Result {
	return Result{success: true}
}

// Failure returns a failed Result holding a copy of errs.
//
// Calling Failure without errors is a programming error: it panics with an
// error wrapping ErrInvalidArgument.
func Failure(errs ...Error) Result {
	if len(errs) == 0 {
		panic(fmt.Errorf("%w: a failure requires at least one error", ErrInvalidArgument))
	}
	return Result{errors: slices.Clone(errs)}
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool {
	return r.success || len(r.errors) == 0
}

// IsFailure reports whether the operation failed.
func (r Result) IsFailure() bool {
	return !r.IsSuccess()
}

// Errors returns a copy of the errors in the order they were given.
func (r Result) Errors() []Error {
	return slices.Clone(r.errors)
}

// Err returns nil for a success and a *FailureError otherwise.
func (r Result) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return &FailureError{Errors: r.Errors()}
}

// OnSuccess calls fn when r is a success. Panics raised by fn propagate.
func (r Result) OnSuccess(fn func()) Result {
	if r.IsSuccess() {
		fn()
	}
	return r
}

// OnFailure calls fn with the errors when r is a failure.
func (r Result) OnFailure(fn func([]Error)) Result {
	if r.IsFailure() {
		fn(r.Errors())
	}
	return r
}
