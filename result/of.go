package result

import (
	"fmt"
	"reflect"
)

// Of is a Result that carries a value of type T when it succeeds.
type Of[T any] struct {
	Result
	value T
}

// SuccessOf returns a successful result wrapping v.
func SuccessOf[T any](v T) Of[T] {
	return Of[T]{Result: Success(), value: v}
}

// FailureOf returns a failed result with no value. Like Failure, it panics
// when errs is empty.
func FailureOf[T any](errs ...Error) Of[T] {
	return Of[T]{Result: Failure(errs...)}
}

// Create lifts a possibly absent value into a result: a nil pointer, map,
// slice, channel, func or interface yields a failure holding NullValue,
// anything else a success.
func Create[T any](v T) Of[T] {
	if isNil(v) {
		return FailureOf[T](NullValue)
	}
	return SuccessOf(v)
}

// Value returns the wrapped value, or an error wrapping ErrInvalidState when
// the result is a failure.
func (r Of[T]) Value() (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, fmt.Errorf("%w: result has no value", ErrInvalidState)
	}
	return r.value, nil
}

// MustValue is like Value but panics on a failed result.
func (r Of[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// OnSuccess calls fn with the value when r is a success.
func (r Of[T]) OnSuccess(fn func(T)) Of[T] {
	if r.IsSuccess() {
		fn(r.value)
	}
	return r
}

// OnFailure calls fn with the errors when r is a failure.
func (r Of[T]) OnFailure(fn func([]Error)) Of[T] {
	if r.IsFailure() {
		fn(r.Errors())
	}
	return r
}

// Map transforms the value of a successful result. Failures pass through
// with their errors.
func Map[T, U any](r Of[T], fn func(T) U) Of[U] {
	if r.IsFailure() {
		return Of[U]{Result: r.Result}
	}
	return SuccessOf(fn(r.value))
}

// Bind chains an operation that itself returns a result.
func Bind[T, U any](r Of[T], fn func(T) Of[U]) Of[U] {
	if r.IsFailure() {
		return Of[U]{Result: r.Result}
	}
	return fn(r.value)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
