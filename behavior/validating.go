package behavior

import (
	"context"

	"github.com/mvaleed/kernel/specification"
	"github.com/mvaleed/kernel/validation"
)

// Validating rejects requests that do not satisfy spec with the
// *result.FailureError built from its validation errors.
func Validating[Req, Resp any](spec specification.Specification[Req]) Behavior[Req, Resp] {
	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
		if err := spec.Validate(req).Err(); err != nil {
			var zero Resp
			return zero, err
		}
		return next(ctx, req)
	}
}

// ValidatingStruct rejects requests whose validate struct tags fail.
func ValidatingStruct[Req, Resp any]() Behavior[Req, Resp] {
	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
		if err := validation.Struct(req).Err(); err != nil {
			var zero Resp
			return zero, err
		}
		return next(ctx, req)
	}
}
