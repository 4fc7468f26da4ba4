package specification

import "github.com/mvaleed/kernel/result"

// And returns a specification satisfied when both left and right are.
func And[T any](left, right Specification[T]) Specification[T] {
	return &andSpec[T]{
		left:    left,
		right:   right,
		message: left.ErrorMessage() + " and " + right.ErrorMessage(),
	}
}

// Or returns a specification satisfied when left or right is.
func Or[T any](left, right Specification[T]) Specification[T] {
	return &orSpec[T]{
		left:    left,
		right:   right,
		message: left.ErrorMessage() + " or " + right.ErrorMessage(),
	}
}

// Not returns a specification satisfied when inner is not.
func Not[T any](inner Specification[T]) Specification[T] {
	return &notSpec[T]{
		inner:   inner,
		message: "Not (" + inner.ErrorMessage() + ")",
	}
}

type andSpec[T any] struct {
	left, right Specification[T]
	message     string
}

func (s *andSpec[T]) ErrorMessage() string { return s.message }

func (s *andSpec[T]) IsSatisfiedBy(entity T) bool { return s.Evaluate(entity).Satisfied }

// Evaluate always evaluates both sides. The message is the left one when the
// left side fails, else the right one when the right side fails.
func (s *andSpec[T]) Evaluate(entity T) Evaluation {
	l := s.left.Evaluate(entity)
	r := s.right.Evaluate(entity)

	switch {
	case !l.Satisfied:
		return Evaluation{Satisfied: false, Message: l.Message}
	case !r.Satisfied:
		return Evaluation{Satisfied: false, Message: r.Message}
	}
	return Evaluation{Satisfied: true, Message: s.message}
}

// Validate concatenates the errors of both sides, left first.
func (s *andSpec[T]) Validate(entity T) *result.ValidationResult {
	vr := result.NewValidationResult()
	vr.Merge(s.left.Validate(entity))
	vr.Merge(s.right.Validate(entity))
	return vr
}

func (s *andSpec[T]) And(other Specification[T]) Specification[T] { return And[T](s, other) }
func (s *andSpec[T]) Or(other Specification[T]) Specification[T]  { return Or[T](s, other) }
func (s *andSpec[T]) Not() Specification[T]                        { return Not[T](s) }

type orSpec[T any] struct {
	left, right Specification[T]
	message     string
}

func (s *orSpec[T]) ErrorMessage() string { return s.message }

func (s *orSpec[T]) IsSatisfiedBy(entity T) bool { return s.Evaluate(entity).Satisfied }

func (s *orSpec[T]) Evaluate(entity T) Evaluation {
	l := s.left.Evaluate(entity)
	r := s.right.Evaluate(entity)

	if l.Satisfied || r.Satisfied {
		return Evaluation{Satisfied: true, Message: s.message}
	}
	return Evaluation{Satisfied: false, Message: l.Message + " or " + r.Message}
}

// Validate reports a single combined error when both sides fail. Unlike And,
// the children's own errors are not concatenated.
func (s *orSpec[T]) Validate(entity T) *result.ValidationResult {
	return validateSingle[T](s.Evaluate(entity))
}

func (s *orSpec[T]) And(other Specification[T]) Specification[T] { return And[T](s, other) }
func (s *orSpec[T]) Or(other Specification[T]) Specification[T]  { return Or[T](s, other) }
func (s *orSpec[T]) Not() Specification[T]                        { return Not[T](s) }

type notSpec[T any] struct {
	inner   Specification[T]
	message string
}

func (s *notSpec[T]) ErrorMessage() string { return s.message }

func (s *notSpec[T]) IsSatisfiedBy(entity T) bool { return !s.inner.IsSatisfiedBy(entity) }

func (s *notSpec[T]) Evaluate(entity T) Evaluation {
	return Evaluation{Satisfied: s.IsSatisfiedBy(entity), Message: s.message}
}

func (s *notSpec[T]) Validate(entity T) *result.ValidationResult {
	return validateSingle[T](s.Evaluate(entity))
}

func (s *notSpec[T]) And(other Specification[T]) Specification[T] { return And[T](s, other) }
func (s *notSpec[T]) Or(other Specification[T]) Specification[T]  { return Or[T](s, other) }
func (s *notSpec[T]) Not() Specification[T]                        { return Not[T](s) }
