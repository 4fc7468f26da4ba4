// Package specification implements composable business-rule predicates.
//
// A Specification answers whether an entity satisfies a rule and, when it
// does not, explains why through a ValidationResult. Specifications combine
// with And, Or and Not into new specifications; children are captured by
// reference and never modified.
//
// Specifications hold no evaluation state. The message describing which
// branch of a composite failed is returned by Evaluate instead of being
// stored on the instance, so a single specification value can be shared
// freely between goroutines.
package specification

import (
	"reflect"

	"github.com/mvaleed/kernel/result"
)

// Specification is a business rule over entities of type T.
type Specification[T any] interface {
	// ErrorMessage is the message describing the rule when it is not met.
	ErrorMessage() string

	// IsSatisfiedBy reports whether entity satisfies the rule.
	IsSatisfiedBy(entity T) bool

	// Evaluate reports whether entity satisfies the rule together with the
	// message explaining the outcome.
	Evaluate(entity T) Evaluation

	// Validate returns the errors found when checking entity.
	Validate(entity T) *result.ValidationResult

	And(other Specification[T]) Specification[T]
	Or(other Specification[T]) Specification[T]
	Not() Specification[T]
}

// Evaluation is the outcome of evaluating a specification against one
// entity. For composites, Message names the branch that failed.
type Evaluation struct {
	Satisfied bool
	Message   string
}

// Rule is implemented by user-defined business rules. Wrap a Rule with
// FromRule to obtain a composable Specification.
type Rule[T any] interface {
	IsSatisfiedBy(entity T) bool
	ErrorMessage() string
}

// New returns a leaf specification backed by predicate. The predicate must be
// pure: no side effects and the same answer for the same entity.
func New[T any](message string, predicate func(T) bool) Specification[T] {
	return &leaf[T]{message: message, predicate: predicate}
}

// FromRule lifts a Rule into a Specification.
func FromRule[T any](rule Rule[T]) Specification[T] {
	if spec, ok := rule.(Specification[T]); ok {
		return spec
	}
	return &leaf[T]{message: rule.ErrorMessage(), predicate: rule.IsSatisfiedBy}
}

type leaf[T any] struct {
	predicate func(T) bool
	message   string
}

func (s *leaf[T]) ErrorMessage() string { return s.message }

func (s *leaf[T]) IsSatisfiedBy(entity T) bool { return s.predicate(entity) }

func (s *leaf[T]) Evaluate(entity T) Evaluation {
	return Evaluation{Satisfied: s.predicate(entity), Message: s.message}
}

func (s *leaf[T]) Validate(entity T) *result.ValidationResult {
	return validateSingle[T](s.Evaluate(entity))
}

func (s *leaf[T]) And(other Specification[T]) Specification[T] { return And[T](s, other) }
func (s *leaf[T]) Or(other Specification[T]) Specification[T]  { return Or[T](s, other) }
func (s *leaf[T]) Not() Specification[T]                        { return Not[T](s) }

// validateSingle turns an evaluation into a ValidationResult holding at most
// one error, tagged with the entity type name.
func validateSingle[T any](ev Evaluation) *result.ValidationResult {
	vr := result.NewValidationResult()
	if !ev.Satisfied {
		vr.Add(ev.Message, TypeName[T]())
	}
	return vr
}

// TypeName returns the name of T used to tag validation errors. Pointer types
// are reported by their element name.
func TypeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
