// Package celspec builds specifications from CEL expressions.
//
// The entity under test is exposed to the expression as a dynamic value
// named "entity" by default, after a JSON round trip, so struct fields are
// addressed by their JSON names:
//
//	spec, err := celspec.New[Customer](`entity.age >= 18`, "must be 18 or older")
package celspec

import (
	"encoding/json"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/mvaleed/kernel/specification"
)

const defaultVariable = "entity"

// costLimit bounds the work a single evaluation may do.
const costLimit = 1_000_000

type options struct {
	variable string
}

// Option configures New.
type Option func(*options)

// WithVariableName renames the variable the entity is bound to.
func WithVariableName(name string) Option {
	return func(o *options) {
		o.variable = name
	}
}

// New compiles expression into a specification over T. It fails when the
// expression does not compile or cannot produce a bool.
//
// An evaluation error, or a non-bool result at runtime, counts as not
// satisfied.
func New[T any](expression, message string, opts ...Option) (specification.Specification[T], error) {
	o := options{variable: defaultVariable}
	for _, opt := range opts {
		opt(&o)
	}

	env, err := cel.NewEnv(cel.Variable(o.variable, cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("create cel env: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression %q must return bool, got %s", expression, out)
	}

	prg, err := env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}

	return specification.New(message, func(entity T) bool {
		value, err := toValue(entity)
		if err != nil {
			return false
		}
		out, _, err := prg.Eval(map[string]any{o.variable: value})
		if err != nil {
			return false
		}
		matched, ok := out.Value().(bool)
		return ok && matched
	}), nil
}

// MustNew is like New but panics when the expression is invalid.
func MustNew[T any](expression, message string, opts ...Option) specification.Specification[T] {
	spec, err := New[T](expression, message, opts...)
	if err != nil {
		panic(err)
	}
	return spec
}

func toValue(entity any) (any, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
