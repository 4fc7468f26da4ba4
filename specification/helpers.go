package specification

// All combines specs with And, left to right. It panics when specs is empty.
func All[T any](specs ...Specification[T]) Specification[T] {
	if len(specs) == 0 {
		panic("specification: All requires at least one specification")
	}
	combined := specs[0]
	for _, s := range specs[1:] {
		combined = And(combined, s)
	}
	return combined
}

// Any combines specs with Or, left to right. It panics when specs is empty.
func Any[T any](specs ...Specification[T]) Specification[T] {
	if len(specs) == 0 {
		panic("specification: Any requires at least one specification")
	}
	combined := specs[0]
	for _, s := range specs[1:] {
		combined = Or(combined, s)
	}
	return combined
}

// Filter returns the items that satisfy spec, in their original order.
func Filter[T any](items []T, spec Specification[T]) []T {
	var out []T
	for _, item := range items {
		if spec.IsSatisfiedBy(item) {
			out = append(out, item)
		}
	}
	return out
}
