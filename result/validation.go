package result

import "slices"

// ValidationResult accumulates the errors found while validating one entity.
// It is not safe for concurrent use.
type ValidationResult struct {
	errors []Error
}

// NewValidationResult returns an empty, valid ValidationResult.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{}
}

// Errors returns a copy of the accumulated errors.
func (v *ValidationResult) Errors() []Error {
	return slices.Clone(v.errors)
}

// IsValid reports whether no error has been added.
func (v *ValidationResult) IsValid() bool {
	return len(v.errors) == 0
}

// IsInvalid is the negation of IsValid.
func (v *ValidationResult) IsInvalid() bool {
	return !v.IsValid()
}

// AddError appends err.
func (v *ValidationResult) AddError(err Error) {
	v.errors = append(v.errors, err)
}

// Add appends an error built from message and an optional code.
func (v *ValidationResult) Add(message, code string) {
	v.errors = append(v.errors, Error{Message: message, Code: code})
}

// AddErrors appends errs in order.
func (v *ValidationResult) AddErrors(errs ...Error) {
	v.errors = append(v.errors, errs...)
}

// Merge appends the errors of other. A nil other is ignored.
func (v *ValidationResult) Merge(other *ValidationResult) *ValidationResult {
	if other != nil {
		v.errors = append(v.errors, other.errors...)
	}
	return v
}

// ToResult converts the validation outcome into a Result.
func (v *ValidationResult) ToResult() Result {
	if v.IsValid() {
		return Success()
	}
	return Failure(v.errors...)
}

// Err returns nil when valid and a *FailureError otherwise.
func (v *ValidationResult) Err() error {
	if v.IsValid() {
		return nil
	}
	return &FailureError{Errors: v.Errors()}
}
