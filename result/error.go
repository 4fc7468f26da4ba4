// Package result models the outcome of an operation as a value: success, or
// failure carrying one or more structured errors.
//
// Domain failures never panic. They travel inside a Result or a
// ValidationResult and must be inspected by the caller. Only misuse of the
// package itself (a failure with no errors, reading the value of a failed
// result) is reported as ErrInvalidArgument or ErrInvalidState.
package result

// Error is an immutable, comparable description of a single failure.
// Code is optional; the empty string means "no code".
type Error struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Well-known errors.
var (
	None      = Error{Message: "None", Code: "No error"}
	NullValue = Error{Message: "NullValue", Code: "Value is null"}
)

// NewError creates an Error with the given message and code.
func NewError(message, code string) Error {
	return Error{Message: message, Code: code}
}

// String renders the error as "<code>: <message>", or just the message when
// no code is set.
func (e Error) String() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// Error implements the error interface so a single Error can be returned or
// wrapped where a Go error is expected.
func (e Error) Error() string {
	return e.String()
}
