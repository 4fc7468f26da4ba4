package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mvaleed/kernel/result"
)

// DecodeJSON decodes the request body into v. A malformed body is reported
// as a *result.FailureError with code "body".
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &result.FailureError{Errors: []result.Error{result.NewError("invalid JSON", "body")}}
	}
	return nil
}

// WriteJSON writes data as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
