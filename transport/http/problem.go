// Package http provides net/http building blocks for APIs: RFC 7807 problem
// details, error-to-status mapping, request logging and JSON helpers.
package http

import (
	"encoding/json"
	"net/http"
)

// ContentTypeProblem is the media type of problem detail responses.
const ContentTypeProblem = "application/problem+json"

// Problem type URIs.
const (
	TypeBadRequest          = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	TypeNotFound            = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	TypeConflict            = "https://tools.ietf.org/html/rfc7231#section-6.5.8"
	TypeInternalServerError = "https://tools.ietf.org/html/rfc7231#section-6.6.1"
)

// ProblemDetails is an RFC 7807 error body. Errors is set only for
// validation problems. Extensions are written as top-level members.
type ProblemDetails struct {
	Type       string
	Title      string
	Status     int
	Detail     string
	Instance   string
	Errors     map[string][]string
	Extensions map[string]any
}

// MarshalJSON renders p with camelCase members, omitting empty ones.
func (p ProblemDetails) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extensions)+6)
	for k, v := range p.Extensions {
		m[k] = v
	}
	if p.Type != "" {
		m["type"] = p.Type
	}
	if p.Title != "" {
		m["title"] = p.Title
	}
	if p.Status != 0 {
		m["status"] = p.Status
	}
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}
	if p.Errors != nil {
		m["errors"] = p.Errors
	}
	return json.Marshal(m)
}

// WriteProblem writes p as application/problem+json. An empty Instance is
// filled with the request path.
func WriteProblem(w http.ResponseWriter, r *http.Request, p ProblemDetails) {
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.Path
	}
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}
