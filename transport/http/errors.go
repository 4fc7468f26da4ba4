package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mvaleed/kernel/domain"
	"github.com/mvaleed/kernel/validation"
)

// HandlerFunc is an HTTP handler that reports failures by returning them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler turns errors and panics into problem detail responses. In
// development, internal errors expose their message, the request id and a
// stack trace.
type ErrorHandler struct {
	Development bool
	Logger      *slog.Logger
}

// Middleware recovers panics raised by next and answers 500.
func (h *ErrorHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			h.internal(w, r, err, debug.Stack())
		}()

		next.ServeHTTP(w, r)
	})
}

// Handle adapts fn to http.HandlerFunc, writing a problem response for any
// error it returns.
func (h *ErrorHandler) Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.WriteError(w, r, err)
		}
	}
}

// WriteError writes the problem response matching err.
func (h *ErrorHandler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if errs, ok := validation.Errors(err); ok {
		grouped := make(map[string][]string)
		for _, e := range errs {
			grouped[e.Code] = append(grouped[e.Code], e.Message)
		}
		WriteProblem(w, r, ProblemDetails{
			Type:   TypeBadRequest,
			Title:  "One or more validation errors occurred",
			Status: http.StatusBadRequest,
			Detail: "See the errors property for details",
			Errors: grouped,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteProblem(w, r, ProblemDetails{
			Type:   TypeNotFound,
			Title:  "The requested resource was not found",
			Status: http.StatusNotFound,
			Detail: err.Error(),
		})

	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrConcurrentModification):
		WriteProblem(w, r, ProblemDetails{
			Type:   TypeConflict,
			Title:  "The request conflicts with the current state of the resource",
			Status: http.StatusConflict,
			Detail: err.Error(),
		})

	default:
		h.internal(w, r, err, nil)
	}
}

func (h *ErrorHandler) internal(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	h.logger().ErrorContext(r.Context(), "unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	p := ProblemDetails{
		Type:   TypeInternalServerError,
		Title:  "An internal server error occurred",
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred.",
	}
	if h.Development {
		if stack == nil {
			stack = debug.Stack()
		}
		p.Detail = err.Error()
		p.Extensions = map[string]any{
			"traceId":    middleware.GetReqID(r.Context()),
			"stackTrace": string(stack),
		}
	}
	WriteProblem(w, r, p)
}

func (h *ErrorHandler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
