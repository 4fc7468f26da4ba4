// Package behavior composes request handlers with cross-cutting behaviors
// such as logging and validation.
package behavior

import "context"

// Handler handles a request of type Req.
type Handler[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Behavior wraps a handler. It decides whether and how to call next.
type Behavior[Req, Resp any] func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error)

// Chain wraps h with behaviors. The first behavior is the outermost one.
func Chain[Req, Resp any](h Handler[Req, Resp], behaviors ...Behavior[Req, Resp]) Handler[Req, Resp] {
	for i := len(behaviors) - 1; i >= 0; i-- {
		b, next := behaviors[i], h
		h = func(ctx context.Context, req Req) (Resp, error) {
			return b(ctx, req, next)
		}
	}
	return h
}
