package behavior

import (
	"context"
	"log/slog"
	"time"

	"github.com/mvaleed/kernel/specification"
)

// Logging logs every request and the errors it produces. Panics are logged
// and propagated.
func Logging[Req, Resp any](logger *slog.Logger) Behavior[Req, Resp] {
	name := specification.TypeName[Req]()

	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (resp Resp, err error) {
		start := time.Now()
		logger.InfoContext(ctx, "handling request",
			"request", name,
			"payload", req,
		)

		defer func() {
			if p := recover(); p != nil {
				logger.ErrorContext(ctx, "request panicked",
					"request", name,
					"panic", p,
				)
				panic(p)
			}
		}()

		resp, err = next(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "request failed",
				"request", name,
				"error", err,
				"duration", time.Since(start),
			)
			return resp, err
		}

		logger.DebugContext(ctx, "request handled",
			"request", name,
			"duration", time.Since(start),
		)
		return resp, nil
	}
}
