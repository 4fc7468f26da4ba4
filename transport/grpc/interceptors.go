package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/mvaleed/kernel/domain"
	"github.com/mvaleed/kernel/validation"
)

// LoggingInterceptor logs all incoming requests
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		logger.InfoContext(ctx, "gRPC request",
			"method", info.FullMethod,
		)

		resp, err := handler(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "gRPC request failed",
				"method", info.FullMethod,
				"error", err,
			)
		}

		return resp, err
	}
}

// RecoveryInterceptor recovers from panics
func RecoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "gRPC panic recovered",
					"method", info.FullMethod,
					"panic", r,
				)
				err = status.Error(codes.Internal, "internal server error")
			}
		}()

		return handler(ctx, req)
	}
}

// ErrorInterceptor converts errors returned by handlers into gRPC status
// errors. See StatusFromError.
func ErrorInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		st := StatusFromError(err)
		if st.Code() == codes.Internal {
			if _, isStatus := status.FromError(err); !isStatus {
				logger.ErrorContext(ctx, "unhandled error",
					"method", info.FullMethod,
					"error", err,
				)
			}
		}
		return resp, st.Err()
	}
}

// StatusFromError maps err to a gRPC status. Validation failures become
// InvalidArgument with a BadRequest detail listing one violation per
// error, keyed by the error code. Errors that already are status errors are
// returned unchanged.
func StatusFromError(err error) *status.Status {
	if st, ok := status.FromError(err); ok {
		return st
	}

	if errs, ok := validation.Errors(err); ok {
		br := &errdetails.BadRequest{}
		for _, e := range errs {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       e.Code,
				Description: e.Message,
			})
		}
		st := status.New(codes.InvalidArgument, err.Error())
		if detailed, derr := st.WithDetails(protoadapt.MessageV1Of(br)); derr == nil {
			return detailed
		}
		return st
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.New(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return status.New(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrConcurrentModification):
		return status.New(codes.Aborted, err.Error())
	}

	return status.New(codes.Internal, "internal server error")
}
