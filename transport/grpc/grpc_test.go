package grpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/mvaleed/kernel/domain"
	"github.com/mvaleed/kernel/result"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/kernel.v1.CustomerService/Register"}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func returning(resp any, err error) grpc.UnaryHandler {
	return func(context.Context, any) (any, error) { return resp, err }
}

func TestErrorInterceptor_Validation(t *testing.T) {
	fe := &result.FailureError{Errors: []result.Error{
		{Message: "name is required", Code: "name"},
		{Message: "must be 18 or older", Code: "Customer"},
	}}

	_, err := ErrorInterceptor(quietLogger())(context.Background(), nil, info, returning(nil, fe))

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, br.GetFieldViolations(), 2)
	assert.Equal(t, "name", br.GetFieldViolations()[0].GetField())
	assert.Equal(t, "must be 18 or older", br.GetFieldViolations()[1].GetDescription())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("customer: %w", domain.ErrNotFound), codes.NotFound},
		{domain.ErrAlreadyExists, codes.AlreadyExists},
		{domain.ErrConflict, codes.Aborted},
		{domain.ErrConcurrentModification, codes.Aborted},
		{status.Error(codes.PermissionDenied, "nope"), codes.PermissionDenied},
		{errors.New("boom"), codes.Internal},
		{&result.FailureError{}, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, StatusFromError(tt.err).Code())
		})
	}

	assert.Equal(t, "internal server error", StatusFromError(errors.New("secret detail")).Message())
	assert.Equal(t, "nope", StatusFromError(status.Error(codes.PermissionDenied, "nope")).Message())
}

func TestErrorInterceptor_PassesThroughSuccess(t *testing.T) {
	resp, err := ErrorInterceptor(quietLogger())(context.Background(), nil, info, returning("ok", nil))
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestRecoveryInterceptor(t *testing.T) {
	panicking := func(context.Context, any) (any, error) { panic("kaboom") }

	_, err := RecoveryInterceptor(quietLogger())(context.Background(), nil, info, panicking)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	_, err := LoggingInterceptor(logger)(context.Background(), nil, info, returning(nil, errors.New("boom")))
	assert.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"gRPC request"`)
	assert.Contains(t, buf.String(), `"msg":"gRPC request failed"`)
	assert.Contains(t, buf.String(), info.FullMethod)
}

func TestNewServer_Health(t *testing.T) {
	s := NewServer(quietLogger())
	ctx := context.Background()

	resp, err := s.Health().Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	s.SetServingStatus("", false)
	resp, err = s.Health().Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	_, err = s.Health().Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_Reflection(t *testing.T) {
	s := NewServer(quietLogger())
	assert.Contains(t, s.GetServiceInfo(), "grpc.health.v1.Health")

	reflection.Register(s)

	services := s.GetServiceInfo()
	assert.Contains(t, services, "grpc.reflection.v1.ServerReflection")
	assert.Contains(t, services, "grpc.reflection.v1alpha.ServerReflection")
}
