// Package grpc provides gRPC server plumbing: logging, panic recovery and
// translation of domain errors into gRPC status codes.
package grpc

import (
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var _ grpc.ServiceRegistrar = (*Server)(nil)

// Server wraps a gRPC server that already carries the standard
// interceptors and health service.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	logger     *slog.Logger
}

// NewServer creates a gRPC server with the interceptor chain
// logging, recovery, errors. Extra options are appended.
func NewServer(logger *slog.Logger, opts ...grpc.ServerOption) *Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(logger),
			RecoveryInterceptor(logger),
			ErrorInterceptor(logger),
		),
	}, opts...)

	s := &Server{
		grpcServer: grpc.NewServer(opts...),
		health:     health.NewServer(),
		logger:     logger,
	}
	healthpb.RegisterHealthServer(s.grpcServer, s.health)

	return s
}

// RegisterService registers a service implementation, as generated
// Register*Server functions do.
func (s *Server) RegisterService(desc *grpc.ServiceDesc, impl any) {
	s.grpcServer.RegisterService(desc, impl)
}

// GetServiceInfo reports the registered services. Together with
// RegisterService it lets reflection.Register accept a *Server.
func (s *Server) GetServiceInfo() map[string]grpc.ServiceInfo {
	return s.grpcServer.GetServiceInfo()
}

// SetServingStatus updates the health status of service. The empty name is
// the overall server status.
func (s *Server) SetServingStatus(service string, serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, st)
}

// Health returns the health service.
func (s *Server) Health() *health.Server {
	return s.health
}

// Serve starts the gRPC server on the given listener
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("gRPC server listening", "addr", listener.Addr().String())
	return s.grpcServer.Serve(listener)
}

// GracefulStop marks the server as not serving and waits for in-flight
// requests to finish.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
