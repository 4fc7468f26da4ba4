package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/mvaleed/kernel/config"
	"github.com/mvaleed/kernel/data/pgxuow"
	"github.com/mvaleed/kernel/internal/customer"
	"github.com/mvaleed/kernel/internal/event"
	httpTransport "github.com/mvaleed/kernel/internal/transport/http"
	grpcTransport "github.com/mvaleed/kernel/transport/grpc"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Setup structured logging
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	// Run the application
	if err := run(cfg, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	customers, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize event publisher
	var publisher event.Publisher = event.NewLoggingPublisher(logger)
	defer publisher.Close()

	customerService := customer.NewService(customers, publisher, logger)

	errChan := make(chan error, 2)

	httpServer := httpTransport.NewServer(cfg, customerService, logger)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		logger.Info("starting HTTP server", "addr", addr)
		if err := httpServer.ListenAndServe(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// Start gRPC server
	grpcServer := grpcTransport.NewServer(logger)
	if cfg.IsDevelopment() {
		reflection.Register(grpcServer)
	}
	go func() {
		addr := fmt.Sprintf(":%d", cfg.GRPCPort)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			errChan <- fmt.Errorf("gRPC listen: %w", err)
			return
		}
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", "signal", sig)
	case err := <-errChan:
		logger.Error("server error", "error", err)
		return err
	}

	logger.Info("initiating graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	grpcServer.GracefulStop()

	cancel()

	logger.Info("shutdown complete")
	return nil
}

// openStore returns a PostgreSQL store when DATABASE_URL is set and an
// in-memory one otherwise. The returned func releases the store's resources.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (customer.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("using in-memory customer store")
		return customer.NewMemoryStore(), func() {}, nil
	}

	logger.Info("connecting to database")
	pool, err := pgxuow.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connected")

	store := customer.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}
	return store, pool.Close, nil
}
