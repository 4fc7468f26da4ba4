// Package http provides the HTTP transport layer for the customer service.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mvaleed/kernel/config"
	"github.com/mvaleed/kernel/internal/customer"
	khttp "github.com/mvaleed/kernel/transport/http"
)

// Server is the HTTP server for the customer service.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	customers  *customer.Service
	errors     *khttp.ErrorHandler
	logger     *slog.Logger
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Config, customers *customer.Service, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		customers: customers,
		errors: &khttp.ErrorHandler{
			Development: cfg.IsDevelopment(),
			Logger:      logger,
		},
		logger: logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(khttp.RequestLogger(s.logger))
	s.router.Use(s.errors.Middleware)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/customers", s.errors.Handle(s.handleRegisterCustomer))
		r.Get("/customers/{id}", s.errors.Handle(s.handleGetCustomer))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	khttp.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
