package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/devnunnez/Dev/internal/config"
	"github.com/devnunnez/Dev/internal/http/middleware"
	"github.com/devnunnez/Dev/internal/metrics"
	"github.com/devnunnez/Dev/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      *config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	s := &Server{
		config:      cfg,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("GET /{$}", s.handler.HandleRoot)
	mux.HandleFunc("POST /generate", s.handler.HandleGenerate)
	mux.HandleFunc("POST /preview", s.handler.HandleCreatePreview)
	mux.HandleFunc("GET /preview/{id}", s.handler.HandleGetPreview)
	mux.HandleFunc("GET /conversations", s.handler.HandleConversations)
	mux.HandleFunc("GET /templates", s.handler.HandleTemplates)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("OPTIONS /", s.handler.HandleOptions)
	mux.HandleFunc("/", s.handler.HandleNotFound)

	if s.middlewares == nil {
		return mux
	}

	return s.middlewares(mux)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	observability.FromContext(context.Background()).Info("starting HTTP server",
		observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
