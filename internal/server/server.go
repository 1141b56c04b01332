package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/scoutclear/scout/internal/api/handlers"
	"github.com/scoutclear/scout/internal/api/middleware"
	"github.com/scoutclear/scout/internal/config"
	"github.com/scoutclear/scout/internal/logging"
	"github.com/scoutclear/scout/internal/server/routes"
	"github.com/scoutclear/scout/internal/telemetry"
)

const (
	serviceName     = "scout-api"
	shutdownTimeout = 10 * time.Second
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
	deps   Deps
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger, deps Deps) (*Server, error) {
	if deps.Sender == nil {
		return nil, errors.New("server: mail sender is required")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	return &Server{
		router: gin.New(),
		cfg:    cfg,
		logger: logger,
		deps:   deps,
	}, nil
}

// Init wires middleware, handlers and routes
func (s *Server) Init() error {
	var extra []gin.HandlerFunc
	if telemetry.Enabled(s.cfg.OTLPEndpoint) {
		extra = append(extra, otelgin.Middleware(serviceName))
	}

	routes.SetupGlobalMiddleware(s.router, s.logger, middleware.CORSConfig{
		AllowedOrigins: s.cfg.Origins(),
		Production:     s.cfg.IsProduction(),
	}, extra...)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(s.deps.Sender, s.cfg.Mail, s.deps.Brand.Name),
		Health:  handlers.NewHealthHandler(),
		Site:    handlers.NewSiteHandler(s.deps.Brand),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	routes.Setup(s.router, h, m, s.logger)

	if !s.cfg.Mail.Configured() {
		s.logger.Warn("Mail is not configured; contact submissions will fail: %s", s.cfg.Mail.MissingMessage())
	}

	return nil
}

// Handler exposes the engine for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
