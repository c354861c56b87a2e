// Package http provides the HTTP server, routing, and request middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	checkoutHTTP "github.com/brightstone/gemgate/internal/checkout/http"
	"github.com/brightstone/gemgate/internal/config"
	"github.com/brightstone/gemgate/internal/metrics"
	supplierHTTP "github.com/brightstone/gemgate/internal/supplier/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	engine *gin.Engine
	logger *slog.Logger
}

// NewServer creates the API server with all routes and middleware wired.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	diamondHandler *supplierHTTP.DiamondHandler,
	checkoutHandler *checkoutHTTP.CheckoutHandler,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	engine.Use(RequestLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		engine.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		engine.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	engine.GET("/", livenessHandler)
	engine.GET("/health", healthHandler)
	engine.POST("/diamonds", diamondHandler.SearchDiamondsHandler)
	engine.POST("/checkout", checkoutHandler.CreateCheckoutHandler)

	return &Server{
		engine: engine,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler returns the http.Handler for testing purposes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// livenessHandler answers the storefront's liveness probe with plain text.
func livenessHandler(c *gin.Context) {
	c.String(http.StatusOK, "gemgate proxy is up")
}

// healthHandler reports service health as JSON.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
