// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	checkoutHTTP "github.com/brightstone/gemgate/internal/checkout/http"
	checkoutService "github.com/brightstone/gemgate/internal/checkout/service"
	checkoutUseCase "github.com/brightstone/gemgate/internal/checkout/usecase"
	"github.com/brightstone/gemgate/internal/clock"
	"github.com/brightstone/gemgate/internal/config"
	"github.com/brightstone/gemgate/internal/http"
	"github.com/brightstone/gemgate/internal/metrics"
	supplierHTTP "github.com/brightstone/gemgate/internal/supplier/http"
	supplierService "github.com/brightstone/gemgate/internal/supplier/service"
	supplierUseCase "github.com/brightstone/gemgate/internal/supplier/usecase"
)

// Container holds all application dependencies and provides methods to access
// them. It follows the lazy initialization pattern - components are created on
// first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	clk    clock.Clock

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Supplier
	supplierClient supplierService.Client
	searchUseCase  supplierUseCase.SearchUseCase

	// Checkout
	storeClient     checkoutService.StoreClient
	checkoutUseCase checkoutUseCase.CheckoutUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	supplierClientInit  sync.Once
	searchUseCaseInit   sync.Once
	storeClientInit     sync.Once
	checkoutUseCaseInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided
// configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		clk:        clock.NewRealClock(),
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, no-op when disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		provider, providerErr := c.MetricsProvider()
		if providerErr != nil {
			err = providerErr
			c.initErrors["businessMetrics"] = providerErr
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		c.businessMetrics, err = metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// SupplierClient returns the supplier client for the configured auth mode.
func (c *Container) SupplierClient() (supplierService.Client, error) {
	var err error
	c.supplierClientInit.Do(func() {
		c.supplierClient, err = c.initSupplierClient()
		if err != nil {
			c.initErrors["supplierClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["supplierClient"]; exists {
		return nil, storedErr
	}
	return c.supplierClient, nil
}

// SearchUseCase returns the diamond search use case.
func (c *Container) SearchUseCase() (supplierUseCase.SearchUseCase, error) {
	var err error
	c.searchUseCaseInit.Do(func() {
		c.searchUseCase, err = c.initSearchUseCase()
		if err != nil {
			c.initErrors["searchUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["searchUseCase"]; exists {
		return nil, storedErr
	}
	return c.searchUseCase, nil
}

// StoreClient returns the store admin API client.
func (c *Container) StoreClient() checkoutService.StoreClient {
	c.storeClientInit.Do(func() {
		c.storeClient = checkoutService.NewStoreClient(c.config, c.Logger())
	})
	return c.storeClient
}

// CheckoutUseCase returns the checkout use case.
func (c *Container) CheckoutUseCase() (checkoutUseCase.CheckoutUseCase, error) {
	var err error
	c.checkoutUseCaseInit.Do(func() {
		c.checkoutUseCase, err = c.initCheckoutUseCase()
		if err != nil {
			c.initErrors["checkoutUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["checkoutUseCase"]; exists {
		return nil, storedErr
	}
	return c.checkoutUseCase, nil
}

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		provider, providerErr := c.MetricsProvider()
		if providerErr != nil {
			err = providerErr
			c.initErrors["metricsServer"] = providerErr
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initSupplierClient creates the supplier client for the configured auth mode.
func (c *Container) initSupplierClient() (supplierService.Client, error) {
	gql := supplierService.NewGraphQLClient(
		c.config.SupplierAPIURL,
		c.config.OutboundTimeout,
		c.Logger(),
	)

	switch c.config.SupplierAuthMode {
	case "login":
		return supplierService.NewLoginClient(gql, c.config, c.clk), nil
	case "basic":
		return supplierService.NewBasicClient(gql, c.config), nil
	default:
		return nil, fmt.Errorf("unsupported supplier auth mode: %s", c.config.SupplierAuthMode)
	}
}

// initSearchUseCase creates the search use case with metrics instrumentation.
func (c *Container) initSearchUseCase() (supplierUseCase.SearchUseCase, error) {
	client, err := c.SupplierClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier client for search use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for search use case: %w", err)
	}

	useCase := supplierUseCase.NewSearchUseCase(c.config, client, c.Logger())
	return supplierUseCase.NewSearchUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCheckoutUseCase creates the checkout use case with metrics instrumentation.
func (c *Container) initCheckoutUseCase() (checkoutUseCase.CheckoutUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for checkout use case: %w", err)
	}

	useCase := checkoutUseCase.NewCheckoutUseCase(c.config, c.StoreClient(), c.Logger())
	return checkoutUseCase.NewCheckoutUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	searchUseCase, err := c.SearchUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get search use case for http server: %w", err)
	}

	checkoutUC, err := c.CheckoutUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout use case for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	diamondHandler := supplierHTTP.NewDiamondHandler(searchUseCase, logger)
	checkoutHandler := checkoutHTTP.NewCheckoutHandler(checkoutUC, logger)

	return http.NewServer(c.config, logger, provider, diamondHandler, checkoutHandler), nil
}
