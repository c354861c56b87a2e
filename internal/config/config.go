// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout is the maximum time allowed for graceful shutdown.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// SupplierAPIURL is the GraphQL endpoint of the diamond inventory supplier.
	SupplierAPIURL string
	// SupplierUsername is the username used to authenticate against the supplier.
	SupplierUsername string
	// SupplierPassword is the password used to authenticate against the supplier.
	SupplierPassword string
	// SupplierAuthMode selects the supplier integration mode ("login" or "basic").
	SupplierAuthMode string
	// SupplierTokenTTL is how long a supplier access token is reused before
	// a fresh authenticate call is made.
	SupplierTokenTTL time.Duration
	// SupplierMarkupPricing requests supplier prices computed on a markup basis.
	SupplierMarkupPricing bool

	// OutboundTimeout is the timeout applied to outbound supplier and store calls.
	OutboundTimeout time.Duration

	// StoreDomain is the commerce platform domain (e.g., "example.myshopify.com").
	// When empty, checkout runs in degraded cart-URL mode.
	StoreDomain string
	// StoreAccessToken is the static admin API access token for the store.
	StoreAccessToken string
	// StoreAPIVersion is the store admin API version used in request paths.
	StoreAPIVersion string
	// StoreDiamondProductID is the chassis product that dynamically created
	// diamond variants are attached to.
	StoreDiamondProductID int64
	// StoreCartURL is the storefront base URL used to build degraded cart links.
	StoreCartURL string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "gemgate"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Supplier integration
		SupplierAPIURL:        env.GetString("SUPPLIER_API_URL", ""),
		SupplierUsername:      env.GetString("SUPPLIER_USERNAME", ""),
		SupplierPassword:      env.GetString("SUPPLIER_PASSWORD", ""),
		SupplierAuthMode:      env.GetString("SUPPLIER_AUTH_MODE", "login"),
		SupplierTokenTTL:      env.GetDuration("SUPPLIER_TOKEN_TTL_SECONDS", 19800, time.Second),
		SupplierMarkupPricing: env.GetBool("SUPPLIER_MARKUP_PRICING", false),

		// Outbound HTTP
		OutboundTimeout: env.GetDuration("OUTBOUND_TIMEOUT_SECONDS", 30, time.Second),

		// Store integration
		StoreDomain:           env.GetString("STORE_DOMAIN", ""),
		StoreAccessToken:      env.GetString("STORE_ACCESS_TOKEN", ""),
		StoreAPIVersion:       env.GetString("STORE_API_VERSION", "2024-01"),
		StoreDiamondProductID: env.GetInt64("STORE_DIAMOND_PRODUCT_ID", 0),
		StoreCartURL:          env.GetString("STORE_CART_URL", ""),
	}
}

// SupplierConfigured reports whether supplier credentials are present.
func (c *Config) SupplierConfigured() bool {
	return c.SupplierAPIURL != "" && c.SupplierUsername != "" && c.SupplierPassword != ""
}

// StoreConfigured reports whether the store integration can be used. A missing
// store configuration is not an error; checkout falls back to cart URLs.
func (c *Config) StoreConfigured() bool {
	return c.StoreDomain != "" && c.StoreAccessToken != ""
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
