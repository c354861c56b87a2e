package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightstone/gemgate/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       0,
		LogLevel:         "error",
		MetricsEnabled:   false,
		SupplierAuthMode: "login",
	}
}

func TestContainer(t *testing.T) {
	t.Run("Success_ComponentsAreSingletons", func(t *testing.T) {
		container := NewContainer(testConfig())

		assert.Same(t, container.Logger(), container.Logger())

		client1, err := container.SupplierClient()
		require.NoError(t, err)
		client2, err := container.SupplierClient()
		require.NoError(t, err)
		assert.Same(t, client1, client2)

		assert.Same(t, container.StoreClient(), container.StoreClient())
	})

	t.Run("Success_BasicAuthMode", func(t *testing.T) {
		cfg := testConfig()
		cfg.SupplierAuthMode = "basic"
		container := NewContainer(cfg)

		client, err := container.SupplierClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Success_MetricsDisabledYieldsNilProviderAndNoOpMetrics", func(t *testing.T) {
		container := NewContainer(testConfig())

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, bm)

		server, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, server)
	})

	t.Run("Success_HTTPServerAssembles", func(t *testing.T) {
		container := NewContainer(testConfig())

		server, err := container.HTTPServer()
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("Success_ShutdownWithNothingStarted", func(t *testing.T) {
		container := NewContainer(testConfig())
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("Error_UnsupportedAuthMode", func(t *testing.T) {
		cfg := testConfig()
		cfg.SupplierAuthMode = "oauth"
		container := NewContainer(cfg)

		_, err := container.SupplierClient()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported supplier auth mode")
	})
}
