package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	checkoutDomain "github.com/brightstone/gemgate/internal/checkout/domain"
	checkoutHTTP "github.com/brightstone/gemgate/internal/checkout/http"
	checkoutUseCase "github.com/brightstone/gemgate/internal/checkout/usecase"
	"github.com/brightstone/gemgate/internal/config"
	supplierDomain "github.com/brightstone/gemgate/internal/supplier/domain"
	supplierHTTP "github.com/brightstone/gemgate/internal/supplier/http"
	supplierUseCase "github.com/brightstone/gemgate/internal/supplier/usecase"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockSearchUseCase struct {
	mock.Mock
}

var _ supplierUseCase.SearchUseCase = (*mockSearchUseCase)(nil)

func (m *mockSearchUseCase) Search(ctx context.Context, filter supplierDomain.DiamondFilter) (*supplierUseCase.SearchOutput, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplierUseCase.SearchOutput), args.Error(1)
}

type mockCheckoutUseCase struct {
	mock.Mock
}

var _ checkoutUseCase.CheckoutUseCase = (*mockCheckoutUseCase)(nil)

func (m *mockCheckoutUseCase) Checkout(ctx context.Context, req checkoutDomain.CheckoutRequest) (*checkoutDomain.CheckoutResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkoutDomain.CheckoutResult), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestServer(search *mockSearchUseCase, checkout *mockCheckoutUseCase) *Server {
	cfg := &config.Config{
		ServerHost: "127.0.0.1",
		ServerPort: 0,
	}
	logger := testLogger()
	return NewServer(
		cfg,
		logger,
		nil,
		supplierHTTP.NewDiamondHandler(search, logger),
		checkoutHTTP.NewCheckoutHandler(checkout, logger),
	)
}

func TestServerRoutes(t *testing.T) {
	t.Run("Success_LivenessProbe", func(t *testing.T) {
		server := newTestServer(new(mockSearchUseCase), new(mockCheckoutUseCase))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gemgate proxy is up", w.Body.String())
	})

	t.Run("Success_HealthEndpoint", func(t *testing.T) {
		server := newTestServer(new(mockSearchUseCase), new(mockCheckoutUseCase))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("Success_DiamondSearchRouteIsWired", func(t *testing.T) {
		search := new(mockSearchUseCase)
		search.On("Search", mock.Anything, mock.AnythingOfType("domain.DiamondFilter")).
			Return(&supplierUseCase.SearchOutput{Items: []supplierDomain.DiamondRecord{}, Total: 0}, nil)
		server := newTestServer(search, new(mockCheckoutUseCase))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/diamonds", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		search.AssertExpectations(t)
	})

	t.Run("Success_CheckoutRouteIsWired", func(t *testing.T) {
		checkout := new(mockCheckoutUseCase)
		checkout.On("Checkout", mock.Anything, mock.AnythingOfType("domain.CheckoutRequest")).
			Return(&checkoutDomain.CheckoutResult{CheckoutURL: "https://rings.myshopify.com/checkouts/abc"}, nil)
		server := newTestServer(new(mockSearchUseCase), checkout)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBufferString(`{"ringVariantId":"41000001"}`))
		req.Header.Set("Content-Type", "application/json")
		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		checkout.AssertExpectations(t)
	})

	t.Run("Success_ResponsesCarryRequestID", func(t *testing.T) {
		server := newTestServer(new(mockSearchUseCase), new(mockCheckoutUseCase))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		server.Handler().ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("Error_UnknownRouteIs404", func(t *testing.T) {
		server := newTestServer(new(mockSearchUseCase), new(mockCheckoutUseCase))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Success_SingleOrigin", "https://rings.example.com", []string{"https://rings.example.com"}},
		{"Success_MultipleOriginsWithSpaces", "https://a.example.com, https://b.example.com", []string{"https://a.example.com", "https://b.example.com"}},
		{"Success_EmptyEntriesDropped", "https://a.example.com,,", []string{"https://a.example.com"}},
		{"Success_EmptyInput", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.input))
		})
	}
}

func TestCreateCORSMiddleware(t *testing.T) {
	t.Run("Success_DisabledReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://rings.example.com", testLogger()))
	})

	t.Run("Success_NoOriginsReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", testLogger()))
	})

	t.Run("Success_ConfiguredOriginsEnableCORS", func(t *testing.T) {
		middleware := createCORSMiddleware(true, "https://rings.example.com", testLogger())
		require.NotNil(t, middleware)
	})
}
