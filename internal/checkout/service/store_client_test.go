package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightstone/gemgate/internal/checkout/domain"
	apperrors "github.com/brightstone/gemgate/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestStoreClient builds a storeClient pointed at the stub server instead
// of the https store domain.
func newTestStoreClient(serverURL string) *storeClient {
	return &storeClient{
		baseURL:     serverURL,
		accessToken: "shpat_test",
		apiVersion:  "2024-01",
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		logger:      testLogger(),
	}
}

func TestStoreClient_CreateVariant(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreatesVariantAndParsesID", func(t *testing.T) {
		var gotPath, gotToken string
		var gotPayload variantPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotToken = r.Header.Get(accessTokenHeader)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"variant":{"id":42000001,"sku":"GIA-123"}}`))
		}))
		t.Cleanup(server.Close)

		client := newTestStoreClient(server.URL)
		variant, err := client.CreateVariant(ctx, 777, VariantInput{
			Title: "1.02ct ROUND Diamond",
			Price: "3500.00",
			SKU:   "GIA-123",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(42000001), variant.ID)
		assert.Equal(t, "GIA-123", variant.SKU)
		assert.Equal(t, "/admin/api/2024-01/products/777/variants.json", gotPath)
		assert.Equal(t, "shpat_test", gotToken)
		assert.Equal(t, "1.02ct ROUND Diamond", gotPayload.Variant.Option1)
		assert.Equal(t, "3500.00", gotPayload.Variant.Price)
		assert.Equal(t, "continue", gotPayload.Variant.InventoryPolicy)
		assert.True(t, gotPayload.Variant.Taxable)
	})

	t.Run("Error_MissingVariantID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"variant":{}}`))
		}))
		t.Cleanup(server.Close)

		client := newTestStoreClient(server.URL)
		_, err := client.CreateVariant(ctx, 777, VariantInput{})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCheckout))
		assert.Contains(t, err.Error(), "missing an id")
	})

	t.Run("Error_UnprocessableEntityBecomesStoreError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors":{"price":["is invalid"]}}`))
		}))
		t.Cleanup(server.Close)

		client := newTestStoreClient(server.URL)
		_, err := client.CreateVariant(ctx, 777, VariantInput{})
		require.Error(t, err)

		var storeErr *StoreError
		require.True(t, apperrors.As(err, &storeErr))
		assert.Equal(t, http.StatusUnprocessableEntity, storeErr.StatusCode)
		assert.True(t, apperrors.Is(err, apperrors.ErrCheckout))
	})
}

func TestStoreClient_CreateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SendsLineItemsAndReturnsWebURL", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"checkout":{"web_url":"https://rings.myshopify.com/checkouts/abc"}}`))
		}))
		t.Cleanup(server.Close)

		client := newTestStoreClient(server.URL)
		checkout, err := client.CreateCheckout(ctx, []domain.LineItem{
			{VariantID: "41000001", Quantity: 1, Properties: map[string]string{"Metal": "Platinum"}},
			{VariantID: "42000001", Quantity: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://rings.myshopify.com/checkouts/abc", checkout.WebURL)
		assert.Equal(t, "/admin/api/2024-01/checkouts.json", gotPath)

		lineItems := gotBody["checkout"].(map[string]any)["line_items"].([]any)
		require.Len(t, lineItems, 2)
		first := lineItems[0].(map[string]any)
		// numeric variant references go out as JSON numbers
		assert.Equal(t, float64(41000001), first["variant_id"])
		assert.Equal(t, "Platinum", first["properties"].(map[string]any)["Metal"])
	})

	t.Run("Error_MissingWebURL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"checkout":{}}`))
		}))
		t.Cleanup(server.Close)

		client := newTestStoreClient(server.URL)
		_, err := client.CreateCheckout(ctx, []domain.LineItem{{VariantID: "41000001", Quantity: 1}})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCheckout))
		assert.Contains(t, err.Error(), "missing a web url")
	})

	t.Run("Error_ConnectionRefusedIsCheckoutError", func(t *testing.T) {
		client := newTestStoreClient("http://127.0.0.1:1")
		_, err := client.CreateCheckout(ctx, []domain.LineItem{{VariantID: "41000001", Quantity: 1}})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCheckout))
	})
}

func TestVariantReference(t *testing.T) {
	assert.Equal(t, int64(41000001), variantReference("41000001"))
	assert.Equal(t, "gid://shopify/ProductVariant/41000001", variantReference("gid://shopify/ProductVariant/41000001"))
}
