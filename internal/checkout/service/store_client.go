// Package service implements the store admin REST client used by checkout to
// create dynamic product variants and checkouts.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brightstone/gemgate/internal/checkout/domain"
	"github.com/brightstone/gemgate/internal/config"
	apperrors "github.com/brightstone/gemgate/internal/errors"
)

// accessTokenHeader is the static credential header the store admin API expects.
const accessTokenHeader = "X-Shopify-Access-Token"

// StoreError carries the HTTP status and error payload of a failed store
// call. It unwraps to apperrors.ErrCheckout so handlers can map it.
type StoreError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store returned status %d: %s", e.StatusCode, e.Body)
}

// Unwrap links StoreError into the domain error taxonomy.
func (e *StoreError) Unwrap() error {
	return apperrors.ErrCheckout
}

// VariantInput describes the dynamic variant to create on the chassis product.
type VariantInput struct {
	Title string
	Price string
	SKU   string
}

// Variant is the store's view of a created variant; the proxy keeps only the ID.
type Variant struct {
	ID  int64
	SKU string
}

// Checkout is the created checkout resource; WebURL is its public address.
type Checkout struct {
	WebURL string
}

// StoreClient is the store admin API surface used by the checkout orchestrator.
type StoreClient interface {
	CreateVariant(ctx context.Context, productID int64, input VariantInput) (*Variant, error)
	CreateCheckout(ctx context.Context, lineItems []domain.LineItem) (*Checkout, error)
}

// storeClient talks to the store admin REST API with a static access token.
type storeClient struct {
	baseURL     string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewStoreClient creates a StoreClient from the store configuration.
func NewStoreClient(cfg *config.Config, logger *slog.Logger) StoreClient {
	return &storeClient{
		baseURL:     "https://" + cfg.StoreDomain,
		accessToken: cfg.StoreAccessToken,
		apiVersion:  cfg.StoreAPIVersion,
		httpClient:  &http.Client{Timeout: cfg.OutboundTimeout},
		logger:      logger,
	}
}

// variantPayload mirrors the store's create-variant request and response.
type variantPayload struct {
	Variant struct {
		ID              int64  `json:"id,omitempty"`
		Option1         string `json:"option1,omitempty"`
		Price           string `json:"price,omitempty"`
		SKU             string `json:"sku,omitempty"`
		InventoryPolicy string `json:"inventory_policy,omitempty"`
		Taxable         bool   `json:"taxable"`
	} `json:"variant"`
}

// CreateVariant creates a variant on the chassis product representing one
// specific diamond's price and SKU.
func (s *storeClient) CreateVariant(ctx context.Context, productID int64, input VariantInput) (*Variant, error) {
	var payload variantPayload
	payload.Variant.Option1 = input.Title
	payload.Variant.Price = input.Price
	payload.Variant.SKU = input.SKU
	payload.Variant.InventoryPolicy = "continue"
	payload.Variant.Taxable = true

	path := fmt.Sprintf("/admin/api/%s/products/%d/variants.json", s.apiVersion, productID)

	var created variantPayload
	if err := s.post(ctx, path, payload, &created); err != nil {
		return nil, err
	}

	if created.Variant.ID == 0 {
		return nil, apperrors.Wrap(apperrors.ErrCheckout, "store variant response is missing an id")
	}

	s.logger.Info("created dynamic diamond variant",
		slog.Int64("variant_id", created.Variant.ID),
		slog.String("sku", created.Variant.SKU),
	)

	return &Variant{ID: created.Variant.ID, SKU: created.Variant.SKU}, nil
}

// checkoutLineItem is one line of the store checkout payload. Numeric variant
// references are sent as numbers, anything else as-is.
type checkoutLineItem struct {
	VariantID  any               `json:"variant_id"`
	Quantity   int               `json:"quantity"`
	Properties map[string]string `json:"properties,omitempty"`
}

// checkoutPayload mirrors the store's create-checkout request and response.
type checkoutPayload struct {
	Checkout struct {
		LineItems []checkoutLineItem `json:"line_items,omitempty"`
		WebURL    string             `json:"web_url,omitempty"`
	} `json:"checkout"`
}

// CreateCheckout creates a checkout from the accumulated line items and
// returns its public web URL.
func (s *storeClient) CreateCheckout(ctx context.Context, lineItems []domain.LineItem) (*Checkout, error) {
	var payload checkoutPayload
	for _, item := range lineItems {
		payload.Checkout.LineItems = append(payload.Checkout.LineItems, checkoutLineItem{
			VariantID:  variantReference(item.VariantID),
			Quantity:   item.Quantity,
			Properties: item.Properties,
		})
	}

	path := fmt.Sprintf("/admin/api/%s/checkouts.json", s.apiVersion)

	var created checkoutPayload
	if err := s.post(ctx, path, payload, &created); err != nil {
		return nil, err
	}

	if created.Checkout.WebURL == "" {
		return nil, apperrors.Wrap(apperrors.ErrCheckout, "store checkout response is missing a web url")
	}

	return &Checkout{WebURL: created.Checkout.WebURL}, nil
}

// post sends one JSON request to the store and decodes the response. Calls
// are attempted exactly once; there are no retries.
func (s *storeClient) post(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode store request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return apperrors.Wrap(err, "failed to build store request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, s.accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCheckout, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCheckout, err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Error("store call failed",
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(raw)),
		)
		return &StoreError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.Wrap(apperrors.ErrCheckout, "malformed store response")
		}
	}

	return nil
}

// variantReference converts a numeric variant id string into a number for the
// store payload, passing other values through untouched.
func variantReference(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}
