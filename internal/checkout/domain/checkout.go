// Package domain defines the checkout-side entities: the checkout request,
// the store line items, and the dynamically created diamond variant.
package domain

import (
	supplierDomain "github.com/brightstone/gemgate/internal/supplier/domain"
)

// RingConfiguration is an opaque key/value description of the configured ring
// (setting style, stone shape, carat, metal, size). It is passed through to
// line-item properties without interpretation.
type RingConfiguration map[string]string

// CheckoutRequest describes one checkout attempt. It lives only for the
// duration of the request.
type CheckoutRequest struct {
	// RingVariantID is the base product variant of the configured ring.
	RingVariantID string
	// Quantity of the base variant; defaults to 1.
	Quantity int
	// RingConfig carries the ring configuration as pass-through properties.
	RingConfig RingConfiguration
	// Diamond is the optionally selected diamond.
	Diamond *supplierDomain.DiamondRecord
	// DiamondPriceCents is the selected diamond's price in minor units. A
	// diamond line is only created when this is positive.
	DiamondPriceCents int64
	// LineItemProperties are extra opaque properties for the base line item.
	LineItemProperties map[string]string
}

// LineItem is one purchasable entry of the order sent to the store.
type LineItem struct {
	VariantID  string
	Quantity   int
	Properties map[string]string
}

// DynamicVariant identifies a store-side variant created on demand to
// represent one diamond's price and SKU. The proxy holds only its ID.
type DynamicVariant struct {
	ID    string
	SKU   string
	Title string
}

// CheckoutResult is the outcome of a checkout: a web checkout URL when the
// store integration is configured, or a degraded cart-add URL when it is not.
type CheckoutResult struct {
	CheckoutURL string
	CartURL     string
}
