// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/brightstone/gemgate/internal/checkout/domain"
	supplierDomain "github.com/brightstone/gemgate/internal/supplier/domain"
)

// CheckoutRequest contains the parameters for creating a checkout. The base
// variant may arrive under either of two historical field names.
type CheckoutRequest struct {
	RingVariantID      string                        `json:"ringVariantId"`
	BaseVariantID      string                        `json:"baseVariantId"`
	Quantity           int                           `json:"quantity"`
	RingConfig         map[string]string             `json:"ringConfig"`
	Diamond            *supplierDomain.DiamondRecord `json:"diamond"`
	DiamondPriceCents  int64                         `json:"diamondPriceCents"`
	LineItemProperties map[string]string             `json:"lineItemProperties"`
}

// VariantID returns the base variant reference, preferring ringVariantId.
func (r *CheckoutRequest) VariantID() string {
	if r.RingVariantID != "" {
		return r.RingVariantID
	}
	return r.BaseVariantID
}

// Validate checks if the checkout request is valid. The variant reference is
// checked here so a malformed request never reaches an external call.
func (r *CheckoutRequest) Validate() error {
	if r.VariantID() == "" {
		return validation.NewError("validation_variant_required", "ringVariantId is required")
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Quantity,
			validation.Min(0),
		),
		validation.Field(&r.DiamondPriceCents,
			validation.Min(0),
		),
	)
}

// ToDomain maps the request to the domain checkout request.
func (r *CheckoutRequest) ToDomain() domain.CheckoutRequest {
	return domain.CheckoutRequest{
		RingVariantID:      r.VariantID(),
		Quantity:           r.Quantity,
		RingConfig:         r.RingConfig,
		Diamond:            r.Diamond,
		DiamondPriceCents:  r.DiamondPriceCents,
		LineItemProperties: r.LineItemProperties,
	}
}
