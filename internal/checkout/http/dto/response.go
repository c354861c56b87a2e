package dto

import (
	"github.com/brightstone/gemgate/internal/checkout/domain"
)

// CheckoutResponse carries the purchasable URL back to the frontend. Exactly
// one of the two fields is set: checkoutUrl normally, cartUrl in degraded mode.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl,omitempty"`
	CartURL     string `json:"cartUrl,omitempty"`
}

// FromResult maps the domain result to the response shape.
func FromResult(result *domain.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		CheckoutURL: result.CheckoutURL,
		CartURL:     result.CartURL,
	}
}
