// Package usecase implements the checkout orchestration: degraded cart-URL
// fallback, dynamic diamond variant creation, and checkout creation.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/brightstone/gemgate/internal/checkout/domain"
	"github.com/brightstone/gemgate/internal/checkout/service"
	"github.com/brightstone/gemgate/internal/config"
	apperrors "github.com/brightstone/gemgate/internal/errors"
)

// CheckoutUseCase turns a checkout request into a purchasable URL.
type CheckoutUseCase interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResult, error)
}

// checkoutUseCase implements CheckoutUseCase against the store client.
type checkoutUseCase struct {
	config *config.Config
	store  service.StoreClient
	logger *slog.Logger
}

// NewCheckoutUseCase creates a CheckoutUseCase.
func NewCheckoutUseCase(cfg *config.Config, store service.StoreClient, logger *slog.Logger) CheckoutUseCase {
	return &checkoutUseCase{
		config: cfg,
		store:  store,
		logger: logger,
	}
}

// Checkout runs the linear checkout flow:
//
//  1. Validate the base variant reference.
//  2. Without store configuration, short-circuit to a deterministic cart-add
//     URL (degraded mode, not an error).
//  3. Build the base ring line item with pass-through properties.
//  4. With a selected diamond and positive price, create a dynamic variant and
//     append a second line item carrying the full diamond record for audit.
//  5. Create the checkout and return its web URL.
//
// A variant created in step 4 is not rolled back when step 5 fails; the
// orphaned variant is an accepted gap for this proxy's volume.
func (u *checkoutUseCase) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	if strings.TrimSpace(req.RingVariantID) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "ring variant reference is required")
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	if !u.config.StoreConfigured() {
		u.logger.Warn("store integration is not configured, returning cart url",
			slog.String("ring_variant_id", req.RingVariantID))
		return &domain.CheckoutResult{
			CartURL: u.cartURL(req.RingVariantID, quantity),
		}, nil
	}

	lineItems := []domain.LineItem{
		{
			VariantID:  req.RingVariantID,
			Quantity:   quantity,
			Properties: mergeProperties(req.RingConfig, req.LineItemProperties),
		},
	}

	if req.Diamond != nil && req.DiamondPriceCents > 0 {
		variant, err := u.createDiamondVariant(ctx, req)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, domain.LineItem{
			VariantID:  strconv.FormatInt(variant.ID, 10),
			Quantity:   1,
			Properties: diamondProperties(req),
		})
	}

	checkout, err := u.store.CreateCheckout(ctx, lineItems)
	if err != nil {
		return nil, err
	}

	return &domain.CheckoutResult{CheckoutURL: checkout.WebURL}, nil
}

// createDiamondVariant creates the store-side variant representing the
// selected diamond. The SKU is keyed on the certificate number when present
// so duplicate submissions of the same stone stay recognizable.
func (u *checkoutUseCase) createDiamondVariant(ctx context.Context, req domain.CheckoutRequest) (*service.Variant, error) {
	input := service.VariantInput{
		Title: diamondTitle(req),
		Price: centsToMajor(req.DiamondPriceCents),
		SKU:   diamondSKU(req),
	}

	return u.store.CreateVariant(ctx, u.config.StoreDiamondProductID, input)
}

// cartURL builds the degraded cart-add URL encoding the variant and quantity.
func (u *checkoutUseCase) cartURL(variantID string, quantity int) string {
	base := strings.TrimSuffix(u.config.StoreCartURL, "/")
	return fmt.Sprintf("%s/cart/%s:%d", base, variantID, quantity)
}

// diamondTitle derives the variant title from carat weight and shape when the
// certificate carries them, falling back to a generic label.
func diamondTitle(req domain.CheckoutRequest) string {
	cert := req.Diamond.Certificate
	if cert != nil && cert.Carats != nil && cert.Shape != nil {
		return fmt.Sprintf("%.2fct %s Diamond", *cert.Carats, *cert.Shape)
	}
	return "Certified Diamond"
}

// diamondSKU uses the certificate number when available, else a fallback
// derived from the diamond identifier.
func diamondSKU(req domain.CheckoutRequest) string {
	cert := req.Diamond.Certificate
	if cert != nil && cert.CertNumber != nil && *cert.CertNumber != "" {
		return *cert.CertNumber
	}
	return "DIA-" + req.Diamond.ID
}

// diamondProperties captures the full diamond record and its price on the
// diamond line item for audit purposes.
func diamondProperties(req domain.CheckoutRequest) map[string]string {
	props := map[string]string{
		"_diamond_id":          req.Diamond.ID,
		"_diamond_price_cents": strconv.FormatInt(req.DiamondPriceCents, 10),
	}

	if cert := req.Diamond.Certificate; cert != nil {
		if cert.Carats != nil {
			props["_diamond_carats"] = strconv.FormatFloat(*cert.Carats, 'f', -1, 64)
		}
		if cert.Shape != nil {
			props["_diamond_shape"] = *cert.Shape
		}
		if cert.Color != nil {
			props["_diamond_color"] = *cert.Color
		}
		if cert.Clarity != nil {
			props["_diamond_clarity"] = *cert.Clarity
		}
		if cert.Cut != nil {
			props["_diamond_cut"] = *cert.Cut
		}
		if cert.CertNumber != nil {
			props["_diamond_cert_number"] = *cert.CertNumber
		}
	}

	return props
}

// mergeProperties combines the ring configuration with extra line-item
// properties; the latter win on key collisions.
func mergeProperties(config domain.RingConfiguration, extra map[string]string) map[string]string {
	if len(config) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(map[string]string, len(config)+len(extra))
	for k, v := range config {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// centsToMajor converts minor units back to a two-decimal major unit string
// for the store's price field.
func centsToMajor(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
