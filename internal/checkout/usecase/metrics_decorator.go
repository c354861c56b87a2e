package usecase

import (
	"context"
	"time"

	"github.com/brightstone/gemgate/internal/checkout/domain"
	"github.com/brightstone/gemgate/internal/metrics"
)

// checkoutUseCaseWithMetrics decorates CheckoutUseCase with metrics instrumentation.
type checkoutUseCaseWithMetrics struct {
	next    CheckoutUseCase
	metrics metrics.BusinessMetrics
}

// NewCheckoutUseCaseWithMetrics wraps a CheckoutUseCase with metrics recording.
func NewCheckoutUseCaseWithMetrics(useCase CheckoutUseCase, m metrics.BusinessMetrics) CheckoutUseCase {
	return &checkoutUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Checkout records metrics for checkout operations. Degraded cart-URL results
// are reported with their own status so fallback traffic stays visible.
func (c *checkoutUseCaseWithMetrics) Checkout(
	ctx context.Context,
	req domain.CheckoutRequest,
) (*domain.CheckoutResult, error) {
	start := time.Now()
	result, err := c.next.Checkout(ctx, req)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result != nil && result.CartURL != "":
		status = "degraded"
	}

	c.metrics.RecordOperation(ctx, "checkout", "checkout_create", status)
	c.metrics.RecordDuration(ctx, "checkout", "checkout_create", time.Since(start), status)

	return result, err
}
