// Package http provides HTTP handlers for checkout operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightstone/gemgate/internal/checkout/http/dto"
	checkoutUseCase "github.com/brightstone/gemgate/internal/checkout/usecase"
	"github.com/brightstone/gemgate/internal/httputil"
	customValidation "github.com/brightstone/gemgate/internal/validation"
)

// CheckoutHandler handles HTTP requests for checkout creation.
type CheckoutHandler struct {
	checkoutUseCase checkoutUseCase.CheckoutUseCase
	logger          *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler with required dependencies.
func NewCheckoutHandler(useCase checkoutUseCase.CheckoutUseCase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: useCase,
		logger:          logger,
	}
}

// CreateCheckoutHandler creates a checkout for a configured ring and an
// optionally selected diamond.
// POST /checkout - returns a checkout URL, or a cart URL in degraded mode.
func (h *CheckoutHandler) CreateCheckoutHandler(c *gin.Context) {
	var req dto.CheckoutRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBindingErrorGin(c, err, h.logger)
		return
	}

	// Validate request; a missing variant reference fails here, before any
	// external call is made.
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	result, err := h.checkoutUseCase.Checkout(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FromResult(result))
}
