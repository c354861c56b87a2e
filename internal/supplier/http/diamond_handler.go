// Package http provides HTTP handlers for diamond search operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightstone/gemgate/internal/httputil"
	"github.com/brightstone/gemgate/internal/supplier/http/dto"
	supplierUseCase "github.com/brightstone/gemgate/internal/supplier/usecase"
	customValidation "github.com/brightstone/gemgate/internal/validation"
)

// DiamondHandler handles HTTP requests for diamond search.
type DiamondHandler struct {
	searchUseCase supplierUseCase.SearchUseCase
	logger        *slog.Logger
}

// NewDiamondHandler creates a new diamond handler with required dependencies.
func NewDiamondHandler(searchUseCase supplierUseCase.SearchUseCase, logger *slog.Logger) *DiamondHandler {
	return &DiamondHandler{
		searchUseCase: searchUseCase,
		logger:        logger,
	}
}

// SearchDiamondsHandler searches the supplier inventory.
// POST /diamonds - returns normalized diamond records matching the filter.
func (h *DiamondHandler) SearchDiamondsHandler(c *gin.Context) {
	var req dto.SearchDiamondsRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBindingErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	output, err := h.searchUseCase.Search(c.Request.Context(), req.ToFilter())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.SearchDiamondsResponse{
		Items: output.Items,
		Total: output.Total,
	}

	c.JSON(http.StatusOK, response)
}
