package dto

import (
	"github.com/brightstone/gemgate/internal/supplier/domain"
)

// SearchDiamondsResponse is the stable response shape for the frontend.
type SearchDiamondsResponse struct {
	Items []domain.DiamondRecord `json:"items"`
	Total int                    `json:"total"`
}
