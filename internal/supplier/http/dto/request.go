// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/brightstone/gemgate/internal/supplier/domain"
)

// CaratRangeRequest is the optional carat bounds of a search request.
type CaratRangeRequest struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// SearchDiamondsRequest contains the parameters for searching diamonds.
type SearchDiamondsRequest struct {
	Shape string             `json:"shape"`
	Carat *CaratRangeRequest `json:"carat"`
	Sort  string             `json:"sort"`
	Limit int                `json:"limit"`
}

// Validate checks if the search request is valid.
func (r *SearchDiamondsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Limit,
			validation.Min(0),
			validation.Max(100),
		),
		validation.Field(&r.Carat,
			validation.By(validateCaratRange),
		),
	)
}

// validateCaratRange rejects negative bounds and inverted ranges.
func validateCaratRange(value interface{}) error {
	r, ok := value.(*CaratRangeRequest)
	if !ok || r == nil {
		return nil
	}
	if r.Min != nil && *r.Min < 0 {
		return validation.NewError("validation_carat_min", "carat min must be zero or greater")
	}
	if r.Max != nil && *r.Max < 0 {
		return validation.NewError("validation_carat_max", "carat max must be zero or greater")
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return validation.NewError("validation_carat_range", "carat min must not exceed max")
	}
	return nil
}

// ToFilter maps the request to the domain filter.
func (r *SearchDiamondsRequest) ToFilter() domain.DiamondFilter {
	filter := domain.DiamondFilter{
		Shape: r.Shape,
		Sort:  r.Sort,
		Limit: r.Limit,
	}
	if r.Carat != nil {
		filter.Carat = &domain.CaratRange{
			Min: r.Carat.Min,
			Max: r.Carat.Max,
		}
	}
	return filter
}
