// Package usecase implements the diamond search orchestration: query building
// from the caller's filter and normalization of the supplier's raw results.
package usecase

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/brightstone/gemgate/internal/config"
	"github.com/brightstone/gemgate/internal/supplier/domain"
	"github.com/brightstone/gemgate/internal/supplier/service"
)

// SearchOutput is the normalized result of one diamond search.
type SearchOutput struct {
	Items []domain.DiamondRecord
	Total int
}

// SearchUseCase searches the supplier inventory.
type SearchUseCase interface {
	Search(ctx context.Context, filter domain.DiamondFilter) (*SearchOutput, error)
}

// searchUseCase implements SearchUseCase against the supplier client.
type searchUseCase struct {
	config *config.Config
	client service.Client
	logger *slog.Logger
}

// NewSearchUseCase creates a SearchUseCase.
func NewSearchUseCase(cfg *config.Config, client service.Client, logger *slog.Logger) SearchUseCase {
	return &searchUseCase{
		config: cfg,
		client: client,
		logger: logger,
	}
}

// Search builds the supplier query from the filter, executes it, and
// normalizes each raw item. Total is the count of normalized items; the
// supplier's own total_count is logged but not returned, since some schema
// generations echo the page size there.
func (s *searchUseCase) Search(ctx context.Context, filter domain.DiamondFilter) (*SearchOutput, error) {
	query := service.SearchQuery{
		MarkupPricing: s.config.SupplierMarkupPricing,
		Limit:         filter.Limit,
		Order:         filter.Sort,
	}
	if query.Limit <= 0 {
		query.Limit = domain.DefaultSearchLimit
	}

	// Unmapped shape labels omit the shape filter rather than failing the search.
	if filter.Shape != "" {
		if code, ok := domain.ShapeCode(filter.Shape); ok {
			query.Shapes = []string{code}
		} else {
			s.logger.Warn("unknown shape label, omitting shape filter",
				slog.String("shape", filter.Shape))
		}
	}

	if filter.Carat != nil && (filter.Carat.Min != nil || filter.Carat.Max != nil) {
		query.Sizes = &service.SizeRange{
			From: filter.Carat.Min,
			To:   filter.Carat.Max,
		}
	}

	result, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	items := make([]domain.DiamondRecord, 0, len(result.Items))
	for _, raw := range result.Items {
		items = append(items, normalizeDiamond(raw))
	}

	s.logger.Debug("diamond search completed",
		slog.Int("items", len(items)),
		slog.Int("supplier_reported_total", result.ReportedTotal),
	)

	return &SearchOutput{
		Items: items,
		Total: len(items),
	}, nil
}

// normalizeDiamond maps one raw supplier item to the stable record shape the
// frontend consumes. Absent fields stay nil; nothing is synthesized.
func normalizeDiamond(raw service.RawDiamond) domain.DiamondRecord {
	record := domain.DiamondRecord{
		ID:       raw.ID,
		ImageURL: raw.Image,
	}

	record.PriceCents = priceToCents(raw.Price)

	if raw.Certificate != nil {
		record.Certificate = &domain.Certificate{
			Carats:     raw.Certificate.Carats,
			Shape:      raw.Certificate.Shape,
			Color:      raw.Certificate.Color,
			Clarity:    raw.Certificate.Clarity,
			Cut:        raw.Certificate.Cut,
			CertNumber: raw.Certificate.CertNumber,
		}
	}

	return record
}

// priceToCents converts the supplier's major-unit price into integer minor
// units, rounding to the nearest cent. An absent or non-numeric price yields
// nil rather than zero.
func priceToCents(value any) *int64 {
	var major float64
	switch v := value.(type) {
	case float64:
		major = v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		major = parsed
	default:
		return nil
	}

	cents := int64(math.Round(major * 100))
	return &cents
}
