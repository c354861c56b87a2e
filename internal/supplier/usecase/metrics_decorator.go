package usecase

import (
	"context"
	"time"

	"github.com/brightstone/gemgate/internal/metrics"
	"github.com/brightstone/gemgate/internal/supplier/domain"
)

// searchUseCaseWithMetrics decorates SearchUseCase with metrics instrumentation.
type searchUseCaseWithMetrics struct {
	next    SearchUseCase
	metrics metrics.BusinessMetrics
}

// NewSearchUseCaseWithMetrics wraps a SearchUseCase with metrics recording.
func NewSearchUseCaseWithMetrics(useCase SearchUseCase, m metrics.BusinessMetrics) SearchUseCase {
	return &searchUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Search records metrics for diamond search operations.
func (s *searchUseCaseWithMetrics) Search(
	ctx context.Context,
	filter domain.DiamondFilter,
) (*SearchOutput, error) {
	start := time.Now()
	output, err := s.next.Search(ctx, filter)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "supplier", "diamond_search", status)
	s.metrics.RecordDuration(ctx, "supplier", "diamond_search", time.Since(start), status)

	return output, err
}
