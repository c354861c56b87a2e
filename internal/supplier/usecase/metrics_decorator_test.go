package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brightstone/gemgate/internal/config"
	apperrors "github.com/brightstone/gemgate/internal/errors"
	"github.com/brightstone/gemgate/internal/supplier/domain"
	"github.com/brightstone/gemgate/internal/supplier/service"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestSearchUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		client := new(mockSupplierClient)
		client.On("Search", ctx, mock.AnythingOfType("service.SearchQuery")).
			Return(&service.SearchResult{}, nil)

		bm := new(mockBusinessMetrics)
		bm.On("RecordOperation", ctx, "supplier", "diamond_search", "success").Once()
		bm.On("RecordDuration", ctx, "supplier", "diamond_search", mock.AnythingOfType("time.Duration"), "success").Once()

		uc := NewSearchUseCaseWithMetrics(NewSearchUseCase(&config.Config{}, client, testLogger()), bm)
		_, err := uc.Search(ctx, domain.DiamondFilter{})
		require.NoError(t, err)
		bm.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorStatus", func(t *testing.T) {
		client := new(mockSupplierClient)
		client.On("Search", ctx, mock.AnythingOfType("service.SearchQuery")).
			Return(nil, apperrors.Wrap(apperrors.ErrSupplier, "status 502"))

		bm := new(mockBusinessMetrics)
		bm.On("RecordOperation", ctx, "supplier", "diamond_search", "error").Once()
		bm.On("RecordDuration", ctx, "supplier", "diamond_search", mock.AnythingOfType("time.Duration"), "error").Once()

		uc := NewSearchUseCaseWithMetrics(NewSearchUseCase(&config.Config{}, client, testLogger()), bm)
		_, err := uc.Search(ctx, domain.DiamondFilter{})
		assert.Error(t, err)
		bm.AssertExpectations(t)
	})
}
