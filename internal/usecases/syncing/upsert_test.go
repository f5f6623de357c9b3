package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository/mocks"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

func TestMergeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		sources  []*domain.AdMetrics
		validate func(t *testing.T, merged *domain.AdMetrics)
	}{
		{
			name: "Zero da API não regride valor já armazenado",
			sources: []*domain.AdMetrics{
				{Impression: 1000, Clicks: 50, Expense: 25.0, BroadItemSold: 0},
				{Impression: 900, Clicks: 45, Expense: 20.0, BroadItemSold: 42},
			},
			validate: func(t *testing.T, merged *domain.AdMetrics) {
				assert.Equal(t, int64(1000), merged.Impression)
				assert.Equal(t, int64(50), merged.Clicks)
				assert.Equal(t, 25.0, merged.Expense)
				assert.Equal(t, int64(42), merged.BroadItemSold)
			},
		},
		{
			name: "Valor da API tem precedência quando não-zero",
			sources: []*domain.AdMetrics{
				{Impression: 2000, BroadGMV: 150.0},
				{Impression: 1500, BroadGMV: 100.0},
			},
			validate: func(t *testing.T, merged *domain.AdMetrics) {
				assert.Equal(t, int64(2000), merged.Impression)
				assert.Equal(t, 150.0, merged.BroadGMV)
			},
		},
		{
			name: "Índices derivados são recomputados sobre o resultado",
			sources: []*domain.AdMetrics{
				{Impression: 1000, Clicks: 50, Expense: 50.0, BroadGMV: 200.0, CTR: 99.0, ROAS: 99.0, CIR: 99.0},
			},
			validate: func(t *testing.T, merged *domain.AdMetrics) {
				assert.Equal(t, 5.0, merged.CTR)   // 50/1000 * 100
				assert.Equal(t, 4.0, merged.ROAS)  // 200/50
				assert.Equal(t, 25.0, merged.CIR)  // 50/200 * 100
			},
		},
		{
			name: "Divisão por zero nos derivados resulta em zero",
			sources: []*domain.AdMetrics{
				{Clicks: 10},
			},
			validate: func(t *testing.T, merged *domain.AdMetrics) {
				assert.Equal(t, 0.0, merged.CTR)
				assert.Equal(t, 0.0, merged.ROAS)
				assert.Equal(t, 0.0, merged.CIR)
			},
		},
		{
			name:    "Sem fontes resulta em métricas zeradas",
			sources: []*domain.AdMetrics{nil, nil},
			validate: func(t *testing.T, merged *domain.AdMetrics) {
				assert.True(t, merged.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, MergeMetrics(tt.sources...))
		})
	}
}

func TestMergeMetrics_Idempotente(t *testing.T) {
	stored := &domain.AdMetrics{Impression: 1000, Clicks: 50, Expense: 25.0, BroadItemSold: 42}
	incoming := &domain.AdMetrics{Impression: 1000, Clicks: 50, Expense: 25.0}

	first := MergeMetrics(incoming, stored)
	second := MergeMetrics(incoming, first)

	assert.Equal(t, first, second)
}

func TestUpserter_UpsertShopRecord(t *testing.T) {
	day := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	shopID := int64(400123)

	tests := []struct {
		name     string
		incoming *domain.AdMetrics
		setup    func(perfRepo *mocks.MockPerformanceRepository, shopPerfRepo *mocks.MockShopPerformanceRepository)
		validate func(t *testing.T, saved *domain.ShopPerformanceRecord)
	}{
		{
			name:     "Sem valor da API usa a soma das linhas por campanha",
			incoming: nil,
			setup: func(perfRepo *mocks.MockPerformanceRepository, shopPerfRepo *mocks.MockShopPerformanceRepository) {
				perfRepo.EXPECT().
					ListByShopAndDate(gomock.Any(), shopID, day, nil).
					Return([]*domain.PerformanceRecord{
						{Metrics: &domain.AdMetrics{Impression: 600, Clicks: 30, Expense: 10.0}},
						{Metrics: &domain.AdMetrics{Impression: 400, Clicks: 20, Expense: 15.0}},
					}, nil)
				shopPerfRepo.EXPECT().
					GetByKey(gomock.Any(), shopID, day, nil).
					Return(nil, nil)
			},
			validate: func(t *testing.T, saved *domain.ShopPerformanceRecord) {
				assert.Equal(t, int64(1000), saved.Metrics.Impression)
				assert.Equal(t, int64(50), saved.Metrics.Clicks)
				assert.Equal(t, 25.0, saved.Metrics.Expense)
			},
		},
		{
			name:     "Sem API nem linhas por campanha preserva o valor armazenado",
			incoming: nil,
			setup: func(perfRepo *mocks.MockPerformanceRepository, shopPerfRepo *mocks.MockShopPerformanceRepository) {
				perfRepo.EXPECT().
					ListByShopAndDate(gomock.Any(), shopID, day, nil).
					Return(nil, nil)
				shopPerfRepo.EXPECT().
					GetByKey(gomock.Any(), shopID, day, nil).
					Return(&domain.ShopPerformanceRecord{
						ShopID:  shopID,
						Date:    day,
						Metrics: &domain.AdMetrics{Impression: 800, BroadItemSold: 42},
					}, nil)
			},
			validate: func(t *testing.T, saved *domain.ShopPerformanceRecord) {
				assert.Equal(t, int64(800), saved.Metrics.Impression)
				assert.Equal(t, int64(42), saved.Metrics.BroadItemSold)
			},
		},
		{
			name:     "Valor da API prevalece sobre soma e armazenado",
			incoming: &domain.AdMetrics{Impression: 5000, Clicks: 250, Expense: 100.0},
			setup: func(perfRepo *mocks.MockPerformanceRepository, shopPerfRepo *mocks.MockShopPerformanceRepository) {
				perfRepo.EXPECT().
					ListByShopAndDate(gomock.Any(), shopID, day, nil).
					Return([]*domain.PerformanceRecord{
						{Metrics: &domain.AdMetrics{Impression: 4000}},
					}, nil)
				shopPerfRepo.EXPECT().
					GetByKey(gomock.Any(), shopID, day, nil).
					Return(&domain.ShopPerformanceRecord{
						ShopID:  shopID,
						Date:    day,
						Metrics: &domain.AdMetrics{Impression: 3000, BroadItemSold: 42},
					}, nil)
			},
			validate: func(t *testing.T, saved *domain.ShopPerformanceRecord) {
				assert.Equal(t, int64(5000), saved.Metrics.Impression)
				// Campo ausente na API e na soma vem do armazenado
				assert.Equal(t, int64(42), saved.Metrics.BroadItemSold)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPerfRepo := mocks.NewMockPerformanceRepository(ctrl)
			mockShopPerfRepo := mocks.NewMockShopPerformanceRepository(ctrl)

			tt.setup(mockPerfRepo, mockShopPerfRepo)

			var saved *domain.ShopPerformanceRecord
			mockShopPerfRepo.EXPECT().
				SaveOrUpdate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, record *domain.ShopPerformanceRecord) error {
					saved = record
					return nil
				})

			upserter := NewUpserter(mockPerfRepo, mockShopPerfRepo)
			err := upserter.UpsertShopRecord(context.Background(), shopID, day, nil, tt.incoming)
			require.NoError(t, err)
			require.NotNil(t, saved)
			tt.validate(t, saved)
		})
	}
}

func TestUpserter_UpsertCampaignRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPerfRepo := mocks.NewMockPerformanceRepository(ctrl)
	mockShopPerfRepo := mocks.NewMockShopPerformanceRepository(ctrl)

	day := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	shopID := int64(400123)
	campaignID := int64(777)

	mockPerfRepo.EXPECT().
		GetByKey(gomock.Any(), shopID, campaignID, day, nil).
		Return(&domain.PerformanceRecord{
			ShopID:     shopID,
			CampaignID: campaignID,
			Date:       day,
			Metrics:    &domain.AdMetrics{Impression: 1000, BroadItemSold: 42},
		}, nil)

	var saved *domain.PerformanceRecord
	mockPerfRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.PerformanceRecord) error {
			saved = record
			return nil
		})

	upserter := NewUpserter(mockPerfRepo, mockShopPerfRepo)
	err := upserter.UpsertCampaignRecord(context.Background(), &domain.PerformanceRecord{
		ShopID:     shopID,
		CampaignID: campaignID,
		Date:       day,
		Metrics:    &domain.AdMetrics{Impression: 1200, BroadItemSold: 0},
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, int64(1200), saved.Metrics.Impression)
	assert.Equal(t, int64(42), saved.Metrics.BroadItemSold)
}
