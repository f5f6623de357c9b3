package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository/mocks"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
)

func TestOrderSyncService_GetStatus_ConcorrenteComSincronizacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopRepo := mocks.NewMockShopRepository(ctrl)
	mockShopRepo.EXPECT().
		ListActive(gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	cfg := &config.Config{
		OrderSync: config.OrderSync{
			CronSchedule:       "*/20 * * * *",
			MaxConcurrentShops: 2,
			MonthLookback:      1,
			Enabled:            true,
		},
	}
	service := NewOrderSyncService(mockShopRepo, nil, cfg)

	// Leituras de status concorrentes com a sincronização não podem correr
	// contra as escritas dos carimbos de início e fim
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.syncAllShops(context.Background())
		}()
	}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = service.GetStatus()
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	startedAt, ok := status["last_sync_started_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, startedAt.IsZero())
}
