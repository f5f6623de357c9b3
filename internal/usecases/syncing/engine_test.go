package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee"
	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
	shopeemocks "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/mocks"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository/mocks"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

func newTestConfig(maxRecords int) *config.Config {
	return &config.Config{
		OrderSync: config.OrderSync{
			ChunkDays:           7,
			PageSize:            50,
			DetailBatchSize:     50,
			MaxRecordsPerRun:    maxRecords,
			RequestDelaySeconds: 0,
			MonthLookback:       1,
		},
	}
}

func testOrders(shopID int64, sns ...string) []*domain.Order {
	orders := make([]*domain.Order, 0, len(sns))
	for _, sn := range sns {
		orders = append(orders, &domain.Order{ShopID: shopID, OrderSN: sn})
	}
	return orders
}

func TestEngine_Step_PrimeiraInvocacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := shopeemocks.NewMockIntegrator(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCheckpointRepo := mocks.NewMockSyncCheckpointRepository(ctrl)

	engine := NewEngine(newTestConfig(500), mockIntegrator, mockOrderRepo, mockCheckpointRepo)

	// Dia 3 do mês: o primeiro sub-período cobre 01..03 e conclui o mês
	now := time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC)
	shopID := int64(400123)

	var lastSaved *domain.SyncCheckpoint

	mockCheckpointRepo.EXPECT().
		GetByShopID(gomock.Any(), shopID).
		Return(nil, nil)

	mockCheckpointRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp *domain.SyncCheckpoint) error {
			lastSaved = cp
			return nil
		}).
		AnyTimes()

	mockIntegrator.EXPECT().
		ListOrderIDs(gomock.Any(), shopID, date(2026, time.January, 1), gomock.Any(), "", 50).
		Return(&shopee.OrderPage{OrderSNs: []string{"SN001", "SN002"}, More: false}, nil)

	mockIntegrator.EXPECT().
		GetOrderDetails(gomock.Any(), shopID, []string{"SN001", "SN002"}).
		Return(testOrders(shopID, "SN001", "SN002"), nil)

	mockOrderRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	result, err := engine.Step(context.Background(), shopID, now)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RecordsSynced)
	assert.True(t, result.UnitCompleted)
	assert.False(t, result.HasMore)
	assert.Equal(t, "2026-01", result.Unit)

	require.NotNil(t, lastSaved)
	assert.False(t, lastSaved.Syncing)
	assert.Empty(t, lastSaved.LastError)
	assert.Contains(t, lastSaved.CompletedUnits, "2026-01")
}

func TestEngine_Step_ReiniciaVarreduraAposConclusao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := shopeemocks.NewMockIntegrator(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCheckpointRepo := mocks.NewMockSyncCheckpointRepository(ctrl)

	engine := NewEngine(newTestConfig(500), mockIntegrator, mockOrderRepo, mockCheckpointRepo)

	// A varredura anterior terminou no dia 3; a invocação do dia 10 deve
	// recomeçar do sub-período mais recente e cobrir os dias 4..10
	now := time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC)
	shopID := int64(400123)

	var lastSaved *domain.SyncCheckpoint

	mockCheckpointRepo.EXPECT().
		GetByShopID(gomock.Any(), shopID).
		Return(&domain.SyncCheckpoint{
			ShopID:         shopID,
			Unit:           "",
			ChunkEnd:       date(2026, time.January, 3),
			CompletedUnits: []string{"2026-01"},
		}, nil)

	mockCheckpointRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp *domain.SyncCheckpoint) error {
			lastSaved = cp
			return nil
		}).
		AnyTimes()

	mockIntegrator.EXPECT().
		ListOrderIDs(gomock.Any(), shopID,
			date(2026, time.January, 4),
			time.Date(2026, time.January, 10, 23, 59, 59, 0, time.UTC),
			"", 50).
		Return(&shopee.OrderPage{OrderSNs: []string{"SN010"}, More: false}, nil)

	mockIntegrator.EXPECT().
		ListOrderIDs(gomock.Any(), shopID,
			date(2026, time.January, 1),
			time.Date(2026, time.January, 3, 23, 59, 59, 0, time.UTC),
			"", 50).
		Return(&shopee.OrderPage{OrderSNs: nil, More: false}, nil)

	mockIntegrator.EXPECT().
		GetOrderDetails(gomock.Any(), shopID, []string{"SN010"}).
		Return(testOrders(shopID, "SN010"), nil)

	mockOrderRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := engine.Step(context.Background(), shopID, now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.RecordsSynced)
	assert.True(t, result.UnitCompleted)

	require.NotNil(t, lastSaved)
	assert.True(t, lastSaved.WalkComplete())
	assert.Equal(t, []string{"2026-01"}, lastSaved.CompletedUnits)
}

func TestEngine_Step_TetoDeRegistrosNaoAvancaCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := shopeemocks.NewMockIntegrator(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCheckpointRepo := mocks.NewMockSyncCheckpointRepository(ctrl)

	engine := NewEngine(newTestConfig(2), mockIntegrator, mockOrderRepo, mockCheckpointRepo)

	now := time.Date(2026, time.February, 5, 10, 0, 0, 0, time.UTC)
	shopID := int64(400123)
	chunkEnd := date(2026, time.January, 31)

	cp := &domain.SyncCheckpoint{
		ShopID:   shopID,
		Unit:     "2026-01",
		ChunkEnd: chunkEnd,
	}

	mockCheckpointRepo.EXPECT().
		GetByShopID(gomock.Any(), shopID).
		Return(cp, nil)

	mockCheckpointRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockIntegrator.EXPECT().
		ListOrderIDs(gomock.Any(), shopID, gomock.Any(), gomock.Any(), "", 50).
		Return(&shopee.OrderPage{OrderSNs: []string{"SN001", "SN002", "SN003"}, More: false}, nil)

	mockIntegrator.EXPECT().
		GetOrderDetails(gomock.Any(), shopID, gomock.Any()).
		Return(testOrders(shopID, "SN001", "SN002", "SN003"), nil)

	mockOrderRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)

	result, err := engine.Step(context.Background(), shopID, now)
	require.NoError(t, err)

	// Teto atingido: o sub-período fica para a próxima invocação
	assert.True(t, result.HasMore)
	assert.False(t, result.UnitCompleted)
	assert.Equal(t, chunkEnd, cp.ChunkEnd)
	assert.Empty(t, cp.CompletedUnits)
}

func TestEngine_Step_FlagDeSincronizacaoRecenteBloqueia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := shopeemocks.NewMockIntegrator(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCheckpointRepo := mocks.NewMockSyncCheckpointRepository(ctrl)

	engine := NewEngine(newTestConfig(500), mockIntegrator, mockOrderRepo, mockCheckpointRepo)

	now := time.Date(2026, time.January, 16, 10, 0, 0, 0, time.UTC)
	shopID := int64(400123)

	mockCheckpointRepo.EXPECT().
		GetByShopID(gomock.Any(), shopID).
		Return(&domain.SyncCheckpoint{
			ShopID:    shopID,
			Unit:      "2026-01",
			ChunkEnd:  date(2026, time.January, 16),
			Syncing:   true,
			UpdatedAt: now.Add(-5 * time.Minute),
		}, nil)

	_, err := engine.Step(context.Background(), shopID, now)
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestEngine_Step_FlagObsoletaEIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := shopeemocks.NewMockIntegrator(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCheckpointRepo := mocks.NewMockSyncCheckpointRepository(ctrl)

	engine := NewEngine(newTestConfig(500), mockIntegrator, mockOrderRepo, mockCheckpointRepo)

	now := time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC)
	shopID := int64(400123)

	// Flag deixada há duas horas por uma invocação interrompida
	mockCheckpointRepo.EXPECT().
		GetByShopID(gomock.Any(), shopID).
		Return(&domain.SyncCheckpoint{
			ShopID:    shopID,
			Unit:      "2026-01",
			ChunkEnd:  date(2026, time.January, 3),
			Syncing:   true,
			UpdatedAt: now.Add(-2 * time.Hour),
		}, nil)

	mockCheckpointRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockIntegrator.EXPECT().
		ListOrderIDs(gomock.Any(), shopID, gomock.Any(), gomock.Any(), "", 50).
		Return(&shopee.OrderPage{OrderSNs: nil, More: false}, nil)

	result, err := engine.Step(context.Background(), shopID, now)
	require.NoError(t, err)
	assert.True(t, result.UnitCompleted)
}

func TestEngine_Step_ErroDeAutenticacaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := shopeemocks.NewMockIntegrator(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCheckpointRepo := mocks.NewMockSyncCheckpointRepository(ctrl)

	engine := NewEngine(newTestConfig(500), mockIntegrator, mockOrderRepo, mockCheckpointRepo)

	now := time.Date(2026, time.February, 5, 10, 0, 0, 0, time.UTC)
	shopID := int64(400123)
	chunkEnd := date(2026, time.January, 31)

	cp := &domain.SyncCheckpoint{
		ShopID:   shopID,
		Unit:     "2026-01",
		ChunkEnd: chunkEnd,
	}

	mockCheckpointRepo.EXPECT().
		GetByShopID(gomock.Any(), shopID).
		Return(cp, nil)

	mockCheckpointRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockIntegrator.EXPECT().
		ListOrderIDs(gomock.Any(), shopID, gomock.Any(), gomock.Any(), "", 50).
		Return(&shopee.OrderPage{OrderSNs: []string{"SN001"}, More: false}, nil)

	authErr := &shopeedomain.AuthError{ShopID: shopID, Code: shopeedomain.ErrorCodeInvalidToken}
	mockIntegrator.EXPECT().
		GetOrderDetails(gomock.Any(), shopID, []string{"SN001"}).
		Return(nil, authErr)

	_, err := engine.Step(context.Background(), shopID, now)
	require.Error(t, err)

	var target *shopeedomain.AuthError
	assert.True(t, errors.As(err, &target))

	// Falha de autenticação não avança o checkpoint e fica registrada
	assert.Equal(t, chunkEnd, cp.ChunkEnd)
	assert.False(t, cp.Syncing)
	assert.NotEmpty(t, cp.LastError)
}
