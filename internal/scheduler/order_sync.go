package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/syncing"
)

// OrderSyncConfig representa a configuração do agendador de sincronização de pedidos
type OrderSyncConfig struct {
	CronSchedule       string
	MaxConcurrentShops int
	MonthLookback      int
	SyncEnabled        bool
}

// OrderSyncService gerencia o agendamento e execução da sincronização de pedidos.
// Cada disparo do cron executa uma invocação do motor por loja ativa; o motor
// retoma do checkpoint durável, então o progresso atravessa disparos.
type OrderSyncService struct {
	scheduler           *gocron.Scheduler
	config              OrderSyncConfig
	shopRepo            repository.ShopRepository
	engine              *syncing.Engine
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewOrderSyncService cria uma nova instância do serviço de sincronização de pedidos
func NewOrderSyncService(
	shopRepo repository.ShopRepository,
	engine *syncing.Engine,
	appConfig *config.Config,
) *OrderSyncService {
	syncConfig := OrderSyncConfig{
		CronSchedule:       appConfig.OrderSync.CronSchedule,
		MaxConcurrentShops: appConfig.OrderSync.MaxConcurrentShops,
		MonthLookback:      appConfig.OrderSync.MonthLookback,
		SyncEnabled:        appConfig.OrderSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"max_concurrent_shops": syncConfig.MaxConcurrentShops,
		"month_lookback":       syncConfig.MonthLookback,
		"sync_enabled":         syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de pedidos carregada")

	return &OrderSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		shopRepo:    shopRepo,
		engine:      engine,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *OrderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de pedidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllShops(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllShops executa uma invocação do motor para cada loja ativa
func (s *OrderSyncService) syncAllShops(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de pedidos para todas as lojas ativas")

	shops, err := s.shopRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de lojas para sincronização de pedidos")
		return
	}

	if len(shops) == 0 {
		logrus.Info("Nenhuma loja ativa encontrada para sincronização de pedidos")
		return
	}

	s.processShops(ctx, shops)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"shops":    len(shops),
	}).Info("Sincronização de pedidos concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// processShops executa o motor por loja com concorrência limitada
func (s *OrderSyncService) processShops(ctx context.Context, shops []*domain.Shop) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentShops)
	var wg sync.WaitGroup

	for _, shop := range shops {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(sh *domain.Shop) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncShop(ctx, sh.ShopID)
		}(shop)
	}

	wg.Wait()
}

func (s *OrderSyncService) syncShop(ctx context.Context, shopID int64) {
	logrus.WithField("shop_id", shopID).Info("Executando invocação do motor de pedidos para loja")

	result, err := s.engine.Step(ctx, shopID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, syncing.ErrSyncInProgress) {
			logrus.WithField("shop_id", shopID).Info("Loja já em sincronização, pulando")
			return
		}
		logrus.WithFields(logrus.Fields{
			"shop_id": shopID,
			"error":   err.Error(),
		}).Error("Erro na invocação do motor de pedidos")
		return
	}

	logrus.WithFields(logrus.Fields{
		"shop_id":        shopID,
		"unit":           result.Unit,
		"records_synced": result.RecordsSynced,
		"unit_completed": result.UnitCompleted,
		"has_more":       result.HasMore,
		"page_errors":    len(result.PageErrors),
	}).Info("Invocação do motor de pedidos concluída para loja")
}

// TriggerManualSync inicia manualmente uma sincronização de pedidos
func (s *OrderSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de pedidos")
	go s.syncAllShops(ctx)
}

// TriggerShopStep executa uma única invocação do motor para uma loja;
// usado pela ação manual do painel
func (s *OrderSyncService) TriggerShopStep(ctx context.Context, shopID int64) (*syncing.StepResult, error) {
	return s.engine.Step(ctx, shopID, time.Now().UTC())
}

// TriggerDaySync ressincroniza os pedidos de um único dia para uma loja
func (s *OrderSyncService) TriggerDaySync(ctx context.Context, shopID int64, day time.Time) (*syncing.StepResult, error) {
	return s.engine.SyncDay(ctx, shopID, day)
}

// TriggerBackfill reposiciona o checkpoint da loja no mês informado
func (s *OrderSyncService) TriggerBackfill(ctx context.Context, shopID int64, unit string) error {
	return s.engine.Backfill(ctx, shopID, unit)
}

// GetStatus retorna o status atual do agendador
func (s *OrderSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt, completedAt := s.lastSyncStartedAt, s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentShops,
		"sync_month_lookback":    s.config.MonthLookback,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
