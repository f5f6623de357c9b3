package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/reconciling"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/syncing"
)

// PerformanceSyncConfig representa a configuração do agendador de métricas
type PerformanceSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentShops  int
	SyncEnabled         bool
}

// PerformanceSyncService gerencia a sincronização periódica de métricas de
// anúncios: atualiza o catálogo de campanhas, grava as métricas diárias da
// janela de atribuição e as horárias do dia corrente, e por fim reconcilia
// os rollups da loja.
type PerformanceSyncService struct {
	scheduler           *gocron.Scheduler
	config              PerformanceSyncConfig
	shopRepo            repository.ShopRepository
	campaignRepo        repository.CampaignRepository
	integrator          shopee.Integrator
	upserter            *syncing.Upserter
	reconciler          *reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPerformanceSyncService cria uma nova instância do serviço de sincronização de métricas
func NewPerformanceSyncService(
	shopRepo repository.ShopRepository,
	campaignRepo repository.CampaignRepository,
	integrator shopee.Integrator,
	upserter *syncing.Upserter,
	reconciler *reconciling.Reconciler,
	appConfig *config.Config,
) *PerformanceSyncService {
	syncConfig := PerformanceSyncConfig{
		CronSchedule:        appConfig.PerformanceSync.CronSchedule,
		LookbackDays:        appConfig.PerformanceSync.LookbackDays,
		RequestDelaySeconds: appConfig.PerformanceSync.RequestDelaySeconds,
		MaxConcurrentShops:  appConfig.PerformanceSync.MaxConcurrentShops,
		SyncEnabled:         appConfig.PerformanceSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_shops":  syncConfig.MaxConcurrentShops,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &PerformanceSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		shopRepo:     shopRepo,
		campaignRepo: campaignRepo,
		integrator:   integrator,
		upserter:     upserter,
		reconciler:   reconciler,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *PerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllShops(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllShops sincroniza as métricas de todas as lojas ativas
func (s *PerformanceSyncService) syncAllShops(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de métricas para todas as lojas ativas")

	shops, err := s.shopRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de lojas para sincronização de métricas")
		return
	}

	if len(shops) == 0 {
		logrus.Info("Nenhuma loja ativa encontrada para sincronização de métricas")
		return
	}

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

			s.SyncShop(ctx, sh.ShopID)
		}(shop)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"shops":    len(shops),
	}).Info("Sincronização de métricas concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// SyncShop sincroniza catálogo, métricas e rollups de uma loja
func (s *PerformanceSyncService) SyncShop(ctx context.Context, shopID int64) {
	campaignIDs := s.refreshCampaignCatalog(ctx, shopID)
	if len(campaignIDs) == 0 {
		logrus.WithField("shop_id", shopID).Info("Nenhuma campanha encontrada para a loja, pulando métricas")
		return
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, 0, -(s.config.LookbackDays - 1))

	s.syncDailyMetrics(ctx, shopID, campaignIDs, windowStart, today)
	s.pause()
	s.syncHourlyMetrics(ctx, shopID, campaignIDs, today)
	s.pause()
	s.reconcileShop(ctx, shopID, windowStart, today)
}

// refreshCampaignCatalog atualiza o catálogo local de campanhas da loja
// e devolve os IDs conhecidos
func (s *PerformanceSyncService) refreshCampaignCatalog(ctx context.Context, shopID int64) []int64 {
	campaigns, err := s.integrator.ListCampaigns(ctx, shopID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop_id": shopID,
			"error":   err.Error(),
		}).Error("Erro ao listar campanhas da loja, usando catálogo local")

		ids, repoErr := s.campaignRepo.ListIDsByShop(ctx, shopID)
		if repoErr != nil {
			logrus.WithError(repoErr).Error("Erro ao listar campanhas do catálogo local")
			return nil
		}
		return ids
	}

	ids := make([]int64, 0, len(campaigns))
	for _, campaign := range campaigns {
		if err := s.campaignRepo.SaveOrUpdate(ctx, campaign); err != nil {
			logrus.WithFields(logrus.Fields{
				"shop_id":     shopID,
				"campaign_id": campaign.CampaignID,
				"error":       err.Error(),
			}).Error("Erro ao gravar campanha no catálogo")
			continue
		}
		ids = append(ids, campaign.CampaignID)
	}

	logrus.WithFields(logrus.Fields{
		"shop_id":   shopID,
		"campaigns": len(ids),
	}).Info("Catálogo de campanhas atualizado")

	return ids
}

func (s *PerformanceSyncService) syncDailyMetrics(ctx context.Context, shopID int64, campaignIDs []int64, start, end time.Time) {
	records, err := s.integrator.GetCampaignDailyPerformance(ctx, shopID, campaignIDs, start, end)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop_id": shopID,
			"error":   err.Error(),
		}).Error("Erro ao obter métricas diárias das campanhas")
		return
	}

	saved := 0
	for _, record := range records {
		if err := s.upserter.UpsertCampaignRecord(ctx, record); err != nil {
			logrus.WithFields(logrus.Fields{
				"shop_id":     shopID,
				"campaign_id": record.CampaignID,
				"date":        record.Date.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("Erro ao gravar métrica diária da campanha")
			continue
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"shop_id": shopID,
		"records": saved,
	}).Info("Métricas diárias das campanhas gravadas")
}

func (s *PerformanceSyncService) syncHourlyMetrics(ctx context.Context, shopID int64, campaignIDs []int64, date time.Time) {
	records, err := s.integrator.GetCampaignHourlyPerformance(ctx, shopID, campaignIDs, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop_id": shopID,
			"date":    date.Format(time.DateOnly),
			"error":   err.Error(),
		}).Error("Erro ao obter métricas horárias das campanhas")
		return
	}

	saved := 0
	for _, record := range records {
		if err := s.upserter.UpsertCampaignRecord(ctx, record); err != nil {
			logrus.WithFields(logrus.Fields{
				"shop_id":     shopID,
				"campaign_id": record.CampaignID,
				"error":       err.Error(),
			}).Error("Erro ao gravar métrica horária da campanha")
			continue
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"shop_id": shopID,
		"date":    date.Format(time.DateOnly),
		"records": saved,
	}).Info("Métricas horárias das campanhas gravadas")
}

// reconcileShop consolida os rollups diários da janela e os horários de hoje
func (s *PerformanceSyncService) reconcileShop(ctx context.Context, shopID int64, windowStart, today time.Time) {
	for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		if err := s.reconciler.ReconcileShopPeriod(ctx, shopID, day, nil); err != nil {
			logrus.WithFields(logrus.Fields{
				"shop_id": shopID,
				"date":    day.Format(time.DateOnly),
				"error":   err.Error(),
			}).Error("Erro ao reconciliar rollup diário da loja")
		}
	}

	currentHour := time.Now().UTC().Hour()
	for hour := 0; hour <= currentHour; hour++ {
		h := hour
		if err := s.reconciler.ReconcileShopPeriod(ctx, shopID, today, &h); err != nil {
			logrus.WithFields(logrus.Fields{
				"shop_id": shopID,
				"hour":    hour,
				"error":   err.Error(),
			}).Error("Erro ao reconciliar rollup horário da loja")
		}
	}
}

func (s *PerformanceSyncService) pause() {
	time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
}

// TriggerManualSync inicia manualmente uma sincronização de métricas
func (s *PerformanceSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas")
	go s.syncAllShops(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt, completedAt := s.lastSyncStartedAt, s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentShops,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
