package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/budgeting"
)

// BudgetScheduleConfig representa a configuração do processador de regras de orçamento
type BudgetScheduleConfig struct {
	CronSchedule         string
	BucketMinutes        int
	DedupLookbackMinutes int
	Enabled              bool
}

// BudgetScheduleService dispara o processador de regras de orçamento a
// cada bucket. A correção não depende do cron ser pontual: o matcher
// avalia o bucket corrente a partir do relógio e o log de execuções
// impede aplicação dupla.
type BudgetScheduleService struct {
	scheduler         *gocron.Scheduler
	config            BudgetScheduleConfig
	matcher           *budgeting.Matcher
	runMutex          sync.Mutex
	runRunning        bool
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastResult        *budgeting.ProcessResult
}

// NewBudgetScheduleService cria uma nova instância do processador de regras de orçamento
func NewBudgetScheduleService(
	matcher *budgeting.Matcher,
	appConfig *config.Config,
) *BudgetScheduleService {
	scheduleConfig := BudgetScheduleConfig{
		CronSchedule:         appConfig.BudgetSchedule.CronSchedule,
		BucketMinutes:        appConfig.BudgetSchedule.BucketMinutes,
		DedupLookbackMinutes: appConfig.BudgetSchedule.DedupLookbackMinutes,
		Enabled:              appConfig.BudgetSchedule.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          scheduleConfig.CronSchedule,
		"bucket_minutes":         scheduleConfig.BucketMinutes,
		"dedup_lookback_minutes": scheduleConfig.DedupLookbackMinutes,
		"enabled":                scheduleConfig.Enabled,
	}).Info("Configuração do processador de regras de orçamento carregada")

	return &BudgetScheduleService{
		scheduler: scheduler,
		config:    scheduleConfig,
		matcher:   matcher,
	}
}

// Start inicia o agendador
func (s *BudgetScheduleService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Processador de regras de orçamento desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando processador de regras de orçamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.processOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar processador de regras de orçamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando processador de regras de orçamento")
		s.scheduler.Stop()
	}()

	return nil
}

// processOnce executa uma passada do matcher sobre o bucket corrente
func (s *BudgetScheduleService) processOnce(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Passada de regras de orçamento já em andamento, ignorando")
		return
	}
	s.runRunning = true
	startTime := time.Now()
	s.lastRunStartedAt = startTime
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	result, err := s.matcher.ProcessDue(ctx, time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Erro na passada de regras de orçamento")
		return
	}

	s.runMutex.Lock()
	s.lastResult = result
	s.lastRunFinishedAt = time.Now()
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"evaluated":  result.Evaluated,
		"dispatched": result.Dispatched,
		"skipped":    result.Skipped,
		"failed":     result.Failed,
	}).Info("Passada de regras de orçamento concluída")
}

// TriggerManualRun dispara uma passada imediata do processador
func (s *BudgetScheduleService) TriggerManualRun(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Passada de regras de orçamento já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando passada manual de regras de orçamento")
	go s.processOnce(ctx)
}

// ApplyRuleNow aplica uma regra específica imediatamente
func (s *BudgetScheduleService) ApplyRuleNow(ctx context.Context, scheduleID string) error {
	return s.matcher.ApplyNow(ctx, scheduleID, time.Now().UTC())
}

// GetStatus retorna o status atual do processador
func (s *BudgetScheduleService) GetStatus() map[string]any {
	s.runMutex.Lock()
	startedAt, finishedAt := s.lastRunStartedAt, s.lastRunFinishedAt
	lastResult := s.lastResult
	s.runMutex.Unlock()

	status := map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"bucket_minutes":         s.config.BucketMinutes,
		"dedup_lookback_minutes": s.config.DedupLookbackMinutes,
		"last_run_started_at":    startedAt,
		"last_run_finished_at":   finishedAt,
	}
	if lastResult != nil {
		status["last_run_evaluated"] = lastResult.Evaluated
		status["last_run_dispatched"] = lastResult.Dispatched
		status["last_run_skipped"] = lastResult.Skipped
		status["last_run_failed"] = lastResult.Failed
	}
	return status
}
