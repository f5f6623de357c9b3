package reconciling

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/syncing"
)

// MetricsSource fornece as métricas agregadas de uma loja para uma data/hora.
// Devolver nil sem erro significa que a fonte não tem dados para o período.
type MetricsSource interface {
	Name() string
	Fetch(ctx context.Context, shopID int64, date time.Time, hour *int) (*domain.AdMetrics, error)
}

// APISource busca o agregado da loja direto na API da Shopee.
// O endpoint de desempenho da loja só expõe totais diários; para
// consultas horárias a fonte se declara sem dados.
type APISource struct {
	integrator shopee.Integrator
}

func NewAPISource(integrator shopee.Integrator) *APISource {
	return &APISource{integrator: integrator}
}

func (s *APISource) Name() string {
	return "api"
}

func (s *APISource) Fetch(ctx context.Context, shopID int64, date time.Time, hour *int) (*domain.AdMetrics, error) {
	if hour != nil {
		return nil, nil
	}

	records, err := s.integrator.GetShopDailyPerformance(ctx, shopID, date, date)
	if err != nil {
		return nil, err
	}

	target := date.Format("2006-01-02")
	for _, record := range records {
		if record.Date.Format("2006-01-02") == target {
			return record.Metrics, nil
		}
	}

	return nil, nil
}

// CampaignSumSource deriva o agregado da loja somando as linhas por
// campanha já sincronizadas
type CampaignSumSource struct {
	perfRepo repository.PerformanceRepository
}

func NewCampaignSumSource(perfRepo repository.PerformanceRepository) *CampaignSumSource {
	return &CampaignSumSource{perfRepo: perfRepo}
}

func (s *CampaignSumSource) Name() string {
	return "soma-campanhas"
}

func (s *CampaignSumSource) Fetch(ctx context.Context, shopID int64, date time.Time, hour *int) (*domain.AdMetrics, error) {
	records, err := s.perfRepo.ListByShopAndDate(ctx, shopID, date, hour)
	if err != nil {
		return nil, err
	}
	return syncing.SumCampaignMetrics(records), nil
}

// Reconciler consolida o rollup da loja consultando as fontes em ordem de
// precedência: a primeira que devolver métricas não-vazias vence. Uma fonte
// que falha é registrada e pulada, não derruba a reconciliação. Quando
// nenhuma fonte tem dados a gravação ainda acontece, para que a fusão
// anti-regressão preserve o valor já armazenado.
type Reconciler struct {
	sources  []MetricsSource
	upserter *syncing.Upserter
}

func NewReconciler(upserter *syncing.Upserter, sources ...MetricsSource) *Reconciler {
	return &Reconciler{
		sources:  sources,
		upserter: upserter,
	}
}

// ReconcileShopPeriod consolida o rollup da loja para uma data (e hora,
// quando horário)
func (r *Reconciler) ReconcileShopPeriod(ctx context.Context, shopID int64, date time.Time, hour *int) error {
	var chosen *domain.AdMetrics

	for _, source := range r.sources {
		metrics, err := source.Fetch(ctx, shopID, date, hour)
		if err != nil {
			logrus.Warn("Fonte de reconciliação falhou, tentando a próxima", map[string]any{
				"shopID": shopID,
				"date":   date.Format("2006-01-02"),
				"source": source.Name(),
				"error":  err,
			})
			continue
		}
		if metrics != nil && !metrics.IsZero() {
			chosen = metrics
			break
		}
	}

	if err := r.upserter.UpsertShopRecord(ctx, shopID, date, hour, chosen); err != nil {
		return fmt.Errorf("erro ao gravar rollup reconciliado da loja %d: %w", shopID, err)
	}

	return nil
}
