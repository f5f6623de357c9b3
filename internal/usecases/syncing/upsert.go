package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

// MergeMetrics combina fontes de métricas campo a campo: para cada métrica
// base vale o primeiro valor não-zero na ordem das fontes informadas. Um
// zero vindo da API nunca regride um valor já conhecido — a Shopee devolve
// zeros transitórios para períodos ainda em consolidação. Os índices
// derivados são sempre recomputados sobre o resultado.
func MergeMetrics(sources ...*domain.AdMetrics) *domain.AdMetrics {
	merged := &domain.AdMetrics{}
	for _, src := range sources {
		if src == nil {
			continue
		}
		if merged.Impression == 0 {
			merged.Impression = src.Impression
		}
		if merged.Clicks == 0 {
			merged.Clicks = src.Clicks
		}
		if merged.Expense == 0 {
			merged.Expense = src.Expense
		}
		if merged.DirectOrder == 0 {
			merged.DirectOrder = src.DirectOrder
		}
		if merged.BroadOrder == 0 {
			merged.BroadOrder = src.BroadOrder
		}
		if merged.DirectGMV == 0 {
			merged.DirectGMV = src.DirectGMV
		}
		if merged.BroadGMV == 0 {
			merged.BroadGMV = src.BroadGMV
		}
		if merged.DirectItemSold == 0 {
			merged.DirectItemSold = src.DirectItemSold
		}
		if merged.BroadItemSold == 0 {
			merged.BroadItemSold = src.BroadItemSold
		}
	}
	merged.ComputeDerived()
	return merged
}

// SumCampaignMetrics agrega as métricas base das linhas por campanha
// de uma loja/data/hora; devolve nil quando não há linhas
func SumCampaignMetrics(records []*domain.PerformanceRecord) *domain.AdMetrics {
	if len(records) == 0 {
		return nil
	}
	total := &domain.AdMetrics{}
	for _, record := range records {
		total.Add(record.Metrics)
	}
	total.ComputeDerived()
	return total
}

// Upserter grava registros de desempenho aplicando a fusão anti-regressão.
// Para o rollup da loja a ordem de precedência é: valor vindo da API,
// soma derivada das linhas por campanha, valor já armazenado, zero.
type Upserter struct {
	perfRepo     repository.PerformanceRepository
	shopPerfRepo repository.ShopPerformanceRepository
}

func NewUpserter(
	perfRepo repository.PerformanceRepository,
	shopPerfRepo repository.ShopPerformanceRepository,
) *Upserter {
	return &Upserter{
		perfRepo:     perfRepo,
		shopPerfRepo: shopPerfRepo,
	}
}

// UpsertCampaignRecord grava uma linha por campanha, preservando métricas
// já conhecidas contra zeros transitórios da API
func (u *Upserter) UpsertCampaignRecord(ctx context.Context, record *domain.PerformanceRecord) error {
	stored, err := u.perfRepo.GetByKey(ctx, record.ShopID, record.CampaignID, record.Date, record.Hour)
	if err != nil {
		return fmt.Errorf("erro ao carregar registro existente: %w", err)
	}

	var storedMetrics *domain.AdMetrics
	if stored != nil {
		storedMetrics = stored.Metrics
	}

	merged := MergeMetrics(record.Metrics, storedMetrics)
	return u.perfRepo.SaveOrUpdate(ctx, &domain.PerformanceRecord{
		ShopID:     record.ShopID,
		CampaignID: record.CampaignID,
		Date:       record.Date,
		Hour:       record.Hour,
		Metrics:    merged,
	})
}

// UpsertShopRecord grava o rollup da loja para uma data/hora. O valor da API
// tem precedência; na falta dele a soma das linhas por campanha; na falta de
// ambas o valor já armazenado.
func (u *Upserter) UpsertShopRecord(ctx context.Context, shopID int64, date time.Time, hour *int, incoming *domain.AdMetrics) error {
	campaignRows, err := u.perfRepo.ListByShopAndDate(ctx, shopID, date, hour)
	if err != nil {
		return fmt.Errorf("erro ao listar linhas por campanha: %w", err)
	}

	stored, err := u.shopPerfRepo.GetByKey(ctx, shopID, date, hour)
	if err != nil {
		return fmt.Errorf("erro ao carregar rollup existente: %w", err)
	}

	var storedMetrics *domain.AdMetrics
	if stored != nil {
		storedMetrics = stored.Metrics
	}

	merged := MergeMetrics(incoming, SumCampaignMetrics(campaignRows), storedMetrics)
	return u.shopPerfRepo.SaveOrUpdate(ctx, &domain.ShopPerformanceRecord{
		ShopID:  shopID,
		Date:    date,
		Hour:    hour,
		Metrics: merged,
	})
}
