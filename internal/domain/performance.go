package domain

import (
	"time"

	"github.com/kiendt120702/shopee-ads-sync/pkg/utils"
)

// AdMetrics agrupa as métricas de desempenho de anúncios.
// Os campos derivados (CTR, ROAS, CIR) nunca são confiados da API quando
// houver divisão por zero: são sempre recomputados a partir das métricas base.
type AdMetrics struct {
	Impression     int64   `json:"impression"`
	Clicks         int64   `json:"clicks"`
	CTR            float64 `json:"ctr"`
	Expense        float64 `json:"expense"`
	DirectOrder    int64   `json:"direct_order"`
	BroadOrder     int64   `json:"broad_order"`
	DirectGMV      float64 `json:"direct_gmv"`
	BroadGMV       float64 `json:"broad_gmv"`
	DirectItemSold int64   `json:"direct_item_sold"`
	BroadItemSold  int64   `json:"broad_item_sold"`
	ROAS           float64 `json:"roas"`
	CIR            float64 `json:"cir"`
}

// ComputeDerived recalcula os índices derivados; divisão por zero resulta em 0
func (m *AdMetrics) ComputeDerived() {
	m.CTR = 0
	if m.Impression > 0 {
		m.CTR = utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impression) * 100)
	}

	m.ROAS = 0
	m.CIR = 0
	if m.Expense > 0 {
		m.ROAS = utils.RoundWithTwoDecimalPlace(m.BroadGMV / m.Expense)
	}
	if m.BroadGMV > 0 {
		m.CIR = utils.RoundWithTwoDecimalPlace(m.Expense / m.BroadGMV * 100)
	}
}

// Add acumula as métricas base de outra entrada (usado nos rollups derivados)
func (m *AdMetrics) Add(other *AdMetrics) {
	if other == nil {
		return
	}
	m.Impression += other.Impression
	m.Clicks += other.Clicks
	m.Expense += other.Expense
	m.DirectOrder += other.DirectOrder
	m.BroadOrder += other.BroadOrder
	m.DirectGMV += other.DirectGMV
	m.BroadGMV += other.BroadGMV
	m.DirectItemSold += other.DirectItemSold
	m.BroadItemSold += other.BroadItemSold
}

// IsZero indica se nenhuma métrica base foi registrada
func (m *AdMetrics) IsZero() bool {
	return m.Impression == 0 && m.Clicks == 0 && m.Expense == 0 &&
		m.DirectOrder == 0 && m.BroadOrder == 0 &&
		m.DirectGMV == 0 && m.BroadGMV == 0 &&
		m.DirectItemSold == 0 && m.BroadItemSold == 0
}

// PerformanceRecord é a métrica de uma campanha em uma data (e hora, se horária).
// Chave natural: (shop_id, campaign_id, date[, hour]).
type PerformanceRecord struct {
	ShopID     int64      `json:"shop_id"`
	CampaignID int64      `json:"campaign_id"`
	Date       time.Time  `json:"date"`
	Hour       *int       `json:"hour,omitempty"`
	Metrics    *AdMetrics `json:"metrics"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ShopPerformanceRecord é o rollup no nível da loja.
// Chave natural: (shop_id, date[, hour]). Não é fonte primária: para datas
// com dados completos por campanha, os totais devem bater com a soma das linhas.
type ShopPerformanceRecord struct {
	ShopID    int64      `json:"shop_id"`
	Date      time.Time  `json:"date"`
	Hour      *int       `json:"hour,omitempty"`
	Metrics   *AdMetrics `json:"metrics"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
