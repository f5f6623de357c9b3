package shopee

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/shopeeclient"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

// Endpoints da Open Platform da Shopee usados pelo serviço
const (
	PathCampaignIDList     = "/api/v2/ads/get_product_level_campaign_id_list"
	PathCampaignSettings   = "/api/v2/ads/get_product_level_campaign_setting_info"
	PathCampaignDailyPerf  = "/api/v2/ads/get_product_campaign_daily_performance"
	PathCampaignHourlyPerf = "/api/v2/ads/get_product_campaign_hourly_performance"
	PathShopDailyPerf      = "/api/v2/ads/get_all_cpc_ads_daily_performance"
	PathOrderList          = "/api/v2/order/get_order_list"
	PathOrderDetail        = "/api/v2/order/get_order_detail"
	PathEditBudget         = "/api/v2/ads/edit_product_level_campaign_budget"
)

// Limites de itens por chamada impostos pela API
const (
	maxCampaignsPerCall = 50
	maxOrdersPerCall    = 50
)

const dateLayout = "2006-01-02"

// OrderPage é uma página do cursor de listagem de pedidos
type OrderPage struct {
	OrderSNs   []string
	NextCursor string
	More       bool
}

// Integrator expõe as operações tipadas da API da Shopee
type Integrator interface {
	ListCampaigns(ctx context.Context, shopID int64) ([]*domain.Campaign, error)
	GetCampaignDailyPerformance(ctx context.Context, shopID int64, campaignIDs []int64, start, end time.Time) ([]*domain.PerformanceRecord, error)
	GetCampaignHourlyPerformance(ctx context.Context, shopID int64, campaignIDs []int64, date time.Time) ([]*domain.PerformanceRecord, error)
	GetShopDailyPerformance(ctx context.Context, shopID int64, start, end time.Time) ([]*domain.ShopPerformanceRecord, error)
	ListOrderIDs(ctx context.Context, shopID int64, from, to time.Time, cursor string, pageSize int) (*OrderPage, error)
	GetOrderDetails(ctx context.Context, shopID int64, orderSNs []string) ([]*domain.Order, error)
	UpdateCampaignBudget(ctx context.Context, shopID int64, campaignID int64, adType domain.AdType, budget float64) error
}

type Service struct {
	cfg    *config.Config
	client shopeeclient.Client
}

// New cria o integrador da Shopee
func New(cfg *config.Config, client shopeeclient.Client) Integrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// ListCampaigns busca os ids de todas as campanhas da loja e depois os
// detalhes em sub-lotes, respeitando o teto de itens por chamada
func (s *Service) ListCampaigns(ctx context.Context, shopID int64) ([]*domain.Campaign, error) {
	params := url.Values{}
	params.Set("ad_type", "all")

	var idList shopeedomain.CampaignIDListResponse
	if err := s.client.Get(ctx, shopID, PathCampaignIDList, params, &idList); err != nil {
		return nil, err
	}

	campaignIDs := make([]int64, 0, len(idList.Response.CampaignList))
	adTypeByID := make(map[int64]string, len(idList.Response.CampaignList))
	for _, c := range idList.Response.CampaignList {
		campaignIDs = append(campaignIDs, c.CampaignID)
		adTypeByID[c.CampaignID] = c.AdType
	}

	if len(campaignIDs) == 0 {
		return []*domain.Campaign{}, nil
	}

	batchSize := s.detailBatchSize(len(campaignIDs))
	delay := time.Duration(s.cfg.PerformanceSync.RequestDelaySeconds) * time.Second

	campaigns := make([]*domain.Campaign, 0, len(campaignIDs))
	for start := 0; start < len(campaignIDs); start += batchSize {
		end := start + batchSize
		if end > len(campaignIDs) {
			end = len(campaignIDs)
		}

		batch, err := s.getCampaignSettings(ctx, shopID, campaignIDs[start:end], adTypeByID)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, batch...)

		if end < len(campaignIDs) {
			time.Sleep(delay)
		}
	}

	return campaigns, nil
}

func (s *Service) getCampaignSettings(ctx context.Context, shopID int64, campaignIDs []int64, adTypeByID map[int64]string) ([]*domain.Campaign, error) {
	params := url.Values{}
	params.Set("campaign_id_list", joinIDs(campaignIDs))
	params.Set("info_type_list", "common_info")

	var settings shopeedomain.CampaignSettingsResponse
	if err := s.client.Get(ctx, shopID, PathCampaignSettings, params, &settings); err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(settings.Response.CampaignList))
	for _, c := range settings.Response.CampaignList {
		campaigns = append(campaigns, &domain.Campaign{
			ShopID:        shopID,
			CampaignID:    c.CampaignID,
			Type:          mapCampaignType(adTypeByID[c.CampaignID]),
			Name:          c.CommonInfo.AdName,
			Status:        mapCampaignStatus(c.CommonInfo.CampaignStatus),
			Budget:        c.CommonInfo.CampaignBudget,
			Placement:     c.CommonInfo.CampaignPlace,
			BiddingMethod: c.CommonInfo.BiddingMethod,
			ItemCount:     len(c.CommonInfo.ItemIDList),
		})
	}

	return campaigns, nil
}

func (s *Service) GetCampaignDailyPerformance(ctx context.Context, shopID int64, campaignIDs []int64, start, end time.Time) ([]*domain.PerformanceRecord, error) {
	return s.getCampaignPerformance(ctx, shopID, campaignIDs, PathCampaignDailyPerf, start, end)
}

func (s *Service) GetCampaignHourlyPerformance(ctx context.Context, shopID int64, campaignIDs []int64, date time.Time) ([]*domain.PerformanceRecord, error) {
	return s.getCampaignPerformance(ctx, shopID, campaignIDs, PathCampaignHourlyPerf, date, date)
}

// getCampaignPerformance pagina os ids de campanha em sub-lotes; o tamanho
// efetivo do lote diminui conforme o total de campanhas cresce, trocando
// número de chamadas por segurança de latência por chamada
func (s *Service) getCampaignPerformance(ctx context.Context, shopID int64, campaignIDs []int64, path string, start, end time.Time) ([]*domain.PerformanceRecord, error) {
	if len(campaignIDs) == 0 {
		return []*domain.PerformanceRecord{}, nil
	}

	batchSize := s.detailBatchSize(len(campaignIDs))
	delay := time.Duration(s.cfg.PerformanceSync.RequestDelaySeconds) * time.Second

	records := make([]*domain.PerformanceRecord, 0, len(campaignIDs))
	for batchStart := 0; batchStart < len(campaignIDs); batchStart += batchSize {
		batchEnd := batchStart + batchSize
		if batchEnd > len(campaignIDs) {
			batchEnd = len(campaignIDs)
		}

		params := url.Values{}
		params.Set("campaign_id_list", joinIDs(campaignIDs[batchStart:batchEnd]))
		params.Set("start_date", start.Format(dateLayout))
		params.Set("end_date", end.Format(dateLayout))

		var resp shopeedomain.CampaignPerformanceResponse
		if err := s.client.Get(ctx, shopID, path, params, &resp); err != nil {
			return nil, err
		}

		for _, campaign := range resp.Response.CampaignList {
			for _, entry := range campaign.MetricsList {
				date, err := time.Parse(dateLayout, entry.Date)
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"shop_id":     shopID,
						"campaign_id": campaign.CampaignID,
						"date":        entry.Date,
					}).Warn("Data inválida em métricas de campanha, ignorando entrada")
					continue
				}

				metrics := mapMetrics(entry.Metrics)
				records = append(records, &domain.PerformanceRecord{
					ShopID:     shopID,
					CampaignID: campaign.CampaignID,
					Date:       date,
					Hour:       entry.Hour,
					Metrics:    metrics,
				})
			}
		}

		if batchEnd < len(campaignIDs) {
			time.Sleep(delay)
		}
	}

	return records, nil
}

func (s *Service) GetShopDailyPerformance(ctx context.Context, shopID int64, start, end time.Time) ([]*domain.ShopPerformanceRecord, error) {
	params := url.Values{}
	params.Set("start_date", start.Format(dateLayout))
	params.Set("end_date", end.Format(dateLayout))

	var resp shopeedomain.ShopPerformanceResponse
	if err := s.client.Get(ctx, shopID, PathShopDailyPerf, params, &resp); err != nil {
		return nil, err
	}

	records := make([]*domain.ShopPerformanceRecord, 0, len(resp.Response.MetricsList))
	for _, entry := range resp.Response.MetricsList {
		date, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"shop_id": shopID,
				"date":    entry.Date,
			}).Warn("Data inválida em métricas da loja, ignorando entrada")
			continue
		}

		records = append(records, &domain.ShopPerformanceRecord{
			ShopID:  shopID,
			Date:    date,
			Hour:    entry.Hour,
			Metrics: mapMetrics(entry.Metrics),
		})
	}

	return records, nil
}

func (s *Service) ListOrderIDs(ctx context.Context, shopID int64, from, to time.Time, cursor string, pageSize int) (*OrderPage, error) {
	if pageSize <= 0 || pageSize > maxOrdersPerCall {
		pageSize = maxOrdersPerCall
	}

	params := url.Values{}
	params.Set("time_range_field", "create_time")
	params.Set("time_from", strconv.FormatInt(from.Unix(), 10))
	params.Set("time_to", strconv.FormatInt(to.Unix(), 10))
	params.Set("page_size", strconv.Itoa(pageSize))
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var resp shopeedomain.OrderListResponse
	if err := s.client.Get(ctx, shopID, PathOrderList, params, &resp); err != nil {
		return nil, err
	}

	page := &OrderPage{
		OrderSNs:   make([]string, 0, len(resp.Response.OrderList)),
		NextCursor: resp.Response.NextCursor,
		More:       resp.Response.More,
	}
	for _, o := range resp.Response.OrderList {
		page.OrderSNs = append(page.OrderSNs, o.OrderSN)
	}

	return page, nil
}

func (s *Service) GetOrderDetails(ctx context.Context, shopID int64, orderSNs []string) ([]*domain.Order, error) {
	if len(orderSNs) == 0 {
		return []*domain.Order{}, nil
	}
	if len(orderSNs) > maxOrdersPerCall {
		return nil, fmt.Errorf("máximo de %d pedidos por chamada de detalhe, recebidos %d", maxOrdersPerCall, len(orderSNs))
	}

	params := url.Values{}
	params.Set("order_sn_list", strings.Join(orderSNs, ","))

	var resp shopeedomain.OrderDetailResponse
	if err := s.client.Get(ctx, shopID, PathOrderDetail, params, &resp); err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(resp.Response.OrderList))
	for _, detail := range resp.Response.OrderList {
		order := &domain.Order{
			ShopID:        shopID,
			OrderSN:       detail.OrderSN,
			Status:        detail.OrderStatus,
			TotalAmount:   detail.TotalAmount,
			Currency:      detail.Currency,
			BuyerUsername: detail.BuyerUsername,
			CreateTime:    time.Unix(detail.CreateTime, 0),
			UpdateTime:    time.Unix(detail.UpdateTime, 0),
		}

		if detail.PayTime > 0 {
			payTime := time.Unix(detail.PayTime, 0)
			order.PayTime = &payTime
		}

		for _, item := range detail.ItemList {
			order.ItemCount += item.QuantityPurch
		}

		orders = append(orders, order)
	}

	return orders, nil
}

type editBudgetRequest struct {
	CampaignID int64   `json:"campaign_id"`
	AdType     string  `json:"ad_type"`
	Budget     float64 `json:"campaign_budget"`
}

// UpdateCampaignBudget aplica um novo orçamento à campanha via POST
func (s *Service) UpdateCampaignBudget(ctx context.Context, shopID int64, campaignID int64, adType domain.AdType, budget float64) error {
	body := editBudgetRequest{
		CampaignID: campaignID,
		AdType:     string(adType),
		Budget:     budget,
	}

	var resp shopeedomain.EditBudgetResponse
	return s.client.Post(ctx, shopID, PathEditBudget, body, &resp)
}

// detailBatchSize reduz o lote conforme o número de campanhas da loja cresce
func (s *Service) detailBatchSize(campaignCount int) int {
	switch {
	case campaignCount > 500:
		return 10
	case campaignCount > 200:
		return 25
	default:
		return maxCampaignsPerCall
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func mapCampaignType(adType string) domain.CampaignType {
	if adType == "auto" {
		return domain.CampaignTypeAuto
	}
	return domain.CampaignTypeManual
}

func mapCampaignStatus(status string) domain.CampaignStatus {
	switch status {
	case "ongoing":
		return domain.CampaignStatusOngoing
	case "paused":
		return domain.CampaignStatusPaused
	case "scheduled":
		return domain.CampaignStatusScheduled
	case "ended":
		return domain.CampaignStatusEnded
	case "deleted":
		return domain.CampaignStatusDeleted
	default:
		return domain.CampaignStatusClosed
	}
}

// mapMetrics converte as métricas brutas e recomputa os índices derivados;
// os valores de CTR/ROAS/CIR da API nunca são confiados diretamente
func mapMetrics(data shopeedomain.MetricsData) *domain.AdMetrics {
	metrics := &domain.AdMetrics{
		Impression:     data.Impression,
		Clicks:         data.Clicks,
		Expense:        data.Expense,
		DirectOrder:    data.DirectOrder,
		BroadOrder:     data.BroadOrder,
		DirectGMV:      data.DirectGMV,
		BroadGMV:       data.BroadGMV,
		DirectItemSold: data.DirectItemSold,
		BroadItemSold:  data.BroadItemSold,
	}
	metrics.ComputeDerived()
	return metrics
}
