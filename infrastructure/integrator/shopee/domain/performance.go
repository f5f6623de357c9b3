package domain

// MetricsData são as métricas brutas de desempenho enviadas pela Shopee.
// Em rollups de loja alguns campos podem vir omitidos (notadamente os de
// itens vendidos); a camada de merge é quem decide o valor final.
type MetricsData struct {
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
}

// CampaignPerformanceResponse cobre as respostas diária e horária de
// desempenho por campanha
type CampaignPerformanceResponse struct {
	BaseResponse
	Response struct {
		CampaignList []struct {
			CampaignID      int64 `json:"campaign_id"`
			MetricsList     []struct {
				Date    string      `json:"date"` // "2006-01-02"
				Hour    *int        `json:"hour,omitempty"`
				Metrics MetricsData `json:"metrics"`
			} `json:"metrics_list"`
		} `json:"campaign_list"`
	} `json:"response"`
}

// ShopPerformanceResponse é a resposta do rollup de desempenho da loja
type ShopPerformanceResponse struct {
	BaseResponse
	Response struct {
		MetricsList []struct {
			Date    string      `json:"date"`
			Hour    *int        `json:"hour,omitempty"`
			Metrics MetricsData `json:"metrics"`
		} `json:"metrics_list"`
	} `json:"response"`
}
