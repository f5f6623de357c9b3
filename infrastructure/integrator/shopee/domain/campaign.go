package domain

// CampaignIDListResponse é a resposta de get_product_level_campaign_id_list
type CampaignIDListResponse struct {
	BaseResponse
	Response struct {
		CampaignList []struct {
			CampaignID int64  `json:"campaign_id"`
			AdType     string `json:"ad_type"`
		} `json:"campaign_list"`
		HasNextPage bool `json:"has_next_page"`
	} `json:"response"`
}

// CampaignSetting é a configuração de uma campanha retornada pela Shopee
type CampaignSetting struct {
	CampaignID int64 `json:"campaign_id"`
	CommonInfo struct {
		AdType          string  `json:"ad_type"`
		AdName          string  `json:"ad_name"`
		CampaignStatus  string  `json:"campaign_status"`
		BiddingMethod   string  `json:"bidding_method"`
		CampaignBudget  float64 `json:"campaign_budget"`
		CampaignPlace   string  `json:"campaign_placement"`
		ItemIDList      []int64 `json:"item_id_list"`
	} `json:"common_info"`
}

// CampaignSettingsResponse é a resposta de get_product_level_campaign_setting_info
type CampaignSettingsResponse struct {
	BaseResponse
	Response struct {
		CampaignList []CampaignSetting `json:"campaign_list"`
	} `json:"response"`
}

// EditBudgetResponse é a resposta da edição de orçamento de campanha
type EditBudgetResponse struct {
	BaseResponse
	Response struct {
		CampaignID int64 `json:"campaign_id"`
	} `json:"response"`
}
