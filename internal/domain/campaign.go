package domain

import "time"

// CampaignType é o tipo de campanha de anúncio na Shopee
type CampaignType string

const (
	CampaignTypeAuto   CampaignType = "auto"
	CampaignTypeManual CampaignType = "manual"
)

// CampaignStatus é o estado da campanha reportado pela Shopee
type CampaignStatus string

const (
	CampaignStatusOngoing   CampaignStatus = "ongoing"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusEnded     CampaignStatus = "ended"
	CampaignStatusDeleted   CampaignStatus = "deleted"
	CampaignStatusClosed    CampaignStatus = "closed"
)

// Campaign representa uma campanha de anúncio sincronizada da Shopee.
// Criada e atualizada apenas pelo motor de sincronização, via upsert.
type Campaign struct {
	ShopID        int64          `json:"shop_id"`
	CampaignID    int64          `json:"campaign_id"`
	Type          CampaignType   `json:"type"`
	Name          string         `json:"name"`
	Status        CampaignStatus `json:"status"`
	Budget        float64        `json:"budget"`
	Placement     string         `json:"placement"`
	BiddingMethod string         `json:"bidding_method"`
	ItemCount     int            `json:"item_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
