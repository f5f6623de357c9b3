package domain

import "time"

// Shop representa uma loja Shopee vinculada ao painel
type Shop struct {
	ShopID    int64     `json:"shop_id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
