package domain

import "time"

// Order representa um pedido sincronizado da Shopee
type Order struct {
	ShopID        int64      `json:"shop_id"`
	OrderSN       string     `json:"order_sn"`
	Status        string     `json:"status"`
	TotalAmount   float64    `json:"total_amount"`
	Currency      string     `json:"currency"`
	BuyerUsername string     `json:"buyer_username"`
	ItemCount     int        `json:"item_count"`
	CreateTime    time.Time  `json:"create_time"`
	UpdateTime    time.Time  `json:"update_time"`
	PayTime       *time.Time `json:"pay_time,omitempty"`
}
