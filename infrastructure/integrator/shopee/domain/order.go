package domain

// OrderListResponse é a resposta paginada de get_order_list.
// A paginação é feita por cursor opaco devolvido pela própria API.
type OrderListResponse struct {
	BaseResponse
	Response struct {
		More       bool   `json:"more"`
		NextCursor string `json:"next_cursor"`
		OrderList  []struct {
			OrderSN string `json:"order_sn"`
		} `json:"order_list"`
	} `json:"response"`
}

// OrderDetail é o pedido completo retornado por get_order_detail
type OrderDetail struct {
	OrderSN       string  `json:"order_sn"`
	OrderStatus   string  `json:"order_status"`
	TotalAmount   float64 `json:"total_amount"`
	Currency      string  `json:"currency"`
	BuyerUsername string  `json:"buyer_username"`
	CreateTime    int64   `json:"create_time"` // epoch em segundos
	UpdateTime    int64   `json:"update_time"`
	PayTime       int64   `json:"pay_time"`
	ItemList      []struct {
		ItemID         int64 `json:"item_id"`
		ModelID        int64 `json:"model_id"`
		QuantityPurch  int   `json:"model_quantity_purchased"`
	} `json:"item_list"`
}

// OrderDetailResponse é a resposta de get_order_detail
type OrderDetailResponse struct {
	BaseResponse
	Response struct {
		OrderList []OrderDetail `json:"order_list"`
	} `json:"response"`
}
