package dto

import "github.com/shopspring/decimal"

// OrderLineRequest línea de pedido en requests.
type OrderLineRequest struct {
	ItemType  string          `json:"item_type"` // PRODUCT | MATERIAL
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body para POST /api/orders.
// El total se calcula siempre en el servidor desde las líneas.
type CreateOrderRequest struct {
	PartnerID    string             `json:"partner_id"`
	Lines        []OrderLineRequest `json:"lines"`
	OrderDate    string             `json:"order_date,omitempty"`    // YYYY-MM-DD, vacío = hoy
	DeliveryDate string             `json:"delivery_date,omitempty"` // YYYY-MM-DD
	Notes        string             `json:"notes,omitempty"`
}

// UpdateOrderRequest body para PUT /api/orders/:id.
// Lines reemplaza las líneas completas y recalcula el total.
// PaidAmount permite la corrección manual del monto pagado; el estado de
// pago se rederiva siempre.
type UpdateOrderRequest struct {
	Lines        []OrderLineRequest `json:"lines"`
	PaidAmount   *decimal.Decimal   `json:"paid_amount,omitempty"`
	DeliveryDate *string            `json:"delivery_date,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse línea de pedido en respuestas.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ItemType  string          `json:"item_type"`
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse pedido con líneas para GET /api/orders/:id.
type OrderResponse struct {
	ID            string              `json:"id"`
	PartnerID     string              `json:"partner_id"`
	Status        string              `json:"status"`
	TotalPrice    decimal.Decimal     `json:"total_price"`
	PaidAmount    decimal.Decimal     `json:"paid_amount"`
	PaymentStatus string              `json:"payment_status"`
	OrderDate     string              `json:"order_date"`
	DeliveryDate  string              `json:"delivery_date,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	Lines         []OrderLineResponse `json:"lines"`
}
