package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producción del pedido. Todos son asignables manualmente en
// cualquier momento; no hay máquina de estados que restrinja transiciones.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusInStock   = "IN_STOCK"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Estados de pago derivados de PaidAmount vs TotalPrice (ver domain/ledger).
const (
	PaymentStatusPaid    = "PAID"
	PaymentStatusPartial = "PARTIAL"
	PaymentStatusUnpaid  = "UNPAID"
)

// Tipos de ítem referenciable en una línea de pedido.
const (
	OrderItemProduct  = "PRODUCT"
	OrderItemMaterial = "MATERIAL"
)

// Order representa un pedido de un tercero.
// TotalPrice siempre es la suma de los LineTotal de sus líneas al momento de
// guardar. PaidAmount se ajusta vía transacciones (o edición manual) y puede
// superar TotalPrice: el excedente es un crédito a favor del tercero.
type Order struct {
	ID            string
	PartnerID     string
	Status        string // PENDING | PREPARING | IN_STOCK | DELIVERED | CANCELLED
	TotalPrice    decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentStatus string // PAID | PARTIAL | UNPAID
	OrderDate     time.Time
	DeliveryDate  *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLine una línea de pedido: referencia a producto o materia prima,
// cantidad, unidad y precio unitario. LineTotal = Quantity × UnitPrice.
type OrderLine struct {
	ID        string
	OrderID   string
	ItemType  string // PRODUCT | MATERIAL
	ItemID    string
	Quantity  decimal.Decimal
	Unit      string
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// IsValidOrderStatus valida el estado de producción.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusInStock,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
