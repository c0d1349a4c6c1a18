package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa materia prima en bodega. Stock es un contador simple:
// se ajusta manualmente, nunca lo descuenta un pedido.
type Material struct {
	ID            string
	Name          string
	Unit          string
	Stock         decimal.Decimal
	UnitPrice     decimal.Decimal
	PaymentStatus string // PAID | PARTIAL | UNPAID
	SupplierID    string // referencia al Partner proveedor (opcional)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
