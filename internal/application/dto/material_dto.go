package dto

import "github.com/shopspring/decimal"

// CreateMaterialRequest body para POST /api/materials.
type CreateMaterialRequest struct {
	Name          string          `json:"name"`
	Unit          string          `json:"unit,omitempty"`
	Stock         decimal.Decimal `json:"stock"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id (campos opcionales).
// Stock se edita manualmente; ningún pedido lo descuenta automáticamente.
type UpdateMaterialRequest struct {
	Name          *string          `json:"name,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	Stock         *decimal.Decimal `json:"stock,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	PaymentStatus *string          `json:"payment_status,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
}

// MaterialResponse materia prima en respuestas.
type MaterialResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit,omitempty"`
	Stock         decimal.Decimal `json:"stock"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
}
