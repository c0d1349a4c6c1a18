package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest body para POST /api/transactions.
// OrderID, PartnerID y MaterialID son opcionales (a lo sumo un sujeto).
// Si OrderID viene, el registro concilia el monto pagado del pedido.
type CreateTransactionRequest struct {
	Type          string          `json:"type"` // INCOME | EXPENSE
	Amount        decimal.Decimal `json:"amount"`
	OrderID       string          `json:"order_id,omitempty"`
	PartnerID     string          `json:"partner_id,omitempty"`
	MaterialID    string          `json:"material_id,omitempty"`
	Date          string          `json:"date,omitempty"` // YYYY-MM-DD, vacío = hoy
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// UpdateTransactionRequest body para PUT /api/transactions/:id (campos
// opcionales). Cambiar Type, Amount u OrderID recalcula el monto pagado de
// los pedidos afectados desde el historial completo.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	OrderID       *string          `json:"order_id,omitempty"`
	Date          *string          `json:"date,omitempty"`
	Description   *string          `json:"description,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// TransactionResponse transacción en respuestas.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	OrderID       string          `json:"order_id,omitempty"`
	PartnerID     string          `json:"partner_id,omitempty"`
	MaterialID    string          `json:"material_id,omitempty"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}
