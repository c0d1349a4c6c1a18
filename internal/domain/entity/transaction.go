package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// Transaction representa un movimiento de caja (ingreso o egreso).
// Puede referenciar opcionalmente un pedido, un tercero o una materia prima
// (a lo sumo un sujeto). Si referencia un pedido, el registro ajusta el
// PaidAmount del pedido vía conciliación del libro (application/ledger).
type Transaction struct {
	ID            string
	Type          string // INCOME | EXPENSE
	Amount        decimal.Decimal // siempre > 0; el signo lo da Type
	OrderID       string
	PartnerID     string
	MaterialID    string
	Date          time.Time
	Description   string
	PaymentMethod string
	Status        string // etiqueta libre de estado de pago
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsValidTransactionType valida el tipo de transacción.
func IsValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
