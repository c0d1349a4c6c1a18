// Package ledger contiene la regla de conciliación del libro: mantiene el
// monto pagado y el estado de pago de un pedido consistentes con las
// transacciones registradas contra él.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
)

// Apply aplica una transacción al monto pagado de un pedido:
// suma si es ingreso, resta si es egreso.
func Apply(paidAmount decimal.Decimal, txType string, amount decimal.Decimal) decimal.Decimal {
	if txType == entity.TransactionTypeExpense {
		return paidAmount.Sub(amount)
	}
	return paidAmount.Add(amount)
}

// DeriveStatus deriva el estado de pago de un pedido:
//
//	paid ≥ total → PAID
//	0 < paid < total → PARTIAL
//	paid ≤ 0 → UNPAID
//
// Un pago superior al total se mantiene como PAID; el excedente es un
// crédito a favor del tercero y aparece en su balance agregado.
func DeriveStatus(paidAmount, totalPrice decimal.Decimal) string {
	if paidAmount.GreaterThanOrEqual(totalPrice) && paidAmount.GreaterThan(decimal.Zero) {
		return entity.PaymentStatusPaid
	}
	if paidAmount.GreaterThan(decimal.Zero) {
		return entity.PaymentStatusPartial
	}
	return entity.PaymentStatusUnpaid
}

// RecomputeFromHistory recalcula el monto pagado de un pedido desde el
// historial completo de transacciones que lo referencian. Se usa al editar
// o eliminar una transacción: la regla es recomputar, no adivinar el ajuste.
func RecomputeFromHistory(txs []*entity.Transaction) decimal.Decimal {
	paid := decimal.Zero
	for _, t := range txs {
		paid = Apply(paid, t.Type, t.Amount)
	}
	return paid
}
