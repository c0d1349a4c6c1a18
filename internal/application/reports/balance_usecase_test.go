package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/erp-produccion/internal/application/reports"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeBalance
// ──────────────────────────────────────────────────────────────────────────────

// Tercero con un pedido de 1000 abonado en 400, un ingreso directo de 200 y
// un egreso de 50: balance = 400 − 1000 + 200 − 50 = −450 (deudor).
func TestComputeBalance_Deudor(t *testing.T) {
	orders := []*entity.Order{
		{TotalPrice: dec("1000"), PaidAmount: dec("400")},
	}
	txs := []*entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: dec("200")},
		{Type: entity.TransactionTypeExpense, Amount: dec("50")},
	}

	b := reports.ComputeBalance(orders, txs)

	assert.Equal(t, 1, b.OrderCount)
	assert.True(t, dec("1000").Equal(b.TotalInvoiced))
	assert.True(t, dec("400").Equal(b.TotalAdvancePayments))
	assert.True(t, dec("200").Equal(b.TotalIncome))
	assert.True(t, dec("50").Equal(b.TotalExpense))
	assert.True(t, dec("-450").Equal(b.Balance), "el balance debe ser −450, fue %s", b.Balance)
	assert.True(t, dec("1000").Equal(b.AverageOrder))
}

// Sobrepago: pedido de 1000 con 1200 abonados → balance +200, crédito a
// favor del tercero.
func TestComputeBalance_CreditoPorSobrepago(t *testing.T) {
	orders := []*entity.Order{
		{TotalPrice: dec("1000"), PaidAmount: dec("1200")},
	}
	b := reports.ComputeBalance(orders, nil)
	assert.True(t, dec("200").Equal(b.Balance), "el excedente debe quedar como crédito")
}

// Tercero sin pedidos ni transacciones: todo en cero, sin división por cero
// en el promedio.
func TestComputeBalance_SinMovimientos(t *testing.T) {
	b := reports.ComputeBalance(nil, nil)
	assert.Equal(t, 0, b.OrderCount)
	assert.True(t, b.Balance.IsZero())
	assert.True(t, b.AverageOrder.IsZero(), "sin pedidos el promedio debe ser 0")
}

// La proyección es idempotente: recalcular sobre los mismos datos da el
// mismo resultado.
func TestComputeBalance_Idempotente(t *testing.T) {
	orders := []*entity.Order{
		{TotalPrice: dec("800"), PaidAmount: dec("300")},
		{TotalPrice: dec("200"), PaidAmount: dec("200")},
	}
	txs := []*entity.Transaction{
		{Type: entity.TransactionTypeExpense, Amount: dec("75")},
	}

	first := reports.ComputeBalance(orders, txs)
	second := reports.ComputeBalance(orders, txs)

	assert.True(t, first.Balance.Equal(second.Balance))
	assert.True(t, dec("-575").Equal(first.Balance), "300+200 − 1000 − 75 debe dar −575")
	assert.True(t, dec("500").Equal(first.AverageOrder), "promedio de pedido 1000/2 = 500")
}
