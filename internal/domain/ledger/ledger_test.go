package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply
// ──────────────────────────────────────────────────────────────────────────────

// Un ingreso suma al monto pagado; un egreso resta.
func TestApply_IngresoSumaEgresoResta(t *testing.T) {
	paid := ledger.Apply(dec("100"), entity.TransactionTypeIncome, dec("40"))
	assert.True(t, dec("140").Equal(paid), "ingreso de 40 sobre 100 debe dar 140")

	paid = ledger.Apply(paid, entity.TransactionTypeExpense, dec("60"))
	assert.True(t, dec("80").Equal(paid), "egreso de 60 sobre 140 debe dar 80")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DeriveStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveStatus_Tabla(t *testing.T) {
	cases := []struct {
		name  string
		paid  string
		total string
		want  string
	}{
		{"pago completo", "1000", "1000", entity.PaymentStatusPaid},
		{"sobrepago se mantiene PAID", "1200", "1000", entity.PaymentStatusPaid},
		{"pago parcial", "400", "1000", entity.PaymentStatusPartial},
		{"sin pagos", "0", "1000", entity.PaymentStatusUnpaid},
		{"pagado negativo por egresos", "-50", "1000", entity.PaymentStatusUnpaid},
		{"pedido de total cero sin pagos", "0", "0", entity.PaymentStatusUnpaid},
		{"pedido de total cero con abono", "10", "0", entity.PaymentStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.DeriveStatus(dec(tc.paid), dec(tc.total))
			assert.Equal(t, tc.want, got)
		})
	}
}

// Pago de 400 contra pedido de 1000 → PARTIAL; abonar 600 más → PAID.
func TestDeriveStatus_AbonosProgresivos(t *testing.T) {
	total := dec("1000")
	paid := ledger.Apply(decimal.Zero, entity.TransactionTypeIncome, dec("400"))
	assert.Equal(t, entity.PaymentStatusPartial, ledger.DeriveStatus(paid, total))

	paid = ledger.Apply(paid, entity.TransactionTypeIncome, dec("600"))
	assert.Equal(t, entity.PaymentStatusPaid, ledger.DeriveStatus(paid, total))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecomputeFromHistory
// ──────────────────────────────────────────────────────────────────────────────

// El recálculo desde el historial reconstruye el monto pagado exacto, sin
// importar el orden en que se registraron las transacciones.
func TestRecomputeFromHistory(t *testing.T) {
	txs := []*entity.Transaction{
		{Type: entity.TransactionTypeIncome, Amount: dec("400")},
		{Type: entity.TransactionTypeIncome, Amount: dec("300")},
		{Type: entity.TransactionTypeExpense, Amount: dec("100")},
	}
	paid := ledger.RecomputeFromHistory(txs)
	assert.True(t, dec("600").Equal(paid), "400 + 300 − 100 debe dar 600, fue %s", paid)
}

func TestRecomputeFromHistory_SinTransacciones(t *testing.T) {
	paid := ledger.RecomputeFromHistory(nil)
	assert.True(t, paid.IsZero(), "sin historial el monto pagado debe ser 0")
}
