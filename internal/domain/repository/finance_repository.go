package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
)

// FinanceRepository consultas read-only para el resumen financiero.
type FinanceRepository interface {
	// GetCashflow suma ingresos y egresos de las transacciones en el rango.
	GetCashflow(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error)
	// GetTopDebtors devuelve los terceros con el balance más negativo
	// (deudores), calculado con la misma convención de signo que el
	// balance por tercero.
	GetTopDebtors(ctx context.Context, limit int) ([]dto.DebtorDTO, error)
}
