package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo consultas agregadas read-only del resumen financiero.
// A diferencia de los repos CRUD recibe el contexto del llamador: el
// dashboard lanza estas consultas en paralelo y necesita poder cancelarlas.
type FinanceRepo struct {
	q Querier
}

func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{q: q}
}

// GetCashflow suma ingresos y egresos de transacciones con fecha en [from, to).
func (r *FinanceRepo) GetCashflow(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0)
		FROM transactions
		WHERE date >= $1 AND date < $2`
	var income, expense decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("get cashflow: %w", err)
	}
	return income, expense, nil
}

// GetTopDebtors devuelve los terceros con balance más negativo. Replica en
// SQL la misma fórmula del balance por tercero (reports.ComputeBalance):
// advances − invoiced + income − expense, con transacciones directas o
// transitivas vía pedido.
func (r *FinanceRepo) GetTopDebtors(ctx context.Context, limit int) ([]dto.DebtorDTO, error) {
	query := `
		WITH order_totals AS (
			SELECT partner_id,
			       SUM(paid_amount) - SUM(total_price) AS order_balance
			FROM orders
			GROUP BY partner_id
		),
		txn_totals AS (
			SELECT COALESCE(t.partner_id, o.partner_id) AS partner_id,
			       SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE -t.amount END) AS txn_balance
			FROM transactions t
			LEFT JOIN orders o ON o.id = t.order_id
			WHERE t.partner_id IS NOT NULL OR o.partner_id IS NOT NULL
			GROUP BY COALESCE(t.partner_id, o.partner_id)
		)
		SELECT p.id, p.name,
		       COALESCE(ot.order_balance, 0) + COALESCE(tt.txn_balance, 0) AS balance
		FROM partners p
		LEFT JOIN order_totals ot ON ot.partner_id = p.id
		LEFT JOIN txn_totals tt ON tt.partner_id = p.id
		WHERE COALESCE(ot.order_balance, 0) + COALESCE(tt.txn_balance, 0) < 0
		ORDER BY balance ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get top debtors: %w", err)
	}
	defer rows.Close()
	var debtors []dto.DebtorDTO
	for rows.Next() {
		var d dto.DebtorDTO
		if err := rows.Scan(&d.PartnerID, &d.PartnerName, &d.Balance); err != nil {
			return nil, fmt.Errorf("scan debtor: %w", err)
		}
		debtors = append(debtors, d)
	}
	return debtors, rows.Err()
}
