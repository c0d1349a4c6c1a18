// Package reports contiene proyecciones de solo lectura: balance por
// tercero, requerimientos de material por pedido, resumen financiero y el
// extracto de cuenta en PDF. Todas se recalculan en cada consulta desde los
// datos vigentes; nada se cachea ni se persiste.
package reports

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// BalanceUseCase agrega el estado financiero de un tercero desde sus
// pedidos y transacciones (directas o transitivas vía pedido).
type BalanceUseCase struct {
	partnerRepo repository.PartnerRepository
	orderRepo   repository.OrderRepository
	txnRepo     repository.TransactionRepository
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(
	partnerRepo repository.PartnerRepository,
	orderRepo repository.OrderRepository,
	txnRepo repository.TransactionRepository,
) *BalanceUseCase {
	return &BalanceUseCase{partnerRepo: partnerRepo, orderRepo: orderRepo, txnRepo: txnRepo}
}

// GetPartnerBalance calcula el balance de un tercero.
func (uc *BalanceUseCase) GetPartnerBalance(partnerID string) (*dto.PartnerBalanceDTO, error) {
	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	orders, err := uc.orderRepo.ListByPartner(partnerID)
	if err != nil {
		return nil, err
	}
	txs, err := uc.txnRepo.ListByPartner(partnerID)
	if err != nil {
		return nil, err
	}
	balance := ComputeBalance(orders, txs)
	balance.PartnerID = partner.ID
	balance.PartnerName = partner.Name
	return balance, nil
}

// ComputeBalance proyección pura e idempotente del balance de un tercero:
//
//	totalInvoiced  = Σ TotalPrice de sus pedidos
//	totalAdvances  = Σ PaidAmount de sus pedidos
//	totalIncome    = Σ Amount de sus transacciones de ingreso
//	totalExpense   = Σ Amount de sus transacciones de egreso
//	balance        = advances − invoiced + income − expense
//	averageOrder   = invoiced / #pedidos (0 sin pedidos)
//
// balance < 0 = el tercero debe a la empresa; balance > 0 = crédito a favor.
func ComputeBalance(orders []*entity.Order, txs []*entity.Transaction) *dto.PartnerBalanceDTO {
	invoiced := decimal.Zero
	advances := decimal.Zero
	for _, o := range orders {
		invoiced = invoiced.Add(o.TotalPrice)
		advances = advances.Add(o.PaidAmount)
	}
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txs {
		if t.Type == entity.TransactionTypeExpense {
			expense = expense.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}
	balance := advances.Sub(invoiced).Add(income).Sub(expense)
	averageOrder := decimal.Zero
	if len(orders) > 0 {
		averageOrder = invoiced.Div(decimal.NewFromInt(int64(len(orders))))
	}
	return &dto.PartnerBalanceDTO{
		OrderCount:           len(orders),
		TotalInvoiced:        invoiced,
		TotalAdvancePayments: advances,
		TotalIncome:          income,
		TotalExpense:         expense,
		Balance:              balance,
		AverageOrder:         averageOrder,
	}
}
