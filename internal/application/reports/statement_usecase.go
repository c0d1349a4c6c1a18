package reports

import (
	"context"

	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// StatementUseCase arma el extracto de cuenta de un tercero (pedidos,
// transacciones y balance agregado) y lo entrega al generador de PDF.
type StatementUseCase struct {
	partnerRepo repository.PartnerRepository
	orderRepo   repository.OrderRepository
	txnRepo     repository.TransactionRepository
	pdf         StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	partnerRepo repository.PartnerRepository,
	orderRepo repository.OrderRepository,
	txnRepo repository.TransactionRepository,
	pdf StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{
		partnerRepo: partnerRepo,
		orderRepo:   orderRepo,
		txnRepo:     txnRepo,
		pdf:         pdf,
	}
}

// GeneratePartnerStatement genera el PDF del extracto de cuenta.
func (uc *StatementUseCase) GeneratePartnerStatement(ctx context.Context, partnerID string) ([]byte, error) {
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
	return uc.pdf.GenerateStatementPDF(ctx, partner, orders, txs, balance)
}
