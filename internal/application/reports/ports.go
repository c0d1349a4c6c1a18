package reports

import (
	"context"

	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
)

// StatementPDFGenerator renderiza el extracto de cuenta de un tercero.
// Recibe la proyección ya calculada; no recalcula nada.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		partner *entity.Partner,
		orders []*entity.Order,
		txs []*entity.Transaction,
		balance *dto.PartnerBalanceDTO,
	) ([]byte, error)
}
