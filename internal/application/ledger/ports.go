package ledger

import (
	"context"

	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// LedgerTxRunner ejecuta una función dentro de una transacción de base de
// datos con repositorios de transacciones y pedidos atados a la tx.
// El insert de la transacción y la actualización parcial del pedido
// confirman o se revierten juntos: nunca queda una transacción registrada
// sin su efecto en el balance del pedido.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(
		txnRepo repository.TransactionRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
