package orders

import (
	"context"

	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de base de datos
// con un repositorio de pedidos atado a la tx (cabecera + líneas atómicas).
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
