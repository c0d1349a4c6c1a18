package repository

import "github.com/tu-usuario/erp-produccion/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para transacciones.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// List filtra opcionalmente por tipo, pedido y tercero (vacío = sin filtro).
	List(txType, orderID, partnerID string, limit, offset int) ([]*entity.Transaction, error)
	// ListByOrder devuelve el historial completo de un pedido, ordenado por
	// fecha (recomputación del monto pagado).
	ListByOrder(orderID string) ([]*entity.Transaction, error)
	// ListByPartner devuelve las transacciones del tercero: referencia
	// directa o transitiva a través de un pedido suyo.
	ListByPartner(partnerID string) ([]*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id string) error
	CountByPartner(partnerID string) (int64, error)
	CountByOrder(orderID string) (int64, error)
}
