package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	// Create persiste cabecera y líneas. Para que sea atómico debe invocarse
	// con un Querier transaccional (ver TxRunner).
	Create(order *entity.Order, lines []*entity.OrderLine) error
	GetByID(id string) (*entity.Order, error)
	GetLines(orderID string) ([]*entity.OrderLine, error)
	// List filtra opcionalmente por tercero y estado (vacío = sin filtro).
	List(partnerID, status string, limit, offset int) ([]*entity.Order, error)
	// ListByPartner devuelve todos los pedidos del tercero sin paginar
	// (agregación de balance y extracto de cuenta).
	ListByPartner(partnerID string) ([]*entity.Order, error)
	// Update reescribe la cabecera y reemplaza las líneas completas.
	Update(order *entity.Order, lines []*entity.OrderLine) error
	UpdateStatus(id, status string, updatedAt time.Time) error
	// UpdatePayment escribe SOLO paid_amount, payment_status y updated_at
	// (actualización parcial: no pisa ediciones concurrentes de otros campos).
	UpdatePayment(id string, paidAmount decimal.Decimal, paymentStatus string, updatedAt time.Time) error
	Delete(id string) error
	CountByPartner(partnerID string) (int64, error)
}
