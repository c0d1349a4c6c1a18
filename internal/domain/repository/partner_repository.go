package repository

import "github.com/tu-usuario/erp-produccion/internal/domain/entity"

// PartnerRepository define el puerto de persistencia para terceros
// (clientes y proveedores).
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(id string) (*entity.Partner, error)
	// List filtra opcionalmente por tipo (CLIENT | SUPPLIER, vacío = todos).
	List(partnerType string, limit, offset int) ([]*entity.Partner, error)
	Update(partner *entity.Partner) error
	Delete(id string) error
}
