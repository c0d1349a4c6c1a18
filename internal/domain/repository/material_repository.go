package repository

import "github.com/tu-usuario/erp-produccion/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para materia prima.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	List(limit, offset int) ([]*entity.Material, error)
	Update(material *entity.Material) error
	Delete(id string) error
}
