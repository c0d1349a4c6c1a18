package repository

import "github.com/tu-usuario/erp-produccion/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos y su
// fórmula de consumo.
type ProductRepository interface {
	// Create persiste el producto y sus líneas de fórmula.
	Create(product *entity.Product, formula []*entity.FormulaLine) error
	GetByID(id string) (*entity.Product, error)
	GetFormula(productID string) ([]*entity.FormulaLine, error)
	List(limit, offset int) ([]*entity.Product, error)
	// Update reemplaza la fórmula completa junto con los campos del producto.
	Update(product *entity.Product, formula []*entity.FormulaLine) error
	Delete(id string) error
}
