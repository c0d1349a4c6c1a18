package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y su fórmula de consumo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	materialRepo repository.MaterialRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, materialRepo repository.MaterialRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, materialRepo: materialRepo}
}

// buildFormula valida las líneas de fórmula (materia prima existente,
// cantidad por unidad ≥ 0) y las convierte a entidades.
func (uc *ProductUseCase) buildFormula(productID string, in []dto.FormulaLineRequest) ([]*entity.FormulaLine, error) {
	formula := make([]*entity.FormulaLine, 0, len(in))
	for _, fl := range in {
		if fl.MaterialID == "" || fl.QuantityPerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		material, err := uc.materialRepo.GetByID(fl.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.ErrNotFound
		}
		formula = append(formula, &entity.FormulaLine{
			ID:              uuid.New().String(),
			ProductID:       productID,
			MaterialID:      fl.MaterialID,
			QuantityPerUnit: fl.QuantityPerUnit,
		})
	}
	return formula, nil
}

// Create crea un producto con su fórmula.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		UnitMeasure: in.UnitMeasure,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	formula, err := uc.buildFormula(product.ID, in.Formula)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product, formula); err != nil {
		return nil, err
	}
	return toProductResponse(product, formula), nil
}

// GetByID obtiene un producto con su fórmula.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	formula, err := uc.repo.GetFormula(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, formula), nil
}

// List lista productos con paginación (sin fórmula, respuesta ligera).
func (uc *ProductUseCase) List(limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p, nil))
	}
	return out, nil
}

// Update actualiza un producto. Si Formula viene presente reemplaza la
// fórmula completa.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	formula, err := uc.repo.GetFormula(id)
	if err != nil {
		return nil, err
	}
	if in.Formula != nil {
		formula, err = uc.buildFormula(id, in.Formula)
		if err != nil {
			return nil, err
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product, formula); err != nil {
		return nil, err
	}
	return toProductResponse(product, formula), nil
}

// Delete elimina un producto y su fórmula.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product, formula []*entity.FormulaLine) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		UnitMeasure: p.UnitMeasure,
		Price:       p.Price,
		Formula:     make([]dto.FormulaLineResponse, 0, len(formula)),
	}
	for _, fl := range formula {
		resp.Formula = append(resp.Formula, dto.FormulaLineResponse{
			MaterialID:      fl.MaterialID,
			QuantityPerUnit: fl.QuantityPerUnit,
		})
	}
	return resp
}
