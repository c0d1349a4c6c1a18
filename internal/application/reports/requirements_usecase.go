package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// RequirementsUseCase proyecta los requerimientos de materia prima de un
// pedido: expande la fórmula de consumo de cada producto por la cantidad
// pedida, acumula por materia prima y compara contra el stock actual.
type RequirementsUseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	materialRepo repository.MaterialRepository
}

// NewRequirementsUseCase construye el caso de uso.
func NewRequirementsUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.MaterialRepository,
) *RequirementsUseCase {
	return &RequirementsUseCase{orderRepo: orderRepo, productRepo: productRepo, materialRepo: materialRepo}
}

// GetOrderRequirements calcula la proyección para un pedido. Las líneas que
// referencian materia prima directamente cuentan su propia cantidad; las de
// producto se expanden vía fórmula de consumo.
func (uc *RequirementsUseCase) GetOrderRequirements(orderID string) (*dto.OrderRequirementsDTO, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.GetLines(orderID)
	if err != nil {
		return nil, err
	}

	required := make(map[string]decimal.Decimal)
	for _, line := range lines {
		switch line.ItemType {
		case entity.OrderItemMaterial:
			required[line.ItemID] = required[line.ItemID].Add(line.Quantity)
		case entity.OrderItemProduct:
			formula, err := uc.productRepo.GetFormula(line.ItemID)
			if err != nil {
				return nil, err
			}
			for _, fl := range formula {
				needed := fl.QuantityPerUnit.Mul(line.Quantity)
				required[fl.MaterialID] = required[fl.MaterialID].Add(needed)
			}
		}
	}

	out := &dto.OrderRequirementsDTO{
		OrderID:      orderID,
		Requirements: make([]dto.MaterialRequirementDTO, 0, len(required)),
	}
	for materialID, qty := range required {
		material, err := uc.materialRepo.GetByID(materialID)
		if err != nil {
			return nil, err
		}
		req := dto.MaterialRequirementDTO{
			MaterialID: materialID,
			Required:   qty,
		}
		if material != nil {
			req.MaterialName = material.Name
			req.Unit = material.Unit
			req.Stock = material.Stock
			req.Shortage = material.Stock.LessThan(qty)
		} else {
			// Materia prima eliminada después de guardar la fórmula:
			// se reporta como faltante total.
			req.Stock = decimal.Zero
			req.Shortage = qty.GreaterThan(decimal.Zero)
		}
		out.Requirements = append(out.Requirements, req)
	}
	sort.Slice(out.Requirements, func(i, j int) bool {
		return out.Requirements[i].MaterialName < out.Requirements[j].MaterialName
	})
	return out, nil
}
