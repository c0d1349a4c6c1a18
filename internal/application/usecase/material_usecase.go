package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materia prima. El stock es un
// contador manual: nunca lo descuenta un pedido ni una transacción.
type MaterialUseCase struct {
	repo        repository.MaterialRepository
	partnerRepo repository.PartnerRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, partnerRepo repository.PartnerRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, partnerRepo: partnerRepo}
}

// validateSupplier verifica que el proveedor exista y sea de tipo SUPPLIER.
func (uc *MaterialUseCase) validateSupplier(supplierID string) error {
	if supplierID == "" {
		return nil
	}
	supplier, err := uc.partnerRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if supplier.Type != entity.PartnerTypeSupplier {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea una materia prima.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateSupplier(in.SupplierID); err != nil {
		return nil, err
	}
	now := time.Now()
	material := &entity.Material{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Unit:          in.Unit,
		Stock:         in.Stock,
		UnitPrice:     in.UnitPrice,
		PaymentStatus: in.PaymentStatus,
		SupplierID:    in.SupplierID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtiene una materia prima por ID.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// List lista materias primas con paginación.
func (uc *MaterialUseCase) List(limit, offset int) ([]*dto.MaterialResponse, error) {
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
	out := make([]*dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

// Update actualiza una materia prima (incluido el ajuste manual de stock).
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		material.Name = *in.Name
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.Stock != nil {
		material.Stock = *in.Stock
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		material.UnitPrice = *in.UnitPrice
	}
	if in.PaymentStatus != nil {
		material.PaymentStatus = *in.PaymentStatus
	}
	if in.SupplierID != nil {
		if err := uc.validateSupplier(*in.SupplierID); err != nil {
			return nil, err
		}
		material.SupplierID = *in.SupplierID
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Delete elimina una materia prima por ID.
func (uc *MaterialUseCase) Delete(id string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		Unit:          m.Unit,
		Stock:         m.Stock,
		UnitPrice:     m.UnitPrice,
		PaymentStatus: m.PaymentStatus,
		SupplierID:    m.SupplierID,
	}
}
