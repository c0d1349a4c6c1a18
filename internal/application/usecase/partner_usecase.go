package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// PartnerUseCase casos de uso CRUD para terceros (clientes y proveedores).
type PartnerUseCase struct {
	repo      repository.PartnerRepository
	orderRepo repository.OrderRepository
	txnRepo   repository.TransactionRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(
	repo repository.PartnerRepository,
	orderRepo repository.OrderRepository,
	txnRepo repository.TransactionRepository,
) *PartnerUseCase {
	return &PartnerUseCase{repo: repo, orderRepo: orderRepo, txnRepo: txnRepo}
}

// Create crea un nuevo tercero.
func (uc *PartnerUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" || !entity.IsValidPartnerType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	partner := &entity.Partner{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// GetByID obtiene un tercero por ID.
func (uc *PartnerUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	partner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return toPartnerResponse(partner), nil
}

// List lista terceros, opcionalmente filtrados por tipo.
func (uc *PartnerUseCase) List(partnerType string, limit, offset int) ([]*dto.PartnerResponse, error) {
	if partnerType != "" && !entity.IsValidPartnerType(partnerType) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(partnerType, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPartnerResponse(p))
	}
	return out, nil
}

// Update actualiza un tercero. El tipo (CLIENT/SUPPLIER) no es editable.
func (uc *PartnerUseCase) Update(id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		partner.Name = *in.Name
	}
	if in.ContactName != nil {
		partner.ContactName = *in.ContactName
	}
	if in.Email != nil {
		partner.Email = *in.Email
	}
	if in.Phone != nil {
		partner.Phone = *in.Phone
	}
	if in.Address != nil {
		partner.Address = *in.Address
	}
	if in.Notes != nil {
		partner.Notes = *in.Notes
	}
	partner.UpdatedAt = time.Now()
	if err := uc.repo.Update(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// Delete elimina un tercero. Se bloquea (no se cascadea) si algún pedido o
// transacción lo referencia.
func (uc *PartnerUseCase) Delete(id string) error {
	partner, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if partner == nil {
		return domain.ErrNotFound
	}
	orders, err := uc.orderRepo.CountByPartner(id)
	if err != nil {
		return err
	}
	txns, err := uc.txnRepo.CountByPartner(id)
	if err != nil {
		return err
	}
	if orders > 0 || txns > 0 {
		return domain.ErrPartnerInUse
	}
	return uc.repo.Delete(id)
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:          p.ID,
		Type:        p.Type,
		Name:        p.Name,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		Notes:       p.Notes,
	}
}
