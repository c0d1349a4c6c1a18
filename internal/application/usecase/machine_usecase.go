package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// MachineUseCase casos de uso CRUD para máquinas del taller.
type MachineUseCase struct {
	repo repository.MachineRepository
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(repo repository.MachineRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo}
}

// Create crea una máquina.
func (uc *MachineUseCase) Create(in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	machine := &entity.Machine{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Model:     in.Model,
		Status:    in.Status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(machine); err != nil {
		return nil, err
	}
	return toMachineResponse(machine), nil
}

// GetByID obtiene una máquina por ID.
func (uc *MachineUseCase) GetByID(id string) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}
	return toMachineResponse(machine), nil
}

// List lista máquinas con paginación.
func (uc *MachineUseCase) List(limit, offset int) ([]*dto.MachineResponse, error) {
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
	out := make([]*dto.MachineResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMachineResponse(m))
	}
	return out, nil
}

// Update actualiza una máquina.
func (uc *MachineUseCase) Update(id string, in dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		machine.Name = *in.Name
	}
	if in.Model != nil {
		machine.Model = *in.Model
	}
	if in.Status != nil {
		machine.Status = *in.Status
	}
	if in.Notes != nil {
		machine.Notes = *in.Notes
	}
	machine.UpdatedAt = time.Now()
	if err := uc.repo.Update(machine); err != nil {
		return nil, err
	}
	return toMachineResponse(machine), nil
}

// Delete elimina una máquina por ID.
func (uc *MachineUseCase) Delete(id string) error {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if machine == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMachineResponse(m *entity.Machine) *dto.MachineResponse {
	return &dto.MachineResponse{
		ID:     m.ID,
		Name:   m.Name,
		Model:  m.Model,
		Status: m.Status,
		Notes:  m.Notes,
	}
}
