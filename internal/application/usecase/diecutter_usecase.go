package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// DieCutterUseCase casos de uso CRUD para troqueles.
type DieCutterUseCase struct {
	repo repository.DieCutterRepository
}

// NewDieCutterUseCase construye el caso de uso.
func NewDieCutterUseCase(repo repository.DieCutterRepository) *DieCutterUseCase {
	return &DieCutterUseCase{repo: repo}
}

// Create crea un troquel.
func (uc *DieCutterUseCase) Create(in dto.CreateDieCutterRequest) (*dto.DieCutterResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	dc := &entity.DieCutter{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Format:    in.Format,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(dc); err != nil {
		return nil, err
	}
	return toDieCutterResponse(dc), nil
}

// GetByID obtiene un troquel por ID.
func (uc *DieCutterUseCase) GetByID(id string) (*dto.DieCutterResponse, error) {
	dc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, domain.ErrNotFound
	}
	return toDieCutterResponse(dc), nil
}

// List lista troqueles con paginación.
func (uc *DieCutterUseCase) List(limit, offset int) ([]*dto.DieCutterResponse, error) {
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
	out := make([]*dto.DieCutterResponse, 0, len(list))
	for _, dc := range list {
		out = append(out, toDieCutterResponse(dc))
	}
	return out, nil
}

// Update actualiza un troquel.
func (uc *DieCutterUseCase) Update(id string, in dto.UpdateDieCutterRequest) (*dto.DieCutterResponse, error) {
	dc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		dc.Name = *in.Name
	}
	if in.Format != nil {
		dc.Format = *in.Format
	}
	if in.Notes != nil {
		dc.Notes = *in.Notes
	}
	dc.UpdatedAt = time.Now()
	if err := uc.repo.Update(dc); err != nil {
		return nil, err
	}
	return toDieCutterResponse(dc), nil
}

// Delete elimina un troquel por ID.
func (uc *DieCutterUseCase) Delete(id string) error {
	dc, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if dc == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toDieCutterResponse(dc *entity.DieCutter) *dto.DieCutterResponse {
	return &dto.DieCutterResponse{
		ID:     dc.ID,
		Name:   dc.Name,
		Format: dc.Format,
		Notes:  dc.Notes,
	}
}
