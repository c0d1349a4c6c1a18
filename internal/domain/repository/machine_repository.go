package repository

import "github.com/tu-usuario/erp-produccion/internal/domain/entity"

// MachineRepository define el puerto de persistencia para máquinas.
type MachineRepository interface {
	Create(machine *entity.Machine) error
	GetByID(id string) (*entity.Machine, error)
	List(limit, offset int) ([]*entity.Machine, error)
	Update(machine *entity.Machine) error
	Delete(id string) error
}

// DieCutterRepository define el puerto de persistencia para troqueles.
type DieCutterRepository interface {
	Create(dieCutter *entity.DieCutter) error
	GetByID(id string) (*entity.DieCutter, error)
	List(limit, offset int) ([]*entity.DieCutter, error)
	Update(dieCutter *entity.DieCutter) error
	Delete(id string) error
}
