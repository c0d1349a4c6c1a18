package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)
var _ repository.DieCutterRepository = (*DieCutterRepo)(nil)

// MachineRepo implementación de MachineRepository.
type MachineRepo struct {
	q Querier
}

func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

func (r *MachineRepo) Create(machine *entity.Machine) error {
	query := `
		INSERT INTO machines (id, name, model, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.Name, machine.Model, machine.Status, machine.Notes,
		machine.CreatedAt, machine.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

func (r *MachineRepo) GetByID(id string) (*entity.Machine, error) {
	query := `
		SELECT id, name, model, status, notes, created_at, updated_at
		FROM machines WHERE id = $1`
	var m entity.Machine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Model, &m.Status, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

func (r *MachineRepo) List(limit, offset int) ([]*entity.Machine, error) {
	query := `
		SELECT id, name, model, status, notes, created_at, updated_at
		FROM machines ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Model, &m.Status, &m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *MachineRepo) Update(machine *entity.Machine) error {
	query := `
		UPDATE machines
		SET name = $2, model = $3, status = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.Name, machine.Model, machine.Status, machine.Notes, machine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	return nil
}

func (r *MachineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}
	return nil
}

// DieCutterRepo implementación de DieCutterRepository.
type DieCutterRepo struct {
	q Querier
}

func NewDieCutterRepository(q Querier) *DieCutterRepo {
	return &DieCutterRepo{q: q}
}

func (r *DieCutterRepo) Create(dieCutter *entity.DieCutter) error {
	query := `
		INSERT INTO die_cutters (id, name, format, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		dieCutter.ID, dieCutter.Name, dieCutter.Format, dieCutter.Notes,
		dieCutter.CreatedAt, dieCutter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert die cutter: %w", err)
	}
	return nil
}

func (r *DieCutterRepo) GetByID(id string) (*entity.DieCutter, error) {
	query := `
		SELECT id, name, format, notes, created_at, updated_at
		FROM die_cutters WHERE id = $1`
	var d entity.DieCutter
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Format, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get die cutter: %w", err)
	}
	return &d, nil
}

func (r *DieCutterRepo) List(limit, offset int) ([]*entity.DieCutter, error) {
	query := `
		SELECT id, name, format, notes, created_at, updated_at
		FROM die_cutters ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list die cutters: %w", err)
	}
	defer rows.Close()
	var list []*entity.DieCutter
	for rows.Next() {
		var d entity.DieCutter
		if err := rows.Scan(&d.ID, &d.Name, &d.Format, &d.Notes, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan die cutter: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DieCutterRepo) Update(dieCutter *entity.DieCutter) error {
	query := `
		UPDATE die_cutters
		SET name = $2, format = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		dieCutter.ID, dieCutter.Name, dieCutter.Format, dieCutter.Notes, dieCutter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update die cutter: %w", err)
	}
	return nil
}

func (r *DieCutterRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM die_cutters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete die cutter: %w", err)
	}
	return nil
}
