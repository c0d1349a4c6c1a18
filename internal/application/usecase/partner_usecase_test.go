package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/application/usecase"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPartnerRepo struct {
	partners map[string]*entity.Partner
	deleted  []string
}

var _ repository.PartnerRepository = (*memPartnerRepo)(nil)

func (r *memPartnerRepo) Create(p *entity.Partner) error { r.partners[p.ID] = p; return nil }
func (r *memPartnerRepo) GetByID(id string) (*entity.Partner, error) {
	return r.partners[id], nil
}
func (r *memPartnerRepo) List(partnerType string, _, _ int) ([]*entity.Partner, error) {
	var out []*entity.Partner
	for _, p := range r.partners {
		if partnerType == "" || p.Type == partnerType {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memPartnerRepo) Update(p *entity.Partner) error { r.partners[p.ID] = p; return nil }
func (r *memPartnerRepo) Delete(id string) error {
	delete(r.partners, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// countOrderRepo solo aporta CountByPartner; el resto no se usa aquí.
type countOrderRepo struct{ count int64 }

var _ repository.OrderRepository = (*countOrderRepo)(nil)

func (r *countOrderRepo) Create(*entity.Order, []*entity.OrderLine) error       { return nil }
func (r *countOrderRepo) GetByID(string) (*entity.Order, error)                 { return nil, nil }
func (r *countOrderRepo) GetLines(string) ([]*entity.OrderLine, error)          { return nil, nil }
func (r *countOrderRepo) List(string, string, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *countOrderRepo) ListByPartner(string) ([]*entity.Order, error)         { return nil, nil }
func (r *countOrderRepo) Update(*entity.Order, []*entity.OrderLine) error       { return nil }
func (r *countOrderRepo) UpdateStatus(string, string, time.Time) error          { return nil }
func (r *countOrderRepo) UpdatePayment(string, decimal.Decimal, string, time.Time) error {
	return nil
}
func (r *countOrderRepo) Delete(string) error                  { return nil }
func (r *countOrderRepo) CountByPartner(string) (int64, error) { return r.count, nil }

type countTxnRepo struct{ count int64 }

var _ repository.TransactionRepository = (*countTxnRepo)(nil)

func (r *countTxnRepo) Create(*entity.Transaction) error            { return nil }
func (r *countTxnRepo) GetByID(string) (*entity.Transaction, error) { return nil, nil }
func (r *countTxnRepo) List(string, string, string, int, int) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *countTxnRepo) ListByOrder(string) ([]*entity.Transaction, error)   { return nil, nil }
func (r *countTxnRepo) ListByPartner(string) ([]*entity.Transaction, error) { return nil, nil }
func (r *countTxnRepo) Update(*entity.Transaction) error                    { return nil }
func (r *countTxnRepo) Delete(string) error                                 { return nil }
func (r *countTxnRepo) CountByPartner(string) (int64, error)                { return r.count, nil }
func (r *countTxnRepo) CountByOrder(string) (int64, error)                  { return 0, nil }

func newPartnerUC(orders, txns int64) (*usecase.PartnerUseCase, *memPartnerRepo) {
	repo := &memPartnerRepo{partners: map[string]*entity.Partner{}}
	uc := usecase.NewPartnerUseCase(repo, &countOrderRepo{count: orders}, &countTxnRepo{count: txns})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ValidaTipo(t *testing.T) {
	uc, _ := newPartnerUC(0, 0)

	_, err := uc.Create(dto.CreatePartnerRequest{Type: "OTRO", Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido debe rechazarse")

	_, err = uc.Create(dto.CreatePartnerRequest{Type: entity.PartnerTypeClient})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name vacío debe rechazarse")

	out, err := uc.Create(dto.CreatePartnerRequest{Type: entity.PartnerTypeClient, Name: "Acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.PartnerTypeClient, out.Type)
}

// Un tercero con pedidos asociados no puede eliminarse.
func TestDelete_BloqueadoPorPedidos(t *testing.T) {
	uc, repo := newPartnerUC(3, 0)
	repo.partners["p1"] = &entity.Partner{ID: "p1", Type: entity.PartnerTypeClient, Name: "Acme"}

	err := uc.Delete("p1")
	assert.ErrorIs(t, err, domain.ErrPartnerInUse)
	assert.Empty(t, repo.deleted, "no debe llegar al Delete del repo")
}

// Un tercero con transacciones asociadas tampoco puede eliminarse.
func TestDelete_BloqueadoPorTransacciones(t *testing.T) {
	uc, repo := newPartnerUC(0, 2)
	repo.partners["p1"] = &entity.Partner{ID: "p1", Type: entity.PartnerTypeSupplier, Name: "Proveedora"}

	err := uc.Delete("p1")
	assert.ErrorIs(t, err, domain.ErrPartnerInUse)
	assert.Empty(t, repo.deleted)
}

// Sin referencias, el borrado procede.
func TestDelete_SinReferencias(t *testing.T) {
	uc, repo := newPartnerUC(0, 0)
	repo.partners["p1"] = &entity.Partner{ID: "p1", Type: entity.PartnerTypeClient, Name: "Acme"}

	require.NoError(t, uc.Delete("p1"))
	assert.Equal(t, []string{"p1"}, repo.deleted)
}

func TestDelete_NoEncontrado(t *testing.T) {
	uc, _ := newPartnerUC(0, 0)
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El tipo no es editable: Update conserva el tipo original.
func TestUpdate_TipoNoEditable(t *testing.T) {
	uc, repo := newPartnerUC(0, 0)
	repo.partners["p1"] = &entity.Partner{ID: "p1", Type: entity.PartnerTypeClient, Name: "Acme"}

	name := "Acme Renombrada"
	out, err := uc.Update("p1", dto.UpdatePartnerRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renombrada", out.Name)
	assert.Equal(t, entity.PartnerTypeClient, out.Type, "el tipo debe conservarse")
}
