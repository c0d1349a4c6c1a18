package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/reports"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo los métodos que usa la proyección)
// ──────────────────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders map[string]*entity.Order
	lines  map[string][]*entity.OrderLine
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

func (r *stubOrderRepo) Create(*entity.Order, []*entity.OrderLine) error { return nil }
func (r *stubOrderRepo) GetByID(id string) (*entity.Order, error)        { return r.orders[id], nil }
func (r *stubOrderRepo) GetLines(orderID string) ([]*entity.OrderLine, error) {
	return r.lines[orderID], nil
}
func (r *stubOrderRepo) List(string, string, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *stubOrderRepo) ListByPartner(string) ([]*entity.Order, error)          { return nil, nil }
func (r *stubOrderRepo) Update(*entity.Order, []*entity.OrderLine) error        { return nil }
func (r *stubOrderRepo) UpdateStatus(string, string, time.Time) error           { return nil }
func (r *stubOrderRepo) UpdatePayment(string, decimal.Decimal, string, time.Time) error {
	return nil
}
func (r *stubOrderRepo) Delete(string) error                   { return nil }
func (r *stubOrderRepo) CountByPartner(string) (int64, error)  { return 0, nil }

type stubProductRepo struct {
	formulas map[string][]*entity.FormulaLine
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

func (r *stubProductRepo) Create(*entity.Product, []*entity.FormulaLine) error { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)             { return nil, nil }
func (r *stubProductRepo) GetFormula(productID string) ([]*entity.FormulaLine, error) {
	return r.formulas[productID], nil
}
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error)            { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product, []*entity.FormulaLine) error { return nil }
func (r *stubProductRepo) Delete(string) error                                 { return nil }

type stubMaterialRepo struct {
	materials map[string]*entity.Material
}

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

func (r *stubMaterialRepo) Create(*entity.Material) error { return nil }
func (r *stubMaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.materials[id], nil
}
func (r *stubMaterialRepo) List(int, int) ([]*entity.Material, error) { return nil, nil }
func (r *stubMaterialRepo) Update(*entity.Material) error             { return nil }
func (r *stubMaterialRepo) Delete(string) error                       { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetOrderRequirements
// ──────────────────────────────────────────────────────────────────────────────

// Pedido de 10 cajas; la fórmula de la caja consume 2.5 de cartón y 0.1 de
// tinta por unidad. Con stock de cartón 20 (< 25, faltante) y tinta 5 (≥ 1).
func TestGetOrderRequirements_ExpandeFormula(t *testing.T) {
	orderRepo := &stubOrderRepo{
		orders: map[string]*entity.Order{"o1": {ID: "o1"}},
		lines: map[string][]*entity.OrderLine{
			"o1": {{ItemType: entity.OrderItemProduct, ItemID: "caja", Quantity: dec("10")}},
		},
	}
	productRepo := &stubProductRepo{formulas: map[string][]*entity.FormulaLine{
		"caja": {
			{MaterialID: "carton", QuantityPerUnit: dec("2.5")},
			{MaterialID: "tinta", QuantityPerUnit: dec("0.1")},
		},
	}}
	materialRepo := &stubMaterialRepo{materials: map[string]*entity.Material{
		"carton": {ID: "carton", Name: "Cartón", Unit: "kg", Stock: dec("20")},
		"tinta":  {ID: "tinta", Name: "Tinta", Unit: "l", Stock: dec("5")},
	}}

	uc := reports.NewRequirementsUseCase(orderRepo, productRepo, materialRepo)
	out, err := uc.GetOrderRequirements("o1")
	require.NoError(t, err)
	require.Len(t, out.Requirements, 2)

	// Orden alfabético por nombre: Cartón, Tinta
	carton := out.Requirements[0]
	assert.Equal(t, "Cartón", carton.MaterialName)
	assert.True(t, dec("25").Equal(carton.Required), "10 × 2.5 debe requerir 25")
	assert.True(t, carton.Shortage, "stock 20 < requerido 25 debe marcar faltante")

	tinta := out.Requirements[1]
	assert.True(t, dec("1").Equal(tinta.Required))
	assert.False(t, tinta.Shortage, "stock 5 cubre el requerido 1")
}

// Una línea de materia prima directa cuenta su propia cantidad, sin fórmula.
func TestGetOrderRequirements_MaterialDirecto(t *testing.T) {
	orderRepo := &stubOrderRepo{
		orders: map[string]*entity.Order{"o1": {ID: "o1"}},
		lines: map[string][]*entity.OrderLine{
			"o1": {{ItemType: entity.OrderItemMaterial, ItemID: "carton", Quantity: dec("8")}},
		},
	}
	materialRepo := &stubMaterialRepo{materials: map[string]*entity.Material{
		"carton": {ID: "carton", Name: "Cartón", Stock: dec("10")},
	}}

	uc := reports.NewRequirementsUseCase(orderRepo, &stubProductRepo{}, materialRepo)
	out, err := uc.GetOrderRequirements("o1")
	require.NoError(t, err)
	require.Len(t, out.Requirements, 1)
	assert.True(t, dec("8").Equal(out.Requirements[0].Required))
	assert.False(t, out.Requirements[0].Shortage)
}

// Materia prima eliminada después de guardar la fórmula: se reporta como
// faltante total con stock 0.
func TestGetOrderRequirements_MaterialEliminado(t *testing.T) {
	orderRepo := &stubOrderRepo{
		orders: map[string]*entity.Order{"o1": {ID: "o1"}},
		lines: map[string][]*entity.OrderLine{
			"o1": {{ItemType: entity.OrderItemProduct, ItemID: "caja", Quantity: dec("4")}},
		},
	}
	productRepo := &stubProductRepo{formulas: map[string][]*entity.FormulaLine{
		"caja": {{MaterialID: "desaparecido", QuantityPerUnit: dec("1")}},
	}}

	uc := reports.NewRequirementsUseCase(orderRepo, productRepo, &stubMaterialRepo{})
	out, err := uc.GetOrderRequirements("o1")
	require.NoError(t, err)
	require.Len(t, out.Requirements, 1)
	assert.True(t, out.Requirements[0].Stock.IsZero())
	assert.True(t, out.Requirements[0].Shortage)
}

func TestGetOrderRequirements_PedidoInexistente(t *testing.T) {
	uc := reports.NewRequirementsUseCase(
		&stubOrderRepo{orders: map[string]*entity.Order{}},
		&stubProductRepo{},
		&stubMaterialRepo{},
	)
	_, err := uc.GetOrderRequirements("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
