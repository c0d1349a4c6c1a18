package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/pricing"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func line(qty, price string) *entity.OrderLine {
	return &entity.OrderLine{Quantity: dec(qty), UnitPrice: dec(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Reprice
// ──────────────────────────────────────────────────────────────────────────────

// Dos líneas {2 × 100} y {1 × 50} deben totalizar 250, con cada LineTotal
// escrito en la línea.
func TestReprice_SumaLineas(t *testing.T) {
	lines := []*entity.OrderLine{line("2", "100"), line("1", "50")}

	total := pricing.Reprice(lines)

	assert.True(t, dec("250").Equal(total), "el total debe ser 250, fue %s", total)
	assert.True(t, dec("200").Equal(lines[0].LineTotal), "la primera línea debe totalizar 200")
	assert.True(t, dec("50").Equal(lines[1].LineTotal), "la segunda línea debe totalizar 50")
}

// Un pedido sin líneas es válido y totaliza 0.
func TestReprice_SinLineas(t *testing.T) {
	total := pricing.Reprice(nil)
	assert.True(t, total.IsZero(), "sin líneas el total debe ser 0")
}

// Cantidades fraccionarias no pierden precisión decimal.
func TestReprice_CantidadFraccionaria(t *testing.T) {
	lines := []*entity.OrderLine{line("2.5", "10.40")}
	total := pricing.Reprice(lines)
	assert.True(t, dec("26").Equal(total), "2.5 × 10.40 debe ser 26, fue %s", total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ValidLine
// ──────────────────────────────────────────────────────────────────────────────

func TestValidLine_RechazaNegativos(t *testing.T) {
	assert.True(t, pricing.ValidLine(dec("1"), dec("100")))
	assert.True(t, pricing.ValidLine(dec("0"), dec("0")), "cero es válido")
	assert.False(t, pricing.ValidLine(dec("-1"), dec("100")), "cantidad negativa debe rechazarse")
	assert.False(t, pricing.ValidLine(dec("1"), dec("-100")), "precio negativo debe rechazarse")
}
