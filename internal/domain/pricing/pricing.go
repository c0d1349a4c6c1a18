// Package pricing mantiene consistente el total de un pedido con sus líneas:
// LineTotal = Quantity × UnitPrice y TotalPrice = Σ LineTotal.
// Funciones puras, sin efectos más allá de escribir los campos calculados.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
)

// LineTotal calcula el total de una línea: cantidad × precio unitario.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Reprice recalcula el LineTotal de cada línea y devuelve el total del
// pedido. Un pedido sin líneas es válido y totaliza 0.
func Reprice(lines []*entity.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		line.LineTotal = LineTotal(line.Quantity, line.UnitPrice)
		total = total.Add(line.LineTotal)
	}
	return total
}

// ValidLine verifica que cantidad y precio unitario no sean negativos.
// Una línea negativa nunca entra al total del pedido.
func ValidLine(quantity, unitPrice decimal.Decimal) bool {
	return !quantity.IsNegative() && !unitPrice.IsNegative()
}
