package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado del catálogo.
// La fórmula de consumo (materia prima por unidad producida) se persiste
// aparte en FormulaLine y se usa solo para proyecciones de requerimientos;
// nunca descuenta stock automáticamente.
type Product struct {
	ID          string
	Name        string
	Category    string
	UnitMeasure string
	Price       decimal.Decimal // precio de venta por unidad
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormulaLine una línea de la fórmula de consumo de un producto:
// cantidad de materia prima requerida por unidad producida (≥ 0).
type FormulaLine struct {
	ID              string
	ProductID       string
	MaterialID      string
	QuantityPerUnit decimal.Decimal
}
