package dto

import "github.com/shopspring/decimal"

// FormulaLineRequest línea de fórmula de consumo en requests.
type FormulaLineRequest struct {
	MaterialID      string          `json:"material_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// CreateProductRequest body para POST /api/products.
// Formula es la lista (materia prima, cantidad por unidad producida).
type CreateProductRequest struct {
	Name        string               `json:"name"`
	Category    string               `json:"category,omitempty"`
	UnitMeasure string               `json:"unit_measure,omitempty"`
	Price       decimal.Decimal      `json:"price"`
	Formula     []FormulaLineRequest `json:"formula,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
// Si Formula viene presente (aunque vacía) reemplaza la fórmula completa.
type UpdateProductRequest struct {
	Name        *string              `json:"name,omitempty"`
	Category    *string              `json:"category,omitempty"`
	UnitMeasure *string              `json:"unit_measure,omitempty"`
	Price       *decimal.Decimal     `json:"price,omitempty"`
	Formula     []FormulaLineRequest `json:"formula,omitempty"`
}

// FormulaLineResponse línea de fórmula en respuestas.
type FormulaLineResponse struct {
	MaterialID      string          `json:"material_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// ProductResponse producto con su fórmula.
type ProductResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Category    string                `json:"category,omitempty"`
	UnitMeasure string                `json:"unit_measure,omitempty"`
	Price       decimal.Decimal       `json:"price"`
	Formula     []FormulaLineResponse `json:"formula"`
}
