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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
// La fórmula de consumo vive en product_formula_lines y se reemplaza
// completa en cada Update.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category, unit_measure, price, created_at, updated_at`

// Create persiste el producto y sus líneas de fórmula.
func (r *ProductRepo) Create(product *entity.Product, formula []*entity.FormulaLine) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.UnitMeasure,
		product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertFormula(formula)
}

func (r *ProductRepo) insertFormula(formula []*entity.FormulaLine) error {
	query := `
		INSERT INTO product_formula_lines (id, product_id, material_id, quantity_per_unit)
		VALUES ($1, $2, $3, $4)`
	for _, fl := range formula {
		if _, err := r.q.Exec(context.Background(), query,
			fl.ID, fl.ProductID, fl.MaterialID, fl.QuantityPerUnit,
		); err != nil {
			return fmt.Errorf("insert formula line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un producto por ID (sin fórmula).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.UnitMeasure, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetFormula obtiene las líneas de fórmula de un producto.
func (r *ProductRepo) GetFormula(productID string) ([]*entity.FormulaLine, error) {
	query := `
		SELECT id, product_id, material_id, quantity_per_unit
		FROM product_formula_lines WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("get formula: %w", err)
	}
	defer rows.Close()
	var formula []*entity.FormulaLine
	for rows.Next() {
		var fl entity.FormulaLine
		if err := rows.Scan(&fl.ID, &fl.ProductID, &fl.MaterialID, &fl.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan formula line: %w", err)
		}
		formula = append(formula, &fl)
	}
	return formula, rows.Err()
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.UnitMeasure, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza el producto y reemplaza su fórmula completa.
func (r *ProductRepo) Update(product *entity.Product, formula []*entity.FormulaLine) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, unit_measure = $4, price = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.UnitMeasure,
		product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM product_formula_lines WHERE product_id = $1`, product.ID,
	); err != nil {
		return fmt.Errorf("clear formula: %w", err)
	}
	return r.insertFormula(formula)
}

// Delete elimina un producto y su fórmula.
func (r *ProductRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM product_formula_lines WHERE product_id = $1`, id,
	); err != nil {
		return fmt.Errorf("delete formula: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
