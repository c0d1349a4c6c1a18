package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository. Create y Update escriben
// cabecera + líneas en varias sentencias: para atomicidad deben ejecutarse
// sobre un Querier transaccional (TxRunner).
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, partner_id, status, total_price, paid_amount, payment_status, order_date, delivery_date, notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.PartnerID, &o.Status, &o.TotalPrice, &o.PaidAmount,
		&o.PaymentStatus, &o.OrderDate, &o.DeliveryDate, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste cabecera y líneas.
func (r *OrderRepo) Create(order *entity.Order, lines []*entity.OrderLine) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.PartnerID, order.Status, order.TotalPrice, order.PaidAmount,
		order.PaymentStatus, order.OrderDate, order.DeliveryDate, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertLines(order.ID, lines)
}

func (r *OrderRepo) insertLines(orderID string, lines []*entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (id, order_id, item_type, item_id, quantity, unit, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, l := range lines {
		_, err := r.q.Exec(context.Background(), query,
			l.ID, orderID, l.ItemType, l.ItemID, l.Quantity, l.Unit, l.UnitPrice, l.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) GetLines(orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, item_type, item_id, quantity, unit, unit_price, line_total
		FROM order_lines WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemType, &l.ItemID, &l.Quantity, &l.Unit, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// List filtra opcionalmente por tercero y estado.
func (r *OrderRepo) List(partnerID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1 = '' OR partner_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY order_date DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, partnerID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return collectOrders(rows)
}

// ListByPartner devuelve todos los pedidos del tercero sin paginar.
func (r *OrderRepo) ListByPartner(partnerID string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders WHERE partner_id = $1
		ORDER BY order_date, created_at`
	rows, err := r.q.Query(context.Background(), query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by partner: %w", err)
	}
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update reescribe la cabecera y reemplaza las líneas completas.
func (r *OrderRepo) Update(order *entity.Order, lines []*entity.OrderLine) error {
	query := `
		UPDATE orders
		SET partner_id = $2, status = $3, total_price = $4, paid_amount = $5,
		    payment_status = $6, order_date = $7, delivery_date = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.PartnerID, order.Status, order.TotalPrice, order.PaidAmount,
		order.PaymentStatus, order.OrderDate, order.DeliveryDate, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM order_lines WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	return r.insertLines(order.ID, lines)
}

func (r *OrderRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdatePayment escribe SOLO los campos de pago. No toca el resto de la
// cabecera para no pisar ediciones concurrentes.
func (r *OrderRepo) UpdatePayment(id string, paidAmount decimal.Decimal, paymentStatus string, updatedAt time.Time) error {
	query := `UPDATE orders SET paid_amount = $2, payment_status = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, paidAmount, paymentStatus, updatedAt)
	if err != nil {
		return fmt.Errorf("update order payment: %w", err)
	}
	return nil
}

func (r *OrderRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrOrderInUse
		}
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) CountByPartner(partnerID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM orders WHERE partner_id = $1`, partnerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by partner: %w", err)
	}
	return count, nil
}
