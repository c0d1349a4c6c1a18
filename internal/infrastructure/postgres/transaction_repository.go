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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository. Las referencias
// opcionales (order_id, partner_id, material_id) se guardan como NULL cuando
// vienen vacías, para que apliquen las llaves foráneas.
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionSelect = `
	SELECT id, type, amount, COALESCE(order_id, ''), COALESCE(partner_id, ''), COALESCE(material_id, ''),
	       date, description, payment_method, status, notes, created_at, updated_at
	FROM transactions`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.Type, &t.Amount, &t.OrderID, &t.PartnerID, &t.MaterialID,
		&t.Date, &t.Description, &t.PaymentMethod, &t.Status, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, amount, order_id, partner_id, material_id,
			date, description, payment_method, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''),
			$7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Type, tx.Amount, tx.OrderID, tx.PartnerID, tx.MaterialID,
		tx.Date, tx.Description, tx.PaymentMethod, tx.Status, tx.Notes,
		tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(context.Background(), transactionSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List filtra opcionalmente por tipo, pedido y tercero.
func (r *TransactionRepo) List(txType, orderID, partnerID string, limit, offset int) ([]*entity.Transaction, error) {
	query := transactionSelect + `
		WHERE ($1 = '' OR type = $1)
		  AND ($2 = '' OR order_id = $2)
		  AND ($3 = '' OR partner_id = $3)
		ORDER BY date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, txType, orderID, partnerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return collectTransactions(rows)
}

// ListByOrder devuelve el historial completo del pedido, ordenado por fecha.
func (r *TransactionRepo) ListByOrder(orderID string) ([]*entity.Transaction, error) {
	query := transactionSelect + ` WHERE order_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by order: %w", err)
	}
	return collectTransactions(rows)
}

// ListByPartner devuelve las transacciones del tercero: referencia directa
// o transitiva a través de un pedido suyo.
func (r *TransactionRepo) ListByPartner(partnerID string) ([]*entity.Transaction, error) {
	query := transactionSelect + `
		WHERE partner_id = $1
		   OR order_id IN (SELECT id FROM orders WHERE partner_id = $1)
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by partner: %w", err)
	}
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $2, amount = $3, order_id = NULLIF($4, ''), partner_id = NULLIF($5, ''),
		    material_id = NULLIF($6, ''), date = $7, description = $8, payment_method = $9,
		    status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Type, tx.Amount, tx.OrderID, tx.PartnerID, tx.MaterialID,
		tx.Date, tx.Description, tx.PaymentMethod, tx.Status, tx.Notes, tx.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) CountByPartner(partnerID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM transactions WHERE partner_id = $1`, partnerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions by partner: %w", err)
	}
	return count, nil
}

func (r *TransactionRepo) CountByOrder(orderID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM transactions WHERE order_id = $1`, orderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions by order: %w", err)
	}
	return count, nil
}
