// Package ledger orquesta la regla de conciliación del libro: cada alta,
// edición o eliminación de una transacción deja el monto pagado y el estado
// de pago del pedido asociado consistentes, dentro de una sola transacción
// de base de datos.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	domledger "github.com/tu-usuario/erp-produccion/internal/domain/ledger"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// TransactionUseCase casos de uso para transacciones con conciliación.
type TransactionUseCase struct {
	txRunner     LedgerTxRunner
	txnRepo      repository.TransactionRepository
	orderRepo    repository.OrderRepository
	partnerRepo  repository.PartnerRepository
	materialRepo repository.MaterialRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	txRunner LedgerTxRunner,
	txnRepo repository.TransactionRepository,
	orderRepo repository.OrderRepository,
	partnerRepo repository.PartnerRepository,
	materialRepo repository.MaterialRepository,
) *TransactionUseCase {
	return &TransactionUseCase{
		txRunner:     txRunner,
		txnRepo:      txnRepo,
		orderRepo:    orderRepo,
		partnerRepo:  partnerRepo,
		materialRepo: materialRepo,
	}
}

// validateRefs verifica la existencia de las referencias opcionales.
// Una referencia colgante se rechaza con ErrNotFound: nunca se guarda una
// transacción que apunte a un pedido, tercero o material inexistente.
func (uc *TransactionUseCase) validateRefs(orderID, partnerID, materialID string) error {
	if orderID != "" {
		order, err := uc.orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
	}
	if partnerID != "" {
		partner, err := uc.partnerRepo.GetByID(partnerID)
		if err != nil {
			return err
		}
		if partner == nil {
			return domain.ErrNotFound
		}
	}
	if materialID != "" {
		material, err := uc.materialRepo.GetByID(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Record registra una transacción. Si referencia un pedido, aplica el monto
// (suma ingreso, resta egreso) al PaidAmount del pedido, deriva el estado
// de pago y escribe SOLO los campos de pago del pedido (update parcial).
// Insert y update confirman en la misma transacción de base de datos.
func (uc *TransactionUseCase) Record(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.IsValidTransactionType(in.Type) || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateRefs(in.OrderID, in.PartnerID, in.MaterialID); err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if in.Date != "" {
		var err error
		date, err = time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	txn := &entity.Transaction{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Amount:        in.Amount,
		OrderID:       in.OrderID,
		PartnerID:     in.PartnerID,
		MaterialID:    in.MaterialID,
		Date:          date,
		Description:   in.Description,
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunLedger(ctx, func(
		txnRepo repository.TransactionRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := txnRepo.Create(txn); err != nil {
			return err
		}
		if txn.OrderID == "" {
			return nil
		}
		// Releer el pedido dentro de la tx para no perder actualizaciones
		// de otra transacción concurrente contra el mismo pedido.
		order, err := orderRepo.GetByID(txn.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		paid := domledger.Apply(order.PaidAmount, txn.Type, txn.Amount)
		status := domledger.DeriveStatus(paid, order.TotalPrice)
		return orderRepo.UpdatePayment(order.ID, paid, status, now)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(txn), nil
}

// GetByID obtiene una transacción por ID.
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(txn), nil
}

// List lista transacciones con filtros opcionales.
func (uc *TransactionUseCase) List(txType, orderID, partnerID string, limit, offset int) ([]*dto.TransactionResponse, error) {
	if txType != "" && !entity.IsValidTransactionType(txType) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.txnRepo.List(txType, orderID, partnerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// Update edita una transacción y recalcula el monto pagado de cada pedido
// afectado (el anterior y el nuevo, si cambió la referencia) desde el
// historial completo, en la misma transacción de base de datos.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}

	previousOrderID := txn.OrderID
	if in.Type != nil {
		if !entity.IsValidTransactionType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		txn.Type = *in.Type
	}
	if in.Amount != nil {
		if !in.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		txn.Amount = *in.Amount
	}
	if in.OrderID != nil {
		if err := uc.validateRefs(*in.OrderID, "", ""); err != nil {
			return nil, err
		}
		txn.OrderID = *in.OrderID
	}
	if in.Date != nil {
		d, err := time.Parse(dateLayout, *in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		txn.Date = d
	}
	if in.Description != nil {
		txn.Description = *in.Description
	}
	if in.PaymentMethod != nil {
		txn.PaymentMethod = *in.PaymentMethod
	}
	if in.Status != nil {
		txn.Status = *in.Status
	}
	if in.Notes != nil {
		txn.Notes = *in.Notes
	}
	txn.UpdatedAt = time.Now()

	err = uc.txRunner.RunLedger(ctx, func(
		txnRepo repository.TransactionRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := txnRepo.Update(txn); err != nil {
			return err
		}
		return reconcileOrders(txnRepo, orderRepo, previousOrderID, txn.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(txn), nil
}

// Delete elimina una transacción y reversa su efecto recomputando el monto
// pagado del pedido asociado desde el historial restante.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return err
	}
	if txn == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunLedger(ctx, func(
		txnRepo repository.TransactionRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := txnRepo.Delete(id); err != nil {
			return err
		}
		return reconcileOrders(txnRepo, orderRepo, txn.OrderID, "")
	})
}

// reconcileOrders recalcula el monto pagado de los pedidos afectados desde
// su historial completo de transacciones. Debe invocarse dentro de la tx.
func reconcileOrders(
	txnRepo repository.TransactionRepository,
	orderRepo repository.OrderRepository,
	orderIDs ...string,
) error {
	seen := make(map[string]bool, len(orderIDs))
	now := time.Now()
	for _, orderID := range orderIDs {
		if orderID == "" || seen[orderID] {
			continue
		}
		seen[orderID] = true
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		history, err := txnRepo.ListByOrder(orderID)
		if err != nil {
			return err
		}
		paid := domledger.RecomputeFromHistory(history)
		status := domledger.DeriveStatus(paid, order.TotalPrice)
		if err := orderRepo.UpdatePayment(orderID, paid, status, now); err != nil {
			return err
		}
	}
	return nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		OrderID:       t.OrderID,
		PartnerID:     t.PartnerID,
		MaterialID:    t.MaterialID,
		Date:          t.Date.Format(dateLayout),
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		Status:        t.Status,
		Notes:         t.Notes,
	}
}
