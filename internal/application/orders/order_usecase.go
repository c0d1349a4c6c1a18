package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/ledger"
	"github.com/tu-usuario/erp-produccion/internal/domain/pricing"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// OrderUseCase casos de uso para pedidos. El total del pedido se recalcula
// en el servidor desde las líneas en cada creación y edición; el estado de
// pago se rederiva siempre que cambie el total o el monto pagado.
type OrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	partnerRepo  repository.PartnerRepository
	productRepo  repository.ProductRepository
	materialRepo repository.MaterialRepository
	txnRepo      repository.TransactionRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	partnerRepo repository.PartnerRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.MaterialRepository,
	txnRepo repository.TransactionRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		partnerRepo:  partnerRepo,
		productRepo:  productRepo,
		materialRepo: materialRepo,
		txnRepo:      txnRepo,
	}
}

// buildLines valida cada línea (ítem existente, cantidad y precio no
// negativos) y la convierte a entidad. Un pedido sin líneas es válido.
func (uc *OrderUseCase) buildLines(orderID string, in []dto.OrderLineRequest) ([]*entity.OrderLine, error) {
	lines := make([]*entity.OrderLine, 0, len(in))
	for _, l := range in {
		if l.ItemID == "" || !pricing.ValidLine(l.Quantity, l.UnitPrice) {
			return nil, domain.ErrInvalidInput
		}
		switch l.ItemType {
		case entity.OrderItemProduct:
			product, err := uc.productRepo.GetByID(l.ItemID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
		case entity.OrderItemMaterial:
			material, err := uc.materialRepo.GetByID(l.ItemID)
			if err != nil {
				return nil, err
			}
			if material == nil {
				return nil, domain.ErrNotFound
			}
		default:
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, &entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ItemType:  l.ItemType,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
		})
	}
	return lines, nil
}

// Create crea un pedido: valida el tercero y las líneas, calcula los
// totales y persiste cabecera y líneas en una sola transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.PartnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	partner, err := uc.partnerRepo.GetByID(in.PartnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}

	orderID := uuid.New().String()
	lines, err := uc.buildLines(orderID, in.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orderDate := now
	if in.OrderDate != "" {
		orderDate, err = time.Parse(dateLayout, in.OrderDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	var deliveryDate *time.Time
	if in.DeliveryDate != "" {
		d, err := time.Parse(dateLayout, in.DeliveryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		deliveryDate = &d
	}

	total := pricing.Reprice(lines)
	order := &entity.Order{
		ID:            orderID,
		PartnerID:     in.PartnerID,
		Status:        entity.OrderStatusPending,
		TotalPrice:    total,
		PaidAmount:    decimal.Zero,
		PaymentStatus: ledger.DeriveStatus(decimal.Zero, total),
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Create(order, lines)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// List lista pedidos, opcionalmente filtrados por tercero y estado.
func (uc *OrderUseCase) List(partnerID, status string, limit, offset int) ([]*dto.OrderResponse, error) {
	if status != "" && !entity.IsValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.orderRepo.List(partnerID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o, nil))
	}
	return out, nil
}

// Update reemplaza las líneas, recalcula el total y rederiva el estado de
// pago contra el monto pagado vigente (o el corregido manualmente).
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	lines, err := uc.buildLines(id, in.Lines)
	if err != nil {
		return nil, err
	}
	order.TotalPrice = pricing.Reprice(lines)
	if in.PaidAmount != nil {
		order.PaidAmount = *in.PaidAmount
	}
	order.PaymentStatus = ledger.DeriveStatus(order.PaidAmount, order.TotalPrice)
	if in.DeliveryDate != nil {
		if *in.DeliveryDate == "" {
			order.DeliveryDate = nil
		} else {
			d, err := time.Parse(dateLayout, *in.DeliveryDate)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			order.DeliveryDate = &d
		}
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()

	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Update(order, lines)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// UpdateStatus asigna manualmente el estado de producción. Cualquier estado
// válido es asignable en cualquier momento.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) error {
	if !entity.IsValidOrderStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(id, in.Status, time.Now())
}

// Delete elimina un pedido y sus líneas. Se bloquea si alguna transacción
// lo referencia (misma política que con terceros: sin cascada).
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	count, err := uc.txnRepo.CountByOrder(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrOrderInUse
	}
	return uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Delete(id)
	})
}

func toOrderResponse(o *entity.Order, lines []*entity.OrderLine) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            o.ID,
		PartnerID:     o.PartnerID,
		Status:        o.Status,
		TotalPrice:    o.TotalPrice,
		PaidAmount:    o.PaidAmount,
		PaymentStatus: o.PaymentStatus,
		OrderDate:     o.OrderDate.Format(dateLayout),
		Notes:         o.Notes,
		Lines:         make([]dto.OrderLineResponse, 0, len(lines)),
	}
	if o.DeliveryDate != nil {
		resp.DeliveryDate = o.DeliveryDate.Format(dateLayout)
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:        l.ID,
			ItemType:  l.ItemType,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return resp
}
