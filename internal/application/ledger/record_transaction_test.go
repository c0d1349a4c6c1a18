package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	appledger "github.com/tu-usuario/erp-produccion/internal/application/ledger"
	"github.com/tu-usuario/erp-produccion/internal/domain"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartido entre los repos fake. El runner lo clona antes
// de cada callback y lo restaura si falla, imitando el rollback de la DB.
type fakeStore struct {
	orders map[string]*entity.Order
	txns   map[string]*entity.Transaction
	// falla forzada del update parcial de pago (prueba de atomicidad)
	failPayment bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders: make(map[string]*entity.Order),
		txns:   make(map[string]*entity.Transaction),
	}
}

func (s *fakeStore) snapshot() (map[string]*entity.Order, map[string]*entity.Transaction) {
	orders := make(map[string]*entity.Order, len(s.orders))
	for k, v := range s.orders {
		c := *v
		orders[k] = &c
	}
	txns := make(map[string]*entity.Transaction, len(s.txns))
	for k, v := range s.txns {
		c := *v
		txns[k] = &c
	}
	return orders, txns
}

type fakeOrderRepo struct{ s *fakeStore }

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) Create(o *entity.Order, _ []*entity.OrderLine) error {
	r.s.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}

func (r *fakeOrderRepo) GetLines(string) ([]*entity.OrderLine, error) { return nil, nil }

func (r *fakeOrderRepo) List(string, string, int, int) ([]*entity.Order, error) { return nil, nil }

func (r *fakeOrderRepo) ListByPartner(string) ([]*entity.Order, error) { return nil, nil }

func (r *fakeOrderRepo) Update(o *entity.Order, _ []*entity.OrderLine) error {
	r.s.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string, _ time.Time) error {
	r.s.orders[id].Status = status
	return nil
}

func (r *fakeOrderRepo) UpdatePayment(id string, paid decimal.Decimal, status string, _ time.Time) error {
	if r.s.failPayment {
		return errors.New("fallo simulado en update de pago")
	}
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.PaidAmount = paid
	o.PaymentStatus = status
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.s.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountByPartner(string) (int64, error) { return 0, nil }

type fakeTxnRepo struct{ s *fakeStore }

var _ repository.TransactionRepository = (*fakeTxnRepo)(nil)

func (r *fakeTxnRepo) Create(t *entity.Transaction) error {
	r.s.txns[t.ID] = t
	return nil
}

func (r *fakeTxnRepo) GetByID(id string) (*entity.Transaction, error) {
	t, ok := r.s.txns[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (r *fakeTxnRepo) List(string, string, string, int, int) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTxnRepo) ListByOrder(orderID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.s.txns {
		if t.OrderID == orderID {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) ListByPartner(string) ([]*entity.Transaction, error) { return nil, nil }

func (r *fakeTxnRepo) Update(t *entity.Transaction) error {
	r.s.txns[t.ID] = t
	return nil
}

func (r *fakeTxnRepo) Delete(id string) error {
	delete(r.s.txns, id)
	return nil
}

func (r *fakeTxnRepo) CountByPartner(string) (int64, error) { return 0, nil }

func (r *fakeTxnRepo) CountByOrder(orderID string) (int64, error) {
	var n int64
	for _, t := range r.s.txns {
		if t.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

type fakePartnerRepo struct{ partners map[string]*entity.Partner }

var _ repository.PartnerRepository = (*fakePartnerRepo)(nil)

func (r *fakePartnerRepo) Create(p *entity.Partner) error { r.partners[p.ID] = p; return nil }
func (r *fakePartnerRepo) GetByID(id string) (*entity.Partner, error) {
	return r.partners[id], nil
}
func (r *fakePartnerRepo) List(string, int, int) ([]*entity.Partner, error) { return nil, nil }
func (r *fakePartnerRepo) Update(p *entity.Partner) error                   { r.partners[p.ID] = p; return nil }
func (r *fakePartnerRepo) Delete(id string) error                           { delete(r.partners, id); return nil }

type fakeMaterialRepo struct{ materials map[string]*entity.Material }

var _ repository.MaterialRepository = (*fakeMaterialRepo)(nil)

func (r *fakeMaterialRepo) Create(m *entity.Material) error { r.materials[m.ID] = m; return nil }
func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.materials[id], nil
}
func (r *fakeMaterialRepo) List(int, int) ([]*entity.Material, error) { return nil, nil }
func (r *fakeMaterialRepo) Update(m *entity.Material) error           { r.materials[m.ID] = m; return nil }
func (r *fakeMaterialRepo) Delete(id string) error                    { delete(r.materials, id); return nil }

// fakeRunner imita la transacción de DB: clona el estado antes del callback
// y lo restaura completo si el callback falla.
type fakeRunner struct{ s *fakeStore }

func (r *fakeRunner) RunLedger(_ context.Context, fn func(
	txnRepo repository.TransactionRepository,
	orderRepo repository.OrderRepository,
) error) error {
	orders, txns := r.s.snapshot()
	if err := fn(&fakeTxnRepo{s: r.s}, &fakeOrderRepo{s: r.s}); err != nil {
		r.s.orders = orders
		r.s.txns = txns
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase(s *fakeStore) *appledger.TransactionUseCase {
	return appledger.NewTransactionUseCase(
		&fakeRunner{s: s},
		&fakeTxnRepo{s: s},
		&fakeOrderRepo{s: s},
		&fakePartnerRepo{partners: map[string]*entity.Partner{}},
		&fakeMaterialRepo{materials: map[string]*entity.Material{}},
	)
}

func seedOrder(s *fakeStore, id, total string) {
	s.orders[id] = &entity.Order{
		ID:            id,
		PartnerID:     "p1",
		Status:        entity.OrderStatusPending,
		TotalPrice:    dec(total),
		PaidAmount:    decimal.Zero,
		PaymentStatus: entity.PaymentStatusUnpaid,
		OrderDate:     time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record
// ──────────────────────────────────────────────────────────────────────────────

// Registrar un ingreso de 400 contra un pedido de 1000 debe dejar el pedido
// con pagado 400 y estado PARTIAL.
func TestRecord_IngresoParcialConciliaPedido(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	out, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type:    entity.TransactionTypeIncome,
		Amount:  dec("400"),
		OrderID: "o1",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	order := s.orders["o1"]
	assert.True(t, dec("400").Equal(order.PaidAmount), "el pedido debe quedar con 400 pagado")
	assert.Equal(t, entity.PaymentStatusPartial, order.PaymentStatus)
}

// Abonos sucesivos hasta cubrir el total deben dejar el pedido en PAID.
func TestRecord_AbonosHastaPagar(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	for _, amount := range []string{"400", "600"} {
		_, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
			Type:    entity.TransactionTypeIncome,
			Amount:  dec(amount),
			OrderID: "o1",
		})
		require.NoError(t, err)
	}

	order := s.orders["o1"]
	assert.True(t, dec("1000").Equal(order.PaidAmount))
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
}

// Un sobrepago se acepta: el pedido queda PAID y el excedente entra al
// balance del tercero como crédito.
func TestRecord_SobrepagoSeMantienePaid(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	_, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type:    entity.TransactionTypeIncome,
		Amount:  dec("1200"),
		OrderID: "o1",
	})
	require.NoError(t, err)

	order := s.orders["o1"]
	assert.True(t, dec("1200").Equal(order.PaidAmount))
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
}

// Un egreso contra el pedido resta del monto pagado.
func TestRecord_EgresoResta(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	_, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type: entity.TransactionTypeIncome, Amount: dec("500"), OrderID: "o1",
	})
	require.NoError(t, err)
	_, err = uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type: entity.TransactionTypeExpense, Amount: dec("200"), OrderID: "o1",
	})
	require.NoError(t, err)

	order := s.orders["o1"]
	assert.True(t, dec("300").Equal(order.PaidAmount), "500 − 200 debe dejar 300 pagado")
	assert.Equal(t, entity.PaymentStatusPartial, order.PaymentStatus)
}

// Referencia a un pedido inexistente se rechaza con ErrNotFound; nada queda
// persistido.
func TestRecord_PedidoInexistenteSeRechaza(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type:    entity.TransactionTypeIncome,
		Amount:  dec("100"),
		OrderID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.txns, "no debe quedar ninguna transacción registrada")
}

// Monto cero o negativo se rechaza con ErrInvalidInput.
func TestRecord_MontoInvalido(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	for _, amount := range []string{"0", "-10"} {
		_, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
			Type:    entity.TransactionTypeIncome,
			Amount:  dec(amount),
			OrderID: "o1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %s debe rechazarse", amount)
	}
}

// Si el update parcial del pedido falla, el insert de la transacción se
// reversa: o confirman ambos o ninguno.
func TestRecord_AtomicidadInsertYUpdate(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	s.failPayment = true
	uc := newUseCase(s)

	_, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type:    entity.TransactionTypeIncome,
		Amount:  dec("400"),
		OrderID: "o1",
	})
	require.Error(t, err)
	assert.Empty(t, s.txns, "la transacción insertada debe reversarse con el fallo")
	assert.True(t, s.orders["o1"].PaidAmount.IsZero(), "el pedido no debe cambiar")
}

// Sin pedido asociado, el registro no toca ningún pedido.
func TestRecord_SinPedidoNoConcilia(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	_, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type:   entity.TransactionTypeExpense,
		Amount: dec("250"),
	})
	require.NoError(t, err)
	assert.True(t, s.orders["o1"].PaidAmount.IsZero())
	assert.Len(t, s.txns, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update / Delete (recomputación desde historial)
// ──────────────────────────────────────────────────────────────────────────────

// Editar el monto de una transacción recalcula el pagado del pedido desde el
// historial completo.
func TestUpdate_RecalculaDesdeHistorial(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	out, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type: entity.TransactionTypeIncome, Amount: dec("400"), OrderID: "o1",
	})
	require.NoError(t, err)

	newAmount := dec("900")
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateTransactionRequest{
		Amount: &newAmount,
	})
	require.NoError(t, err)

	order := s.orders["o1"]
	assert.True(t, dec("900").Equal(order.PaidAmount), "el pagado debe recalcularse a 900")
	assert.Equal(t, entity.PaymentStatusPartial, order.PaymentStatus)
}

// Mover la transacción de un pedido a otro recalcula ambos.
func TestUpdate_CambioDePedidoRecalculaAmbos(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	seedOrder(s, "o2", "500")
	uc := newUseCase(s)

	out, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type: entity.TransactionTypeIncome, Amount: dec("500"), OrderID: "o1",
	})
	require.NoError(t, err)

	newOrder := "o2"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateTransactionRequest{
		OrderID: &newOrder,
	})
	require.NoError(t, err)

	assert.True(t, s.orders["o1"].PaidAmount.IsZero(), "el pedido original debe volver a 0")
	assert.Equal(t, entity.PaymentStatusUnpaid, s.orders["o1"].PaymentStatus)
	assert.True(t, dec("500").Equal(s.orders["o2"].PaidAmount), "el nuevo pedido debe recibir el abono")
	assert.Equal(t, entity.PaymentStatusPaid, s.orders["o2"].PaymentStatus)
}

// Eliminar una transacción reversa su efecto recomputando desde el
// historial restante.
func TestDelete_ReversaEfecto(t *testing.T) {
	s := newFakeStore()
	seedOrder(s, "o1", "1000")
	uc := newUseCase(s)

	first, err := uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type: entity.TransactionTypeIncome, Amount: dec("400"), OrderID: "o1",
	})
	require.NoError(t, err)
	_, err = uc.Record(context.Background(), dto.CreateTransactionRequest{
		Type: entity.TransactionTypeIncome, Amount: dec("300"), OrderID: "o1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), first.ID))

	order := s.orders["o1"]
	assert.True(t, dec("300").Equal(order.PaidAmount), "debe quedar solo el abono restante")
	assert.Equal(t, entity.PaymentStatusPartial, order.PaymentStatus)
}

func TestDelete_TransaccionInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
