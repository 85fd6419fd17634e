package orders_test

import (
	"context"
	"errors"

	"github.com/officinemattio/verniciatura-api/internal/application/orders"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
	"github.com/officinemattio/verniciatura-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória para os casos de uso de pedidos
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders    map[string]*entity.Order
	listOrder []string // ids na ordem de inserção invertida (mais recente primeiro)

	createErr error
	updateErr error
	statusIn  []string // ids do último UpdateStatusIn
	statusSet string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *order
	r.orders[order.ID] = &cp
	r.listOrder = append([]string{order.ID}, r.listOrder...)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Update(order *entity.Order) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) ListAll() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.listOrder))
	for _, id := range r.listOrder {
		cp := *r.orders[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatusIn(ids []string, status string) error {
	r.statusIn = append([]string(nil), ids...)
	r.statusSet = status
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			o.Status = status
		}
	}
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	if _, ok := r.orders[id]; !ok {
		return errors.New("pedido inexistente")
	}
	delete(r.orders, id)
	return nil
}

type fakeHistoryRepo struct {
	entries   []*entity.EditHistoryEntry
	insertErr error
	deleted   []string // order_ids passados a DeleteByOrder
}

func (r *fakeHistoryRepo) Insert(entries []*entity.EditHistoryEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *fakeHistoryRepo) ListByOrder(orderID string) ([]*entity.EditHistoryEntry, error) {
	var out []*entity.EditHistoryEntry
	for _, e := range r.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) DeleteByOrder(orderID string) error {
	r.deleted = append(r.deleted, orderID)
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.OrderID != orderID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

type fakeNotifier struct {
	sent []orders.Notification
	err  error
}

func (n *fakeNotifier) SendOrderNotification(_ context.Context, notif orders.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notif)
	return nil
}

// fakeTxRunner executa o callback diretamente sobre os fakes, sem
// transação real; registra a ordem das operações via os próprios fakes.
type fakeTxRunner struct {
	orderRepo   *fakeOrderRepo
	historyRepo *fakeHistoryRepo
	runErr      error
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.OrderRepository, repository.EditHistoryRepository) error) error {
	if t.runErr != nil {
		return t.runErr
	}
	return fn(t.orderRepo, t.historyRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func testActor() orders.Actor {
	return orders.Actor{
		ID:    "00000000-0000-0000-0000-0000000000aa",
		Email: "marco@officinemattio.com",
		Role:  entity.RoleUser,
	}
}

func adminActor() orders.Actor {
	return orders.Actor{
		ID:    "00000000-0000-0000-0000-0000000000ad",
		Email: "matteo@officinemattio.com",
		Role:  entity.RoleAdmin,
	}
}

// validForm devolve um formulário completo e válido.
func validForm() entity.OrderForm {
	return entity.OrderForm{
		Ordem:           "OM-1042",
		MatriculaQuadro: "MT-88421",
		Modelo:          "Lemma",
		Tamanho:         "54",
		AgenteComercial: "Rossi",
		Catalogo2026:    true,

		CorBase:            "Nero Opaco",
		AcabamentoBase:     entity.AcabamentoOpaco,
		AcabamentoBaseRock: false,

		CorDetalhes:            "Rosso Corsa",
		AcabamentoDetalhes:     entity.AcabamentoBrilhoso,
		AcabamentoDetalhesRock: true,

		CorLogo:            "Bianco",
		AcabamentoLogo:     entity.AcabamentoOpaco,
		AcabamentoLogoRock: false,

		CorLetras:            "Argento",
		AcabamentoLetras:     entity.AcabamentoBrilhoso,
		AcabamentoLetrasRock: false,

		PedidosExtras: "Logo personalizado no garfo",
		Urgente:       false,
	}
}
