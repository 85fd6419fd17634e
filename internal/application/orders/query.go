package orders

import (
	"strings"

	"github.com/samber/lo"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

// Filter filtros da listagem. Vazio = sem restrição. Os dois filtros são
// compostos com AND, como no painel.
type Filter struct {
	// Status "pending" ou "completed"; "" ou "all" não restringe.
	Status string
	// Text busca por substring, sem distinção de caixa, sobre cinco
	// campos textuais: ordem, matrícula do quadro, modelo, agente
	// comercial e cor base.
	Text string
}

// QueryUseCase leituras de pedidos: listagem filtrada, pedido individual
// e histórico de edições. Nenhuma operação tem efeito colateral.
type QueryUseCase struct {
	orderRepo   repository.OrderRepository
	historyRepo repository.EditHistoryRepository
}

// NewQueryUseCase constrói o caso de uso de leitura.
func NewQueryUseCase(orderRepo repository.OrderRepository, historyRepo repository.EditHistoryRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo, historyRepo: historyRepo}
}

// List busca o conjunto completo e aplica os filtros em memória, na mesma
// ordem devolvida pelo repositório (mais recentes primeiro).
func (uc *QueryUseCase) List(f Filter) ([]*entity.Order, error) {
	all, err := uc.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(o *entity.Order, _ int) bool {
		return f.Matches(o)
	}), nil
}

// GetByID devolve um pedido ou domain.ErrNotFound.
func (uc *QueryUseCase) GetByID(id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// LoadHistory devolve o histórico de um pedido, mais recente primeiro,
// com o e-mail do editor resolvido.
func (uc *QueryUseCase) LoadHistory(orderID string) ([]*entity.EditHistoryEntry, error) {
	return uc.historyRepo.ListByOrder(orderID)
}

// Matches decide se um pedido passa pelos filtros (status AND texto).
func (f Filter) Matches(o *entity.Order) bool {
	if f.Status != "" && f.Status != "all" && o.Status != f.Status {
		return false
	}
	if f.Text == "" {
		return true
	}
	needle := strings.ToLower(f.Text)
	for _, field := range []string{o.Ordem, o.MatriculaQuadro, o.Modelo, o.AgenteComercial, o.CorBase} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
