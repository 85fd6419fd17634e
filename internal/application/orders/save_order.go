package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/orderdiff"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
	"github.com/officinemattio/verniciatura-api/pkg/logger"
)

// SaveOrderUseCase persiste o snapshot do formulário e mantém o log de
// alterações campo a campo. A sequência é a do painel original: gravar
// pedido, depois histórico, depois notificação, em passos sequenciais,
// sem transação entre eles e sem rollback compensatório.
type SaveOrderUseCase struct {
	orderRepo   repository.OrderRepository
	historyRepo repository.EditHistoryRepository
	notifier    Notifier
	log         *logger.Logger
}

// NewSaveOrderUseCase constrói o caso de uso de salvamento.
func NewSaveOrderUseCase(
	orderRepo repository.OrderRepository,
	historyRepo repository.EditHistoryRepository,
	notifier Notifier,
	log *logger.Logger,
) *SaveOrderUseCase {
	return &SaveOrderUseCase{
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		notifier:    notifier,
		log:         log,
	}
}

// SaveOrder cria ou atualiza um pedido.
//
// Criação: insere com status=pending e created_by=ator, grava a entrada
// sintética "created" no histórico e notifica.
//
// Edição: lê o snapshot anterior, persiste os novos valores forçando o
// status de volta a pending (mesmo que estivesse completed: pedido
// editado sempre volta para revisão), grava uma entrada de histórico por
// campo alterado e notifica como modificação.
//
// Falha de persistência aborta os passos restantes e é propagada; falha
// de notificação é registrada em log e engolida.
func (uc *SaveOrderUseCase) SaveOrder(ctx context.Context, actor Actor, form entity.OrderForm, isEdit bool, orderID string) (*entity.Order, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	if isEdit {
		return uc.update(ctx, actor, form, orderID)
	}
	return uc.create(ctx, actor, form)
}

func (uc *SaveOrderUseCase) create(ctx context.Context, actor Actor, form entity.OrderForm) (*entity.Order, error) {
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		OrderForm: form,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
		Status:    entity.OrderStatusPending,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	created := orderdiff.CreationChange(actor.Email)
	entry := &entity.EditHistoryEntry{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		FieldName: created.FieldName,
		OldValue:  created.OldValue,
		NewValue:  created.NewValue,
		EditedBy:  actor.ID,
		EditedAt:  now,
	}
	if err := uc.historyRepo.Insert([]*entity.EditHistoryEntry{entry}); err != nil {
		return nil, fmt.Errorf("gravar histórico de criação: %w", err)
	}

	uc.notify(ctx, Notification{
		Order:     *order,
		UserEmail: actor.Email,
		Subject:   "Novo Pedido de Pintura - " + order.Ordem,
		Modified:  false,
	})
	return order, nil
}

func (uc *SaveOrderUseCase) update(ctx context.Context, actor Actor, form entity.OrderForm, orderID string) (*entity.Order, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	prior, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	updated := *prior
	updated.OrderForm = form
	updated.UpdatedAt = now
	// Toda edição volta o pedido para pending, mesmo que já estivesse
	// completed: é assim que pedidos concluídos voltam para revisão.
	updated.Status = entity.OrderStatusPending

	if err := uc.orderRepo.Update(&updated); err != nil {
		return nil, err
	}

	changes := orderdiff.Diff(prior.OrderForm, form)
	if len(changes) > 0 {
		entries := make([]*entity.EditHistoryEntry, 0, len(changes))
		for _, c := range changes {
			entries = append(entries, &entity.EditHistoryEntry{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				FieldName: c.FieldName,
				OldValue:  c.OldValue,
				NewValue:  c.NewValue,
				EditedBy:  actor.ID,
				EditedAt:  now,
			})
		}
		if err := uc.historyRepo.Insert(entries); err != nil {
			return nil, fmt.Errorf("gravar histórico de edição: %w", err)
		}
	}

	uc.notify(ctx, Notification{
		Order:     updated,
		UserEmail: actor.Email,
		Subject:   fmt.Sprintf("Ordem (#%s) foi modificada", prior.Ordem),
		Modified:  true,
	})
	return &updated, nil
}

// notify dispara o e-mail best-effort: falha vai para o log e nunca para
// o chamador.
func (uc *SaveOrderUseCase) notify(ctx context.Context, n Notification) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.SendOrderNotification(ctx, n); err != nil {
		uc.log.Warn().Err(err).
			Str("ordem", n.Order.Ordem).
			Bool("modificacao", n.Modified).
			Msg("falha ao enviar notificação de pedido")
	}
}

// validateForm reforça no servidor os campos obrigatórios do formulário
// (o painel original confiava só na validação nativa do navegador).
func validateForm(f entity.OrderForm) error {
	required := []struct {
		name, value string
	}{
		{"ordem", f.Ordem},
		{"matricula_quadro", f.MatriculaQuadro},
		{"modelo", f.Modelo},
		{"tamanho", f.Tamanho},
		{"agente_comercial", f.AgenteComercial},
		{"cor_base", f.CorBase},
		{"cor_detalhes", f.CorDetalhes},
		{"cor_logo", f.CorLogo},
		{"cor_letras", f.CorLetras},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: campo obrigatório %s", domain.ErrInvalidInput, r.name)
		}
	}
	for _, a := range []string{f.AcabamentoBase, f.AcabamentoDetalhes, f.AcabamentoLogo, f.AcabamentoLetras} {
		if a != entity.AcabamentoOpaco && a != entity.AcabamentoBrilhoso {
			return fmt.Errorf("%w: acabamento inválido %q", domain.ErrInvalidInput, a)
		}
	}
	return nil
}
