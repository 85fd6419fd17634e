package orders

import (
	"context"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

// Actor identifica quem executa a operação (extraído do token JWT).
type Actor struct {
	ID    string
	Email string
	Role  string
}

// Notification carrega os dados do e-mail transacional disparado após um
// salvamento. Modified distingue criação de edição no corpo do e-mail.
type Notification struct {
	Order     entity.Order
	UserEmail string
	Subject   string
	Modified  bool
}

// Notifier define o porto de saída para notificações por e-mail.
// O envio é best-effort: o chamador registra a falha em log e nunca a
// propaga; um e-mail perdido não invalida o salvamento.
type Notifier interface {
	SendOrderNotification(ctx context.Context, n Notification) error
}

// TxRunner executa um callback com repositórios atados a uma mesma
// transação. Usado pela exclusão para remover histórico e pedido
// atomicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		historyRepo repository.EditHistoryRepository,
	) error) error
}
