package orders

import (
	"context"

	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

// DeleteOrderUseCase exclusão definitiva de um pedido com o seu
// histórico. Não existe soft delete.
type DeleteOrderUseCase struct {
	txRunner TxRunner
}

// NewDeleteOrderUseCase constrói o caso de uso de exclusão.
func NewDeleteOrderUseCase(txRunner TxRunner) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{txRunner: txRunner}
}

// Delete remove histórico e pedido em uma única transação: ou os dois
// saem, ou nenhum. Não há janela em que o pedido exista sem histórico
// nem histórico órfão. Restrito a administradores (a checagem por e-mail
// fixo do painel original era um bug; aqui vale o role da conta).
func (uc *DeleteOrderUseCase) Delete(ctx context.Context, actor Actor, orderID string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		historyRepo repository.EditHistoryRepository,
	) error {
		if err := historyRepo.DeleteByOrder(orderID); err != nil {
			return err
		}
		return orderRepo.Delete(orderID)
	})
}
