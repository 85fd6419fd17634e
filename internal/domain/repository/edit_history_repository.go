package repository

import "github.com/officinemattio/verniciatura-api/internal/domain/entity"

// EditHistoryRepository define o porto de persistência do histórico de
// edições. Registros são imutáveis: só inserção e leitura.
type EditHistoryRepository interface {
	// Insert grava um lote de entradas de um mesmo salvamento.
	Insert(entries []*entity.EditHistoryEntry) error
	// ListByOrder devolve as entradas de um pedido, mais recentes
	// primeiro, com o e-mail do editor resolvido via join.
	ListByOrder(orderID string) ([]*entity.EditHistoryEntry, error)
	// DeleteByOrder remove o histórico de um pedido (cascata do delete).
	DeleteByOrder(orderID string) error
}
