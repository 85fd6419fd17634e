package postgres

import (
	"context"
	"fmt"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

var _ repository.EditHistoryRepository = (*EditHistoryRepo)(nil)

// EditHistoryRepo implementação do porto EditHistoryRepository sobre
// PostgreSQL. A tabela é somente inserção; não existe UPDATE aqui.
type EditHistoryRepo struct {
	q Querier
}

// NewEditHistoryRepository constrói o adaptador do histórico de edições.
// Aceita pool ou tx (Querier).
func NewEditHistoryRepository(q Querier) *EditHistoryRepo {
	return &EditHistoryRepo{q: q}
}

// Insert grava um lote de entradas de um mesmo salvamento.
func (r *EditHistoryRepo) Insert(entries []*entity.EditHistoryEntry) error {
	query := `
		INSERT INTO edit_history (id, order_id, field_name, old_value, new_value, edited_by, edited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, e := range entries {
		_, err := r.q.Exec(context.Background(), query,
			e.ID, e.OrderID, e.FieldName, e.OldValue, e.NewValue, e.EditedBy, e.EditedAt,
		)
		if err != nil {
			return fmt.Errorf("insert edit_history %s: %w", e.FieldName, err)
		}
	}
	return nil
}

// ListByOrder devolve as entradas de um pedido, mais recentes primeiro,
// com o e-mail do editor resolvido via join com users.
func (r *EditHistoryRepo) ListByOrder(orderID string) ([]*entity.EditHistoryEntry, error) {
	query := `
		SELECT h.id, h.order_id, h.field_name, h.old_value, h.new_value,
		       h.edited_by, h.edited_at, COALESCE(u.email, '')
		FROM edit_history h
		LEFT JOIN users u ON u.id = h.edited_by
		WHERE h.order_id = $1
		ORDER BY h.edited_at DESC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list edit_history: %w", err)
	}
	defer rows.Close()
	var list []*entity.EditHistoryEntry
	for rows.Next() {
		var e entity.EditHistoryEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.FieldName, &e.OldValue, &e.NewValue,
			&e.EditedBy, &e.EditedAt, &e.EditorEmail); err != nil {
			return nil, fmt.Errorf("scan edit_history: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// DeleteByOrder remove todo o histórico de um pedido. Deve ser chamado na
// mesma transação que o delete do pedido (ver TxRunner), substituindo a
// antiga cascata em duas etapas não atômicas.
func (r *EditHistoryRepo) DeleteByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM edit_history WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete edit_history: %w", err)
	}
	return nil
}
