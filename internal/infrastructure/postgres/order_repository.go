package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// Colunas de orders na ordem usada por todos os SELECTs deste arquivo.
const orderColumns = `
	id, ordem, matricula_quadro, modelo, tamanho, agente_comercial, catalogo_2026,
	cor_base, acabamento_base, acabamento_base_rock,
	cor_detalhes, acabamento_detalhes, acabamento_detalhes_rock,
	cor_logo, acabamento_logo, acabamento_logo_rock,
	cor_letras, acabamento_letras, acabamento_letras_rock,
	pedidos_extras, urgente, created_by, created_at, updated_at, status`

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador de persistência de pedidos.
// Aceita pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste um novo pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (
			id, ordem, matricula_quadro, modelo, tamanho, agente_comercial, catalogo_2026,
			cor_base, acabamento_base, acabamento_base_rock,
			cor_detalhes, acabamento_detalhes, acabamento_detalhes_rock,
			cor_logo, acabamento_logo, acabamento_logo_rock,
			cor_letras, acabamento_letras, acabamento_letras_rock,
			pedidos_extras, urgente, created_by, created_at, updated_at, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10,
			$11, $12, $13,
			$14, $15, $16,
			$17, $18, $19,
			$20, $21, $22, $23, $24, $25
		)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Ordem, o.MatriculaQuadro, o.Modelo, o.Tamanho, o.AgenteComercial, o.Catalogo2026,
		o.CorBase, o.AcabamentoBase, o.AcabamentoBaseRock,
		o.CorDetalhes, o.AcabamentoDetalhes, o.AcabamentoDetalhesRock,
		o.CorLogo, o.AcabamentoLogo, o.AcabamentoLogoRock,
		o.CorLetras, o.AcabamentoLetras, o.AcabamentoLetrasRock,
		o.PedidosExtras, o.Urgente, o.CreatedBy, o.CreatedAt, o.UpdatedAt, o.Status,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// Update persiste os campos do formulário, o status e updated_at.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders SET
			ordem = $2, matricula_quadro = $3, modelo = $4, tamanho = $5,
			agente_comercial = $6, catalogo_2026 = $7,
			cor_base = $8, acabamento_base = $9, acabamento_base_rock = $10,
			cor_detalhes = $11, acabamento_detalhes = $12, acabamento_detalhes_rock = $13,
			cor_logo = $14, acabamento_logo = $15, acabamento_logo_rock = $16,
			cor_letras = $17, acabamento_letras = $18, acabamento_letras_rock = $19,
			pedidos_extras = $20, urgente = $21, updated_at = $22, status = $23
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		o.ID, o.Ordem, o.MatriculaQuadro, o.Modelo, o.Tamanho,
		o.AgenteComercial, o.Catalogo2026,
		o.CorBase, o.AcabamentoBase, o.AcabamentoBaseRock,
		o.CorDetalhes, o.AcabamentoDetalhes, o.AcabamentoDetalhesRock,
		o.CorLogo, o.AcabamentoLogo, o.AcabamentoLogoRock,
		o.CorLetras, o.AcabamentoLetras, o.AcabamentoLetrasRock,
		o.PedidosExtras, o.Urgente, o.UpdatedAt, o.Status,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devolve todos os pedidos, mais recentes primeiro.
func (r *OrderRepo) ListAll() ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatusIn atualiza o status de vários pedidos de uma vez (id IN (...)).
func (r *OrderRepo) UpdateStatusIn(ids []string, status string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE orders SET status = $2, updated_at = now() WHERE id = ANY($1)`
	if _, err := r.q.Exec(context.Background(), query, ids, status); err != nil {
		return fmt.Errorf("update orders status: %w", err)
	}
	return nil
}

// Delete remove um pedido por ID.
func (r *OrderRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanOrder lê uma linha de orders na ordem de orderColumns.
func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.Ordem, &o.MatriculaQuadro, &o.Modelo, &o.Tamanho, &o.AgenteComercial, &o.Catalogo2026,
		&o.CorBase, &o.AcabamentoBase, &o.AcabamentoBaseRock,
		&o.CorDetalhes, &o.AcabamentoDetalhes, &o.AcabamentoDetalhesRock,
		&o.CorLogo, &o.AcabamentoLogo, &o.AcabamentoLogoRock,
		&o.CorLetras, &o.AcabamentoLetras, &o.AcabamentoLetrasRock,
		&o.PedidosExtras, &o.Urgente, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt, &o.Status,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
