package postgres

import (
	"context"
	"fmt"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo implementação somente leitura dos dados de referência
// (modelos, agentes, catálogo de cores).
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository constrói o adaptador de dados de referência.
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

// ListModels devolve os modelos ordenados por nome.
func (r *ReferenceRepo) ListModels() ([]*entity.Model, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()
	var list []*entity.Model
	for rows.Next() {
		var m entity.Model
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListAgents devolve os agentes comerciais ordenados por nome.
func (r *ReferenceRepo) ListAgents() ([]*entity.Agent, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM agents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agent
	for rows.Next() {
		var a entity.Agent
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListColors devolve o catálogo de cores por display_order e, em empate,
// por nome.
func (r *ReferenceRepo) ListColors() ([]*entity.Color, error) {
	query := `SELECT id, name, hex_code, display_order FROM colors ORDER BY display_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.HexCode, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
