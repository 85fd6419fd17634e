package repository

import "github.com/officinemattio/verniciatura-api/internal/domain/entity"

// ReferenceRepository dá acesso somente leitura aos dados de referência
// que populam os seletores do formulário.
type ReferenceRepository interface {
	// ListModels devolve os modelos ordenados por nome.
	ListModels() ([]*entity.Model, error)
	// ListAgents devolve os agentes comerciais ordenados por nome.
	ListAgents() ([]*entity.Agent, error)
	// ListColors devolve o catálogo de cores ordenado por display_order
	// e, em empate, por nome.
	ListColors() ([]*entity.Color, error)
}
