package repository

import "github.com/officinemattio/verniciatura-api/internal/domain/entity"

// OrderRepository define o porto de persistência para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// Update persiste os campos do formulário e o status. O chamador é
	// responsável por forçar status=pending em toda edição.
	Update(order *entity.Order) error
	// ListAll devolve o conjunto completo de pedidos, mais recentes
	// primeiro. A filtragem é feita em memória pela camada de aplicação,
	// como no painel.
	ListAll() ([]*entity.Order, error)
	// UpdateStatusIn atualiza o status de vários pedidos de uma vez
	// (id IN (...)); usado pela geração de documentos para marcar os
	// pedidos exportados como concluídos.
	UpdateStatusIn(ids []string, status string) error
	Delete(id string) error
}
