package repository

import "github.com/officinemattio/verniciatura-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// UpdateStatus transiciona o status de aprovação de uma conta.
	UpdateStatus(id, status string) error
	// List devolve todas as contas, mais recentes primeiro. O volume de
	// usuários é pequeno (equipe interna); não há paginação.
	List() ([]*entity.User, error)
}
