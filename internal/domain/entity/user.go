package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Status de aprovação de conta. Toda conta nasce pendente e só um admin
// a transiciona; uma conta rejeitada pode ser reaprovada depois.
const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
	UserStatusRejected = "rejected"
)

// User representa uma conta da aplicação.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca em texto plano após persistir
	Role         string // admin, user
	Status       string // pending, approved, rejected
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
