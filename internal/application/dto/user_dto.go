package dto

import "time"

// RegisterRequest entrada de cadastro: e-mail corporativo + senha.
// Toda conta nasce com role=user e status=pending.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse saída com token JWT e dados da conta.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse saída de uma conta (sem senha).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUserStatusRequest transição de aprovação aplicada por um admin.
type UpdateUserStatusRequest struct {
	Status string `json:"status"` // "approved" | "rejected"
}

// UserListResponse listagem de contas com contadores por status; o badge
// do painel usa PendingCount.
type UserListResponse struct {
	Users         []UserResponse `json:"users"`
	PendingCount  int            `json:"pending_count"`
	ApprovedCount int            `json:"approved_count"`
	RejectedCount int            `json:"rejected_count"`
}
