package approval

import (
	"github.com/officinemattio/verniciatura-api/internal/application/dto"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

// ApprovalUseCase gestão de contas pelo admin: listar cadastros com os
// contadores por situação e aprovar/rejeitar contas.
type ApprovalUseCase struct {
	userRepo repository.UserRepository
}

// NewApprovalUseCase constrói o caso de uso de aprovação.
func NewApprovalUseCase(userRepo repository.UserRepository) *ApprovalUseCase {
	return &ApprovalUseCase{userRepo: userRepo}
}

// ListUsers devolve todas as contas (mais recentes primeiro) com os
// totais de pendentes, aprovadas e rejeitadas para os cartões do painel.
func (uc *ApprovalUseCase) ListUsers() (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, dto.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
		switch u.Status {
		case entity.UserStatusPending:
			out.PendingCount++
		case entity.UserStatusApproved:
			out.ApprovedCount++
		case entity.UserStatusRejected:
			out.RejectedCount++
		}
	}
	return out, nil
}

// UpdateStatus aprova ou rejeita uma conta. Só "approved" e "rejected"
// são destinos válidos (não existe volta para "pending"). Rejeitar um
// admin é recusado: sempre deve sobrar ao menos um admin com acesso.
// Uma conta rejeitada pode ser aprovada depois.
func (uc *ApprovalUseCase) UpdateStatus(userID, status string) (*dto.UserResponse, error) {
	if status != entity.UserStatusApproved && status != entity.UserStatusRejected {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if status == entity.UserStatusRejected && user.Role == entity.RoleAdmin {
		return nil, domain.ErrAdminNotRevocable
	}
	if err := uc.userRepo.UpdateStatus(userID, status); err != nil {
		return nil, err
	}
	user.Status = status
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}
