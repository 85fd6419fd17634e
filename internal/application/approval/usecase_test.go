package approval_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officinemattio/verniciatura-api/internal/application/approval"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
)

// fakeUserRepo repositório de contas em memória com ordem estável.
type fakeUserRepo struct {
	users map[string]*entity.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	r.order = append(r.order, user.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateStatus(id, status string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.users[id]
		out = append(out, &cp)
	}
	return out, nil
}

func seed(t *testing.T, repo *fakeUserRepo, id, role, status string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.User{
		ID:        id,
		Email:     id + "@officinemattio.com",
		Role:      role,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))
}

func TestListUsers_ContadoresPorSituacao(t *testing.T) {
	repo := newFakeUserRepo()
	seed(t, repo, "matteo", entity.RoleAdmin, entity.UserStatusApproved)
	seed(t, repo, "giulia", entity.RoleUser, entity.UserStatusPending)
	seed(t, repo, "marco", entity.RoleUser, entity.UserStatusPending)
	seed(t, repo, "luca", entity.RoleUser, entity.UserStatusRejected)

	uc := approval.NewApprovalUseCase(repo)
	out, err := uc.ListUsers()
	require.NoError(t, err)

	assert.Len(t, out.Users, 4)
	assert.Equal(t, 2, out.PendingCount)
	assert.Equal(t, 1, out.ApprovedCount)
	assert.Equal(t, 1, out.RejectedCount)

	emails := make([]string, 0, len(out.Users))
	for _, u := range out.Users {
		emails = append(emails, u.Email)
	}
	sort.Strings(emails)
	assert.Equal(t, []string{
		"giulia@officinemattio.com",
		"luca@officinemattio.com",
		"marco@officinemattio.com",
		"matteo@officinemattio.com",
	}, emails)
}

func TestUpdateStatus_AprovaContaPendente(t *testing.T) {
	repo := newFakeUserRepo()
	seed(t, repo, "giulia", entity.RoleUser, entity.UserStatusPending)

	uc := approval.NewApprovalUseCase(repo)
	out, err := uc.UpdateStatus("giulia", entity.UserStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusApproved, out.Status)

	stored, _ := repo.GetByID("giulia")
	assert.Equal(t, entity.UserStatusApproved, stored.Status)
}

func TestUpdateStatus_RejeitaEReaprova(t *testing.T) {
	repo := newFakeUserRepo()
	seed(t, repo, "luca", entity.RoleUser, entity.UserStatusPending)
	uc := approval.NewApprovalUseCase(repo)

	_, err := uc.UpdateStatus("luca", entity.UserStatusRejected)
	require.NoError(t, err)

	// Conta rejeitada pode ser aprovada depois
	out, err := uc.UpdateStatus("luca", entity.UserStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusApproved, out.Status)
}

func TestUpdateStatus_StatusInvalido_Rejeitado(t *testing.T) {
	repo := newFakeUserRepo()
	seed(t, repo, "giulia", entity.RoleUser, entity.UserStatusPending)
	uc := approval.NewApprovalUseCase(repo)

	// "pending" não é destino válido: não existe volta para pendente
	_, err := uc.UpdateStatus("giulia", entity.UserStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus("giulia", "banida")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_AdminNaoPodeSerRejeitado(t *testing.T) {
	repo := newFakeUserRepo()
	seed(t, repo, "matteo", entity.RoleAdmin, entity.UserStatusApproved)
	uc := approval.NewApprovalUseCase(repo)

	_, err := uc.UpdateStatus("matteo", entity.UserStatusRejected)
	assert.ErrorIs(t, err, domain.ErrAdminNotRevocable)

	stored, _ := repo.GetByID("matteo")
	assert.Equal(t, entity.UserStatusApproved, stored.Status, "o status do admin não muda")
}

func TestUpdateStatus_ContaInexistente(t *testing.T) {
	uc := approval.NewApprovalUseCase(newFakeUserRepo())
	_, err := uc.UpdateStatus("fantasma", entity.UserStatusApproved)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
