package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/officinemattio/verniciatura-api/internal/application/auth"
	"github.com/officinemattio/verniciatura-api/internal/application/dto"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	pkgjwt "github.com/officinemattio/verniciatura-api/pkg/jwt"
)

const testDomain = "@officinemattio.com"

// fakeUserRepo repositório de contas em memória.
type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateStatus(id, status string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "verniciatura-api-test",
	}, testDomain)
}

// seedUser grava uma conta com a senha dada e o status indicado.
func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role, status string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "id-" + email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadastro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ContaNascePendenteComRoleUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "Giulia@OfficineMattio.com",
		Password: "senha-secreta",
	})
	require.NoError(t, err)

	assert.Equal(t, "giulia@officinemattio.com", out.Email, "e-mail é normalizado")
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, entity.UserStatusPending, out.Status, "conta nova aguarda aprovação")

	stored, _ := repo.GetByEmail("giulia@officinemattio.com")
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha-secreta")),
		"a senha é persistida com bcrypt")
}

func TestRegister_DominioForaDaEmpresa_Rejeitado(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "alguem@gmail.com",
		Password: "senha-secreta",
	})
	assert.ErrorIs(t, err, domain.ErrEmailDomainNotAllowed)
}

func TestRegister_EmailDuplicado_Rejeitado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "giulia@officinemattio.com", "x", entity.RoleUser, entity.UserStatusApproved)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "giulia@officinemattio.com",
		Password: "senha-secreta",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login: portão de aprovação
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ContaAprovada_RecebeTokenValido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "marco@officinemattio.com", "senha-secreta", entity.RoleUser, entity.UserStatusApproved)

	out, err := uc.Login(dto.LoginRequest{Email: "marco@officinemattio.com", Password: "senha-secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, email, role, err := pkgjwt.Parse("segredo-de-teste", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "id-marco@officinemattio.com", userID)
	assert.Equal(t, "marco@officinemattio.com", email)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_ContaPendente_BloqueadaComErroProprio(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "marco@officinemattio.com", "senha-secreta", entity.RoleUser, entity.UserStatusPending)

	_, err := uc.Login(dto.LoginRequest{Email: "marco@officinemattio.com", Password: "senha-secreta"})
	assert.ErrorIs(t, err, domain.ErrAccountPending,
		"pendente bloqueia com erro distinto para a tela explicar a situação")
}

func TestLogin_ContaRejeitada_BloqueadaComErroProprio(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "marco@officinemattio.com", "senha-secreta", entity.RoleUser, entity.UserStatusRejected)

	_, err := uc.Login(dto.LoginRequest{Email: "marco@officinemattio.com", Password: "senha-secreta"})
	assert.ErrorIs(t, err, domain.ErrAccountRejected)
}

func TestLogin_SenhaErrada_Unauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "marco@officinemattio.com", "senha-secreta", entity.RoleUser, entity.UserStatusApproved)

	_, err := uc.Login(dto.LoginRequest{Email: "marco@officinemattio.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_AprovadaDepoisDePendente_PassaAFuncionar(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	u := seedUser(t, repo, "marco@officinemattio.com", "senha-secreta", entity.RoleUser, entity.UserStatusPending)

	_, err := uc.Login(dto.LoginRequest{Email: u.Email, Password: "senha-secreta"})
	require.ErrorIs(t, err, domain.ErrAccountPending)

	require.NoError(t, repo.UpdateStatus(u.ID, entity.UserStatusApproved))

	out, err := uc.Login(dto.LoginRequest{Email: u.Email, Password: "senha-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestCurrentUser_DevolveContaDoToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	u := seedUser(t, repo, "marco@officinemattio.com", "senha-secreta", entity.RoleAdmin, entity.UserStatusApproved)

	out, err := uc.CurrentUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, out.Email)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}
