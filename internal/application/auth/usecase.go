package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/officinemattio/verniciatura-api/internal/application/dto"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
	"github.com/officinemattio/verniciatura-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro, login e sessão.
// O cadastro é aberto ao domínio corporativo, mas a conta só acessa o
// painel depois que um admin a aprova.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	jwtCfg        JWTConfig
	allowedDomain string // sufixo de e-mail permitido (ex.: "@officinemattio.com"); vazio = sem restrição
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, allowedDomain string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, allowedDomain: allowedDomain}
}

// RegisterUser cria uma conta: valida o domínio do e-mail, hasheia a
// senha com bcrypt e persiste com role=user e status=pending. Devolve
// ErrEmailAlreadyExists se o e-mail já estiver cadastrado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !uc.domainAllowed(email) {
		return nil, domain.ErrEmailDomainNotAllowed
	}
	existing, _ := uc.userRepo.GetByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Status:       entity.UserStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica e-mail/senha e o portão de aprovação, gera JWT e retorna
// token + conta. Conta pendente e conta rejeitada recebem erros distintos
// para que a tela de login explique a situação.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !uc.domainAllowed(email) {
		return nil, domain.ErrEmailDomainNotAllowed
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	switch user.Status {
	case entity.UserStatusApproved:
		// segue
	case entity.UserStatusPending:
		return nil, domain.ErrAccountPending
	default:
		return nil, domain.ErrAccountRejected
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CurrentUser devolve a conta do token (checagem de sessão do painel).
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) domainAllowed(email string) bool {
	if uc.allowedDomain == "" {
		return true
	}
	return strings.HasSuffix(email, uc.allowedDomain)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
