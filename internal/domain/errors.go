package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound              = errors.New("recurso não encontrado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists    = errors.New("o e-mail já está cadastrado")
	ErrEmailDomainNotAllowed = errors.New("domínio de e-mail não permitido")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("não autorizado")
	ErrForbidden             = errors.New("acesso negado")
	ErrConflict              = errors.New("conflito com o estado atual")

	// Bloqueios do fluxo de aprovação de contas: a conta existe e a senha
	// confere, mas o status não permite acesso ao painel.
	ErrAccountPending  = errors.New("conta pendente de aprovação")
	ErrAccountRejected = errors.New("conta rejeitada")

	// ErrAdminNotRevocable protege a conta admin de ser revogada pelo
	// próprio fluxo de aprovação.
	ErrAdminNotRevocable = errors.New("conta de administrador não pode ser revogada")
)
