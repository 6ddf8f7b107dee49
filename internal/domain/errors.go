package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists  = errors.New("o email já está cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidWindow       = errors.New("janela de tempo inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
	ErrConflict            = errors.New("conflito com o estado atual")
	ErrInvalidTransition   = errors.New("transição de status não permitida")
	ErrInsufficientCredits = errors.New("créditos insuficientes")
	ErrQuotaExceeded       = errors.New("limite do plano excedido")
	ErrOverlap             = errors.New("conflito de agenda: janelas sobrepostas")
	ErrAlreadyApplied      = errors.New("já existe candidatura ativa para este evento")
	ErrUnavailable         = errors.New("artista indisponível no período do evento")
	ErrProtectedBlock      = errors.New("bloco gerado pelo sistema não pode ser removido")
)
