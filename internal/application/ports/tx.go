package ports

import (
	"context"

	"github.com/palco-app/palco-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados àquela tx. Garante a atomicidade exigida pela
// aprovação de candidatura (status + bloco de agenda + evento) e pelos
// decrementos de crédito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		eventRepo repository.EventRepository,
		candidacyRepo repository.CandidacyRepository,
		agendaRepo repository.AgendaRepository,
	) error) error
}

// ReviewTxRunner executa a gravação de avaliação e a atualização da média
// do avaliado na mesma transação, com a linha do usuário bloqueada.
type ReviewTxRunner interface {
	RunReview(ctx context.Context, fn func(
		reviewRepo repository.ReviewRepository,
		userRepo repository.UserRepository,
	) error) error
}
