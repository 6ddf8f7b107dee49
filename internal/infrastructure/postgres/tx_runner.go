package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)
var _ ports.ReviewTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz
// Commit ou Rollback. É o caminho da aprovação de candidatura e dos
// decrementos de crédito.
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	candidacyRepo repository.CandidacyRepository,
	agendaRepo repository.AgendaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	eventRepo := NewEventRepository(tx)
	candidacyRepo := NewCandidacyRepository(tx)
	agendaRepo := NewAgendaRepository(tx)

	if err := fn(userRepo, eventRepo, candidacyRepo, agendaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReview inicia uma transação com os repos de avaliação e usuário
// (insert da avaliação + média incremental do avaliado).
func (r *TxRunner) RunReview(ctx context.Context, fn func(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reviewRepo := NewReviewRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(reviewRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
