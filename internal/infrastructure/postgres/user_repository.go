package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL
// (usável com pool ou tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, name, role, plan_id, credits, bucket_use_mb,
		messages_sent_today, messages_reset_at, rating, review_count, created_at, updated_at`

// Create persiste um novo usuário.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, plan_id, credits, bucket_use_mb,
			messages_sent_today, messages_reset_at, rating, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.PlanID,
		user.Credits, user.BucketUseMB, user.MessagesSentToday, user.MessagesResetAt,
		user.Rating, user.ReviewCount, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtém um usuário por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(query, email)
}

// GetForUpdate obtém um usuário bloqueando a linha (SELECT FOR UPDATE).
// Só tem efeito quando o repo está atado a uma transação.
func (r *UserRepo) GetForUpdate(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.PlanID,
		&u.Credits, &u.BucketUseMB, &u.MessagesSentToday, &u.MessagesResetAt,
		&u.Rating, &u.ReviewCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update atualiza os campos editáveis do usuário. Os contadores de quota
// ficam fora: são mutados apenas pelos updates condicionais abaixo.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuários com paginação.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.PlanID,
			&u.Credits, &u.BucketUseMB, &u.MessagesSentToday, &u.MessagesResetAt,
			&u.Rating, &u.ReviewCount, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ConsumeCredit decrementa um crédito em um único update condicional.
// O sentinela -1 (ilimitado) passa sem decrementar. Zero linhas afetadas
// significa saldo esgotado.
func (r *UserRepo) ConsumeCredit(id string) error {
	query := `
		UPDATE users
		SET credits = CASE WHEN credits = -1 THEN credits ELSE credits - 1 END,
			updated_at = now()
		WHERE id = $1 AND (credits > 0 OR credits = -1)`
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("consume credit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientCredits
	}
	return nil
}

// SetPlan troca o plano e redefine o saldo de créditos.
func (r *UserRepo) SetPlan(id, planID string, credits int) error {
	query := `UPDATE users SET plan_id = $2, credits = $3, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, planID, credits)
	if err != nil {
		return fmt.Errorf("set plan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// IncrementDailyMessages soma 1 ao contador diário em um único update.
// O reset é preguiçoso: se o último incremento foi em outro dia, o
// contador recomeça em 1. limit < 0 é ilimitado.
func (r *UserRepo) IncrementDailyMessages(id string, limit int) error {
	query := `
		UPDATE users
		SET messages_sent_today = CASE
				WHEN messages_reset_at::date < CURRENT_DATE THEN 1
				ELSE messages_sent_today + 1
			END,
			messages_reset_at = now(),
			updated_at = now()
		WHERE id = $1
			AND ($2 < 0
				OR messages_reset_at::date < CURRENT_DATE
				OR messages_sent_today < $2)`
	cmd, err := r.q.Exec(context.Background(), query, id, limit)
	if err != nil {
		return fmt.Errorf("increment daily messages: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrQuotaExceeded
	}
	return nil
}

// AddBucketUse soma deltaMB ao uso de armazenamento apenas se o total
// couber na quota (limit < 0 é ilimitado). O uso nunca fica negativo.
func (r *UserRepo) AddBucketUse(id string, deltaMB, limitMB float64) error {
	query := `
		UPDATE users
		SET bucket_use_mb = GREATEST(bucket_use_mb + $2, 0), updated_at = now()
		WHERE id = $1 AND ($3 < 0 OR bucket_use_mb + $2 <= $3)`
	cmd, err := r.q.Exec(context.Background(), query, id, deltaMB, limitMB)
	if err != nil {
		return fmt.Errorf("add bucket use: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrQuotaExceeded
	}
	return nil
}

// UpdateRating grava a média incremental e o contador de avaliações.
func (r *UserRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	query := `UPDATE users SET rating = $2, review_count = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, rating, reviewCount)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}
