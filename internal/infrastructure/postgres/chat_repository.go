package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.ChatRepository = (*ChatRepo)(nil)

// ChatRepo implementação do porto ChatRepository sobre PostgreSQL
// (usável com pool ou tx). Os participantes são normalizados em duas
// colunas com constraint única no par.
type ChatRepo struct {
	q Querier
}

// NewChatRepository constrói o adaptador de persistência para conversas.
func NewChatRepository(q Querier) *ChatRepo {
	return &ChatRepo{q: q}
}

// Create persiste uma conversa. O par é gravado em ordem lexicográfica
// para a constraint única valer independente da direção.
func (r *ChatRepo) Create(chat *entity.Chat) error {
	a, b := chat.Participants[0], chat.Participants[1]
	if b < a {
		a, b = b, a
	}
	query := `
		INSERT INTO chats (id, participant_a, participant_b, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, chat.ID, a, b, chat.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat: %w", err)
	}
	return nil
}

// GetByID obtém uma conversa por ID.
func (r *ChatRepo) GetByID(id string) (*entity.Chat, error) {
	query := `SELECT id, participant_a, participant_b, created_at FROM chats WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByParticipants busca a conversa entre dois usuários, em qualquer ordem.
func (r *ChatRepo) GetByParticipants(userA, userB string) (*entity.Chat, error) {
	if userB < userA {
		userA, userB = userB, userA
	}
	query := `
		SELECT id, participant_a, participant_b, created_at
		FROM chats WHERE participant_a = $1 AND participant_b = $2`
	return r.scanOne(query, userA, userB)
}

func (r *ChatRepo) scanOne(query string, args ...any) (*entity.Chat, error) {
	var c entity.Chat
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Participants[0], &c.Participants[1], &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}
	return &c, nil
}

// ListByParticipant lista as conversas de um usuário.
func (r *ChatRepo) ListByParticipant(userID string) ([]*entity.Chat, error) {
	query := `
		SELECT id, participant_a, participant_b, created_at
		FROM chats WHERE participant_a = $1 OR participant_b = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chat
	for rows.Next() {
		var c entity.Chat
		if err := rows.Scan(&c.ID, &c.Participants[0], &c.Participants[1], &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
