package postgres

import (
	"context"
	"fmt"

	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementação do porto MessageRepository sobre PostgreSQL
// (usável com pool ou tx).
type MessageRepo struct {
	q Querier
}

// NewMessageRepository constrói o adaptador de persistência para mensagens.
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// Create persiste uma mensagem.
func (r *MessageRepo) Create(message *entity.Message) error {
	query := `
		INSERT INTO messages (id, chat_id, sender_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		message.ID, message.ChatID, message.SenderID, message.Text, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListByChat lista as mensagens de uma conversa, mais antigas primeiro.
func (r *MessageRepo) ListByChat(chatID string, limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, chat_id, sender_id, text, created_at
		FROM messages WHERE chat_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, chatID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
