package postgres

import (
	"context"
	"fmt"

	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementação do porto NotificationRepository sobre
// PostgreSQL (usável com pool ou tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository constrói o adaptador de persistência para notificações.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste uma notificação in-app.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, type, title, body, sender_id, receiver_id, seen,
			chat_id, event_id, candidacy_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.Type, notification.Title, notification.Body,
		notification.SenderID, notification.ReceiverID, notification.Seen,
		notification.ChatID, notification.EventID, notification.CandidacyID,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByReceiver lista as notificações de um usuário, mais recentes primeiro.
func (r *NotificationRepo) ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, title, body, sender_id, receiver_id, seen,
			COALESCE(chat_id, ''), COALESCE(event_id, ''), COALESCE(candidacy_id, ''), created_at
		FROM notifications WHERE receiver_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, receiverID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.Type, &n.Title, &n.Body, &n.SenderID, &n.ReceiverID, &n.Seen,
			&n.ChatID, &n.EventID, &n.CandidacyID, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkSeen marca a notificação como vista; a cláusula de receiver impede
// marcar notificação alheia.
func (r *NotificationRepo) MarkSeen(id, receiverID string) error {
	query := `UPDATE notifications SET seen = true WHERE id = $1 AND receiver_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, id, receiverID)
	if err != nil {
		return fmt.Errorf("mark notification seen: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
