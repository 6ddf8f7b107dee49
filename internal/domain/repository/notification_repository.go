package repository

import "github.com/palco-app/palco-api/internal/domain/entity"

// NotificationRepository define o porto de persistência para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, error)
	// MarkSeen marca como vista; exige que a notificação pertença ao receiver.
	MarkSeen(id, receiverID string) error
}
