package repository

import "github.com/palco-app/palco-api/internal/domain/entity"

// ChatRepository define o porto de persistência para Chat.
type ChatRepository interface {
	Create(chat *entity.Chat) error
	GetByID(id string) (*entity.Chat, error)
	// GetByParticipants busca a conversa entre dois usuários, em qualquer ordem.
	GetByParticipants(userA, userB string) (*entity.Chat, error)
	ListByParticipant(userID string) ([]*entity.Chat, error)
}

// MessageRepository define o porto de persistência para Message.
type MessageRepository interface {
	Create(message *entity.Message) error
	ListByChat(chatID string, limit, offset int) ([]*entity.Message, error)
}
