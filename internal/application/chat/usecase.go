package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/plan"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// UseCase conversa entre artista e contratante. O plano gratuito tem limite
// diário de mensagens; o contador é incrementado com reset preguiçoso na
// virada do dia, em um único update condicional.
type UseCase struct {
	chatRepo    repository.ChatRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifRepo   repository.NotificationRepository
	notifier    ports.Notifier
}

// NewUseCase constrói o caso de uso de chat.
func NewUseCase(
	chatRepo repository.ChatRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	notifier ports.Notifier,
) *UseCase {
	return &UseCase{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
		notifier:    notifier,
	}
}

// Open devolve a conversa entre os dois usuários, criando-a se não existir.
func (uc *UseCase) Open(userID, otherUserID string) (*dto.ChatResponse, error) {
	if otherUserID == "" || otherUserID == userID {
		return nil, domain.ErrInvalidInput
	}
	other, err := uc.userRepo.GetByID(otherUserID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, err := uc.chatRepo.GetByParticipants(userID, otherUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toChatResponse(existing), nil
	}
	c := &entity.Chat{
		ID:           uuid.New().String(),
		Participants: [2]string{userID, otherUserID},
		CreatedAt:    time.Now(),
	}
	if err := uc.chatRepo.Create(c); err != nil {
		return nil, err
	}
	return toChatResponse(c), nil
}

// Send envia uma mensagem na conversa. O limite diário do plano gratuito é
// verificado e consumido atomicamente antes de persistir a mensagem.
func (uc *UseCase) Send(ctx context.Context, senderID, chatID string, in dto.SendMessageRequest) (*dto.MessageResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.chatRepo.GetByID(chatID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.HasParticipant(senderID) {
		return nil, domain.ErrForbidden
	}
	sender, err := uc.userRepo.GetByID(senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, domain.ErrUserNotFound
	}
	limits := plan.For(sender.PlanID)
	if err := uc.userRepo.IncrementDailyMessages(senderID, limits.DailyMessages); err != nil {
		return nil, err
	}

	msg := &entity.Message{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := uc.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	// Aviso in-app + gateway para o outro participante; melhor esforço.
	n := &entity.Notification{
		ID:         uuid.New().String(),
		Type:       entity.NotificationTypeChat,
		SenderID:   senderID,
		ReceiverID: c.OtherParticipant(senderID),
		ChatID:     chatID,
		CreatedAt:  time.Now(),
	}
	_ = uc.notifRepo.Create(n)
	_ = uc.notifier.Publish(ctx, n)

	return toMessageResponse(msg), nil
}

// ListMessages lista as mensagens de uma conversa do participante.
func (uc *UseCase) ListMessages(userID, chatID string, limit, offset int) ([]dto.MessageResponse, error) {
	c, err := uc.chatRepo.GetByID(chatID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.HasParticipant(userID) {
		return nil, domain.ErrForbidden
	}
	msgs, err := uc.messageRepo.ListByChat(chatID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *toMessageResponse(m))
	}
	return out, nil
}

// ListChats lista as conversas do usuário.
func (uc *UseCase) ListChats(userID string) ([]dto.ChatResponse, error) {
	chats, err := uc.chatRepo.ListByParticipant(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatResponse, 0, len(chats))
	for _, c := range chats {
		out = append(out, *toChatResponse(c))
	}
	return out, nil
}

func toChatResponse(c *entity.Chat) *dto.ChatResponse {
	if c == nil {
		return nil
	}
	return &dto.ChatResponse{
		ID:           c.ID,
		Participants: []string{c.Participants[0], c.Participants[1]},
		CreatedAt:    c.CreatedAt,
	}
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	if m == nil {
		return nil
	}
	return &dto.MessageResponse{
		ID:        m.ID,
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
