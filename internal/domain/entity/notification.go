package entity

import "time"

// Tipos de notificação.
const (
	NotificationTypeChat      = "chat"
	NotificationTypeEvent     = "event"
	NotificationTypeCandidacy = "candidacy"
)

// Notification é o registro in-app de um aviso; a entrega push fica a
// cargo do gateway externo (publicação AMQP).
type Notification struct {
	ID          string
	Type        string // chat, event, candidacy
	Title       string
	Body        string
	SenderID    string
	ReceiverID  string
	Seen        bool
	ChatID      string
	EventID     string
	CandidacyID string
	CreatedAt   time.Time
}
