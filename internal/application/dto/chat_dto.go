package dto

import "time"

// OpenChatRequest abre (ou recupera) a conversa com outro usuário.
type OpenChatRequest struct {
	OtherUserID string `json:"other_user_id"`
}

// ChatResponse visão de uma conversa.
type ChatResponse struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

// SendMessageRequest envio de mensagem.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse visão de uma mensagem.
type MessageResponse struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
