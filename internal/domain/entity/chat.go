package entity

import "time"

// Chat é a conversa entre dois usuários (artista e contratante).
type Chat struct {
	ID           string
	Participants [2]string
	CreatedAt    time.Time
}

// HasParticipant indica se o usuário participa da conversa.
func (c *Chat) HasParticipant(userID string) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// OtherParticipant devolve o outro participante da conversa.
func (c *Chat) OtherParticipant(userID string) string {
	if c.Participants[0] == userID {
		return c.Participants[1]
	}
	return c.Participants[0]
}

// Message é uma mensagem dentro de um chat.
type Message struct {
	ID        string
	ChatID    string
	SenderID  string
	Text      string
	CreatedAt time.Time
}
