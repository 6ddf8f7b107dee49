package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateProfileRequest atualização do perfil do artista.
type UpdateProfileRequest struct {
	Bio          string          `json:"bio"`
	Genres       []string        `json:"genres"`
	MinimumCache decimal.Decimal `json:"minimum_cache"`
}

// ProfileResponse visão do perfil do artista.
type ProfileResponse struct {
	UserID       string          `json:"user_id"`
	Bio          string          `json:"bio,omitempty"`
	Genres       []string        `json:"genres"`
	MinimumCache decimal.Decimal `json:"minimum_cache"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ChangePlanRequest troca de plano por um admin.
type ChangePlanRequest struct {
	PlanID string `json:"plan_id"`
}

// NotificationResponse visão de uma notificação in-app.
type NotificationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title,omitempty"`
	Body        string    `json:"body,omitempty"`
	SenderID    string    `json:"sender_id"`
	Seen        bool      `json:"seen"`
	ChatID      string    `json:"chat_id,omitempty"`
	EventID     string    `json:"event_id,omitempty"`
	CandidacyID string    `json:"candidacy_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
