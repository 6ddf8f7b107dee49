package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEventRequest rascunho de evento enviado pelo contratante.
type CreateEventRequest struct {
	Title     string          `json:"title"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Location  string          `json:"location"`
	EventType string          `json:"event_type"` // SHOW | FESTIVAL
	MinCache  decimal.Decimal `json:"min_cache"`
	MaxCache  decimal.Decimal `json:"max_cache"`
	Styles    []string        `json:"styles"`
}

// EventResponse visão de um evento.
type EventResponse struct {
	ID        string          `json:"id"`
	CreatorID string          `json:"creator_id"`
	Title     string          `json:"title"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Location  string          `json:"location"`
	EventType string          `json:"event_type"`
	MinCache  decimal.Decimal `json:"min_cache"`
	MaxCache  decimal.Decimal `json:"max_cache"`
	Styles    []string        `json:"styles"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventListResponse lista paginada de eventos.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
