package dto

import "time"

// ApplyRequest candidatura de artista a um evento.
type ApplyRequest struct {
	EventID string `json:"event_id"`
}

// CandidacyResponse visão de uma candidatura.
type CandidacyResponse struct {
	ID        string    `json:"id"`
	ArtistID  string    `json:"artist_id"`
	EventID   string    `json:"event_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
