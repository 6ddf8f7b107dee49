package dto

import "time"

// AddBlockRequest criação manual de bloco de agenda.
type AddBlockRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"` // FREE | BUSY
	Notes     string    `json:"notes"`
}

// BlockResponse visão de um bloco de agenda.
type BlockResponse struct {
	ID        string    `json:"id"`
	ArtistID  string    `json:"artist_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	EventID   string    `json:"event_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AvailabilityResponse resultado da consulta de disponibilidade.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}
