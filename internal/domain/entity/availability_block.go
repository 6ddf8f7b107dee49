package entity

import "time"

// Status de bloco de agenda.
const (
	BlockStatusFree = "FREE"
	BlockStatusBusy = "BUSY"
)

// AvailabilityBlock é uma janela de tempo na agenda de um artista.
// Blocos BUSY com EventID preenchido são gerados pela aprovação de
// candidatura e não podem ser removidos pelo artista.
type AvailabilityBlock struct {
	ID        string
	ArtistID  string
	StartDate time.Time
	EndDate   time.Time
	Status    string // FREE, BUSY
	EventID   string // vazio = bloco criado manualmente
	Notes     string
	CreatedAt time.Time
}

// IsSystemGenerated indica se o bloco foi criado pela aprovação de uma candidatura.
func (b *AvailabilityBlock) IsSystemGenerated() bool {
	return b.Status == BlockStatusBusy && b.EventID != ""
}
