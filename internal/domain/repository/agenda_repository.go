package repository

import (
	"time"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

// AgendaRepository define o porto de persistência para os blocos de agenda.
type AgendaRepository interface {
	Create(block *entity.AvailabilityBlock) error
	GetByID(id string) (*entity.AvailabilityBlock, error)
	ListByArtist(artistID string) ([]*entity.AvailabilityBlock, error)
	// HasOverlap verifica sobreposição com qualquer bloco do artista
	// (teste fechado: start <= b.end && end >= b.start).
	HasOverlap(artistID string, start, end time.Time) (bool, error)
	// HasBusyOverlap verifica sobreposição apenas com blocos BUSY.
	HasBusyOverlap(artistID string, start, end time.Time) (bool, error)
	// CountManual conta os blocos criados manualmente (sem event_id),
	// que são os que contam para a quota do plano gratuito.
	CountManual(artistID string) (int, error)
	Delete(id string) error
}
