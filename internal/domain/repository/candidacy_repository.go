package repository

import (
	"time"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

// CandidacyRepository define o porto de persistência para Candidacy.
type CandidacyRepository interface {
	Create(candidacy *entity.Candidacy) error
	GetByID(id string) (*entity.Candidacy, error)
	// GetForUpdate bloqueia a linha da candidatura durante a aprovação.
	GetForUpdate(id string) (*entity.Candidacy, error)
	// HasActive verifica se existe candidatura PENDENTE ou APROVADA para o par.
	HasActive(artistID, eventID string) (bool, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
	ListByEvent(eventID string) ([]*entity.Candidacy, error)
	ListByArtist(artistID string) ([]*entity.Candidacy, error)
}
