package repository

import (
	"time"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

// EventRepository define o porto de persistência para Event.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	// GetForUpdate bloqueia a linha do evento; usado na aprovação de candidatura.
	GetForUpdate(id string) (*entity.Event, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
	ListOpen(limit, offset int) ([]*entity.Event, error)
	ListByCreator(creatorID string, limit, offset int) ([]*entity.Event, error)
}
