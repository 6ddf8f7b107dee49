package repository

import "github.com/palco-app/palco-api/internal/domain/entity"

// MediaRepository define o porto de persistência para MediaItem.
type MediaRepository interface {
	Create(item *entity.MediaItem) error
	GetByID(id string) (*entity.MediaItem, error)
	ListByOwner(ownerID string) ([]*entity.MediaItem, error)
	Delete(id string) error
}
