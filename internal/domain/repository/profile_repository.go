package repository

import (
	"github.com/shopspring/decimal"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

// ProfileRepository define o porto de persistência para ArtistProfile.
type ProfileRepository interface {
	Upsert(profile *entity.ArtistProfile) error
	GetByUserID(userID string) (*entity.ArtistProfile, error)
	// ListMatching devolve perfis com pelo menos um gênero em styles e
	// cache mínimo coberto por minCache. Alimenta o auto-offer.
	ListMatching(styles []string, minCache decimal.Decimal) ([]*entity.ArtistProfile, error)
}
