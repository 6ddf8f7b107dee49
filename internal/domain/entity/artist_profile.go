package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArtistProfile guarda as preferências públicas do artista.
// Genres alimenta a busca e o disparo de ofertas automáticas; no plano
// gratuito o tamanho da lista é limitado (ver domain/plan).
type ArtistProfile struct {
	UserID       string
	Bio          string
	Genres       []string
	MinimumCache decimal.Decimal
	UpdatedAt    time.Time
}
