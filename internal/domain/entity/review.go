package entity

import "time"

// Review é a avaliação entre artista e contratante após evento concluído.
// Invariante: uma avaliação por par (avaliador, evento).
type Review struct {
	ID         string
	ReviewerID string
	ReviewedID string
	EventID    string
	Rating     int // 1..5
	Comment    string
	CreatedAt  time.Time
}
