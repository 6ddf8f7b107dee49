package entity

import "time"

// Status de candidatura.
const (
	CandidacyStatusPendente  = "PENDENTE"
	CandidacyStatusAprovada  = "APROVADA"
	CandidacyStatusRejeitada = "REJEITADA"
	CandidacyStatusCancelada = "CANCELADA"
)

// candidacyTransitions: PENDENTE é o único estado não terminal.
var candidacyTransitions = map[string][]string{
	CandidacyStatusPendente: {CandidacyStatusAprovada, CandidacyStatusRejeitada, CandidacyStatusCancelada},
}

// Candidacy liga um artista a um evento.
// Invariante: no máximo uma candidatura não cancelada por par (artista, evento).
type Candidacy struct {
	ID        string
	ArtistID  string
	EventID   string
	Status    string // PENDENTE, APROVADA, REJEITADA, CANCELADA
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionCandidacy valida uma transição de status de candidatura.
func CanTransitionCandidacy(from, to string) bool {
	for _, allowed := range candidacyTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsActive indica se a candidatura conta para o invariante de unicidade
// (pendente ou aprovada).
func (c *Candidacy) IsActive() bool {
	return c.Status == CandidacyStatusPendente || c.Status == CandidacyStatusAprovada
}
