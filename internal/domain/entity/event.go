package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento.
const (
	EventTypeShow     = "SHOW"     // uma vaga: encerra ao aprovar a primeira candidatura
	EventTypeFestival = "FESTIVAL" // múltiplas candidaturas aprovadas
)

// Status de evento.
const (
	EventStatusAberto    = "ABERTO"
	EventStatusEncerrado = "ENCERRADO"
	EventStatusCancelado = "CANCELADO"
	EventStatusConcluido = "CONCLUIDO"
)

// eventTransitions é a tabela central de transições de status.
// CANCELADO e CONCLUIDO são terminais; ENCERRADO não aceita mais
// candidaturas mas ainda pode ser concluído após a data do evento.
var eventTransitions = map[string][]string{
	EventStatusAberto:    {EventStatusEncerrado, EventStatusCancelado, EventStatusConcluido},
	EventStatusEncerrado: {EventStatusConcluido},
}

// Event é um evento criado por um contratante.
type Event struct {
	ID        string
	CreatorID string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Location  string
	EventType string // SHOW, FESTIVAL
	MinCache  decimal.Decimal
	MaxCache  decimal.Decimal
	Styles    []string
	Status    string // ABERTO, ENCERRADO, CANCELADO, CONCLUIDO
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionEvent valida uma transição de status de evento contra a tabela.
func CanTransitionEvent(from, to string) bool {
	for _, allowed := range eventTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsOpen indica se o evento ainda aceita candidaturas.
func (e *Event) IsOpen() bool {
	return e.Status == EventStatusAberto
}
