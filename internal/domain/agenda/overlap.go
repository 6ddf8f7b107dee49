// Package agenda contém a aritmética pura de janelas de tempo da agenda
// do artista, sem dependência de persistência.
package agenda

import (
	"time"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

// Window é uma janela de tempo [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// Valid indica se a janela tem duração positiva (End depois de Start).
func (w Window) Valid() bool {
	return w.End.After(w.Start)
}

// Overlaps aplica o teste de sobreposição usado em toda a agenda:
// newStart <= existing.End && newEnd >= existing.Start.
func Overlaps(w Window, b *entity.AvailabilityBlock) bool {
	return !w.Start.After(b.EndDate) && !w.End.Before(b.StartDate)
}

// ConflictsAny devolve o primeiro bloco que sobrepõe a janela, ou nil.
func ConflictsAny(w Window, blocks []*entity.AvailabilityBlock) *entity.AvailabilityBlock {
	for _, b := range blocks {
		if Overlaps(w, b) {
			return b
		}
	}
	return nil
}

// BusyConflict devolve true se algum bloco BUSY sobrepõe a janela.
// É o predicado usado pelo gate de candidatura.
func BusyConflict(w Window, blocks []*entity.AvailabilityBlock) bool {
	for _, b := range blocks {
		if b.Status == entity.BlockStatusBusy && Overlaps(w, b) {
			return true
		}
	}
	return false
}
