// Package plan concentra as quotas por plano (free/paid) consultadas
// pelos demais componentes. Os valores -1 significam ilimitado.
package plan

import "github.com/palco-app/palco-api/internal/domain/entity"

// Limits são as quotas de um plano.
type Limits struct {
	StorageMB     float64 // MB de mídia no blob store
	Credits       int     // créditos iniciais (-1 = ilimitado)
	DailyMessages int     // mensagens de chat por dia
	ProfileGenres int     // gêneros no perfil / auto-offer
	EventStyles   int     // estilos por evento
	ManualBlocks  int     // blocos de agenda criados manualmente
}

var (
	freeLimits = Limits{
		StorageMB:     100,
		Credits:       10,
		DailyMessages: 20,
		ProfileGenres: 3,
		EventStyles:   1,
		ManualBlocks:  10,
	}
	paidLimits = Limits{
		StorageMB:     2048,
		Credits:       entity.CreditsUnlimited,
		DailyMessages: -1,
		ProfileGenres: -1,
		EventStyles:   -1,
		ManualBlocks:  -1,
	}
)

// For devolve as quotas do plano. Plano desconhecido cai no gratuito.
func For(planID string) Limits {
	if planID == entity.PlanPaid {
		return paidLimits
	}
	return freeLimits
}

// Unlimited indica se um limite inteiro é ilimitado.
func Unlimited(limit int) bool {
	return limit < 0
}

// AllowsEventType indica se o plano permite criar eventos do tipo dado.
// No plano gratuito apenas SHOW.
func AllowsEventType(planID, eventType string) bool {
	if planID == entity.PlanPaid {
		return true
	}
	return eventType == entity.EventTypeShow
}

// AllowsStyleCount indica se o plano permite a quantidade de estilos no evento.
func AllowsStyleCount(planID string, count int) bool {
	l := For(planID)
	return Unlimited(l.EventStyles) || count <= l.EventStyles
}

// AllowsGenreCount indica se o plano permite a quantidade de gêneros no perfil.
func AllowsGenreCount(planID string, count int) bool {
	l := For(planID)
	return Unlimited(l.ProfileGenres) || count <= l.ProfileGenres
}
