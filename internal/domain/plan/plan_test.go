package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

func TestFor_PlanoGratuito(t *testing.T) {
	l := For(entity.PlanFree)

	assert.Equal(t, float64(100), l.StorageMB)
	assert.Equal(t, 10, l.Credits)
	assert.Equal(t, 20, l.DailyMessages)
	assert.Equal(t, 3, l.ProfileGenres)
	assert.Equal(t, 1, l.EventStyles)
	assert.Equal(t, 10, l.ManualBlocks)
}

func TestFor_PlanoPago_Ilimitado(t *testing.T) {
	l := For(entity.PlanPaid)

	assert.Equal(t, float64(2048), l.StorageMB)
	assert.Equal(t, entity.CreditsUnlimited, l.Credits)
	assert.True(t, Unlimited(l.DailyMessages))
	assert.True(t, Unlimited(l.ProfileGenres))
	assert.True(t, Unlimited(l.EventStyles))
	assert.True(t, Unlimited(l.ManualBlocks))
}

func TestFor_PlanoDesconhecidoCaiNoGratuito(t *testing.T) {
	assert.Equal(t, For(entity.PlanFree), For("trial"))
}

func TestAllowsEventType(t *testing.T) {
	assert.True(t, AllowsEventType(entity.PlanFree, entity.EventTypeShow))
	assert.False(t, AllowsEventType(entity.PlanFree, entity.EventTypeFestival))
	assert.True(t, AllowsEventType(entity.PlanPaid, entity.EventTypeFestival))
}

func TestAllowsStyleCount(t *testing.T) {
	assert.True(t, AllowsStyleCount(entity.PlanFree, 1))
	assert.False(t, AllowsStyleCount(entity.PlanFree, 2))
	assert.True(t, AllowsStyleCount(entity.PlanPaid, 12))
}

func TestAllowsGenreCount(t *testing.T) {
	assert.True(t, AllowsGenreCount(entity.PlanFree, 3))
	assert.False(t, AllowsGenreCount(entity.PlanFree, 4))
	assert.True(t, AllowsGenreCount(entity.PlanPaid, 40))
}
