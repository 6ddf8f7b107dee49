package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

func day(d int, h int) time.Time {
	return time.Date(2025, time.March, d, h, 0, 0, 0, time.UTC)
}

func block(start, end time.Time, status string) *entity.AvailabilityBlock {
	return &entity.AvailabilityBlock{ID: "b1", ArtistID: "a1", StartDate: start, EndDate: end, Status: status}
}

func TestWindow_Valid(t *testing.T) {
	assert.True(t, Window{Start: day(1, 9), End: day(1, 18)}.Valid())
	assert.False(t, Window{Start: day(1, 18), End: day(1, 9)}.Valid(), "fim antes do início")
	assert.False(t, Window{Start: day(1, 9), End: day(1, 9)}.Valid(), "duração zero")
}

func TestOverlaps(t *testing.T) {
	existing := block(day(10, 9), day(10, 18), entity.BlockStatusBusy)

	cases := []struct {
		name string
		w    Window
		want bool
	}{
		{"janela totalmente antes", Window{day(9, 9), day(9, 18)}, false},
		{"janela totalmente depois", Window{day(11, 9), day(11, 18)}, false},
		{"início dentro do bloco", Window{day(10, 12), day(10, 20)}, true},
		{"fim dentro do bloco", Window{day(10, 7), day(10, 10)}, true},
		{"janela contém o bloco", Window{day(9, 9), day(11, 9)}, true},
		{"janela contida no bloco", Window{day(10, 10), day(10, 12)}, true},
		{"encosta no fim do bloco", Window{day(10, 18), day(10, 20)}, true},
		{"encosta no início do bloco", Window{day(10, 7), day(10, 9)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.w, existing))
		})
	}
}

func TestBusyConflict_IgnoraBlocosFree(t *testing.T) {
	blocks := []*entity.AvailabilityBlock{
		block(day(10, 9), day(10, 18), entity.BlockStatusFree),
	}
	w := Window{day(10, 10), day(10, 12)}

	assert.False(t, BusyConflict(w, blocks), "bloco FREE não bloqueia candidatura")

	blocks = append(blocks, block(day(10, 11), day(10, 14), entity.BlockStatusBusy))
	assert.True(t, BusyConflict(w, blocks))
}

func TestConflictsAny(t *testing.T) {
	b1 := block(day(1, 9), day(1, 18), entity.BlockStatusFree)
	b2 := block(day(5, 9), day(5, 18), entity.BlockStatusBusy)

	got := ConflictsAny(Window{day(5, 10), day(5, 11)}, []*entity.AvailabilityBlock{b1, b2})
	assert.Same(t, b2, got)

	assert.Nil(t, ConflictsAny(Window{day(3, 9), day(3, 18)}, []*entity.AvailabilityBlock{b1, b2}))
}
