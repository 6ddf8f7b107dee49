package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionEvent(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{EventStatusAberto, EventStatusEncerrado, true},
		{EventStatusAberto, EventStatusCancelado, true},
		{EventStatusAberto, EventStatusConcluido, true},
		{EventStatusEncerrado, EventStatusAberto, false},
		{EventStatusCancelado, EventStatusConcluido, false},
		{EventStatusConcluido, EventStatusCancelado, false},
		{EventStatusEncerrado, EventStatusConcluido, true},
		{EventStatusEncerrado, EventStatusCancelado, false},
		{EventStatusAberto, EventStatusAberto, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransitionEvent(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionCandidacy(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{CandidacyStatusPendente, CandidacyStatusAprovada, true},
		{CandidacyStatusPendente, CandidacyStatusRejeitada, true},
		{CandidacyStatusPendente, CandidacyStatusCancelada, true},
		{CandidacyStatusAprovada, CandidacyStatusRejeitada, false},
		{CandidacyStatusRejeitada, CandidacyStatusPendente, false},
		{CandidacyStatusCancelada, CandidacyStatusAprovada, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransitionCandidacy(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCandidacy_IsActive(t *testing.T) {
	assert.True(t, (&Candidacy{Status: CandidacyStatusPendente}).IsActive())
	assert.True(t, (&Candidacy{Status: CandidacyStatusAprovada}).IsActive())
	assert.False(t, (&Candidacy{Status: CandidacyStatusRejeitada}).IsActive())
	assert.False(t, (&Candidacy{Status: CandidacyStatusCancelada}).IsActive())
}

func TestAvailabilityBlock_IsSystemGenerated(t *testing.T) {
	assert.True(t, (&AvailabilityBlock{Status: BlockStatusBusy, EventID: "e1"}).IsSystemGenerated())
	assert.False(t, (&AvailabilityBlock{Status: BlockStatusBusy}).IsSystemGenerated(), "bloco manual BUSY é removível")
	assert.False(t, (&AvailabilityBlock{Status: BlockStatusFree, EventID: "e1"}).IsSystemGenerated())
}
