package candidacy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palco-app/palco-api/internal/application/candidacy"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users       map[string]*entity.User
	events      map[string]*entity.Event
	candidacies map[string]*entity.Candidacy
	blocks      map[string]*entity.AvailabilityBlock
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*entity.User{},
		events:      map[string]*entity.Event{},
		candidacies: map[string]*entity.Candidacy{},
		blocks:      map[string]*entity.AvailabilityBlock{},
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.s.users[id], nil
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetForUpdate(id string) (*entity.User, error) { return r.s.users[id], nil }
func (r *memUserRepo) Update(u *entity.User) error                  { r.s.users[u.ID] = u; return nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *memUserRepo) ConsumeCredit(id string) error {
	u := r.s.users[id]
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.Credits == entity.CreditsUnlimited {
		return nil
	}
	if u.Credits <= 0 {
		return domain.ErrInsufficientCredits
	}
	u.Credits--
	return nil
}
func (r *memUserRepo) SetPlan(id, planID string, credits int) error {
	u := r.s.users[id]
	u.PlanID = planID
	u.Credits = credits
	return nil
}
func (r *memUserRepo) IncrementDailyMessages(id string, limit int) error {
	u := r.s.users[id]
	if limit >= 0 && u.MessagesSentToday >= limit {
		return domain.ErrQuotaExceeded
	}
	u.MessagesSentToday++
	return nil
}
func (r *memUserRepo) AddBucketUse(id string, deltaMB, limitMB float64) error {
	u := r.s.users[id]
	if limitMB >= 0 && u.BucketUseMB+deltaMB > limitMB {
		return domain.ErrQuotaExceeded
	}
	u.BucketUseMB += deltaMB
	return nil
}
func (r *memUserRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	u := r.s.users[id]
	u.Rating = rating
	u.ReviewCount = reviewCount
	return nil
}

type memEventRepo struct{ s *memStore }

func (r *memEventRepo) Create(e *entity.Event) error                { r.s.events[e.ID] = e; return nil }
func (r *memEventRepo) GetByID(id string) (*entity.Event, error)    { return r.s.events[id], nil }
func (r *memEventRepo) GetForUpdate(id string) (*entity.Event, error) { return r.s.events[id], nil }
func (r *memEventRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	e := r.s.events[id]
	e.Status = status
	e.UpdatedAt = updatedAt
	return nil
}
func (r *memEventRepo) ListOpen(limit, offset int) ([]*entity.Event, error) { return nil, nil }
func (r *memEventRepo) ListByCreator(creatorID string, limit, offset int) ([]*entity.Event, error) {
	return nil, nil
}

type memCandidacyRepo struct{ s *memStore }

func (r *memCandidacyRepo) Create(c *entity.Candidacy) error {
	for _, existing := range r.s.candidacies {
		if existing.ArtistID == c.ArtistID && existing.EventID == c.EventID && existing.IsActive() {
			return domain.ErrAlreadyApplied
		}
	}
	r.s.candidacies[c.ID] = c
	return nil
}
func (r *memCandidacyRepo) GetByID(id string) (*entity.Candidacy, error) {
	return r.s.candidacies[id], nil
}
func (r *memCandidacyRepo) GetForUpdate(id string) (*entity.Candidacy, error) {
	return r.s.candidacies[id], nil
}
func (r *memCandidacyRepo) HasActive(artistID, eventID string) (bool, error) {
	for _, c := range r.s.candidacies {
		if c.ArtistID == artistID && c.EventID == eventID && c.IsActive() {
			return true, nil
		}
	}
	return false, nil
}
func (r *memCandidacyRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	c := r.s.candidacies[id]
	c.Status = status
	c.UpdatedAt = updatedAt
	return nil
}
func (r *memCandidacyRepo) ListByEvent(eventID string) ([]*entity.Candidacy, error) {
	var out []*entity.Candidacy
	for _, c := range r.s.candidacies {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memCandidacyRepo) ListByArtist(artistID string) ([]*entity.Candidacy, error) {
	var out []*entity.Candidacy
	for _, c := range r.s.candidacies {
		if c.ArtistID == artistID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memAgendaRepo struct{ s *memStore }

func (r *memAgendaRepo) Create(b *entity.AvailabilityBlock) error {
	r.s.blocks[b.ID] = b
	return nil
}
func (r *memAgendaRepo) GetByID(id string) (*entity.AvailabilityBlock, error) {
	return r.s.blocks[id], nil
}
func (r *memAgendaRepo) ListByArtist(artistID string) ([]*entity.AvailabilityBlock, error) {
	var out []*entity.AvailabilityBlock
	for _, b := range r.s.blocks {
		if b.ArtistID == artistID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *memAgendaRepo) HasOverlap(artistID string, start, end time.Time) (bool, error) {
	for _, b := range r.s.blocks {
		if b.ArtistID == artistID && !start.After(b.EndDate) && !end.Before(b.StartDate) {
			return true, nil
		}
	}
	return false, nil
}
func (r *memAgendaRepo) HasBusyOverlap(artistID string, start, end time.Time) (bool, error) {
	for _, b := range r.s.blocks {
		if b.ArtistID == artistID && b.Status == entity.BlockStatusBusy &&
			!start.After(b.EndDate) && !end.Before(b.StartDate) {
			return true, nil
		}
	}
	return false, nil
}
func (r *memAgendaRepo) CountManual(artistID string) (int, error) {
	count := 0
	for _, b := range r.s.blocks {
		if b.ArtistID == artistID && b.EventID == "" {
			count++
		}
	}
	return count, nil
}
func (r *memAgendaRepo) Delete(id string) error {
	delete(r.s.blocks, id)
	return nil
}

type memNotifRepo struct{ created []*entity.Notification }

func (r *memNotifRepo) Create(n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}
func (r *memNotifRepo) ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, error) {
	return r.created, nil
}
func (r *memNotifRepo) MarkSeen(id, receiverID string) error { return nil }

type noopNotifier struct{}

func (noopNotifier) Publish(ctx context.Context, n *entity.Notification) error { return nil }

// memTxRunner executa o callback diretamente sobre os repositórios em
// memória. As garantias de isolamento ficam fora do escopo destes testes.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	candidacyRepo repository.CandidacyRepository,
	agendaRepo repository.AgendaRepository,
) error) error {
	return fn(&memUserRepo{r.s}, &memEventRepo{r.s}, &memCandidacyRepo{r.s}, &memAgendaRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	s  *memStore
	uc *candidacy.UseCase
}

func newFixture() *fixture {
	s := newMemStore()
	uc := candidacy.NewUseCase(
		&memTxRunner{s},
		&memCandidacyRepo{s},
		&memEventRepo{s},
		&memUserRepo{s},
		&memNotifRepo{},
		noopNotifier{},
	)
	return &fixture{s: s, uc: uc}
}

func (f *fixture) addArtist(id string, credits int) *entity.User {
	u := &entity.User{ID: id, Role: entity.RoleArtist, PlanID: entity.PlanFree, Credits: credits}
	f.s.users[id] = u
	return u
}

func (f *fixture) addContractor(id string) *entity.User {
	u := &entity.User{ID: id, Role: entity.RoleContractor, PlanID: entity.PlanFree, Credits: 10}
	f.s.users[id] = u
	return u
}

func (f *fixture) addShow(id, creatorID string, start, end time.Time) *entity.Event {
	e := &entity.Event{
		ID:        id,
		CreatorID: creatorID,
		Title:     "Show de sábado",
		StartDate: start,
		EndDate:   end,
		EventType: entity.EventTypeShow,
		Status:    entity.EventStatusAberto,
	}
	f.s.events[id] = e
	return e
}

var (
	eventStart = time.Date(2026, 10, 10, 20, 0, 0, 0, time.UTC)
	eventEnd   = time.Date(2026, 10, 10, 23, 0, 0, 0, time.UTC)
)

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_CriaPendenteEConsomeCredito(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	artist := f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	out, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)

	assert.Equal(t, entity.CandidacyStatusPendente, out.Status)
	assert.Equal(t, "a1", out.ArtistID)
	assert.Equal(t, 9, artist.Credits, "o apply deve consumir exatamente um crédito")
}

func TestApply_SemCreditos_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 0)
	f.addShow("e1", "c1", eventStart, eventEnd)

	_, err := f.uc.Apply(context.Background(), "a1", "e1")
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
	assert.Empty(t, f.s.candidacies, "sem crédito não pode ficar candidatura gravada")
}

func TestApply_CreditosIlimitados_NaoDecrementa(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	artist := f.addArtist("a1", entity.CreditsUnlimited)
	artist.PlanID = entity.PlanPaid
	f.addShow("e1", "c1", eventStart, eventEnd)

	_, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)
	assert.Equal(t, entity.CreditsUnlimited, artist.Credits)
}

func TestApply_CandidaturaAtivaDuplicada_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	_, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)

	_, err = f.uc.Apply(context.Background(), "a1", "e1")
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
}

func TestApply_EventoFechado_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	ev := f.addShow("e1", "c1", eventStart, eventEnd)
	ev.Status = entity.EventStatusEncerrado

	_, err := f.uc.Apply(context.Background(), "a1", "e1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestApply_AgendaOcupada_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)
	f.s.blocks["b1"] = &entity.AvailabilityBlock{
		ID:        "b1",
		ArtistID:  "a1",
		StartDate: eventStart.Add(-time.Hour),
		EndDate:   eventStart.Add(time.Hour),
		Status:    entity.BlockStatusBusy,
	}

	_, err := f.uc.Apply(context.Background(), "a1", "e1")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestApply_ContratanteNaoSeCandidata(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addShow("e1", "c1", eventStart, eventEnd)

	_, err := f.uc.Apply(context.Background(), "c1", "e1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_ShowEncerraEventoECriaBlocoBusy(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	ev := f.addShow("e1", "c1", eventStart, eventEnd)

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)

	out, err := f.uc.Approve(context.Background(), "c1", applied.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.CandidacyStatusAprovada, out.Status)
	assert.Equal(t, entity.EventStatusEncerrado, ev.Status, "SHOW encerra na primeira aprovação")

	blocks, _ := (&memAgendaRepo{f.s}).ListByArtist("a1")
	require.Len(t, blocks, 1)
	assert.Equal(t, entity.BlockStatusBusy, blocks[0].Status)
	assert.Equal(t, "e1", blocks[0].EventID, "o bloco deve ficar amarrado ao evento")
	assert.True(t, blocks[0].IsSystemGenerated())
	assert.Equal(t, ev.StartDate, blocks[0].StartDate)
	assert.Equal(t, ev.EndDate, blocks[0].EndDate)
}

func TestApprove_SegundaCandidaturaAposEncerrar_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	f.addArtist("a2", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	c1, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)
	c2, err := f.uc.Apply(context.Background(), "a2", "e1")
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), "c1", c1.ID)
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), "c1", c2.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "evento ENCERRADO não aceita segunda aprovação")
}

func TestApprove_FestivalSegueAberto(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	f.addArtist("a2", 10)
	ev := f.addShow("e1", "c1", eventStart, eventEnd)
	ev.EventType = entity.EventTypeFestival

	c1, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)
	c2, err := f.uc.Apply(context.Background(), "a2", "e1")
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), "c1", c1.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusAberto, ev.Status, "FESTIVAL não encerra ao aprovar")

	_, err = f.uc.Approve(context.Background(), "c1", c2.ID)
	require.NoError(t, err, "FESTIVAL aceita múltiplas aprovações")
}

func TestApprove_ArtistaJaOcupado_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addContractor("c2")
	f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)
	ev2 := f.addShow("e2", "c2", eventStart, eventEnd)
	ev2.EventType = entity.EventTypeFestival

	c1, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)
	c2, err := f.uc.Apply(context.Background(), "a1", "e2")
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), "c1", c1.ID)
	require.NoError(t, err)

	// A aprovação do primeiro evento criou o bloco BUSY; a segunda tem que
	// revalidar a agenda e falhar.
	_, err = f.uc.Approve(context.Background(), "c2", c2.ID)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestApprove_DeOutroContratante_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addContractor("c2")
	f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), "c2", applied.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApprove_JaAprovada_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	ev := f.addShow("e1", "c1", eventStart, eventEnd)
	ev.EventType = entity.EventTypeFestival

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), "c1", applied.ID)
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), "c1", applied.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reject e Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestReject_MarcaRejeitadaSemOutrosEfeitos(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	ev := f.addShow("e1", "c1", eventStart, eventEnd)

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)

	out, err := f.uc.Reject(context.Background(), "c1", applied.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.CandidacyStatusRejeitada, out.Status)
	assert.Equal(t, entity.EventStatusAberto, ev.Status, "rejeitar não mexe no evento")
	assert.Empty(t, f.s.blocks, "rejeitar não cria bloco de agenda")
}

func TestCancel_PendentePeloArtista_SemReembolso(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	artist := f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)
	require.Equal(t, 9, artist.Credits)

	out, err := f.uc.Cancel(context.Background(), "a1", applied.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.CandidacyStatusCancelada, out.Status)
	assert.Equal(t, 9, artist.Credits, "cancelar não devolve o crédito")
}

func TestCancel_AprovadaNaoCancela(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)
	_, err = f.uc.Approve(context.Background(), "c1", applied.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancel(context.Background(), "a1", applied.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancel_DeOutroArtista_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	f.addArtist("a2", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)

	_, err = f.uc.Cancel(context.Background(), "a2", applied.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Candidatura cancelada libera o par para um novo apply.
func TestApply_AposCancelar_Permitido(t *testing.T) {
	f := newFixture()
	f.addContractor("c1")
	f.addArtist("a1", 10)
	f.addShow("e1", "c1", eventStart, eventEnd)

	applied, err := f.uc.Apply(context.Background(), "a1", "e1")
	require.NoError(t, err)
	_, err = f.uc.Cancel(context.Background(), "a1", applied.ID)
	require.NoError(t, err)

	_, err = f.uc.Apply(context.Background(), "a1", "e1")
	assert.NoError(t, err, "cancelada não conta para a unicidade do par")
}
