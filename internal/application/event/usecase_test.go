package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/event"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(u *entity.User) error                   { r.users[u.ID] = u; return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error)       { return r.users[id], nil }
func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *stubUserRepo) GetForUpdate(id string) (*entity.User, error)  { return r.users[id], nil }
func (r *stubUserRepo) Update(u *entity.User) error                   { return nil }
func (r *stubUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) ConsumeCredit(id string) error {
	u := r.users[id]
	if u.Credits == entity.CreditsUnlimited {
		return nil
	}
	if u.Credits <= 0 {
		return domain.ErrInsufficientCredits
	}
	u.Credits--
	return nil
}
func (r *stubUserRepo) SetPlan(id, planID string, credits int) error { return nil }
func (r *stubUserRepo) IncrementDailyMessages(id string, limit int) error {
	return nil
}
func (r *stubUserRepo) AddBucketUse(id string, deltaMB, limitMB float64) error { return nil }
func (r *stubUserRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	return nil
}

type stubEventRepo struct {
	events map[string]*entity.Event
}

func (r *stubEventRepo) Create(e *entity.Event) error                  { r.events[e.ID] = e; return nil }
func (r *stubEventRepo) GetByID(id string) (*entity.Event, error)      { return r.events[id], nil }
func (r *stubEventRepo) GetForUpdate(id string) (*entity.Event, error) { return r.events[id], nil }
func (r *stubEventRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	e := r.events[id]
	e.Status = status
	e.UpdatedAt = updatedAt
	return nil
}
func (r *stubEventRepo) ListOpen(limit, offset int) ([]*entity.Event, error) {
	var out []*entity.Event
	for _, e := range r.events {
		if e.IsOpen() {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *stubEventRepo) ListByCreator(creatorID string, limit, offset int) ([]*entity.Event, error) {
	return nil, nil
}

type stubProfileRepo struct {
	matching []*entity.ArtistProfile
}

func (r *stubProfileRepo) Upsert(p *entity.ArtistProfile) error { return nil }
func (r *stubProfileRepo) GetByUserID(userID string) (*entity.ArtistProfile, error) {
	return nil, nil
}
func (r *stubProfileRepo) ListMatching(styles []string, minCache decimal.Decimal) ([]*entity.ArtistProfile, error) {
	return r.matching, nil
}

type captureNotifRepo struct {
	created []*entity.Notification
}

func (r *captureNotifRepo) Create(n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}
func (r *captureNotifRepo) ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, error) {
	return r.created, nil
}
func (r *captureNotifRepo) MarkSeen(id, receiverID string) error { return nil }

type noopNotifier struct{}

func (noopNotifier) Publish(ctx context.Context, n *entity.Notification) error { return nil }

type directTxRunner struct {
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
}

func (r *directTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	candidacyRepo repository.CandidacyRepository,
	agendaRepo repository.AgendaRepository,
) error) error {
	return fn(r.userRepo, r.eventRepo, nil, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	users    *stubUserRepo
	events   *stubEventRepo
	profiles *stubProfileRepo
	notifs   *captureNotifRepo
	uc       *event.UseCase
}

func newFixture() *fixture {
	users := &stubUserRepo{users: map[string]*entity.User{}}
	events := &stubEventRepo{events: map[string]*entity.Event{}}
	profiles := &stubProfileRepo{}
	notifs := &captureNotifRepo{}
	uc := event.NewUseCase(
		&directTxRunner{userRepo: users, eventRepo: events},
		events, users, profiles, notifs, noopNotifier{},
	)
	return &fixture{users: users, events: events, profiles: profiles, notifs: notifs, uc: uc}
}

func (f *fixture) addContractor(id, planID string, credits int) *entity.User {
	u := &entity.User{ID: id, Role: entity.RoleContractor, PlanID: planID, Credits: credits}
	f.users.users[id] = u
	return u
}

func validRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:     "Festa junina",
		StartDate: time.Date(2026, 6, 24, 18, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 24, 23, 0, 0, 0, time.UTC),
		Location:  "São Paulo",
		EventType: entity.EventTypeShow,
		MinCache:  decimal.NewFromInt(500),
		MaxCache:  decimal.NewFromInt(800),
		Styles:    []string{"forró"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EventoAbertoEConsomeCredito(t *testing.T) {
	f := newFixture()
	c := f.addContractor("c1", entity.PlanFree, 10)

	out, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.EventStatusAberto, out.Status)
	assert.Equal(t, 9, c.Credits)
}

func TestCreate_PlanoGratuitoForcaCacheFixo(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)

	out, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	assert.True(t, out.MaxCache.Equal(out.MinCache),
		"no plano gratuito o cachê é fixo: max acompanha min")
}

func TestCreate_PlanoPagoMantemFaixaDeCache(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanPaid, entity.CreditsUnlimited)

	out, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	assert.True(t, out.MinCache.Equal(decimal.NewFromInt(500)))
	assert.True(t, out.MaxCache.Equal(decimal.NewFromInt(800)))
}

func TestCreate_FestivalNoPlanoGratuito_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)

	in := validRequest()
	in.EventType = entity.EventTypeFestival
	_, err := f.uc.Create(context.Background(), "c1", in)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestCreate_FestivalNoPlanoPago_Permitido(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanPaid, entity.CreditsUnlimited)

	in := validRequest()
	in.EventType = entity.EventTypeFestival
	in.Styles = []string{"forró", "mpb", "samba"}
	_, err := f.uc.Create(context.Background(), "c1", in)
	assert.NoError(t, err)
}

func TestCreate_MultiplosEstilosNoPlanoGratuito_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)

	in := validRequest()
	in.Styles = []string{"forró", "mpb"}
	_, err := f.uc.Create(context.Background(), "c1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_SemCreditos_NadaGravado(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 0)

	_, err := f.uc.Create(context.Background(), "c1", validRequest())
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
	assert.Empty(t, f.events.events)
}

func TestCreate_JanelaInvertida_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)

	in := validRequest()
	in.StartDate, in.EndDate = in.EndDate, in.StartDate
	_, err := f.uc.Create(context.Background(), "c1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestCreate_ArtistaNaoCriaEvento(t *testing.T) {
	f := newFixture()
	f.users.users["a1"] = &entity.User{ID: "a1", Role: entity.RoleArtist, PlanID: entity.PlanFree, Credits: 10}

	_, err := f.uc.Create(context.Background(), "a1", validRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_NotificaArtistasCompativeis(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)
	f.profiles.matching = []*entity.ArtistProfile{
		{UserID: "a1"},
		{UserID: "a2"},
	}

	out, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	require.Len(t, f.notifs.created, 2)
	assert.Equal(t, entity.NotificationTypeEvent, f.notifs.created[0].Type)
	assert.Equal(t, out.ID, f.notifs.created[0].EventID)
	assert.Equal(t, "a1", f.notifs.created[0].ReceiverID)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_CancelarEventoAberto(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)
	created, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	out, err := f.uc.UpdateStatus(context.Background(), "c1", created.ID, entity.EventStatusCancelado)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusCancelado, out.Status)
}

func TestUpdateStatus_ConcluirAntesDoFim_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)

	in := validRequest()
	in.StartDate = time.Now().Add(24 * time.Hour)
	in.EndDate = time.Now().Add(48 * time.Hour)
	created, err := f.uc.Create(context.Background(), "c1", in)
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), "c1", created.ID, entity.EventStatusConcluido)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_ConcluirDepoisDoFim(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)

	in := validRequest()
	in.StartDate = time.Now().Add(-48 * time.Hour)
	in.EndDate = time.Now().Add(-24 * time.Hour)
	created, err := f.uc.Create(context.Background(), "c1", in)
	require.NoError(t, err)

	out, err := f.uc.UpdateStatus(context.Background(), "c1", created.ID, entity.EventStatusConcluido)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusConcluido, out.Status)
}

func TestUpdateStatus_ConcluirShowEncerrado(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)

	in := validRequest()
	in.StartDate = time.Now().Add(-48 * time.Hour)
	in.EndDate = time.Now().Add(-24 * time.Hour)
	created, err := f.uc.Create(context.Background(), "c1", in)
	require.NoError(t, err)

	// Evento fechado pela aprovação da candidatura ainda pode ser concluído.
	f.events.events[created.ID].Status = entity.EventStatusEncerrado

	out, err := f.uc.UpdateStatus(context.Background(), "c1", created.ID, entity.EventStatusConcluido)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusConcluido, out.Status)
}

func TestUpdateStatus_CanceladoEhTerminal(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)
	created, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), "c1", created.ID, entity.EventStatusCancelado)
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), "c1", created.ID, entity.EventStatusConcluido)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_DeOutroContratante_Falha(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)
	f.addContractor("c2", entity.PlanFree, 10)
	created, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), "c2", created.ID, entity.EventStatusCancelado)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_DiretoParaEncerrado_Rejeitado(t *testing.T) {
	f := newFixture()
	f.addContractor("c1", entity.PlanFree, 10)
	created, err := f.uc.Create(context.Background(), "c1", validRequest())
	require.NoError(t, err)

	// ENCERRADO só acontece pela aprovação de candidatura, nunca manualmente.
	_, err = f.uc.UpdateStatus(context.Background(), "c1", created.ID, entity.EventStatusEncerrado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
