package review_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/review"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type memReviewRepo struct {
	reviews []*entity.Review
}

func (r *memReviewRepo) Create(rev *entity.Review) error {
	for _, existing := range r.reviews {
		if existing.ReviewerID == rev.ReviewerID && existing.EventID == rev.EventID {
			return domain.ErrDuplicate
		}
	}
	r.reviews = append(r.reviews, rev)
	return nil
}
func (r *memReviewRepo) ExistsByReviewerAndEvent(reviewerID, eventID string) (bool, error) {
	for _, rev := range r.reviews {
		if rev.ReviewerID == reviewerID && rev.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}
func (r *memReviewRepo) ListByReviewed(reviewedID string, limit, offset int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rev := range r.reviews {
		if rev.ReviewedID == reviewedID {
			out = append(out, rev)
		}
	}
	return out, nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error                            { return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error)                { return r.users[id], nil }
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error)          { return nil, nil }
func (r *memUserRepo) GetForUpdate(id string) (*entity.User, error)           { return r.users[id], nil }
func (r *memUserRepo) Update(u *entity.User) error                            { return nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error)         { return nil, nil }
func (r *memUserRepo) ConsumeCredit(id string) error                          { return nil }
func (r *memUserRepo) SetPlan(id, planID string, credits int) error           { return nil }
func (r *memUserRepo) IncrementDailyMessages(id string, limit int) error      { return nil }
func (r *memUserRepo) AddBucketUse(id string, deltaMB, limitMB float64) error { return nil }
func (r *memUserRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	u := r.users[id]
	u.Rating = rating
	u.ReviewCount = reviewCount
	return nil
}

type stubEventRepo struct {
	events map[string]*entity.Event
}

func (r *stubEventRepo) Create(e *entity.Event) error                             { return nil }
func (r *stubEventRepo) GetByID(id string) (*entity.Event, error)                 { return r.events[id], nil }
func (r *stubEventRepo) GetForUpdate(id string) (*entity.Event, error)            { return r.events[id], nil }
func (r *stubEventRepo) UpdateStatus(id, status string, updatedAt time.Time) error { return nil }
func (r *stubEventRepo) ListOpen(limit, offset int) ([]*entity.Event, error)      { return nil, nil }
func (r *stubEventRepo) ListByCreator(creatorID string, limit, offset int) ([]*entity.Event, error) {
	return nil, nil
}

type stubCandidacyRepo struct {
	candidacies []*entity.Candidacy
}

func (r *stubCandidacyRepo) Create(c *entity.Candidacy) error                     { return nil }
func (r *stubCandidacyRepo) GetByID(id string) (*entity.Candidacy, error)         { return nil, nil }
func (r *stubCandidacyRepo) GetForUpdate(id string) (*entity.Candidacy, error)    { return nil, nil }
func (r *stubCandidacyRepo) HasActive(artistID, eventID string) (bool, error)     { return false, nil }
func (r *stubCandidacyRepo) UpdateStatus(id, status string, t time.Time) error    { return nil }
func (r *stubCandidacyRepo) ListByArtist(artistID string) ([]*entity.Candidacy, error) {
	return nil, nil
}
func (r *stubCandidacyRepo) ListByEvent(eventID string) ([]*entity.Candidacy, error) {
	var out []*entity.Candidacy
	for _, c := range r.candidacies {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out, nil
}

type reviewTxRunner struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func (r *reviewTxRunner) RunReview(ctx context.Context, fn func(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(r.reviewRepo, r.userRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base: show concluído entre contratante c1 e artista a1 aprovado.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	reviews     *memReviewRepo
	users       *memUserRepo
	events      *stubEventRepo
	candidacies *stubCandidacyRepo
	uc          *review.UseCase
}

func newFixture() *fixture {
	reviews := &memReviewRepo{}
	users := &memUserRepo{users: map[string]*entity.User{
		"c1": {ID: "c1", Role: entity.RoleContractor},
		"a1": {ID: "a1", Role: entity.RoleArtist},
	}}
	events := &stubEventRepo{events: map[string]*entity.Event{
		"e1": {ID: "e1", CreatorID: "c1", Status: entity.EventStatusConcluido},
	}}
	candidacies := &stubCandidacyRepo{candidacies: []*entity.Candidacy{
		{ID: "cd1", ArtistID: "a1", EventID: "e1", Status: entity.CandidacyStatusAprovada},
	}}
	uc := review.NewUseCase(
		&reviewTxRunner{reviewRepo: reviews, userRepo: users},
		reviews, events, candidacies,
	)
	return &fixture{reviews: reviews, users: users, events: events, candidacies: candidacies, uc: uc}
}

func request(eventID, reviewedID string, rating int) dto.SubmitReviewRequest {
	return dto.SubmitReviewRequest{EventID: eventID, ReviewedID: reviewedID, Rating: rating}
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_ContratanteAvaliaArtista(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Submit(context.Background(), "c1", request("e1", "a1", 5))
	require.NoError(t, err)

	assert.Equal(t, 5, out.Rating)
	assert.Equal(t, 5.0, f.users.users["a1"].Rating)
	assert.Equal(t, 1, f.users.users["a1"].ReviewCount)
}

func TestSubmit_ArtistaAvaliaContratante(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Submit(context.Background(), "a1", request("e1", "c1", 4))
	require.NoError(t, err)

	assert.Equal(t, 4.0, f.users.users["c1"].Rating)
	assert.Equal(t, 1, f.users.users["c1"].ReviewCount)
}

func TestSubmit_MediaIncremental(t *testing.T) {
	f := newFixture()
	a1 := f.users.users["a1"]
	a1.Rating = 4.0
	a1.ReviewCount = 3

	// (4*3 + 5) / 4 = 4.25
	_, err := f.uc.Submit(context.Background(), "c1", request("e1", "a1", 5))
	require.NoError(t, err)

	assert.InDelta(t, 4.25, a1.Rating, 1e-9)
	assert.Equal(t, 4, a1.ReviewCount)
}

func TestSubmit_EventoNaoConcluido_Falha(t *testing.T) {
	f := newFixture()
	f.events.events["e1"].Status = entity.EventStatusEncerrado

	_, err := f.uc.Submit(context.Background(), "c1", request("e1", "a1", 5))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubmit_DuplicadaPorEvento_Falha(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Submit(context.Background(), "c1", request("e1", "a1", 5))
	require.NoError(t, err)

	_, err = f.uc.Submit(context.Background(), "c1", request("e1", "a1", 3))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, f.users.users["a1"].ReviewCount,
		"a duplicada não pode contaminar a média")
}

func TestSubmit_ArtistaNaoAprovadoNaoAvalia(t *testing.T) {
	f := newFixture()
	f.users.users["a2"] = &entity.User{ID: "a2", Role: entity.RoleArtist}

	_, err := f.uc.Submit(context.Background(), "a2", request("e1", "c1", 5))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSubmit_AvaliadoForaDoEvento_Falha(t *testing.T) {
	f := newFixture()
	f.users.users["x1"] = &entity.User{ID: "x1", Role: entity.RoleArtist}

	_, err := f.uc.Submit(context.Background(), "c1", request("e1", "x1", 5))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSubmit_RatingForaDaFaixa_Falha(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Submit(context.Background(), "c1", request("e1", "a1", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Submit(context.Background(), "c1", request("e1", "a1", 6))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_AutoAvaliacao_Falha(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Submit(context.Background(), "c1", request("e1", "c1", 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
