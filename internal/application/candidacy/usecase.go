package candidacy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// UseCase governa o fluxo de candidaturas: Apply, Approve, Reject e Cancel.
// Apply e Approve rodam dentro de uma transação (TxRunner) com as linhas de
// candidatura e evento bloqueadas, para que aprovação dupla e double-booking
// sejam impossíveis sob requisições concorrentes.
type UseCase struct {
	txRunner      ports.TxRunner
	candidacyRepo repository.CandidacyRepository
	eventRepo     repository.EventRepository
	userRepo      repository.UserRepository
	notifRepo     repository.NotificationRepository
	notifier      ports.Notifier
}

// NewUseCase constrói o caso de uso de candidaturas.
func NewUseCase(
	txRunner ports.TxRunner,
	candidacyRepo repository.CandidacyRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	notifier ports.Notifier,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		candidacyRepo: candidacyRepo,
		eventRepo:     eventRepo,
		userRepo:      userRepo,
		notifRepo:     notifRepo,
		notifier:      notifier,
	}
}

// Apply cria a candidatura PENDENTE do artista para o evento. Na mesma
// transação: unicidade do par (ErrAlreadyApplied), disponibilidade na agenda
// (ErrUnavailable) e consumo de crédito (ErrInsufficientCredits).
func (uc *UseCase) Apply(ctx context.Context, artistID, eventID string) (*dto.CandidacyResponse, error) {
	artist, err := uc.userRepo.GetByID(artistID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrUserNotFound
	}
	if artist.Role != entity.RoleArtist {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	cand := &entity.Candidacy{
		ID:        uuid.New().String(),
		ArtistID:  artistID,
		EventID:   eventID,
		Status:    entity.CandidacyStatusPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	var ev *entity.Event

	err = uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		eventRepo repository.EventRepository,
		candidacyRepo repository.CandidacyRepository,
		agendaRepo repository.AgendaRepository,
	) error {
		ev, err = eventRepo.GetByID(eventID)
		if err != nil {
			return err
		}
		if ev == nil {
			return domain.ErrNotFound
		}
		if !ev.IsOpen() {
			return domain.ErrConflict
		}
		exists, err := candidacyRepo.HasActive(artistID, eventID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyApplied
		}
		busy, err := agendaRepo.HasBusyOverlap(artistID, ev.StartDate, ev.EndDate)
		if err != nil {
			return err
		}
		if busy {
			return domain.ErrUnavailable
		}
		if err := userRepo.ConsumeCredit(artistID); err != nil {
			return err
		}
		return candidacyRepo.Create(cand)
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, entity.NotificationTypeCandidacy, artistID, ev.CreatorID, ev.ID, cand.ID)

	return toCandidacyResponse(cand), nil
}

// Approve aprova uma candidatura PENDENTE de um evento ABERTO do contratante.
// Efeitos em uma única unidade atômica: candidatura APROVADA, bloco BUSY na
// agenda do artista cobrindo a janela do evento e, para SHOW, evento ENCERRADO.
func (uc *UseCase) Approve(ctx context.Context, contractorID, candidacyID string) (*dto.CandidacyResponse, error) {
	var cand *entity.Candidacy
	var ev *entity.Event

	err := uc.txRunner.Run(ctx, func(
		_ repository.UserRepository,
		eventRepo repository.EventRepository,
		candidacyRepo repository.CandidacyRepository,
		agendaRepo repository.AgendaRepository,
	) error {
		var err error
		cand, err = candidacyRepo.GetForUpdate(candidacyID)
		if err != nil {
			return err
		}
		if cand == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransitionCandidacy(cand.Status, entity.CandidacyStatusAprovada) {
			return domain.ErrInvalidTransition
		}
		ev, err = eventRepo.GetForUpdate(cand.EventID)
		if err != nil {
			return err
		}
		if ev == nil {
			return domain.ErrNotFound
		}
		if ev.CreatorID != contractorID {
			return domain.ErrForbidden
		}
		if !ev.IsOpen() {
			return domain.ErrConflict
		}
		// Revalida a agenda dentro da transação: duas aprovações concorrentes
		// para o mesmo artista não podem gerar double-booking.
		busy, err := agendaRepo.HasBusyOverlap(cand.ArtistID, ev.StartDate, ev.EndDate)
		if err != nil {
			return err
		}
		if busy {
			return domain.ErrUnavailable
		}

		now := time.Now()
		if err := candidacyRepo.UpdateStatus(cand.ID, entity.CandidacyStatusAprovada, now); err != nil {
			return err
		}
		block := &entity.AvailabilityBlock{
			ID:        uuid.New().String(),
			ArtistID:  cand.ArtistID,
			StartDate: ev.StartDate,
			EndDate:   ev.EndDate,
			Status:    entity.BlockStatusBusy,
			EventID:   ev.ID,
			CreatedAt: now,
		}
		if err := agendaRepo.Create(block); err != nil {
			return err
		}
		if ev.EventType == entity.EventTypeShow {
			if !entity.CanTransitionEvent(ev.Status, entity.EventStatusEncerrado) {
				return domain.ErrInvalidTransition
			}
			if err := eventRepo.UpdateStatus(ev.ID, entity.EventStatusEncerrado, now); err != nil {
				return err
			}
			ev.Status = entity.EventStatusEncerrado
		}
		cand.Status = entity.CandidacyStatusAprovada
		cand.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, entity.NotificationTypeCandidacy, contractorID, cand.ArtistID, ev.ID, cand.ID)

	return toCandidacyResponse(cand), nil
}

// Reject marca a candidatura PENDENTE como REJEITADA, sem outros efeitos.
func (uc *UseCase) Reject(ctx context.Context, contractorID, candidacyID string) (*dto.CandidacyResponse, error) {
	cand, ev, err := uc.loadForContractor(contractorID, candidacyID)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransitionCandidacy(cand.Status, entity.CandidacyStatusRejeitada) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.candidacyRepo.UpdateStatus(cand.ID, entity.CandidacyStatusRejeitada, now); err != nil {
		return nil, err
	}
	cand.Status = entity.CandidacyStatusRejeitada
	cand.UpdatedAt = now

	uc.notify(ctx, entity.NotificationTypeCandidacy, contractorID, cand.ArtistID, ev.ID, cand.ID)

	return toCandidacyResponse(cand), nil
}

// Cancel é a desistência do artista enquanto PENDENTE. O crédito consumido
// não é devolvido.
func (uc *UseCase) Cancel(ctx context.Context, artistID, candidacyID string) (*dto.CandidacyResponse, error) {
	cand, err := uc.candidacyRepo.GetByID(candidacyID)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, domain.ErrNotFound
	}
	if cand.ArtistID != artistID {
		return nil, domain.ErrForbidden
	}
	if !entity.CanTransitionCandidacy(cand.Status, entity.CandidacyStatusCancelada) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.candidacyRepo.UpdateStatus(cand.ID, entity.CandidacyStatusCancelada, now); err != nil {
		return nil, err
	}
	cand.Status = entity.CandidacyStatusCancelada
	cand.UpdatedAt = now
	return toCandidacyResponse(cand), nil
}

// ListByEvent lista as candidaturas de um evento do contratante.
func (uc *UseCase) ListByEvent(contractorID, eventID string) ([]dto.CandidacyResponse, error) {
	ev, err := uc.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrNotFound
	}
	if ev.CreatorID != contractorID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.candidacyRepo.ListByEvent(eventID)
	if err != nil {
		return nil, err
	}
	return toCandidacyList(list), nil
}

// ListMine lista as candidaturas do artista.
func (uc *UseCase) ListMine(artistID string) ([]dto.CandidacyResponse, error) {
	list, err := uc.candidacyRepo.ListByArtist(artistID)
	if err != nil {
		return nil, err
	}
	return toCandidacyList(list), nil
}

func (uc *UseCase) loadForContractor(contractorID, candidacyID string) (*entity.Candidacy, *entity.Event, error) {
	cand, err := uc.candidacyRepo.GetByID(candidacyID)
	if err != nil {
		return nil, nil, err
	}
	if cand == nil {
		return nil, nil, domain.ErrNotFound
	}
	ev, err := uc.eventRepo.GetByID(cand.EventID)
	if err != nil {
		return nil, nil, err
	}
	if ev == nil {
		return nil, nil, domain.ErrNotFound
	}
	if ev.CreatorID != contractorID {
		return nil, nil, domain.ErrForbidden
	}
	return cand, ev, nil
}

// notify registra a notificação in-app e publica para o gateway. Melhor
// esforço: falha de entrega não desfaz a operação de negócio.
func (uc *UseCase) notify(ctx context.Context, kind, senderID, receiverID, eventID, candidacyID string) {
	n := &entity.Notification{
		ID:          uuid.New().String(),
		Type:        kind,
		SenderID:    senderID,
		ReceiverID:  receiverID,
		EventID:     eventID,
		CandidacyID: candidacyID,
		CreatedAt:   time.Now(),
	}
	_ = uc.notifRepo.Create(n)
	_ = uc.notifier.Publish(ctx, n)
}

func toCandidacyResponse(c *entity.Candidacy) *dto.CandidacyResponse {
	if c == nil {
		return nil
	}
	return &dto.CandidacyResponse{
		ID:        c.ID,
		ArtistID:  c.ArtistID,
		EventID:   c.EventID,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func toCandidacyList(list []*entity.Candidacy) []dto.CandidacyResponse {
	out := make([]dto.CandidacyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCandidacyResponse(c))
	}
	return out
}
